package main

import (
	"codeberg.org/adpulse/server/adpulse/analyses"
	"codeberg.org/adpulse/server/adpulse/users"
	"codeberg.org/adpulse/server/internal/analyzer"
	"codeberg.org/adpulse/server/internal/config"
	"codeberg.org/adpulse/server/internal/llm"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// holds all dependencies and state for the API server
type Server struct {
	db           *pgxpool.Pool
	config       *config.Config
	userRepo     *users.Repository
	analysisRepo *analyses.Repository
	services     *Services
	router       *gin.Engine
}

// holds all external service clients
type Services struct {
	Generator llm.TextGenerator
	Analyzer  *analyzer.Service
}
