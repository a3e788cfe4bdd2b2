package main

import (
	"codeberg.org/adpulse/server/api/rest/analyses"
	"codeberg.org/adpulse/server/api/rest/auth"
	"codeberg.org/adpulse/server/api/rest/health"
	"codeberg.org/adpulse/server/api/rest/users"
	"github.com/gin-gonic/gin"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(CORSMiddleware())
	router.GET("/health", health.Handler)

	v1 := router.Group("/api/v1")

	{
		v1.GET("/ping", health.PingHandler)

		auth.RegisterRoutes(v1, server.userRepo)
		analyses.RegisterRoutes(v1, server.services.Analyzer, server.analysisRepo, SubmitRateLimiter())
		users.RegisterRoutes(v1, server.userRepo, server.services.Analyzer.Quota())
	}
}
