package main

import (
	"fmt"

	"codeberg.org/adpulse/server/adpulse/analyses"
	"codeberg.org/adpulse/server/adpulse/users"
	"codeberg.org/adpulse/server/internal/analyzer"
	"codeberg.org/adpulse/server/internal/llm"
)

// creates and configures all service clients
func InitializeServices(userRepo *users.Repository, analysisRepo *analyses.Repository) (*Services, error) {
	generator, err := llm.NewGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create generation client: %w", err)
	}

	analyzerService := analyzer.New(userRepo, analysisRepo, generator)

	return &Services{
		Generator: generator,
		Analyzer:  analyzerService,
	}, nil
}
