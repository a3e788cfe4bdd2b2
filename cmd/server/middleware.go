package main

import (
	"os"
	"strings"
	"time"

	"codeberg.org/adpulse/server/internal/logger"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	limiter "github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// per-IP burst cap on the submission endpoint. the monthly quota guards
// spend; this guards the server from scripted hammering.
const submitRateFormat = "10-M"

// configures cross-origin access from the web frontend
func CORSMiddleware() gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		corsConfig.AllowOrigins = strings.Split(origins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	}

	return cors.New(corsConfig)
}

// builds the in-memory per-IP rate limiter for analysis submissions
func SubmitRateLimiter() gin.HandlerFunc {
	rate, err := limiter.NewRateFromFormatted(submitRateFormat)
	if err != nil {
		logger.Fatal("invalid submit rate format", "format", submitRateFormat, "error", err)
	}

	return mgin.NewMiddleware(limiter.New(memory.NewStore(), rate))
}
