package analyses

import (
	"codeberg.org/adpulse/server/internal/auth"
	"github.com/gin-gonic/gin"
)

// registers analysis routes. submitLimiter guards the submission endpoint
// against bursts ahead of the monthly quota; pass nil to disable.
func RegisterRoutes(router *gin.RouterGroup, pipeline Pipeline, store Store, submitLimiter gin.HandlerFunc) {
	group := router.Group("/analyses")
	group.Use(auth.AuthMiddleware())
	{
		if submitLimiter != nil {
			group.POST("", submitLimiter, SubmitAnalysisHandler(pipeline))
		} else {
			group.POST("", SubmitAnalysisHandler(pipeline))
		}

		group.GET("", ListAnalysesHandler(store))
		group.GET("/:id", GetAnalysisHandler(store))
	}
}
