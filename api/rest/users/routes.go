package users

import (
	"codeberg.org/adpulse/server/adpulse/users"
	"codeberg.org/adpulse/server/internal/auth"
	"codeberg.org/adpulse/server/internal/quota"
	"github.com/gin-gonic/gin"
)

// registers user routes
func RegisterRoutes(router *gin.RouterGroup, userRepo *users.Repository, tracker *quota.Tracker) {
	group := router.Group("/users")
	group.Use(auth.AuthMiddleware())
	{
		group.GET("/me/usage", GetUsageHandler(userRepo, tracker))
	}
}
