package users

import (
	stderrors "errors"
	"net/http"
	"time"

	"codeberg.org/adpulse/server/adpulse/users"
	"codeberg.org/adpulse/server/internal/auth"
	"codeberg.org/adpulse/server/internal/errors"
	"codeberg.org/adpulse/server/internal/quota"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

// GetUsageHandler godoc
// @Summary Get quota usage
// @Description Current month's analysis usage for the authenticated user
// @Tags users
// @Produce json
// @Success 200 {object} UsageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/users/me/usage [get]
// @Security BearerAuth
func GetUsageHandler(userRepo *users.Repository, tracker *quota.Tracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		// accounts are created lazily on first submission, so a missing
		// row just means a fresh FREE account with nothing used yet
		tier := users.TierFree

		user, err := userRepo.FindByID(c.Request.Context(), userID)
		if err != nil && !stderrors.Is(err, pgx.ErrNoRows) {
			errors.InternalError(c, "failed to load user", err)
			return
		}

		if user != nil {
			tier = user.Tier
		}

		status, err := tracker.Check(c.Request.Context(), userID, tier, time.Now())
		if err != nil {
			errors.InternalError(c, "failed to check usage", err)
			return
		}

		c.JSON(http.StatusOK, UsageResponse{
			Tier:      tier,
			Used:      status.Used,
			Limit:     status.Limit,
			Unlimited: status.Limit == quota.Unlimited,
		})
	}
}
