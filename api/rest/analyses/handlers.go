package analyses

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"time"

	"codeberg.org/adpulse/server/adpulse/analyses"
	"codeberg.org/adpulse/server/internal/analyzer"
	"codeberg.org/adpulse/server/internal/auth"
	"codeberg.org/adpulse/server/internal/errors"
	"codeberg.org/adpulse/server/internal/logger"
	"codeberg.org/adpulse/server/internal/quota"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

// SubmitAnalysisHandler godoc
// @Summary Analyze an ad creative
// @Description Score the submitted creative with the generation engine and persist the result
// @Tags analyses
// @Accept json
// @Produce json
// @Param request body analyses.Request true "Creative to analyze"
// @Success 200 {object} analyses.Analysis
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 429 {object} QuotaExceededResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/analyses [post]
// @Security BearerAuth
func SubmitAnalysisHandler(pipeline Pipeline) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		var req analyses.Request
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		caller := analyzer.Identity{ID: userID, Email: auth.GetUserEmail(c)}

		record, err := pipeline.Submit(c.Request.Context(), caller, req, time.Now())
		if err != nil {
			var quotaErr *quota.ExceededError
			if stderrors.As(err, &quotaErr) {
				c.JSON(http.StatusTooManyRequests, QuotaExceededResponse{
					Error: "Monthly limit reached",
					Message: fmt.Sprintf(
						"You've used all %d analyses for this month. Upgrade to Pro for unlimited analyses.",
						quotaErr.Limit,
					),
					Limit: quotaErr.Limit,
					Used:  quotaErr.Used,
				})
				return
			}

			if stderrors.Is(err, analyzer.ErrUnparseableResponse) {
				logger.ErrorErr(err, "analysis response unparseable", "user_id", userID)
				c.JSON(http.StatusInternalServerError, errors.ErrorResponse{
					Error:   errors.CodeServerError,
					Message: "failed to parse AI response, please try again",
				})
				return
			}

			errors.InternalError(c, "failed to analyze creative", err)
			return
		}

		c.JSON(http.StatusOK, record)
	}
}

// ListAnalysesHandler godoc
// @Summary List analyses
// @Description List all analyses owned by the caller, newest first
// @Tags analyses
// @Produce json
// @Success 200 {array} analyses.Analysis
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/analyses [get]
// @Security BearerAuth
func ListAnalysesHandler(store Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		records, err := store.List(c.Request.Context(), userID)
		if err != nil {
			errors.InternalError(c, "failed to list analyses", err)
			return
		}

		c.JSON(http.StatusOK, records)
	}
}

// GetAnalysisHandler godoc
// @Summary Get a single analysis
// @Description Get one analysis by ID. Records owned by other users answer 404.
// @Tags analyses
// @Produce json
// @Param id path string true "Analysis ID"
// @Success 200 {object} analyses.Analysis
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/analyses/{id} [get]
// @Security BearerAuth
func GetAnalysisHandler(store Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		id, ok := errors.ValidatePathUUID(c, "id")
		if !ok {
			return
		}

		record, err := store.Get(c.Request.Context(), id, userID)
		if err != nil {
			// existing-but-foreign and missing records are indistinguishable
			if stderrors.Is(err, pgx.ErrNoRows) {
				errors.NotFound(c, "analysis")
				return
			}

			errors.InternalError(c, "failed to load analysis", err)
			return
		}

		c.JSON(http.StatusOK, record)
	}
}
