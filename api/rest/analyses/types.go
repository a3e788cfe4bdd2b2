package analyses

import (
	"context"
	"time"

	"codeberg.org/adpulse/server/adpulse/analyses"
	"codeberg.org/adpulse/server/internal/analyzer"
)

// runs the submission pipeline
type Pipeline interface {
	Submit(ctx context.Context, caller analyzer.Identity, req analyses.Request, now time.Time) (*analyses.Analysis, error)
}

// reads persisted analyses
type Store interface {
	List(ctx context.Context, userID string) ([]analyses.Analysis, error)
	Get(ctx context.Context, id, userID string) (*analyses.Analysis, error)
}

// body of a 429 response, carrying usage counters so the client can
// render an upgrade prompt
type QuotaExceededResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Limit   int    `json:"limit"`
	Used    int    `json:"used"`
}
