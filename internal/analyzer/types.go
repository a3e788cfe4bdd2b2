package analyzer

import (
	"context"
	"time"

	"codeberg.org/adpulse/server/adpulse/analyses"
	"codeberg.org/adpulse/server/adpulse/users"
	"codeberg.org/adpulse/server/internal/llm"
	"codeberg.org/adpulse/server/internal/quota"
)

// identity of the authenticated caller, taken from the verified token
type Identity struct {
	ID    string
	Email string
}

// creates or refreshes user rows
type UserStore interface {
	Upsert(ctx context.Context, id, email string) (*users.User, error)
}

// persists and counts analysis records
type AnalysisStore interface {
	CountCreatedSince(ctx context.Context, userID string, since time.Time) (int, error)
	Create(ctx context.Context, userID string, req analyses.Request, out analyses.Output, createdAt time.Time) (*analyses.Analysis, error)
}

// runs the quota-gated analysis pipeline:
// user upsert -> quota check -> prompt composition -> generation -> normalization -> persistence
type Service struct {
	users     UserStore
	analyses  AnalysisStore
	quota     *quota.Tracker
	generator llm.TextGenerator
}
