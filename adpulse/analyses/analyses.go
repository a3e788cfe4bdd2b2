package analyses

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// creates a new analysis repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// persists a new analysis record for the user. records are write-once;
// there is no corresponding update statement.
func (r *Repository) Create(
	ctx context.Context,
	userID string,
	req Request,
	out Output,
	createdAt time.Time,
) (*Analysis, error) {
	row := r.db.QueryRow(
		ctx,
		queryCreate,
		userID,
		req.Platform,
		req.Headline,
		req.PrimaryText,
		req.CTA,
		req.CreativeContent,
		req.Demographics,
		req.AudienceInterests,
		req.PainPoints,
		req.CampaignGoal,
		out.HookScore,
		out.OfferScore,
		out.CTAScore,
		out.ScrollStopScore,
		out.ConversionProbability,
		out.EmotionalTriggers,
		out.Summary,
		out.Strengths,
		out.Weaknesses,
		out.RewriteSuggestions,
		out.FullyOptimizedCopy,
		createdAt,
	)

	return scanAnalysis(row)
}

// lists all analyses owned by the user, newest first
func (r *Repository) List(ctx context.Context, userID string) ([]Analysis, error) {
	rows, err := r.db.Query(ctx, queryList, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []Analysis{}

	for rows.Next() {
		analysis, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}

		result = append(result, *analysis)
	}

	return result, rows.Err()
}

// gets a single analysis by ID, scoped to the owning user.
// a record owned by someone else behaves exactly like a missing one.
func (r *Repository) Get(ctx context.Context, id, userID string) (*Analysis, error) {
	return scanAnalysis(r.db.QueryRow(ctx, queryGet, id, userID))
}

// counts analyses the user created at or after the given instant
func (r *Repository) CountCreatedSince(ctx context.Context, userID string, since time.Time) (int, error) {
	var count int

	if err := r.db.QueryRow(ctx, queryCountCreatedSince, userID, since).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

func scanAnalysis(row pgx.Row) (*Analysis, error) {
	var a Analysis

	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.Platform,
		&a.Headline,
		&a.PrimaryText,
		&a.CTA,
		&a.CreativeContent,
		&a.Demographics,
		&a.AudienceInterests,
		&a.PainPoints,
		&a.CampaignGoal,
		&a.HookScore,
		&a.OfferScore,
		&a.CTAScore,
		&a.ScrollStopScore,
		&a.ConversionProbability,
		&a.EmotionalTriggers,
		&a.Summary,
		&a.Strengths,
		&a.Weaknesses,
		&a.RewriteSuggestions,
		&a.FullyOptimizedCopy,
		&a.CreatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &a, nil
}
