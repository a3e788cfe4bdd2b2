package analyzer

import (
	"context"
	"fmt"
	"time"

	"codeberg.org/adpulse/server/adpulse/analyses"
	"codeberg.org/adpulse/server/internal/llm"
	"codeberg.org/adpulse/server/internal/prompt"
	"codeberg.org/adpulse/server/internal/quota"
)

func New(userStore UserStore, analysisStore AnalysisStore, generator llm.TextGenerator) *Service {
	return &Service{
		users:     userStore,
		analyses:  analysisStore,
		quota:     quota.NewTracker(analysisStore),
		generator: generator,
	}
}

// returns the quota tracker backing this service
func (s *Service) Quota() *quota.Tracker {
	return s.quota
}

// runs one submission through the full pipeline and returns the persisted
// record. each step's failure short-circuits the rest, so exactly one
// generation call is made and at most one record row plus one user upsert
// are written per invocation. failure modes:
//
//   - *quota.ExceededError when the monthly cap is reached
//   - ErrUnparseableResponse (wrapped) when the engine output is not JSON
//   - any other error is an infrastructure failure (storage or transport)
func (s *Service) Submit(
	ctx context.Context,
	caller Identity,
	req analyses.Request,
	now time.Time,
) (*analyses.Analysis, error) {
	user, err := s.users.Upsert(ctx, caller.ID, caller.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to sync user: %w", err)
	}

	// quota is evaluated strictly before the generation call so a rejected
	// request never spends a paid external call. tier comes from the row,
	// not the token, so upgrades apply immediately.
	status, err := s.quota.Check(ctx, user.ID, user.Tier, now)
	if err != nil {
		return nil, fmt.Errorf("failed to check quota: %w", err)
	}

	if !status.Allowed {
		return nil, &quota.ExceededError{Used: status.Used, Limit: status.Limit}
	}

	if req.Platform == "" {
		req.Platform = "Unknown"
	}

	composed := prompt.Compose(prompt.AnalysisTemplate, req)

	raw, err := s.generator.GenerateText(ctx, llm.TextGenerationRequest{
		System: prompt.SystemInstruction,
		Prompt: composed,
	})
	if err != nil {
		return nil, fmt.Errorf("generation call failed: %w", err)
	}

	out, err := Normalize(raw, req.PrimaryText)
	if err != nil {
		return nil, err
	}

	record, err := s.analyses.Create(ctx, user.ID, req, *out, now)
	if err != nil {
		return nil, fmt.Errorf("failed to save analysis: %w", err)
	}

	return record, nil
}
