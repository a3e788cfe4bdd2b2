package quota

import (
	"context"
	"fmt"
	"time"

	"codeberg.org/adpulse/server/adpulse/users"
)

const (
	// analyses a FREE account may create per calendar month
	FreeMonthlyLimit = 3

	// sentinel limit for tiers with no monthly cap
	Unlimited = -1
)

// reports analysis row counts for quota accounting
type Counter interface {
	CountCreatedSince(ctx context.Context, userID string, since time.Time) (int, error)
}

// result of a quota check
type Status struct {
	Allowed bool `json:"allowed"`
	Used    int  `json:"used"`
	Limit   int  `json:"limit"`
}

// returned when a submission would exceed the monthly cap
type ExceededError struct {
	Used  int
	Limit int
}

func (e *ExceededError) Error() string {
	return fmt.Sprintf("monthly analysis limit reached (%d of %d used)", e.Used, e.Limit)
}

// decides whether a user may create another analysis this calendar month
type Tracker struct {
	counter Counter
}

func NewTracker(counter Counter) *Tracker {
	return &Tracker{counter: counter}
}

// returns the monthly analysis limit for a subscription tier.
// unknown tiers get the FREE limit.
func MonthlyLimit(tier string) int {
	switch tier {
	case users.TierPro, users.TierAgency:
		return Unlimited
	default:
		return FreeMonthlyLimit
	}
}

// returns the first instant of the calendar month containing t
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// counts the user's analyses created since the start of the current month
// and compares against the tier limit. read-only; a failed count read is an
// infrastructure error, never a denial.
func (t *Tracker) Check(ctx context.Context, userID, tier string, now time.Time) (Status, error) {
	used, err := t.counter.CountCreatedSince(ctx, userID, MonthStart(now))
	if err != nil {
		return Status{}, fmt.Errorf("failed to count analyses: %w", err)
	}

	limit := MonthlyLimit(tier)

	return Status{
		Allowed: limit == Unlimited || used < limit,
		Used:    used,
		Limit:   limit,
	}, nil
}
