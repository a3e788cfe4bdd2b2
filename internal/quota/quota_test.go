package quota

import (
	"context"
	"fmt"
	"testing"
	"time"

	"codeberg.org/adpulse/server/adpulse/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// implements Counter for testing
type mockCounter struct {
	count     int
	err       error
	lastSince time.Time
}

func (m *mockCounter) CountCreatedSince(_ context.Context, _ string, since time.Time) (int, error) {
	m.lastSince = since

	if m.err != nil {
		return 0, m.err
	}

	return m.count, nil
}

func TestMonthlyLimit(t *testing.T) {
	assert.Equal(t, FreeMonthlyLimit, MonthlyLimit(users.TierFree))
	assert.Equal(t, Unlimited, MonthlyLimit(users.TierPro))
	assert.Equal(t, Unlimited, MonthlyLimit(users.TierAgency))

	// unknown tiers fall back to the FREE limit
	assert.Equal(t, FreeMonthlyLimit, MonthlyLimit(""))
	assert.Equal(t, FreeMonthlyLimit, MonthlyLimit("ENTERPRISE"))
}

func TestMonthStart(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	now := time.Date(2025, time.March, 17, 14, 30, 45, 123, loc)

	start := MonthStart(now)

	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, loc), start)
	assert.Equal(t, loc, start.Location())
}

func TestCheck_FreeTierBoundary(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		used    int
		allowed bool
	}{
		{0, true},
		{1, true},
		{2, true},
		{3, false},
		{4, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("used=%d", tt.used), func(t *testing.T) {
			counter := &mockCounter{count: tt.used}
			tracker := NewTracker(counter)

			status, err := tracker.Check(ctx, "user-1", users.TierFree, now)

			require.NoError(t, err)
			assert.Equal(t, tt.allowed, status.Allowed)
			assert.Equal(t, tt.used, status.Used)
			assert.Equal(t, FreeMonthlyLimit, status.Limit)
		})
	}
}

func TestCheck_PaidTiersUnbounded(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	for _, tier := range []string{users.TierPro, users.TierAgency} {
		counter := &mockCounter{count: 100000}
		tracker := NewTracker(counter)

		status, err := tracker.Check(ctx, "user-1", tier, now)

		require.NoError(t, err)
		assert.True(t, status.Allowed, "tier %s should never deny", tier)
		assert.Equal(t, Unlimited, status.Limit)
		assert.Equal(t, 100000, status.Used)
	}
}

func TestCheck_CountsFromMonthStart(t *testing.T) {
	counter := &mockCounter{}
	tracker := NewTracker(counter)

	now := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)
	_, err := tracker.Check(context.Background(), "user-1", users.TierFree, now)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), counter.lastSince)
}

func TestCheck_CounterFailureIsNotDenial(t *testing.T) {
	counter := &mockCounter{err: fmt.Errorf("connection refused")}
	tracker := NewTracker(counter)

	status, err := tracker.Check(context.Background(), "user-1", users.TierFree, time.Now())

	// a broken count read must surface as an error, never as quota exceeded
	require.Error(t, err)
	assert.False(t, status.Allowed)
	assert.Contains(t, err.Error(), "failed to count analyses")
}

func TestExceededError_Message(t *testing.T) {
	err := &ExceededError{Used: 3, Limit: 3}

	assert.Equal(t, "monthly analysis limit reached (3 of 3 used)", err.Error())
}
