package users

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryFindOrCreateByProvider_ConflictTargetMatchesPartialIndex(t *testing.T) {
	// users_provider_identity is a partial unique index
	// (WHERE provider <> ''), so the conflict target must repeat that
	// predicate or PostgreSQL rejects the insert with SQLSTATE 42P10
	assert.Contains(t, queryFindOrCreateByProvider,
		"ON CONFLICT (provider, provider_id) WHERE provider <> ''")
}

func TestQueryUpsert_ConflictsOnPrimaryKey(t *testing.T) {
	// lazily-created rows all carry provider = '' and must never
	// collide with each other; only the id can arbitrate
	assert.Contains(t, queryUpsert, "ON CONFLICT (id)")
	assert.NotContains(t, queryUpsert, "ON CONFLICT (provider")
}

func TestQueries_ReturnFullRow(t *testing.T) {
	columns := "id, email, provider, provider_id, name, avatar_url, subscription_tier, created_at, updated_at"

	for _, query := range []string{queryFindOrCreateByProvider, queryUpsert} {
		assert.True(t, strings.Contains(query, "RETURNING "+columns),
			"upsert queries must return the full row for scanning")
	}

	assert.Contains(t, queryFindByID, "SELECT "+columns)
}
