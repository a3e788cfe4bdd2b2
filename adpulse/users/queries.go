package users

const (
	// the conflict target must repeat the users_provider_identity index
	// predicate; PostgreSQL only infers a partial unique index as the
	// conflict arbiter when the predicate is spelled out
	queryFindOrCreateByProvider = `
		INSERT INTO users (id, provider, provider_id, email, name, avatar_url)
		VALUES (gen_random_uuid()::text, $1, $2, $3, $4, $5)
		ON CONFLICT (provider, provider_id) WHERE provider <> ''
		DO UPDATE SET
			email = EXCLUDED.email,
			name = EXCLUDED.name,
			avatar_url = EXCLUDED.avatar_url,
			updated_at = NOW()
		RETURNING id, email, provider, provider_id, name, avatar_url, subscription_tier, created_at, updated_at
	`

	queryUpsert = `
		INSERT INTO users (id, email)
		VALUES ($1, $2)
		ON CONFLICT (id)
		DO UPDATE SET
			email = EXCLUDED.email,
			updated_at = NOW()
		RETURNING id, email, provider, provider_id, name, avatar_url, subscription_tier, created_at, updated_at
	`

	queryFindByID = `
		SELECT id, email, provider, provider_id, name, avatar_url, subscription_tier, created_at, updated_at
		FROM users
		WHERE id = $1
	`
)
