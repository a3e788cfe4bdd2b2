package analyses

const analysisColumns = `id, user_id, platform, headline, primary_text, cta, creative_content,
		demographics, audience_interests, pain_points, campaign_goal,
		hook_score, offer_score, cta_score, scroll_stop_score, conversion_probability,
		emotional_triggers, summary, strengths, weaknesses, rewrite_suggestions,
		fully_optimized_copy, created_at`

const (
	queryCreate = `
		INSERT INTO creative_analyses (
			user_id, platform, headline, primary_text, cta, creative_content,
			demographics, audience_interests, pain_points, campaign_goal,
			hook_score, offer_score, cta_score, scroll_stop_score, conversion_probability,
			emotional_triggers, summary, strengths, weaknesses, rewrite_suggestions,
			fully_optimized_copy, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
		RETURNING ` + analysisColumns + `
	`

	queryList = `
		SELECT ` + analysisColumns + `
		FROM creative_analyses
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	queryGet = `
		SELECT ` + analysisColumns + `
		FROM creative_analyses
		WHERE id = $1 AND user_id = $2
	`

	queryCountCreatedSince = `
		SELECT COUNT(*)
		FROM creative_analyses
		WHERE user_id = $1 AND created_at >= $2
	`
)
