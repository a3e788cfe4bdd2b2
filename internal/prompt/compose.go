package prompt

import (
	"strings"

	"codeberg.org/adpulse/server/adpulse/analyses"
)

// fills the fixed analysis template with creative fields from the request.
// empty fields substitute "N/A", except platform which substitutes "Unknown".
// pure string work; never fails on any input shape.
func Compose(template string, req analyses.Request) string {
	replacer := strings.NewReplacer(
		"{{platform}}", orFallback(req.Platform, "Unknown"),
		"{{headline}}", orFallback(req.Headline, "N/A"),
		"{{primaryText}}", orFallback(req.PrimaryText, "N/A"),
		"{{cta}}", orFallback(req.CTA, "N/A"),
		"{{creativeContent}}", orFallback(req.CreativeContent, "N/A"),
		"{{demographics}}", orFallback(req.Demographics, "N/A"),
		"{{audienceInterests}}", orFallback(req.AudienceInterests, "N/A"),
		"{{painPoints}}", orFallback(req.PainPoints, "N/A"),
		"{{campaignGoal}}", orFallback(req.CampaignGoal, "N/A"),
	)

	return replacer.Replace(template)
}

func orFallback(value, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}
