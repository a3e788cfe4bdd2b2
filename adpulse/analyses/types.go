package analyses

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	db *pgxpool.Pool
}

// an ad creative submitted for scoring. every field is free text and
// optional; platform falls back to "Unknown" when empty.
type Request struct {
	Platform          string `json:"platform" binding:"max=100"`
	Headline          string `json:"headline" binding:"max=2000"`
	PrimaryText       string `json:"primaryText" binding:"max=20000"`
	CTA               string `json:"cta" binding:"max=500"`
	CreativeContent   string `json:"creativeContent" binding:"max=20000"`
	Demographics      string `json:"demographics" binding:"max=2000"`
	AudienceInterests string `json:"audienceInterests" binding:"max=2000"`
	PainPoints        string `json:"painPoints" binding:"max=2000"`
	CampaignGoal      string `json:"campaignGoal" binding:"max=2000"`
}

// intensity of each of the seven emotional levers, 0-100.
// all seven keys are always present once normalized.
type EmotionalTriggers struct {
	Fear      int `json:"fear"`
	Greed     int `json:"greed"`
	Status    int `json:"status"`
	Belonging int `json:"belonging"`
	Security  int `json:"security"`
	Urgency   int `json:"urgency"`
	FOMO      int `json:"fomo"`
}

func (t EmotionalTriggers) Value() (driver.Value, error) {
	bytes, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}

	return string(bytes), nil
}

func (t *EmotionalTriggers) Scan(value interface{}) error {
	if value == nil {
		*t = EmotionalTriggers{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}

	return json.Unmarshal(bytes, t)
}

// ordered sequence of text stored as a JSONB array
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}

	bytes, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}

	return string(bytes), nil
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}

	return json.Unmarshal(bytes, l)
}

// one alternative rendering of the primary text in a named style
type Variation struct {
	Style string `json:"style"`
	Copy  string `json:"copy"`
}

// rewrite material the engine proposes alongside the scores
type RewriteSuggestions struct {
	Hooks      []string    `json:"hooks"`
	CTAs       []string    `json:"ctas"`
	Variations []Variation `json:"variations"`
}

func (s RewriteSuggestions) Value() (driver.Value, error) {
	bytes, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}

	return string(bytes), nil
}

func (s *RewriteSuggestions) Scan(value interface{}) error {
	if value == nil {
		*s = RewriteSuggestions{Hooks: []string{}, CTAs: []string{}, Variations: []Variation{}}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}

	return json.Unmarshal(bytes, s)
}

// fully populated scoring output after normalization
type Output struct {
	HookScore             int                `json:"hookScore"`
	OfferScore            int                `json:"offerScore"`
	CTAScore              int                `json:"ctaScore"`
	ScrollStopScore       int                `json:"scrollStopScore"`
	ConversionProbability int                `json:"conversionProbability"`
	EmotionalTriggers     EmotionalTriggers  `json:"emotionalTriggers"`
	Summary               string             `json:"summary"`
	Strengths             StringList         `json:"strengths"`
	Weaknesses            StringList         `json:"weaknesses"`
	RewriteSuggestions    RewriteSuggestions `json:"rewriteSuggestions"`
	FullyOptimizedCopy    string             `json:"fullyOptimizedCopy"`
}

// a persisted scored evaluation of one submitted creative.
// immutable once created; there is no update path.
type Analysis struct {
	ID                    string             `json:"id"`
	UserID                string             `json:"userId"`
	Platform              string             `json:"platform"`
	Headline              string             `json:"headline,omitempty"`
	PrimaryText           string             `json:"primaryText,omitempty"`
	CTA                   string             `json:"cta,omitempty"`
	CreativeContent       string             `json:"creativeContent,omitempty"`
	Demographics          string             `json:"demographics,omitempty"`
	AudienceInterests     string             `json:"audienceInterests,omitempty"`
	PainPoints            string             `json:"painPoints,omitempty"`
	CampaignGoal          string             `json:"campaignGoal,omitempty"`
	HookScore             int                `json:"hookScore"`
	OfferScore            int                `json:"offerScore"`
	CTAScore              int                `json:"ctaScore"`
	ScrollStopScore       int                `json:"scrollStopScore"`
	ConversionProbability int                `json:"conversionProbability"`
	EmotionalTriggers     EmotionalTriggers  `json:"emotionalTriggers"`
	Summary               string             `json:"summary"`
	Strengths             StringList         `json:"strengths"`
	Weaknesses            StringList         `json:"weaknesses"`
	RewriteSuggestions    RewriteSuggestions `json:"rewriteSuggestions"`
	FullyOptimizedCopy    string             `json:"fullyOptimizedCopy"`
	CreatedAt             time.Time          `json:"createdAt"`
}
