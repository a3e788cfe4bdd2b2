package analyzer

import (
	"encoding/json"
	"fmt"
	"strings"

	"codeberg.org/adpulse/server/adpulse/analyses"
)

// score fields fall back to the midpoint when the engine omits them
const defaultScore = 50

const defaultSummary = "Analysis completed."

// parses raw engine text as JSON and fills in defaults for every missing or
// wrong-typed field, producing a fully populated output. empty or unparseable
// text fails; once valid JSON is in hand no sub-field can fail.
//
// numeric scores are passed through unclamped: an out-of-range value from the
// engine is stored as-is.
func Normalize(raw, fallbackPrimaryText string) (*analyses.Output, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, ErrUnparseableResponse
	}

	var decoded any
	if err := json.Unmarshal([]byte(trimmed), &decoded); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparseableResponse, err)
	}

	// valid JSON that is not an object yields an all-defaults output,
	// same as an empty object
	fields, _ := decoded.(map[string]any)

	out := &analyses.Output{
		HookScore:             intField(fields, "hookScore", defaultScore),
		OfferScore:            intField(fields, "offerScore", defaultScore),
		CTAScore:              intField(fields, "ctaScore", defaultScore),
		ScrollStopScore:       intField(fields, "scrollStopScore", defaultScore),
		ConversionProbability: intField(fields, "conversionProbability", defaultScore),
		EmotionalTriggers:     triggersField(fields["emotionalTriggers"]),
		Summary:               stringField(fields, "summary", defaultSummary),
		Strengths:             stringListField(fields, "strengths"),
		Weaknesses:            stringListField(fields, "weaknesses"),
		RewriteSuggestions:    suggestionsField(fields["rewriteSuggestions"]),
		FullyOptimizedCopy:    stringField(fields, "fullyOptimizedCopy", fallbackPrimaryText),
	}

	return out, nil
}

// returns the field as an int, or the default when absent or not a number.
// JSON numbers decode as float64; fractional values truncate.
func intField(fields map[string]any, key string, fallback int) int {
	value, ok := fields[key].(float64)
	if !ok {
		return fallback
	}

	return int(value)
}

// returns the field as a string, or the default when absent, empty, or not
// a string. empty counts as absent so non-empty text invariants hold.
func stringField(fields map[string]any, key, fallback string) string {
	value, ok := fields[key].(string)
	if !ok || value == "" {
		return fallback
	}

	return value
}

// returns the field as a string slice, dropping non-string elements.
// always non-nil so the JSON rendering is [] rather than null.
func stringListField(fields map[string]any, key string) analyses.StringList {
	return stringList(fields[key])
}

func stringList(value any) analyses.StringList {
	items, ok := value.([]any)
	if !ok {
		return analyses.StringList{}
	}

	result := make(analyses.StringList, 0, len(items))

	for _, item := range items {
		if s, ok := item.(string); ok {
			result = append(result, s)
		}
	}

	return result
}

// builds the seven-key trigger map; a missing or malformed object
// defaults to all-zero
func triggersField(value any) analyses.EmotionalTriggers {
	fields, ok := value.(map[string]any)
	if !ok {
		return analyses.EmotionalTriggers{}
	}

	return analyses.EmotionalTriggers{
		Fear:      intField(fields, "fear", 0),
		Greed:     intField(fields, "greed", 0),
		Status:    intField(fields, "status", 0),
		Belonging: intField(fields, "belonging", 0),
		Security:  intField(fields, "security", 0),
		Urgency:   intField(fields, "urgency", 0),
		FOMO:      intField(fields, "fomo", 0),
	}
}

// builds rewrite suggestions with each sub-field defaulting to empty.
// variation styles are advisory free text, stored as received.
func suggestionsField(value any) analyses.RewriteSuggestions {
	suggestions := analyses.RewriteSuggestions{
		Hooks:      []string{},
		CTAs:       []string{},
		Variations: []analyses.Variation{},
	}

	fields, ok := value.(map[string]any)
	if !ok {
		return suggestions
	}

	suggestions.Hooks = stringList(fields["hooks"])
	suggestions.CTAs = stringList(fields["ctas"])

	items, ok := fields["variations"].([]any)
	if !ok {
		return suggestions
	}

	for _, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}

		suggestions.Variations = append(suggestions.Variations, analyses.Variation{
			Style: stringField(entry, "style", ""),
			Copy:  stringField(entry, "copy", ""),
		})
	}

	return suggestions
}
