package analyses

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmotionalTriggers_ValueScanRoundTrip(t *testing.T) {
	original := EmotionalTriggers{
		Fear: 10, Greed: 20, Status: 30, Belonging: 40,
		Security: 50, Urgency: 60, FOMO: 70,
	}

	value, err := original.Value()
	require.NoError(t, err)

	var restored EmotionalTriggers
	require.NoError(t, restored.Scan([]byte(value.(string))))

	assert.Equal(t, original, restored)
}

func TestEmotionalTriggers_ScanNil(t *testing.T) {
	triggers := EmotionalTriggers{Fear: 99}

	require.NoError(t, triggers.Scan(nil))

	assert.Equal(t, EmotionalTriggers{}, triggers)
}

func TestEmotionalTriggers_ValueContainsAllSevenKeys(t *testing.T) {
	value, err := EmotionalTriggers{}.Value()
	require.NoError(t, err)

	var keys map[string]int
	require.NoError(t, json.Unmarshal([]byte(value.(string)), &keys))

	for _, key := range []string{"fear", "greed", "status", "belonging", "security", "urgency", "fomo"} {
		assert.Contains(t, keys, key)
	}
}

func TestStringList_EmptySerializesAsArray(t *testing.T) {
	// an empty list must land in JSONB as [], never null
	for _, list := range []StringList{nil, {}} {
		value, err := list.Value()
		require.NoError(t, err)
		assert.Equal(t, "[]", value)
	}
}

func TestStringList_ValueScanRoundTrip(t *testing.T) {
	original := StringList{"strong hook", "clear offer"}

	value, err := original.Value()
	require.NoError(t, err)

	var restored StringList
	require.NoError(t, restored.Scan([]byte(value.(string))))

	assert.Equal(t, original, restored)
}

func TestRewriteSuggestions_ValueScanRoundTrip(t *testing.T) {
	original := RewriteSuggestions{
		Hooks: []string{"Stop scrolling."},
		CTAs:  []string{"Try it free"},
		Variations: []Variation{
			{Style: "Bold & Direct", Copy: "Buy it now."},
			{Style: "Story-driven", Copy: "It started with one ad."},
		},
	}

	value, err := original.Value()
	require.NoError(t, err)

	var restored RewriteSuggestions
	require.NoError(t, restored.Scan([]byte(value.(string))))

	assert.Equal(t, original, restored)
}

func TestRewriteSuggestions_ScanNilYieldsEmptyCollections(t *testing.T) {
	var suggestions RewriteSuggestions

	require.NoError(t, suggestions.Scan(nil))

	assert.NotNil(t, suggestions.Hooks)
	assert.NotNil(t, suggestions.CTAs)
	assert.NotNil(t, suggestions.Variations)
	assert.Empty(t, suggestions.Hooks)
}

func TestAnalysis_JSONFieldNames(t *testing.T) {
	record := Analysis{ID: "a", UserID: "u", FullyOptimizedCopy: "copy"}

	data, err := json.Marshal(record)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))

	// clients consume camelCase keys
	assert.Contains(t, fields, "userId")
	assert.Contains(t, fields, "hookScore")
	assert.Contains(t, fields, "conversionProbability")
	assert.Contains(t, fields, "emotionalTriggers")
	assert.Contains(t, fields, "rewriteSuggestions")
	assert.Contains(t, fields, "fullyOptimizedCopy")
	assert.Contains(t, fields, "createdAt")
	assert.NotContains(t, fields, "user_id")
}
