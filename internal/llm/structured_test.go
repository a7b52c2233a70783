package llm

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testSuggestion struct {
	TripBlurb string   `json:"trip_blurb"`
	ExtraToDo []string `json:"extra_to_dos"`
	Score     float64  `json:"score"`
}

func TestExtractJSON_CleanJSON(t *testing.T) {
	raw := `{"trip_blurb":"A breezy beach weekend","score":0.95}`
	result, err := ExtractJSON[testSuggestion](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "A breezy beach weekend", result.TripBlurb)
	assert.Equal(t, 0.95, result.Score)
}

func TestExtractJSON_FencedJSON(t *testing.T) {
	raw := "```json\n{\"trip_blurb\":\"City break\",\"score\":0.88}\n```"
	result, err := ExtractJSON[testSuggestion](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "City break", result.TripBlurb)
}

func TestExtractJSON_SurroundingText(t *testing.T) {
	raw := "Here are your suggestions:\n{\"trip_blurb\":\"Road trip\",\"score\":0.72}\nEnjoy!"
	result, err := ExtractJSON[testSuggestion](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Road trip", result.TripBlurb)
}

func TestExtractJSON_NestedBracesAndArrays(t *testing.T) {
	type nested struct {
		Overpack map[string][]string `json:"overpack_additions"`
	}
	raw := `{"overpack_additions":{"skip":["Third pair of \"nice\" shoes"],"lastMinute":["Chargers"]}}`
	result, err := ExtractJSON[nested](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Chargers"}, result.Overpack["lastMinute"])
}

func TestExtractJSON_CommentsStripped(t *testing.T) {
	raw := "{\n\"trip_blurb\": \"Snow weekend\", // short and punchy\n\"score\": 0.9\n}"
	result, err := ExtractJSON[testSuggestion](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Snow weekend", result.TripBlurb)
}

func TestExtractJSON_LeadingDecimalRepaired(t *testing.T) {
	raw := `{"trip_blurb":"x","score":.8}`
	result, err := ExtractJSON[testSuggestion](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.8, result.Score)
}

func TestExtractJSON_NoJSON(t *testing.T) {
	raw := "I could not produce suggestions for that trip."
	_, err := ExtractJSON[testSuggestion](raw, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_InvalidJSON(t *testing.T) {
	raw := `{"trip_blurb":"x", broken}`
	_, err := ExtractJSON[testSuggestion](raw, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_ValidationFailure(t *testing.T) {
	raw := `{"trip_blurb":"x","score":1.5}`
	validate := func(s testSuggestion) error {
		if s.Score < 0 || s.Score > 1 {
			return fmt.Errorf("score must be in [0,1], got %f", s.Score)
		}
		return nil
	}
	_, err := ExtractJSON(raw, validate)
	assert.ErrorIs(t, err, ErrInvalidOutput)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestExtractJSON_ValidationSuccess(t *testing.T) {
	raw := `{"trip_blurb":"ok","score":0.9}`
	validate := func(s testSuggestion) error {
		if s.TripBlurb == "" {
			return fmt.Errorf("blurb required")
		}
		return nil
	}
	result, err := ExtractJSON(raw, validate)
	require.NoError(t, err)
	assert.Equal(t, "ok", result.TripBlurb)
}
