package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeFieldConfiguration(t *testing.T) {
	t.Run("TextConfig", func(t *testing.T) {
		cfg, err := DecodeFieldConfiguration(InputTypeText, map[string]any{
			"isParagraph": true,
			"placeholder": "Your answer",
			"maxLength":   float64(200), // numbers arrive as float64 from JSON
		})
		require.NoError(t, err)

		text, ok := cfg.(TextInputConfig)
		require.True(t, ok)
		assert.True(t, text.IsParagraph)
		assert.Equal(t, "Your answer", text.Placeholder)
		assert.Equal(t, 200, text.MaxLength)
	})

	t.Run("MultipleChoiceConfig", func(t *testing.T) {
		cfg, err := DecodeFieldConfiguration(InputTypeMultipleChoice, map[string]any{
			"allowMultiple": true,
			"options": []any{
				map[string]any{"value": "Red"},
				map[string]any{"value": "Other", "isOther": true},
			},
		})
		require.NoError(t, err)

		mc, ok := cfg.(MultipleChoiceInputConfig)
		require.True(t, ok)
		assert.True(t, mc.AllowMultiple)
		require.Len(t, mc.Options, 2)
		assert.Equal(t, "Red", mc.Options[0].Value)
		assert.False(t, mc.Options[0].IsOther)
		assert.True(t, mc.Options[1].IsOther)
	})

	t.Run("RatingConfigDefaultsMaxRating", func(t *testing.T) {
		cfg, err := DecodeFieldConfiguration(InputTypeRating, map[string]any{})
		require.NoError(t, err)

		rating, ok := cfg.(RatingInputConfig)
		require.True(t, ok)
		assert.Equal(t, 5, rating.MaxRating)
	})

	t.Run("UnknownInputType", func(t *testing.T) {
		_, err := DecodeFieldConfiguration("slider", map[string]any{})
		assert.ErrorIs(t, err, ErrUnknownInputType)
	})

	t.Run("InvalidDateString", func(t *testing.T) {
		_, err := DecodeFieldConfiguration(InputTypeDatePicker, map[string]any{
			"minDate": "not-a-date",
		})
		assert.Error(t, err)
	})
}

func TestDatePickerConfigRoundTrip(t *testing.T) {
	minDate := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	maxDate := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)

	raw := EncodeFieldConfiguration(DatePickerInputConfig{
		MinDate: &minDate,
		MaxDate: &maxDate,
	})

	// dates persist as ISO-8601 strings
	assert.Equal(t, "2025-01-01T00:00:00Z", raw["minDate"])
	assert.Equal(t, "2025-12-31T00:00:00Z", raw["maxDate"])

	cfg, err := DecodeFieldConfiguration(InputTypeDatePicker, raw)
	require.NoError(t, err)

	decoded, ok := cfg.(DatePickerInputConfig)
	require.True(t, ok)
	require.NotNil(t, decoded.MinDate)
	require.NotNil(t, decoded.MaxDate)
	assert.True(t, decoded.MinDate.Equal(minDate))
	assert.True(t, decoded.MaxDate.Equal(maxDate))
}

func TestEncodeFieldConfiguration(t *testing.T) {
	t.Run("TextOmitsEmptyOptionals", func(t *testing.T) {
		raw := EncodeFieldConfiguration(TextInputConfig{IsParagraph: false})
		assert.Equal(t, map[string]any{"isParagraph": false}, raw)
	})

	t.Run("MultipleChoiceKeepsOptionOrder", func(t *testing.T) {
		raw := EncodeFieldConfiguration(MultipleChoiceInputConfig{
			Options: []ChoiceOption{{Value: "A"}, {Value: "B"}},
		})
		options, ok := raw["options"].([]any)
		assert.True(t, ok)
		assert.Len(t, options, 2)
	})
}
