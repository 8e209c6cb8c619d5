package models

import (
	"errors"
	"fmt"
	"time"
)

// FieldConfiguration is the typed union of per-input-type configuration shapes.
type FieldConfiguration interface {
	InputType() string
}

type TextInputConfig struct {
	IsParagraph bool   `json:"isParagraph"`
	Placeholder string `json:"placeholder,omitempty"`
	MaxLength   int    `json:"maxLength,omitempty"`
}

func (TextInputConfig) InputType() string { return InputTypeText }

type ChoiceOption struct {
	Value   string `json:"value"`
	IsOther bool   `json:"isOther,omitempty"`
}

type MultipleChoiceInputConfig struct {
	Options       []ChoiceOption `json:"options"`
	AllowMultiple bool           `json:"allowMultiple"`
}

func (MultipleChoiceInputConfig) InputType() string { return InputTypeMultipleChoice }

type DatePickerInputConfig struct {
	MinDate *time.Time `json:"minDate,omitempty"`
	MaxDate *time.Time `json:"maxDate,omitempty"`
}

func (DatePickerInputConfig) InputType() string { return InputTypeDatePicker }

type RatingInputConfig struct {
	MaxRating int    `json:"maxRating"`
	IconType  string `json:"iconType,omitempty"`
}

func (RatingInputConfig) InputType() string { return InputTypeRating }

var ErrUnknownInputType = errors.New("unknown input type")

// DecodeFieldConfiguration decodes a stored configuration blob into the typed
// variant selected by inputType. Date values are persisted as ISO-8601 strings
// and rehydrated here, so a round trip through the storage layer yields
// time.Time values again rather than strings.
func DecodeFieldConfiguration(inputType string, raw map[string]any) (FieldConfiguration, error) {
	switch inputType {
	case InputTypeText:
		return TextInputConfig{
			IsParagraph: rawBool(raw, "isParagraph"),
			Placeholder: rawString(raw, "placeholder"),
			MaxLength:   rawInt(raw, "maxLength"),
		}, nil

	case InputTypeMultipleChoice:
		cfg := MultipleChoiceInputConfig{
			AllowMultiple: rawBool(raw, "allowMultiple"),
		}
		options, _ := raw["options"].([]any)
		for _, o := range options {
			opt, ok := o.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("multipleChoice config: invalid option %v", o)
			}
			cfg.Options = append(cfg.Options, ChoiceOption{
				Value:   rawString(opt, "value"),
				IsOther: rawBool(opt, "isOther"),
			})
		}
		return cfg, nil

	case InputTypeDatePicker:
		minDate, err := rawDate(raw, "minDate")
		if err != nil {
			return nil, err
		}
		maxDate, err := rawDate(raw, "maxDate")
		if err != nil {
			return nil, err
		}
		return DatePickerInputConfig{MinDate: minDate, MaxDate: maxDate}, nil

	case InputTypeRating:
		maxRating := rawInt(raw, "maxRating")
		if maxRating == 0 {
			maxRating = 5
		}
		return RatingInputConfig{
			MaxRating: maxRating,
			IconType:  rawString(raw, "iconType"),
		}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownInputType, inputType)
}

// EncodeFieldConfiguration is the write-side counterpart of
// DecodeFieldConfiguration: dates become ISO-8601 strings.
func EncodeFieldConfiguration(cfg FieldConfiguration) map[string]any {
	switch c := cfg.(type) {
	case TextInputConfig:
		raw := map[string]any{"isParagraph": c.IsParagraph}
		if c.Placeholder != "" {
			raw["placeholder"] = c.Placeholder
		}
		if c.MaxLength > 0 {
			raw["maxLength"] = c.MaxLength
		}
		return raw

	case MultipleChoiceInputConfig:
		options := make([]any, 0, len(c.Options))
		for _, opt := range c.Options {
			options = append(options, map[string]any{
				"value":   opt.Value,
				"isOther": opt.IsOther,
			})
		}
		return map[string]any{
			"options":       options,
			"allowMultiple": c.AllowMultiple,
		}

	case DatePickerInputConfig:
		raw := map[string]any{}
		if c.MinDate != nil {
			raw["minDate"] = c.MinDate.UTC().Format(time.RFC3339)
		}
		if c.MaxDate != nil {
			raw["maxDate"] = c.MaxDate.UTC().Format(time.RFC3339)
		}
		return raw

	case RatingInputConfig:
		raw := map[string]any{"maxRating": c.MaxRating}
		if c.IconType != "" {
			raw["iconType"] = c.IconType
		}
		return raw
	}

	return map[string]any{}
}

func rawString(raw map[string]any, key string) string {
	s, _ := raw[key].(string)
	return s
}

func rawBool(raw map[string]any, key string) bool {
	b, _ := raw[key].(bool)
	return b
}

func rawInt(raw map[string]any, key string) int {
	switch v := raw[key].(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

// rawDate accepts the ISO-8601 string form used by the storage layer, plus
// time.Time for values that never left the process.
func rawDate(raw map[string]any, key string) (*time.Time, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		return nil, nil
	}
	switch d := v.(type) {
	case string:
		t, err := time.Parse(time.RFC3339, d)
		if err != nil {
			return nil, fmt.Errorf("datePicker config: %s is not an ISO-8601 date: %v", key, err)
		}
		return &t, nil
	case time.Time:
		return &d, nil
	}
	return nil, fmt.Errorf("datePicker config: unexpected %s value %v", key, v)
}
