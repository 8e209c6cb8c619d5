package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/growupanand/convoform/src/models"
)

// ErrInvalidFormOverview is returned when the model output for a generation
// request does not validate. Generation is all-or-nothing: no retry, no
// partial acceptance.
var ErrInvalidFormOverview = errors.New("Invalid form overview")

// GeneratedForm is the validated result of a form-generation completion.
type GeneratedForm struct {
	Name          string               `json:"name"`
	WelcomeScreen models.WelcomeScreen `json:"welcomeScreen"`
	Fields        []GeneratedFormField `json:"fields"`
}

type GeneratedFormField struct {
	FieldName          string         `json:"fieldName"`
	FieldDescription   string         `json:"fieldDescription"`
	InputType          string         `json:"inputType"`
	FieldConfiguration map[string]any `json:"fieldConfiguration"`
}

// GenerateForm turns a free-text overview into a structured form definition
// with a single completion request.
func (c *Client) GenerateForm(ctx context.Context, overview string) (*GeneratedForm, error) {
	messages := []ChatMessage{
		{Role: "system", Content: buildGenerationSystemPrompt()},
		{Role: models.RoleUser, Content: overview},
	}

	content, err := c.CompleteJSON(ctx, messages)
	if err != nil {
		return nil, err
	}

	var generated GeneratedForm
	if err := json.Unmarshal([]byte(content), &generated); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormOverview, err)
	}

	if err := validateGeneratedForm(&generated); err != nil {
		return nil, err
	}

	return &generated, nil
}

func validateGeneratedForm(generated *GeneratedForm) error {
	if generated.Name == "" {
		return fmt.Errorf("%w: missing form name", ErrInvalidFormOverview)
	}
	if len(generated.Fields) == 0 {
		return fmt.Errorf("%w: no fields generated", ErrInvalidFormOverview)
	}

	for _, field := range generated.Fields {
		if field.FieldName == "" {
			return fmt.Errorf("%w: field with empty name", ErrInvalidFormOverview)
		}
		if _, err := models.DecodeFieldConfiguration(field.InputType, field.FieldConfiguration); err != nil {
			return fmt.Errorf("%w: field %q: %v", ErrInvalidFormOverview, field.FieldName, err)
		}
	}

	return nil
}
