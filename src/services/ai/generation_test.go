package ai

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/growupanand/convoform/src/models"
)

func TestGenerateForm(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	t.Run("ValidOutputIsAccepted", func(t *testing.T) {
		_, client := newFakeCompletionServer(t, `{
			"name": "Job application",
			"welcomeScreen": {"title": "Apply now", "message": "Tell us about yourself", "buttonLabelText": "Start"},
			"fields": [
				{"fieldName": "Full name", "fieldDescription": "Applicant name", "inputType": "text", "fieldConfiguration": {"isParagraph": false}},
				{"fieldName": "Experience", "fieldDescription": "Years of experience", "inputType": "rating", "fieldConfiguration": {"maxRating": 10}}
			]
		}`)

		generated, err := client.GenerateForm(ctx, "A job application form for a software role")
		require.NoError(t, err)

		assert.Equal(t, "Job application", generated.Name)
		assert.Equal(t, "Apply now", generated.WelcomeScreen.Title)
		require.Len(t, generated.Fields, 2)
		assert.Equal(t, models.InputTypeText, generated.Fields[0].InputType)
		assert.Equal(t, models.InputTypeRating, generated.Fields[1].InputType)
	})

	t.Run("MalformedJSONIsInvalidOverview", func(t *testing.T) {
		_, client := newFakeCompletionServer(t, `not json at all`)

		_, err := client.GenerateForm(ctx, "gibberish")
		assert.ErrorIs(t, err, ErrInvalidFormOverview)
	})

	t.Run("MissingNameIsInvalidOverview", func(t *testing.T) {
		_, client := newFakeCompletionServer(t, `{"name": "", "fields": [{"fieldName": "x", "inputType": "text"}]}`)

		_, err := client.GenerateForm(ctx, "something")
		assert.ErrorIs(t, err, ErrInvalidFormOverview)
	})

	t.Run("NoFieldsIsInvalidOverview", func(t *testing.T) {
		_, client := newFakeCompletionServer(t, `{"name": "Empty", "fields": []}`)

		_, err := client.GenerateForm(ctx, "something")
		assert.ErrorIs(t, err, ErrInvalidFormOverview)
	})

	t.Run("UnknownInputTypeIsInvalidOverview", func(t *testing.T) {
		_, client := newFakeCompletionServer(t, `{
			"name": "Broken",
			"fields": [{"fieldName": "x", "inputType": "slider", "fieldConfiguration": {}}]
		}`)

		_, err := client.GenerateForm(ctx, "something")
		assert.ErrorIs(t, err, ErrInvalidFormOverview)
	})
}
