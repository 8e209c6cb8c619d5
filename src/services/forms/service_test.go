package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/growupanand/convoform/src/models"
	"github.com/growupanand/convoform/src/utils"
)

func TestScopedFormFilter(t *testing.T) {
	formID := primitive.NewObjectID()
	orgID := primitive.NewObjectID()

	filter := scopedFormFilter(formID, orgID)

	// both keys must be present: a form id alone must never match a
	// document owned by another organization
	assert.Equal(t, formID, filter["_id"])
	assert.Equal(t, orgID, filter["organizationId"])
	assert.Len(t, filter, 2)
}

func TestValidateFieldRequests(t *testing.T) {
	t.Run("AcceptsValidConfigurations", func(t *testing.T) {
		err := validateFieldRequests([]models.CreateFormFieldRequest{
			{
				FieldName:          "Name",
				InputType:          models.InputTypeText,
				FieldConfiguration: map[string]any{"isParagraph": false},
			},
			{
				FieldName: "Team size",
				InputType: models.InputTypeMultipleChoice,
				FieldConfiguration: map[string]any{
					"options": []any{map[string]any{"value": "1-10"}},
				},
			},
		})
		assert.NoError(t, err)
	})

	t.Run("RejectsUnknownInputType", func(t *testing.T) {
		err := validateFieldRequests([]models.CreateFormFieldRequest{
			{FieldName: "Mystery", InputType: "hologram"},
		})

		var appErr *utils.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.StatusCode)
		assert.Contains(t, appErr.Message, "Mystery")
	})

	t.Run("RejectsBadDateConfiguration", func(t *testing.T) {
		err := validateFieldRequests([]models.CreateFormFieldRequest{
			{
				FieldName:          "Start date",
				InputType:          models.InputTypeDatePicker,
				FieldConfiguration: map[string]any{"minDate": "next tuesday"},
			},
		})

		var appErr *utils.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.StatusCode)
	})
}
