package sheets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/growupanand/convoform/src/models"
)

func TestBuildRows(t *testing.T) {
	nameField := models.FormField{ID: primitive.NewObjectID(), FieldName: "Name"}
	teamField := models.FormField{ID: primitive.NewObjectID(), FieldName: "Team size"}
	fields := []models.FormField{nameField, teamField}

	t.Run("HeadersComeFromFieldDefinitions", func(t *testing.T) {
		rows := buildRows(fields, nil)

		require.Len(t, rows, 1)
		assert.Equal(t, []any{"Conversation", "Finished at", "Name", "Team size"}, rows[0])
	})

	t.Run("UnansweredFieldKeepsNamedColumn", func(t *testing.T) {
		finished := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
		conversation := models.Conversation{
			ID:         primitive.NewObjectID(),
			FinishedAt: &finished,
			FieldResponses: []models.FieldResponse{
				{FieldID: nameField.ID, FieldName: "Name", FieldValue: "Ada"},
			},
		}

		rows := buildRows(fields, []models.Conversation{conversation})

		require.Len(t, rows, 2)
		assert.Equal(t, "Team size", rows[0][3])
		assert.Equal(t, "Ada", rows[1][2])
		assert.Equal(t, "", rows[1][3])
	})

	t.Run("ResponsesLandInTheirFieldColumn", func(t *testing.T) {
		conversation := models.Conversation{
			ID: primitive.NewObjectID(),
			FieldResponses: []models.FieldResponse{
				{FieldID: teamField.ID, FieldName: "Team size", FieldValue: "1-10"},
				{FieldID: nameField.ID, FieldName: "Name", FieldValue: "Grace"},
			},
		}

		rows := buildRows(fields, []models.Conversation{conversation})

		require.Len(t, rows, 2)
		assert.Equal(t, "Grace", rows[1][2])
		assert.Equal(t, "1-10", rows[1][3])
		assert.Equal(t, "", rows[1][1], "unfinished conversation has no timestamp")
	})

	t.Run("ResponseForDeletedFieldIsDropped", func(t *testing.T) {
		conversation := models.Conversation{
			ID: primitive.NewObjectID(),
			FieldResponses: []models.FieldResponse{
				{FieldID: primitive.NewObjectID(), FieldName: "Old field", FieldValue: "stale"},
			},
		}

		rows := buildRows(fields, []models.Conversation{conversation})

		require.Len(t, rows, 2)
		assert.NotContains(t, rows[1], "stale")
	})
}
