package seeder

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/growupanand/convoform/src/database"
	"github.com/growupanand/convoform/src/models"
	"github.com/growupanand/convoform/src/services/forms"
	"github.com/growupanand/convoform/src/services/organizations"
	"github.com/growupanand/convoform/src/services/workspaces"
)

const demoOrganizationName = "ConvoForm Demo"

// SeedDemoForm creates the public demo organization, workspace and form once.
// Conversations against the demo form never count toward any plan quota.
func SeedDemoForm() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := database.FormCollection.CountDocuments(ctx, bson.M{"isDemo": true})
	if err != nil {
		return err
	}
	if count > 0 {
		log.Println("✅ Demo form already seeded")
		return nil
	}

	org, err := organizations.CreateOrganization(ctx, &models.CreateOrganizationRequest{
		Name: demoOrganizationName,
	})
	if err != nil {
		return err
	}

	workspace, err := workspaces.CreateWorkspace(ctx, org.ID, &models.CreateWorkspaceRequest{
		Name: "Demo workspace",
	})
	if err != nil {
		return err
	}

	demoForm := &models.CreateFormRequest{
		WorkspaceID: workspace.ID.Hex(),
		Name:        "Product feedback",
		Overview:    "Collect feedback about how visitors use the product and how satisfied they are.",
		WelcomeScreen: models.WelcomeScreen{
			Title:           "We'd love your feedback",
			Message:         "A few quick questions, answered as a conversation.",
			ButtonLabelText: "Start",
		},
		Fields: []models.CreateFormFieldRequest{
			{
				FieldName:        "Name",
				FieldDescription: "The respondent's name",
				InputType:        models.InputTypeText,
				FieldConfiguration: map[string]any{
					"isParagraph": false,
					"placeholder": "Jane Doe",
				},
			},
			{
				FieldName:        "How did you find us?",
				FieldDescription: "Acquisition channel",
				InputType:        models.InputTypeMultipleChoice,
				FieldConfiguration: map[string]any{
					"options": []any{
						map[string]any{"value": "Search engine"},
						map[string]any{"value": "Social media"},
						map[string]any{"value": "A friend"},
						map[string]any{"value": "Other", "isOther": true},
					},
				},
			},
			{
				FieldName:        "Satisfaction",
				FieldDescription: "Overall satisfaction with the product",
				InputType:        models.InputTypeRating,
				FieldConfiguration: map[string]any{
					"maxRating": 5,
					"iconType":  "star",
				},
			},
			{
				FieldName:        "Anything else?",
				FieldDescription: "Free-form comments",
				InputType:        models.InputTypeText,
				FieldConfiguration: map[string]any{
					"isParagraph": true,
				},
			},
		},
	}

	created, err := forms.CreateForm(ctx, org.ID, workspace.ID, demoForm)
	if err != nil {
		return err
	}

	_, err = database.FormCollection.UpdateOne(ctx,
		bson.M{"_id": created.Form.ID},
		bson.M{"$set": bson.M{"isDemo": true, "isPublished": true}},
	)
	if err != nil {
		return err
	}

	log.Println("✅ Demo form seeded:", created.Form.ID.Hex())
	return nil
}
