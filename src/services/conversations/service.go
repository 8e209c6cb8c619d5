package conversations

import (
	"context"
	"log"
	"time"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/growupanand/convoform/src/database"
	"github.com/growupanand/convoform/src/jobs"
	"github.com/growupanand/convoform/src/models"
	"github.com/growupanand/convoform/src/realtime"
	"github.com/growupanand/convoform/src/services/ai"
	"github.com/growupanand/convoform/src/services/forms"
	"github.com/growupanand/convoform/src/services/organizations"
	"github.com/growupanand/convoform/src/utils"
)

// Answer runs one respondent turn against a form: it creates the conversation
// on the first call (quota-guarded), asks the progression service for the next
// question, and persists the whole turn with a single update. A failed AI call
// leaves the transcript and responses untouched; a conversation created on the
// first call stays in progress and is reaped by the abandon sweeper if the
// respondent never gets going.
func Answer(ctx context.Context, client *ai.Client, formID primitive.ObjectID, req *models.AnswerConversationRequest) (*models.AnswerConversationResponse, error) {
	var form models.Form
	err := database.FormCollection.FindOne(ctx, bson.M{"_id": formID}).Decode(&form)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NotFound("form not found")
		}
		return nil, err
	}
	if !form.IsPublished && !form.IsDemo {
		return nil, utils.NotFound("form not found")
	}

	fields, err := forms.GetFormFields(ctx, formID)
	if err != nil {
		return nil, err
	}
	ordered := forms.OrderedFields(form.FormFieldsOrders, fields)
	if len(ordered) == 0 {
		return nil, utils.BadRequest("form has no fields")
	}

	var conversation *models.Conversation
	if req.ConversationID == "" {
		conversation, err = createConversation(ctx, &form)
		if err != nil {
			return nil, err
		}
	} else {
		conversation, err = loadActiveConversation(ctx, formID, req.ConversationID)
		if err != nil {
			return nil, err
		}
	}

	transcript := conversation.Transcript
	if req.Answer != "" {
		transcript = append(transcript, models.Message{Role: models.RoleUser, Content: req.Answer})
	}

	result, err := client.GetNextQuestion(ctx, form, ordered, conversation.FieldResponses, transcript)
	if err != nil {
		return nil, utils.Internal(err)
	}

	fieldResponses := conversation.FieldResponses
	if result.Extracted != nil {
		fieldResponses = append(fieldResponses, models.FieldResponse{
			FieldID:            result.Extracted.FieldID,
			FieldName:          result.Extracted.FieldName,
			FieldValue:         result.Extracted.FieldValue,
			FieldConfiguration: fieldConfigSnapshot(ordered, result.Extracted.FieldID),
		})
	}
	if !result.IsComplete {
		transcript = append(transcript, models.Message{Role: models.RoleAssistant, Content: result.NextQuestion})
	}

	now := time.Now()
	set := bson.M{
		"transcript":     transcript,
		"fieldResponses": fieldResponses,
		"isInProgress":   !result.IsComplete,
		"updatedAt":      now,
	}
	if result.IsComplete {
		set["finishedAt"] = now
	}

	_, err = database.ConversationCollection.UpdateOne(ctx, bson.M{"_id": conversation.ID}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}

	if result.IsComplete {
		realtime.PublishConversationEvent(models.ConversationEvent{
			Type:           models.EventConversationStopped,
			ConversationID: conversation.ID.Hex(),
			FormID:         form.ID.Hex(),
			OrganizationID: form.OrganizationID.Hex(),
			At:             now,
		})
		enqueue(jobs.NewNotifyCompletedTask(conversation.ID.Hex()))
	}

	response := &models.AnswerConversationResponse{
		ConversationID: conversation.ID.Hex(),
		IsComplete:     result.IsComplete,
	}
	if !result.IsComplete {
		response.NextQuestion = result.NextQuestion
		response.FieldID = result.FieldID.Hex()
	}
	return response, nil
}

func createConversation(ctx context.Context, form *models.Form) (*models.Conversation, error) {
	org, err := organizations.GetOrganizationByID(ctx, form.OrganizationID)
	if err != nil {
		return nil, err
	}
	if err := CheckSubmissionLimit(ctx, org, form); err != nil {
		return nil, err
	}

	now := time.Now()
	conversation := models.Conversation{
		FormID:         form.ID,
		OrganizationID: form.OrganizationID,
		Name:           "New conversation",
		Transcript:     []models.Message{},
		FieldResponses: []models.FieldResponse{},
		IsInProgress:   true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	result, err := database.ConversationCollection.InsertOne(ctx, conversation)
	if err != nil {
		return nil, err
	}
	conversation.ID = result.InsertedID.(primitive.ObjectID)

	realtime.PublishConversationEvent(models.ConversationEvent{
		Type:           models.EventConversationStarted,
		ConversationID: conversation.ID.Hex(),
		FormID:         form.ID.Hex(),
		OrganizationID: form.OrganizationID.Hex(),
		At:             now,
	})
	task, taskErr := jobs.NewAbandonConversationTask(conversation.ID.Hex())
	enqueueIn(task, taskErr, jobs.AbandonAfter)

	return &conversation, nil
}

func loadActiveConversation(ctx context.Context, formID primitive.ObjectID, conversationID string) (*models.Conversation, error) {
	id, err := primitive.ObjectIDFromHex(conversationID)
	if err != nil {
		return nil, utils.BadRequest("invalid conversation id")
	}

	var conversation models.Conversation
	err = database.ConversationCollection.FindOne(ctx, bson.M{"_id": id, "formId": formID}).Decode(&conversation)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NotFound("conversation not found")
		}
		return nil, err
	}
	if !conversation.IsInProgress {
		return nil, utils.BadRequest("conversation already finished")
	}
	return &conversation, nil
}

func fieldConfigSnapshot(fields []models.FormField, fieldID primitive.ObjectID) map[string]any {
	for _, field := range fields {
		if field.ID == fieldID {
			return field.FieldConfiguration
		}
	}
	return nil
}

func enqueue(task *asynq.Task, err error) {
	if err != nil || database.AsynqClient == nil {
		return
	}
	if _, err := database.AsynqClient.Enqueue(task); err != nil {
		log.Println("⚠️ Failed to enqueue task:", err)
	}
}

func enqueueIn(task *asynq.Task, err error, delay time.Duration) {
	if err != nil || database.AsynqClient == nil {
		return
	}
	if _, err := database.AsynqClient.Enqueue(task, asynq.ProcessIn(delay)); err != nil {
		log.Println("⚠️ Failed to enqueue task:", err)
	}
}

// scopedConversationFilter fences transcript reads to the caller's
// organization. Transcripts hold respondent PII, so no dashboard path may
// load one by id alone.
func scopedConversationFilter(conversationID, orgID primitive.ObjectID) bson.M {
	return bson.M{"_id": conversationID, "organizationId": orgID}
}

// GetConversations lists a form's conversations, newest first by default.
func GetConversations(ctx context.Context, formID, orgID primitive.ObjectID, params models.PaginationParams) ([]models.Conversation, int64, error) {
	filter := bson.M{"formId": formID, "organizationId": orgID}
	if params.Search != "" {
		filter["name"] = bson.M{"$regex": params.Search, "$options": "i"}
	}

	total, err := database.ConversationCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(params.GetSortOrder())

	cursor, err := database.ConversationCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	conversations := []models.Conversation{}
	if err = cursor.All(ctx, &conversations); err != nil {
		return nil, 0, err
	}

	return conversations, total, nil
}

func GetConversationByID(ctx context.Context, conversationID, orgID primitive.ObjectID) (*models.Conversation, error) {
	var conversation models.Conversation
	err := database.ConversationCollection.FindOne(ctx, scopedConversationFilter(conversationID, orgID)).Decode(&conversation)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NotFound("conversation not found")
		}
		return nil, err
	}
	return &conversation, nil
}

// GetStats summarizes an organization's conversations.
func GetStats(ctx context.Context, orgID primitive.ObjectID) (*models.ConversationStats, error) {
	total, err := database.ConversationCollection.CountDocuments(ctx, bson.M{"organizationId": orgID})
	if err != nil {
		return nil, err
	}
	inProgress, err := database.ConversationCollection.CountDocuments(ctx, bson.M{"organizationId": orgID, "isInProgress": true})
	if err != nil {
		return nil, err
	}

	return &models.ConversationStats{
		Total:      total,
		InProgress: inProgress,
		Finished:   total - inProgress,
	}, nil
}
