package jobs

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/growupanand/convoform/src/database"
	"github.com/growupanand/convoform/src/models"
	"github.com/growupanand/convoform/src/realtime"
)

// AbandonAfter is how long a conversation may sit idle before the sweeper
// marks it stopped.
const AbandonAfter = 30 * time.Minute

// HandleAbandonConversationTask stops conversations the respondent walked away
// from. Conversations that finished or saw recent activity are left alone; an
// active one gets the task re-enqueued instead.
func HandleAbandonConversationTask(ctx context.Context, t *asynq.Task) error {
	var payload ConversationPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Println("❌ Payload decode error:", err)
		return err
	}

	id, err := primitive.ObjectIDFromHex(payload.ConversationID)
	if err != nil {
		return err
	}

	var conversation models.Conversation
	err = database.ConversationCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&conversation)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			log.Println("⚠️ Conversation not found. Possibly deleted. Skipping task:", id.Hex())
			return nil
		}
		return err
	}

	if !conversation.IsInProgress {
		return nil
	}

	if time.Since(conversation.UpdatedAt) < AbandonAfter {
		// respondent is still typing, check again later
		if database.AsynqClient != nil {
			task, err := NewAbandonConversationTask(payload.ConversationID)
			if err != nil {
				return err
			}
			_, err = database.AsynqClient.Enqueue(task, asynq.ProcessIn(AbandonAfter))
			return err
		}
		return nil
	}

	_, err = database.ConversationCollection.UpdateOne(ctx,
		bson.M{"_id": id, "isInProgress": true},
		bson.M{"$set": bson.M{"isInProgress": false, "updatedAt": time.Now()}},
	)
	if err != nil {
		return err
	}

	realtime.PublishConversationEvent(models.ConversationEvent{
		Type:           models.EventConversationStopped,
		ConversationID: conversation.ID.Hex(),
		FormID:         conversation.FormID.Hex(),
		OrganizationID: conversation.OrganizationID.Hex(),
		At:             time.Now(),
	})

	log.Println("✅ Abandoned conversation stopped:", id.Hex())
	return nil
}
