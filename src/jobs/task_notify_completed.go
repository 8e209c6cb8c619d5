package jobs

import (
	"context"
	"encoding/json"
	"log"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/growupanand/convoform/src/database"
	"github.com/growupanand/convoform/src/models"
	"github.com/growupanand/convoform/src/services/email"
)

// HandleNotifyCompletedTask emails the form owner after a conversation
// finishes. Missing SMTP configuration skips the notification instead of
// failing the task forever.
func HandleNotifyCompletedTask(ctx context.Context, t *asynq.Task) error {
	var payload ConversationPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
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
			log.Println("⚠️ Conversation not found. Skipping notification:", id.Hex())
			return nil
		}
		return err
	}

	var form models.Form
	err = database.FormCollection.FindOne(ctx, bson.M{"_id": conversation.FormID}).Decode(&form)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			log.Println("⚠️ Form not found. Skipping notification:", conversation.FormID.Hex())
			return nil
		}
		return err
	}

	var owner models.User
	err = database.UserCollection.FindOne(ctx, bson.M{"organizationId": form.OrganizationID}).Decode(&owner)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			log.Println("⚠️ No owner user for organization:", form.OrganizationID.Hex())
			return nil
		}
		return err
	}

	sender, err := email.NewSMTPSenderFromEnv()
	if err != nil {
		log.Println("⚠️ SMTP not configured, skipping notification:", err)
		return nil
	}

	subject, body := email.CompletedConversationEmail(form.Name, &conversation)
	if err := sender.Send(owner.Email, subject, body); err != nil {
		return err
	}

	log.Println("✅ Response notification sent for conversation:", id.Hex())
	return nil
}
