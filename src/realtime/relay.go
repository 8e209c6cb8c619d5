package realtime

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/growupanand/convoform/src/models"
)

// Room subjects. Clients subscribe per form or per conversation.
func FormSubject(formID string) string {
	return fmt.Sprintf("convoform.form.%s", formID)
}

func ConversationSubject(conversationID string) string {
	return fmt.Sprintf("convoform.conversation.%s", conversationID)
}

// PublishConversationEvent fans an event out to both rooms it belongs to.
// Best effort: without a relay connection the event is dropped, and publish
// failures are only logged.
func PublishConversationEvent(event models.ConversationEvent) {
	if conn == nil {
		return
	}

	// subscribers hear the event once per room they joined; the id lets them dedupe
	if event.EventID == "" {
		event.EventID = uuid.NewString()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("relay: failed to marshal event: %v", err)
		return
	}

	for _, subject := range []string{
		FormSubject(event.FormID),
		ConversationSubject(event.ConversationID),
	} {
		if err := conn.Publish(subject, payload); err != nil {
			log.Printf("relay: publish to %s failed: %v", subject, err)
		}
	}
}

// SubscribeForm delivers every event published to a form's room.
func SubscribeForm(formID string, handler func(models.ConversationEvent)) (*nats.Subscription, error) {
	if conn == nil {
		return nil, fmt.Errorf("relay not connected")
	}
	return conn.Subscribe(FormSubject(formID), func(msg *nats.Msg) {
		var event models.ConversationEvent
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			log.Printf("relay: dropping malformed event: %v", err)
			return
		}
		handler(event)
	})
}
