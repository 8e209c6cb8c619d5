package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeAbandonConversation = "conversation:abandon"

type ConversationPayload struct {
	ConversationID string `json:"conversation_id"`
}

func NewAbandonConversationTask(conversationID string) (*asynq.Task, error) {
	payload, err := json.Marshal(ConversationPayload{ConversationID: conversationID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeAbandonConversation, payload), nil
}

const TypeNotifyCompleted = "conversation:notify_completed"

func NewNotifyCompletedTask(conversationID string) (*asynq.Task, error) {
	payload, err := json.Marshal(ConversationPayload{ConversationID: conversationID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeNotifyCompleted, payload), nil
}
