package models

import "time"

// Realtime event kinds forwarded by the notification relay.
const (
	EventConversationStarted = "conversation:started"
	EventConversationStopped = "conversation:stopped"
)

// ConversationEvent is the payload fanned out to relay subscribers. Delivery
// is best effort; nothing is persisted or replayed.
type ConversationEvent struct {
	EventID        string    `json:"eventId,omitempty"`
	Type           string    `json:"type"`
	ConversationID string    `json:"conversationId"`
	FormID         string    `json:"formId"`
	OrganizationID string    `json:"organizationId"`
	At             time.Time `json:"at"`
}

// ConversationWebhookRequest is the body accepted by the webhook ingestion
// endpoint that feeds the relay from outside the process.
type ConversationWebhookRequest struct {
	Type           string `json:"type" validate:"required,oneof=conversation:started conversation:stopped"`
	ConversationID string `json:"conversationId" validate:"required"`
	FormID         string `json:"formId" validate:"required"`
	OrganizationID string `json:"organizationId"`
}
