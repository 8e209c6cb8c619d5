package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Transcript roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one transcript entry, oldest first in Conversation.Transcript.
type Message struct {
	Role    string `bson:"role" json:"role"`
	Content string `bson:"content" json:"content"`
}

// FieldResponse is one collected answer. FieldConfiguration is a snapshot of
// the field's configuration at answer time, stored in the same encoded form
// as FormField.FieldConfiguration.
type FieldResponse struct {
	FieldID            primitive.ObjectID `bson:"fieldId" json:"fieldId"`
	FieldName          string             `bson:"fieldName" json:"fieldName"`
	FieldValue         string             `bson:"fieldValue" json:"fieldValue"`
	FieldConfiguration map[string]any     `bson:"fieldConfiguration" json:"fieldConfiguration"`
}

// Conversation is one respondent session against a form. It is created on the
// first respondent message and mutated with a single update per turn.
type Conversation struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	FormID         primitive.ObjectID `bson:"formId" json:"formId"`
	OrganizationID primitive.ObjectID `bson:"organizationId" json:"organizationId"`
	Name           string             `bson:"name" json:"name"`
	Transcript     []Message          `bson:"transcript" json:"transcript"`
	FieldResponses []FieldResponse    `bson:"fieldResponses" json:"fieldResponses"`
	IsInProgress   bool               `bson:"isInProgress" json:"isInProgress"`
	FinishedAt     *time.Time         `bson:"finishedAt,omitempty" json:"finishedAt,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt,omitempty" json:"updatedAt"`
}

// AnswerConversationRequest is the body of one respondent turn. ConversationID
// is empty on the first turn; Answer is empty until a question was asked.
type AnswerConversationRequest struct {
	ConversationID string `json:"conversationId,omitempty"`
	Answer         string `json:"answer,omitempty" validate:"max=4000"`
}

// AnswerConversationResponse carries either the next question or the terminal
// complete signal.
type AnswerConversationResponse struct {
	ConversationID string `json:"conversationId"`
	NextQuestion   string `json:"nextQuestion,omitempty"`
	FieldID        string `json:"fieldId,omitempty"`
	IsComplete     bool   `json:"isComplete"`
}

type ConversationStats struct {
	Total      int64 `json:"total"`
	InProgress int64 `json:"inProgress"`
	Finished   int64 `json:"finished"`
}
