package ai

import (
	"context"
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/growupanand/convoform/src/models"
)

// ExtractedAnswer is a value the model pulled out of the respondent's latest
// message for the field that was being asked.
type ExtractedAnswer struct {
	FieldID    primitive.ObjectID
	FieldName  string
	FieldValue string
}

// NextQuestionResult is the outcome of one progression turn: either the next
// question to show, or the terminal complete signal once every field has an
// answer. Extracted is set when the latest user message satisfied a field.
type NextQuestionResult struct {
	IsComplete   bool
	NextQuestion string
	FieldID      primitive.ObjectID
	Extracted    *ExtractedAnswer
}

type progressionModelOutput struct {
	ExtractedAnswer *string `json:"extractedAnswer"`
	IsAnswerValid   bool    `json:"isAnswerValid"`
	NextQuestion    string  `json:"nextQuestion"`
}

// GetNextQuestion runs one turn of the question-progression flow. fields must
// already be in safe asking order; answered carries the responses collected so
// far; transcript is the full message history, oldest first.
//
// Field selection is strict-order and decided here, not by the model: the
// model only phrases the question and extracts the respondent's previous
// answer. A malformed model response is returned as an error and the caller
// must not persist anything for the turn.
func (c *Client) GetNextQuestion(ctx context.Context, form models.Form, fields []models.FormField, answered []models.FieldResponse, transcript []models.Message) (*NextQuestionResult, error) {
	remaining := remainingFields(fields, answered)
	if len(remaining) == 0 {
		return &NextQuestionResult{IsComplete: true}, nil
	}

	current := remaining[0]
	hasAnswer := len(transcript) > 0 && transcript[len(transcript)-1].Role == models.RoleUser

	messages := []ChatMessage{
		{Role: "system", Content: buildProgressionSystemPrompt(form, remaining, hasAnswer)},
	}
	for _, msg := range transcript {
		messages = append(messages, ChatMessage{Role: msg.Role, Content: msg.Content})
	}
	if !hasAnswer {
		// json_object mode requires at least one non-system message
		messages = append(messages, ChatMessage{Role: models.RoleUser, Content: "Please ask me the first question."})
	}

	content, err := c.CompleteJSON(ctx, messages)
	if err != nil {
		return nil, err
	}

	var output progressionModelOutput
	if err := json.Unmarshal([]byte(content), &output); err != nil {
		return nil, fmt.Errorf("invalid progression model response: %v", err)
	}

	result := &NextQuestionResult{}

	if hasAnswer && output.IsAnswerValid && output.ExtractedAnswer != nil {
		result.Extracted = &ExtractedAnswer{
			FieldID:    current.ID,
			FieldName:  current.FieldName,
			FieldValue: *output.ExtractedAnswer,
		}
		if len(remaining) == 1 {
			result.IsComplete = true
			return result, nil
		}
		result.FieldID = remaining[1].ID
	} else {
		// nothing extracted: the current field is (re-)asked
		result.FieldID = current.ID
	}

	if output.NextQuestion == "" {
		return nil, fmt.Errorf("progression model response has no next question")
	}
	result.NextQuestion = output.NextQuestion

	return result, nil
}

// remainingFields filters out fields that already have a response, preserving
// the asking order.
func remainingFields(fields []models.FormField, answered []models.FieldResponse) []models.FormField {
	answeredIDs := make(map[primitive.ObjectID]bool, len(answered))
	for _, resp := range answered {
		answeredIDs[resp.FieldID] = true
	}

	remaining := make([]models.FormField, 0, len(fields))
	for _, field := range fields {
		if !answeredIDs[field.ID] {
			remaining = append(remaining, field)
		}
	}
	return remaining
}
