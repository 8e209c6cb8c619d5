package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/growupanand/convoform/src/models"
)

// newFakeCompletionServer serves a chat-completions endpoint whose single
// choice contains the given content verbatim.
func newFakeCompletionServer(t *testing.T, content string) (*httptest.Server, *Client) {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var req chatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotNil(t, req.ResponseFormat)
		assert.Equal(t, "json_object", req.ResponseFormat.Type)

		resp := chatCompletionResponse{}
		resp.Choices = append(resp.Choices, struct {
			Message ChatMessage `json:"message"`
		}{Message: ChatMessage{Role: models.RoleAssistant, Content: content}})

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	t.Cleanup(server.Close)

	client := &Client{
		BaseURL:    server.URL,
		APIKey:     "test-key",
		Model:      "test-model",
		HTTPClient: server.Client(),
	}
	return server, client
}

func progressionFixture() (models.Form, []models.FormField) {
	form := models.Form{
		ID:       primitive.NewObjectID(),
		Name:     "Customer survey",
		Overview: "Learn how customers discovered the product.",
	}
	fields := []models.FormField{
		{ID: primitive.NewObjectID(), FieldName: "Name", InputType: models.InputTypeText},
		{ID: primitive.NewObjectID(), FieldName: "Channel", InputType: models.InputTypeMultipleChoice},
	}
	return form, fields
}

func TestGetNextQuestion(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	t.Run("FirstTurnAsksFirstField", func(t *testing.T) {
		_, client := newFakeCompletionServer(t, `{"extractedAnswer":null,"isAnswerValid":false,"nextQuestion":"What is your name?"}`)
		form, fields := progressionFixture()

		result, err := client.GetNextQuestion(ctx, form, fields, nil, nil)
		require.NoError(t, err)

		assert.False(t, result.IsComplete)
		assert.Equal(t, "What is your name?", result.NextQuestion)
		assert.Equal(t, fields[0].ID, result.FieldID)
		assert.Nil(t, result.Extracted)
	})

	t.Run("ValidAnswerAdvancesToNextField", func(t *testing.T) {
		_, client := newFakeCompletionServer(t, `{"extractedAnswer":"Jane","isAnswerValid":true,"nextQuestion":"How did you find us?"}`)
		form, fields := progressionFixture()
		transcript := []models.Message{
			{Role: models.RoleAssistant, Content: "What is your name?"},
			{Role: models.RoleUser, Content: "I'm Jane"},
		}

		result, err := client.GetNextQuestion(ctx, form, fields, nil, transcript)
		require.NoError(t, err)

		assert.False(t, result.IsComplete)
		require.NotNil(t, result.Extracted)
		assert.Equal(t, fields[0].ID, result.Extracted.FieldID)
		assert.Equal(t, "Jane", result.Extracted.FieldValue)
		assert.Equal(t, fields[1].ID, result.FieldID)
	})

	t.Run("InvalidAnswerReasksCurrentField", func(t *testing.T) {
		_, client := newFakeCompletionServer(t, `{"extractedAnswer":null,"isAnswerValid":false,"nextQuestion":"Could you tell me your name?"}`)
		form, fields := progressionFixture()
		transcript := []models.Message{
			{Role: models.RoleAssistant, Content: "What is your name?"},
			{Role: models.RoleUser, Content: "no"},
		}

		result, err := client.GetNextQuestion(ctx, form, fields, nil, transcript)
		require.NoError(t, err)

		assert.Nil(t, result.Extracted)
		assert.Equal(t, fields[0].ID, result.FieldID)
		assert.Equal(t, "Could you tell me your name?", result.NextQuestion)
	})

	t.Run("LastFieldAnsweredCompletes", func(t *testing.T) {
		_, client := newFakeCompletionServer(t, `{"extractedAnswer":"Twitter","isAnswerValid":true,"nextQuestion":""}`)
		form, fields := progressionFixture()
		answered := []models.FieldResponse{
			{FieldID: fields[0].ID, FieldName: "Name", FieldValue: "Jane"},
		}
		transcript := []models.Message{
			{Role: models.RoleAssistant, Content: "How did you find us?"},
			{Role: models.RoleUser, Content: "Twitter"},
		}

		result, err := client.GetNextQuestion(ctx, form, fields, answered, transcript)
		require.NoError(t, err)

		assert.True(t, result.IsComplete)
		require.NotNil(t, result.Extracted)
		assert.Equal(t, fields[1].ID, result.Extracted.FieldID)
		assert.Equal(t, "Twitter", result.Extracted.FieldValue)
	})

	t.Run("AllFieldsAlreadyAnsweredSkipsModelCall", func(t *testing.T) {
		// no server at all: the call must not reach the network
		client := &Client{BaseURL: "http://127.0.0.1:0", HTTPClient: http.DefaultClient}
		form, fields := progressionFixture()
		answered := []models.FieldResponse{
			{FieldID: fields[0].ID},
			{FieldID: fields[1].ID},
		}

		result, err := client.GetNextQuestion(ctx, form, fields, answered, nil)
		require.NoError(t, err)
		assert.True(t, result.IsComplete)
	})

	t.Run("MalformedModelJSONIsAnError", func(t *testing.T) {
		_, client := newFakeCompletionServer(t, `this is not json`)
		form, fields := progressionFixture()

		_, err := client.GetNextQuestion(ctx, form, fields, nil, nil)
		assert.Error(t, err)
	})

	t.Run("MissingNextQuestionIsAnError", func(t *testing.T) {
		_, client := newFakeCompletionServer(t, `{"extractedAnswer":null,"isAnswerValid":false,"nextQuestion":""}`)
		form, fields := progressionFixture()

		_, err := client.GetNextQuestion(ctx, form, fields, nil, nil)
		assert.Error(t, err)
	})

	t.Run("ProviderErrorSurfaces", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":"rate limited"}`, http.StatusTooManyRequests)
		}))
		t.Cleanup(server.Close)
		client := &Client{BaseURL: server.URL, HTTPClient: server.Client()}
		form, fields := progressionFixture()

		_, err := client.GetNextQuestion(ctx, form, fields, nil, nil)
		assert.Error(t, err)
	})
}

func TestRemainingFields(t *testing.T) {
	_, fields := progressionFixture()

	t.Run("PreservesAskingOrder", func(t *testing.T) {
		remaining := remainingFields(fields, nil)
		require.Len(t, remaining, 2)
		assert.Equal(t, fields[0].ID, remaining[0].ID)
	})

	t.Run("FiltersAnswered", func(t *testing.T) {
		answered := []models.FieldResponse{{FieldID: fields[0].ID}}
		remaining := remainingFields(fields, answered)
		require.Len(t, remaining, 1)
		assert.Equal(t, fields[1].ID, remaining[0].ID)
	})
}
