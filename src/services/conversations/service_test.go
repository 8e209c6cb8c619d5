package conversations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestScopedConversationFilter(t *testing.T) {
	conversationID := primitive.NewObjectID()
	orgID := primitive.NewObjectID()

	filter := scopedConversationFilter(conversationID, orgID)

	// transcripts hold respondent PII, a conversation id alone must never
	// match another organization's document
	assert.Equal(t, conversationID, filter["_id"])
	assert.Equal(t, orgID, filter["organizationId"])
	assert.Len(t, filter, 2)
}
