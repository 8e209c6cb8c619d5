package workspaces

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestScopedWorkspaceFilter(t *testing.T) {
	workspaceID := primitive.NewObjectID()
	orgID := primitive.NewObjectID()

	filter := scopedWorkspaceFilter(workspaceID, orgID)

	assert.Equal(t, workspaceID, filter["_id"])
	assert.Equal(t, orgID, filter["organizationId"])
	assert.Len(t, filter, 2)
}
