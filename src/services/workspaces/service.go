package workspaces

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/growupanand/convoform/src/database"
	"github.com/growupanand/convoform/src/models"
	"github.com/growupanand/convoform/src/utils"
)

// scopedWorkspaceFilter fences workspace lookups to the caller's organization.
func scopedWorkspaceFilter(workspaceID, orgID primitive.ObjectID) bson.M {
	return bson.M{"_id": workspaceID, "organizationId": orgID}
}

func CreateWorkspace(ctx context.Context, orgID primitive.ObjectID, req *models.CreateWorkspaceRequest) (*models.Workspace, error) {
	now := time.Now()
	workspace := models.Workspace{
		OrganizationID: orgID,
		Name:           req.Name,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	result, err := database.WorkspaceCollection.InsertOne(ctx, workspace)
	if err != nil {
		return nil, err
	}
	workspace.ID = result.InsertedID.(primitive.ObjectID)
	return &workspace, nil
}

func GetWorkspaces(ctx context.Context, orgID primitive.ObjectID) ([]models.Workspace, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := database.WorkspaceCollection.Find(ctx, bson.M{"organizationId": orgID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	workspaces := []models.Workspace{}
	if err = cursor.All(ctx, &workspaces); err != nil {
		return nil, err
	}
	return workspaces, nil
}

func GetWorkspaceByID(ctx context.Context, workspaceID, orgID primitive.ObjectID) (*models.Workspace, error) {
	var workspace models.Workspace
	err := database.WorkspaceCollection.FindOne(ctx, scopedWorkspaceFilter(workspaceID, orgID)).Decode(&workspace)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NotFound("workspace not found")
		}
		return nil, err
	}
	return &workspace, nil
}

func RenameWorkspace(ctx context.Context, workspaceID, orgID primitive.ObjectID, name string) error {
	result, err := database.WorkspaceCollection.UpdateOne(ctx,
		scopedWorkspaceFilter(workspaceID, orgID),
		bson.M{"$set": bson.M{"name": name, "updatedAt": time.Now()}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return utils.NotFound("workspace not found")
	}
	return nil
}

// DeleteWorkspace removes an empty workspace. Workspaces still holding forms
// cannot be deleted.
func DeleteWorkspace(ctx context.Context, workspaceID, orgID primitive.ObjectID) error {
	formCount, err := database.FormCollection.CountDocuments(ctx, bson.M{"workspaceId": workspaceID, "organizationId": orgID})
	if err != nil {
		return err
	}
	if formCount > 0 {
		return utils.BadRequest("workspace still contains forms")
	}

	result, err := database.WorkspaceCollection.DeleteOne(ctx, scopedWorkspaceFilter(workspaceID, orgID))
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return utils.NotFound("workspace not found")
	}
	return nil
}
