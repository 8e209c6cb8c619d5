package organizations

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/growupanand/convoform/src/database"
	"github.com/growupanand/convoform/src/models"
	"github.com/growupanand/convoform/src/utils"
)

func CreateOrganization(ctx context.Context, req *models.CreateOrganizationRequest) (*models.Organization, error) {
	now := time.Now()
	org := models.Organization{
		Name:      req.Name,
		Plan:      models.PlanFree,
		CreatedAt: now,
		UpdatedAt: now,
	}

	result, err := database.OrganizationCollection.InsertOne(ctx, org)
	if err != nil {
		return nil, err
	}
	org.ID = result.InsertedID.(primitive.ObjectID)
	return &org, nil
}

func GetOrganizationByID(ctx context.Context, orgID primitive.ObjectID) (*models.Organization, error) {
	var org models.Organization
	err := database.OrganizationCollection.FindOne(ctx, bson.M{"_id": orgID}).Decode(&org)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NotFound("organization not found")
		}
		return nil, err
	}
	return &org, nil
}

// CountConversations aggregates conversations across every form the
// organization owns. The submission-limit guard and the usage endpoint both go
// through here.
func CountConversations(ctx context.Context, orgID primitive.ObjectID) (int64, error) {
	return database.ConversationCollection.CountDocuments(ctx, bson.M{"organizationId": orgID})
}

// GetUsage reports current consumption against the plan limits.
func GetUsage(ctx context.Context, orgID primitive.ObjectID) (*models.OrganizationUsage, error) {
	org, err := GetOrganizationByID(ctx, orgID)
	if err != nil {
		return nil, err
	}

	conversations, err := CountConversations(ctx, orgID)
	if err != nil {
		return nil, err
	}

	forms, err := database.FormCollection.CountDocuments(ctx, bson.M{"organizationId": orgID})
	if err != nil {
		return nil, err
	}

	return &models.OrganizationUsage{
		Conversations: conversations,
		Forms:         forms,
		Limit:         PlanLimit(org.Plan),
		OverLimit:     IsOverLimit(conversations, org.Plan),
	}, nil
}
