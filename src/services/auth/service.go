package auth

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/growupanand/convoform/src/database"
	"github.com/growupanand/convoform/src/models"
	"github.com/growupanand/convoform/src/services/organizations"
	"github.com/growupanand/convoform/src/services/workspaces"
	"github.com/growupanand/convoform/src/utils"
)

// Register creates a user together with their organization and a default
// workspace.
func Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	email := strings.ToLower(req.Email)

	count, err := database.UserCollection.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, utils.BadRequest("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	org, err := organizations.CreateOrganization(ctx, &models.CreateOrganizationRequest{Name: req.OrganizationName})
	if err != nil {
		return nil, err
	}

	_, err = workspaces.CreateWorkspace(ctx, org.ID, &models.CreateWorkspaceRequest{Name: "My workspace"})
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:          email,
		Name:           req.Name,
		Password:       string(hash),
		OrganizationID: org.ID,
		Role:           "owner",
		CreatedAt:      time.Now(),
	}

	result, err := database.UserCollection.InsertOne(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = result.InsertedID.(primitive.ObjectID)
	user.Password = ""

	return &user, nil
}

// Login verifies credentials and issues a session token.
func Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	var user models.User
	err := database.UserCollection.FindOne(ctx, bson.M{"email": strings.ToLower(req.Email)}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.Unauthorized("invalid email or password")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, utils.Unauthorized("invalid email or password")
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), user.Email, user.OrganizationID.Hex(), user.Role)
	if err != nil {
		return nil, err
	}

	user.Password = ""
	return &models.LoginResponse{User: user, Token: token}, nil
}
