package controllers

import (
	"sync"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/growupanand/convoform/src/services/ai"
	"github.com/growupanand/convoform/src/utils"
)

var (
	aiClientOnce sync.Once
	aiClient     *ai.Client
)

// getAIClient builds the chat-completion client after .env has been loaded.
func getAIClient() *ai.Client {
	aiClientOnce.Do(func() {
		aiClient = ai.NewClientFromEnv()
	})
	return aiClient
}

func paramObjectID(c *fiber.Ctx, name string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(c.Params(name))
	if err != nil {
		return primitive.NilObjectID, utils.BadRequest("invalid " + name)
	}
	return id, nil
}

// orgIDFromLocals reads the organization id the JWT middleware stored.
func orgIDFromLocals(c *fiber.Ctx) (primitive.ObjectID, error) {
	raw, ok := c.Locals("orgId").(string)
	if !ok || raw == "" {
		return primitive.NilObjectID, utils.Unauthorized("missing organization in token")
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, utils.Unauthorized("invalid organization in token")
	}
	return id, nil
}
