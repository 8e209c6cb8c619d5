package controllers

import (
	"crypto/subtle"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/growupanand/convoform/src/models"
	"github.com/growupanand/convoform/src/realtime"
	"github.com/growupanand/convoform/src/utils"
)

// ConversationWebhook godoc
// @Summary      Feed a conversation lifecycle event into the notification relay
// @Description  Requires the X-Webhook-Secret header. Delivery to subscribers is best effort.
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        X-Webhook-Secret header string true "Shared secret"
// @Param        body body models.ConversationWebhookRequest true "Event"
// @Success      202  {object}  map[string]string
// @Failure      400  {object}  models.ErrorResponse
// @Failure      401  {object}  models.ErrorResponse
// @Router       /webhook/conversation [post]
func ConversationWebhook(c *fiber.Ctx) error {
	secret := os.Getenv("WEBHOOK_SECRET")
	if secret == "" {
		return utils.HandleError(c, utils.Unauthorized("webhook ingestion is not configured"))
	}
	given := c.Get("X-Webhook-Secret")
	if subtle.ConstantTimeCompare([]byte(secret), []byte(given)) != 1 {
		return utils.HandleError(c, utils.Unauthorized("invalid webhook secret"))
	}

	var req models.ConversationWebhookRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, utils.BadRequest("Invalid input: "+err.Error()))
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.HandleError(c, err)
	}

	realtime.PublishConversationEvent(models.ConversationEvent{
		Type:           req.Type,
		ConversationID: req.ConversationID,
		FormID:         req.FormID,
		OrganizationID: req.OrganizationID,
		At:             time.Now(),
	})

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"message": "Event accepted"})
}
