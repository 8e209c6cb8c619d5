package controllers

import (
	"context"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/growupanand/convoform/src/models"
	"github.com/growupanand/convoform/src/services/conversations"
	"github.com/growupanand/convoform/src/utils"
)

// AnswerConversation godoc
// @Summary      Advance a conversation by one respondent turn
// @Description  Starts a new conversation when conversationId is omitted. Returns the next question or completion.
// @Tags         conversations
// @Accept       json
// @Produce      json
// @Param        formId path string true "Form ID"
// @Param        body body models.AnswerConversationRequest true "Answer payload"
// @Success      200  {object}  models.AnswerConversationResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      403  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      429  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /form/{formId}/conversation [post]
func AnswerConversation(c *fiber.Ctx) error {
	formID, err := paramObjectID(c, "formId")
	if err != nil {
		return utils.HandleError(c, err)
	}

	var req models.AnswerConversationRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, utils.BadRequest("Invalid input: "+err.Error()))
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.HandleError(c, err)
	}

	// generous timeout, the model call dominates
	ctx, cancel := context.WithTimeout(c.Context(), 90*time.Second)
	defer cancel()

	resp, err := conversations.Answer(ctx, getAIClient(), formID, &req)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

// GetConversations godoc
// @Summary      List a form's conversations, newest first
// @Tags         conversations
// @Produce      json
// @Param        formId path string true "Form ID"
// @Param        page  query int false "Page number" default(1)
// @Param        limit query int false "Items per page" default(10)
// @Success      200  {object}  models.PaginatedResponse
// @Failure      400  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /forms/{formId}/conversations [get]
func GetConversations(c *fiber.Ctx) error {
	orgID, err := orgIDFromLocals(c)
	if err != nil {
		return utils.HandleError(c, err)
	}

	formID, err := paramObjectID(c, "formId")
	if err != nil {
		return utils.HandleError(c, err)
	}

	params := models.DefaultPagination()
	params.Page, _ = strconv.Atoi(c.Query("page", strconv.Itoa(params.Page)))
	params.Limit, _ = strconv.Atoi(c.Query("limit", strconv.Itoa(params.Limit)))
	params.Search = c.Query("search", params.Search)
	params.SortBy = c.Query("sortBy", params.SortBy)
	params.Order = c.Query("order", params.Order)
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 || params.Limit > 100 {
		params.Limit = 10
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	items, total, err := conversations.GetConversations(ctx, formID, orgID, params)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(models.NewPaginatedResponse(items, total, params))
}

// GetConversationByID godoc
// @Summary      Get a single conversation with its transcript and responses
// @Tags         conversations
// @Produce      json
// @Param        id path string true "Conversation ID"
// @Success      200  {object}  models.Conversation
// @Failure      404  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /conversations/{id} [get]
func GetConversationByID(c *fiber.Ctx) error {
	orgID, err := orgIDFromLocals(c)
	if err != nil {
		return utils.HandleError(c, err)
	}

	conversationID, err := paramObjectID(c, "id")
	if err != nil {
		return utils.HandleError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	conversation, err := conversations.GetConversationByID(ctx, conversationID, orgID)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(conversation)
}

// GetConversationStats godoc
// @Summary      Conversation totals for the caller's organization
// @Tags         conversations
// @Produce      json
// @Success      200  {object}  models.ConversationStats
// @Failure      401  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /conversations/stats [get]
func GetConversationStats(c *fiber.Ctx) error {
	orgID, err := orgIDFromLocals(c)
	if err != nil {
		return utils.HandleError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	stats, err := conversations.GetStats(ctx, orgID)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(stats)
}
