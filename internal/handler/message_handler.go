package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"chisan-market/internal/domain"
	"chisan-market/internal/middleware"
	"chisan-market/internal/service/message"
)

type MessageHandler struct {
	messageService message.Service
}

func NewMessageHandler(messageService message.Service) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

func (h *MessageHandler) Post(c *fiber.Ctx) error {
	proposalID, err := uuid.Parse(c.Params("proposalId"))
	if err != nil {
		return middleware.BadRequest("Invalid proposal ID")
	}

	var input domain.CreateMessageInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	created, err := h.messageService.Post(c.Context(), middleware.GetCurrentUser(c), proposalID, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *MessageHandler) List(c *fiber.Ctx) error {
	proposalID, err := uuid.Parse(c.Params("proposalId"))
	if err != nil {
		return middleware.BadRequest("Invalid proposal ID")
	}

	messages, err := h.messageService.List(c.Context(), middleware.GetCurrentUser(c), proposalID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(messages)
}
