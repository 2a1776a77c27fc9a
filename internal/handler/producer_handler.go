package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"chisan-market/internal/domain"
	"chisan-market/internal/middleware"
	"chisan-market/internal/service/producer"
)

type ProducerHandler struct {
	producerService producer.Service
}

func NewProducerHandler(producerService producer.Service) *ProducerHandler {
	return &ProducerHandler{producerService: producerService}
}

func (h *ProducerHandler) List(c *fiber.Ctx) error {
	producers, err := h.producerService.List(c.Context(), middleware.GetCurrentUser(c))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(producers)
}

func (h *ProducerHandler) Get(c *fiber.Ctx) error {
	producerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid producer ID")
	}

	profile, err := h.producerService.GetProfile(c.Context(), middleware.GetCurrentUser(c), producerID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(profile)
}

func (h *ProducerHandler) Update(c *fiber.Ctx) error {
	producerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid producer ID")
	}

	var input domain.UpdateProducerInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	updated, err := h.producerService.UpdateProfile(c.Context(), middleware.GetCurrentUser(c), producerID, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}
