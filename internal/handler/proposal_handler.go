package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"chisan-market/internal/domain"
	"chisan-market/internal/middleware"
	"chisan-market/internal/service/proposal"
)

type ProposalHandler struct {
	proposalService proposal.Service
}

func NewProposalHandler(proposalService proposal.Service) *ProposalHandler {
	return &ProposalHandler{proposalService: proposalService}
}

func (h *ProposalHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateProposalInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	created, err := h.proposalService.Create(c.Context(), middleware.GetCurrentUser(c), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *ProposalHandler) UpdateStatus(c *fiber.Ctx) error {
	proposalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid proposal ID")
	}

	var input domain.UpdateProposalStatusInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	updated, err := h.proposalService.UpdateStatus(c.Context(), middleware.GetCurrentUser(c), proposalID, input.Status)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}

func (h *ProposalHandler) ListForRestaurant(c *fiber.Ctx) error {
	list, err := h.proposalService.ListForRestaurant(c.Context(), middleware.GetCurrentUserID(c))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(list)
}
