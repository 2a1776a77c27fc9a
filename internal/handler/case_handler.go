package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"chisan-market/internal/domain"
	"chisan-market/internal/middleware"
	"chisan-market/internal/service/cases"
)

type CaseHandler struct {
	caseService cases.Service
}

func NewCaseHandler(caseService cases.Service) *CaseHandler {
	return &CaseHandler{caseService: caseService}
}

func (h *CaseHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateCaseInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	created, detail, err := h.caseService.Create(c.Context(), middleware.GetCurrentUser(c), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"case":   created,
		"detail": detail,
	})
}

func (h *CaseHandler) Get(c *fiber.Ctx) error {
	caseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid case ID")
	}

	view, err := h.caseService.GetView(c.Context(), middleware.GetCurrentUser(c), caseID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(view)
}

func (h *CaseHandler) Update(c *fiber.Ctx) error {
	caseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid case ID")
	}

	var input domain.UpdateCaseInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	view, err := h.caseService.Update(c.Context(), middleware.GetCurrentUser(c), caseID, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(view)
}

func (h *CaseHandler) Delete(c *fiber.Ctx) error {
	caseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid case ID")
	}

	if err := h.caseService.Delete(c.Context(), middleware.GetCurrentUser(c), caseID); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *CaseHandler) Assign(c *fiber.Ctx) error {
	caseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid case ID")
	}

	assigned, err := h.caseService.Assign(c.Context(), middleware.GetCurrentUser(c), caseID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(assigned)
}

func (h *CaseHandler) ListNew(c *fiber.Ctx) error {
	list, err := h.caseService.ListNew(c.Context())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(list)
}

func (h *CaseHandler) ListMine(c *fiber.Ctx) error {
	list, err := h.caseService.ListCreatedBy(c.Context(), middleware.GetCurrentUserID(c))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(list)
}

func (h *CaseHandler) ListAssigned(c *fiber.Ctx) error {
	list, err := h.caseService.ListAssigned(c.Context(), middleware.GetCurrentUserID(c))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(list)
}

func (h *CaseHandler) ListForProducer(c *fiber.Ctx) error {
	list, err := h.caseService.ListForProducer(c.Context(), middleware.GetCurrentUserID(c))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(list)
}

func (h *CaseHandler) ListProposals(c *fiber.Ctx) error {
	caseID, err := uuid.Parse(c.Params("caseId"))
	if err != nil {
		return middleware.BadRequest("Invalid case ID")
	}

	list, err := h.caseService.ListProposals(c.Context(), middleware.GetCurrentUser(c), caseID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(list)
}
