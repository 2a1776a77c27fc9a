package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"chisan-market/internal/domain"
	"chisan-market/internal/middleware"
	"chisan-market/internal/service/restaurant"
)

type RestaurantHandler struct {
	restaurantService restaurant.Service
}

func NewRestaurantHandler(restaurantService restaurant.Service) *RestaurantHandler {
	return &RestaurantHandler{restaurantService: restaurantService}
}

// ListManaged returns the restaurants managed by the calling sales rep.
func (h *RestaurantHandler) ListManaged(c *fiber.Ctx) error {
	restaurants, err := h.restaurantService.ListManaged(c.Context(), middleware.GetCurrentUserID(c))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(restaurants)
}

func (h *RestaurantHandler) Get(c *fiber.Ctx) error {
	restaurantID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid restaurant ID")
	}

	profile, err := h.restaurantService.GetProfile(c.Context(), middleware.GetCurrentUser(c), restaurantID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(profile)
}

func (h *RestaurantHandler) Update(c *fiber.Ctx) error {
	restaurantID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid restaurant ID")
	}

	var input domain.UpdateRestaurantInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	updated, err := h.restaurantService.UpdateProfile(c.Context(), middleware.GetCurrentUser(c), restaurantID, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}
