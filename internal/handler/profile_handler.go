package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chamodt-botcalm/Expense-Tracker/internal/dto"
	"github.com/chamodt-botcalm/Expense-Tracker/internal/service"
)

type ProfileHandler struct {
	profileService *service.ProfileService
}

func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return badRequest(c, "valid user_id is required")
	}

	user, err := h.profileService.Get(c.Context(), userID)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "OK",
		"user":    toUserOutput(user),
	})
}

func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return badRequest(c, "valid user_id is required")
	}

	var input dto.UpdateProfileInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid input")
	}

	user, err := h.profileService.Update(c.Context(), userID, input)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Profile updated",
		"user":    toUserOutput(user),
	})
}
