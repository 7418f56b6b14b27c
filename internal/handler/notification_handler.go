package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chamodt-botcalm/Expense-Tracker/internal/dto"
	"github.com/chamodt-botcalm/Expense-Tracker/internal/notification"
)

type NotificationHandler struct {
	registry *notification.Registry
}

func NewNotificationHandler(registry *notification.Registry) *NotificationHandler {
	return &NotificationHandler{registry: registry}
}

func (h *NotificationHandler) SaveToken(c *fiber.Ctx) error {
	var input dto.SaveTokenInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid input")
	}

	if err := h.registry.RegisterToken(c.Context(), input.UserID, input.FCMToken); err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Token saved",
	})
}
