package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	autherror "github.com/chamodt-botcalm/Expense-Tracker/internal/errors"
)

// fail maps service errors onto HTTP responses. Every body carries a
// "message" key so clients have a single field to display.
func fail(c *fiber.Ctx, err error) error {
	var validationErr *autherror.ValidationError
	if errors.As(err, &validationErr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": validationErr.Message,
			"field":   validationErr.Field,
		})
	}

	var rateLimitErr *autherror.RateLimitError
	if errors.As(err, &rateLimitErr) {
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"message": rateLimitErr.Error(),
			"wait":    rateLimitErr.WaitSeconds,
		})
	}

	switch {
	case errors.Is(err, autherror.ErrEmailAlreadyRegistered):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	case errors.Is(err, autherror.ErrInvalidCredentials),
		errors.Is(err, autherror.ErrPasskeyNotFound),
		errors.Is(err, autherror.ErrPasskeyExpired),
		errors.Is(err, autherror.ErrMaxAttemptsExceeded),
		errors.Is(err, autherror.ErrInvalidPasskey),
		errors.Is(err, autherror.ErrInvalidSignupSession),
		errors.Is(err, autherror.ErrSignupSessionExpired),
		errors.Is(err, autherror.ErrInvalidSignupToken):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": err.Error()})
	case errors.Is(err, autherror.ErrUserNotFound),
		errors.Is(err, autherror.ErrTransactionNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
	case errors.Is(err, autherror.ErrDeliveryFailed):
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to send passkey"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server Error"})
	}
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": message})
}
