package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chamodt-botcalm/Expense-Tracker/internal/domain"
	"github.com/chamodt-botcalm/Expense-Tracker/internal/dto"
	"github.com/chamodt-botcalm/Expense-Tracker/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func toUserOutput(user *domain.User) dto.UserOutput {
	return dto.UserOutput{
		ID:           user.ID,
		Email:        user.Email,
		Name:         user.Name,
		ProfilePhoto: user.ProfilePhoto,
		Theme:        user.Theme,
		Currency:     user.Currency,
		DateFormat:   user.DateFormat,
		CreatedAt:    user.CreatedAt,
	}
}

func (h *AuthHandler) SignUp(c *fiber.Ctx) error {
	var input dto.SignUpInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid input")
	}

	user, err := h.authService.SignUp(c.Context(), input)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Account created",
		"user":    toUserOutput(user),
	})
}

func (h *AuthHandler) SignIn(c *fiber.Ctx) error {
	var input dto.SignInInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid input")
	}

	user, tokens, err := h.authService.SignIn(c.Context(), input)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Signed in",
		"user":    toUserOutput(user),
		"tokens":  tokens,
	})
}

// SetPassword finalizes a passkey-verified signup.
func (h *AuthHandler) SetPassword(c *fiber.Ctx) error {
	var input dto.SetPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid input")
	}

	user, err := h.authService.SetPassword(c.Context(), input)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Account created",
		"user":    toUserOutput(user),
	})
}
