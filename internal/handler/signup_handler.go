package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chamodt-botcalm/Expense-Tracker/internal/dto"
	"github.com/chamodt-botcalm/Expense-Tracker/internal/signup"
)

// SignupHandler covers the passkey leg of signup: issuing the emailed
// passkey and exchanging it for a signup token.
type SignupHandler struct {
	issuer *signup.Issuer
	store  *signup.Store
}

func NewSignupHandler(issuer *signup.Issuer, store *signup.Store) *SignupHandler {
	return &SignupHandler{issuer: issuer, store: store}
}

func (h *SignupHandler) SendPasskey(c *fiber.Ctx) error {
	var input dto.SendPasskeyInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid input")
	}

	if err := h.issuer.RequestPasskey(c.Context(), input.Email); err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Passkey sent",
	})
}

func (h *SignupHandler) VerifyPasskey(c *fiber.Ctx) error {
	var input dto.VerifyPasskeyInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid input")
	}

	token, err := h.store.Verify(signup.NormalizeEmail(input.Email), input.Passkey)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":     "Passkey verified",
		"signupToken": token,
	})
}
