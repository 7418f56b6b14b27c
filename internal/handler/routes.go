package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chamodt-botcalm/Expense-Tracker/internal/realtime"
)

// Handlers bundles everything RegisterRoutes needs to wire the app.
type Handlers struct {
	Auth         *AuthHandler
	Signup       *SignupHandler
	Transaction  *TransactionHandler
	Profile      *ProfileHandler
	Notification *NotificationHandler
	Hub          *realtime.Hub
}

func RegisterRoutes(app *fiber.App, h Handlers) {
	auth := app.Group("/api/auth")
	auth.Post("/sign-up", h.Auth.SignUp)
	auth.Post("/sign-in", h.Auth.SignIn)
	auth.Post("/send-passkey", h.Signup.SendPasskey)
	auth.Post("/verify-passkey", h.Signup.VerifyPasskey)
	auth.Post("/set-password", h.Auth.SetPassword)

	profile := app.Group("/api/profile")
	profile.Get("/:user_id", h.Profile.Get)
	profile.Put("/:user_id", h.Profile.Update)

	tx := app.Group("/api/transaction")
	tx.Post("/", h.Transaction.Create)
	tx.Get("/summary/:user_id", h.Transaction.Summary)
	tx.Get("/:user_id", h.Transaction.ListByUser)
	tx.Delete("/:id", h.Transaction.Delete)

	app.Post("/api/notifications/save-token", h.Notification.SaveToken)

	app.Use("/ws", realtime.UpgradeRequired)
	app.Get("/ws", h.Hub.Handler())
}
