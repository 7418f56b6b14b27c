package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/chamodt-botcalm/Expense-Tracker/internal/domain"
	"github.com/chamodt-botcalm/Expense-Tracker/internal/dto"
	"github.com/chamodt-botcalm/Expense-Tracker/internal/service"
)

type TransactionHandler struct {
	txService *service.TransactionService
}

func NewTransactionHandler(txService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{txService: txService}
}

func parseIDParam(c *fiber.Ctx, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func toTransactionOutput(tx *domain.Transaction) dto.TransactionOutput {
	return dto.TransactionOutput{
		ID:        tx.ID,
		UserID:    tx.UserID,
		Title:     tx.Title,
		Amount:    tx.Amount,
		Category:  tx.Category,
		CreatedAt: tx.CreatedAt,
	}
}

func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var input dto.CreateTransactionInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid input")
	}

	tx, err := h.txService.Create(c.Context(), input)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":     "Transaction created",
		"transaction": toTransactionOutput(tx),
	})
}

func (h *TransactionHandler) ListByUser(c *fiber.Ctx) error {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return badRequest(c, "valid user_id is required")
	}

	txs, err := h.txService.ListByUser(c.Context(), userID)
	if err != nil {
		return fail(c, err)
	}

	out := make([]dto.TransactionOutput, 0, len(txs))
	for i := range txs {
		out = append(out, toTransactionOutput(&txs[i]))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":      "OK",
		"transactions": out,
	})
}

func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return badRequest(c, "valid transaction id is required")
	}

	if err := h.txService.Delete(c.Context(), id); err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Transaction deleted",
	})
}

func (h *TransactionHandler) Summary(c *fiber.Ctx) error {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return badRequest(c, "valid user_id is required")
	}

	summary, err := h.txService.Summary(c.Context(), userID)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "OK",
		"summary": dto.SummaryOutput{
			Balance: summary.Balance,
			Income:  summary.Income,
			Expense: summary.Expense,
		},
	})
}
