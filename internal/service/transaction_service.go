package service

//go:generate mockgen -destination=../mocks/mock_fanout.go -package=mocks github.com/chamodt-botcalm/Expense-Tracker/internal/service FanoutNotifier

import (
	"context"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/chamodt-botcalm/Expense-Tracker/internal/domain"
	"github.com/chamodt-botcalm/Expense-Tracker/internal/dto"
	autherror "github.com/chamodt-botcalm/Expense-Tracker/internal/errors"
)

// FanoutNotifier is what the services trigger after a successful
// record-store mutation. Implementations must never fail the caller.
type FanoutNotifier interface {
	TransactionCreated(ctx context.Context, tx *domain.Transaction)
	TransactionDeleted(ctx context.Context, userID, txID int64, title string)
	ProfileUpdated(ctx context.Context, userID int64)
}

type TransactionService struct {
	repo   domain.TransactionRepository
	users  domain.UserRepository
	fanout FanoutNotifier
	logger *zap.Logger
}

func NewTransactionService(repo domain.TransactionRepository, users domain.UserRepository, fanout FanoutNotifier, logger *zap.Logger) *TransactionService {
	return &TransactionService{
		repo:   repo,
		users:  users,
		fanout: fanout,
		logger: logger,
	}
}

func validateTransactionInput(input dto.CreateTransactionInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return autherror.NewValidationError("title", "title is required")
	}
	if input.Amount == 0 || math.IsNaN(input.Amount) || math.IsInf(input.Amount, 0) {
		return autherror.NewValidationError("amount", "amount must be a non-zero number")
	}
	if strings.TrimSpace(input.Category) == "" {
		return autherror.NewValidationError("category", "category is required")
	}
	if input.UserID <= 0 {
		return autherror.NewValidationError("user_id", "valid user_id is required")
	}
	return nil
}

// Create writes the transaction and then fans the change out. The
// record-store write is the authoritative outcome; fan-out failures
// never surface here.
func (s *TransactionService) Create(ctx context.Context, input dto.CreateTransactionInput) (*domain.Transaction, error) {
	if err := validateTransactionInput(input); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}

	tx, err := s.repo.Create(ctx, input.UserID, strings.TrimSpace(input.Title), input.Amount, strings.TrimSpace(input.Category))
	if err != nil {
		return nil, err
	}

	s.fanout.TransactionCreated(ctx, tx)
	return tx, nil
}

func (s *TransactionService) ListByUser(ctx context.Context, userID int64) ([]domain.Transaction, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Delete looks the row up first so the owner can still be notified
// after it is gone.
func (s *TransactionService) Delete(ctx context.Context, id int64) error {
	tx, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if tx == nil {
		return autherror.ErrTransactionNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.fanout.TransactionDeleted(ctx, tx.UserID, tx.ID, tx.Title)
	return nil
}

func (s *TransactionService) Summary(ctx context.Context, userID int64) (*domain.Summary, error) {
	return s.repo.Summary(ctx, userID)
}
