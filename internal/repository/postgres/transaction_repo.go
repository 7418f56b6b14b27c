package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/chamodt-botcalm/Expense-Tracker/internal/domain"
)

type TransactionRepository struct {
	db DB
}

func NewTransactionRepository(db DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(ctx context.Context, userID int64, title string, amount float64, category string) (*domain.Transaction, error) {
	query := `
		INSERT INTO transactions (user_id, title, amount, category)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, title, amount, category, created_at;
	`
	var tx domain.Transaction
	err := r.db.QueryRow(ctx, query, userID, title, amount, category).
		Scan(&tx.ID, &tx.UserID, &tx.Title, &tx.Amount, &tx.Category, &tx.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	return &tx, nil
}

func (r *TransactionRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Transaction, error) {
	query := `
		SELECT id, user_id, title, amount, category, created_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var tx domain.Transaction
		if err := rows.Scan(&tx.ID, &tx.UserID, &tx.Title, &tx.Amount, &tx.Category, &tx.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, tx)
	}
	return transactions, rows.Err()
}

func (r *TransactionRepository) GetByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	query := `
		SELECT id, user_id, title, amount, category, created_at
		FROM transactions
		WHERE id = $1
		LIMIT 1;
	`
	var tx domain.Transaction
	err := r.db.QueryRow(ctx, query, id).
		Scan(&tx.ID, &tx.UserID, &tx.Title, &tx.Amount, &tx.Category, &tx.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &tx, nil
}

func (r *TransactionRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	return err
}

// Summary aggregates balance, income and expense in one round trip.
func (r *TransactionRepository) Summary(ctx context.Context, userID int64) (*domain.Summary, error) {
	query := `
		SELECT
			COALESCE(SUM(amount), 0) AS balance,
			COALESCE(SUM(amount) FILTER (WHERE amount > 0), 0) AS income,
			COALESCE(SUM(amount) FILTER (WHERE amount < 0), 0) AS expense
		FROM transactions
		WHERE user_id = $1;
	`
	var summary domain.Summary
	err := r.db.QueryRow(ctx, query, userID).
		Scan(&summary.Balance, &summary.Income, &summary.Expense)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate summary: %w", err)
	}
	return &summary, nil
}
