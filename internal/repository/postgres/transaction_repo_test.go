package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	repo "github.com/chamodt-botcalm/Expense-Tracker/internal/repository/postgres"
)

var txColumns = []string{"id", "user_id", "title", "amount", "category", "created_at"}

func TestTransactionRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewTransactionRepository(mock)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO transactions").
			WithArgs(int64(7), "Coffee", -4.5, "Food").
			WillReturnRows(pgxmock.NewRows(txColumns).
				AddRow(int64(1), int64(7), "Coffee", -4.5, "Food", time.Now()))

		tx, err := r.Create(ctx, 7, "Coffee", -4.5, "Food")
		require.NoError(t, err)
		assert.Equal(t, int64(1), tx.ID)
		assert.Equal(t, int64(7), tx.UserID)
		assert.Equal(t, -4.5, tx.Amount)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO transactions").
			WithArgs(int64(7), "Coffee", -4.5, "Food").
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.Create(ctx, 7, "Coffee", -4.5, "Food")
		assert.Error(t, err)
	})
}

func TestTransactionRepository_ListByUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewTransactionRepository(mock)
	ctx := context.Background()

	mock.ExpectQuery("SELECT id, user_id, title").
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows(txColumns).
			AddRow(int64(2), int64(7), "Salary", 3000.0, "Income", time.Now()).
			AddRow(int64(1), int64(7), "Coffee", -4.5, "Food", time.Now()))

	transactions, err := r.ListByUser(ctx, 7)
	require.NoError(t, err)
	require.Len(t, transactions, 2)
	assert.Equal(t, "Salary", transactions[0].Title)
	assert.Equal(t, "Coffee", transactions[1].Title)
}

func TestTransactionRepository_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewTransactionRepository(mock)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, user_id, title").
			WithArgs(int64(1)).
			WillReturnRows(pgxmock.NewRows(txColumns).
				AddRow(int64(1), int64(7), "Coffee", -4.5, "Food", time.Now()))

		tx, err := r.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(7), tx.UserID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, user_id, title").
			WithArgs(int64(99)).
			WillReturnError(pgx.ErrNoRows)

		tx, err := r.GetByID(ctx, 99)
		require.NoError(t, err)
		assert.Nil(t, tx)
	})
}

func TestTransactionRepository_Delete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewTransactionRepository(mock)

	mock.ExpectExec("DELETE FROM transactions").
		WithArgs(int64(1)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	assert.NoError(t, r.Delete(context.Background(), 1))
}

func TestTransactionRepository_Summary(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewTransactionRepository(mock)

	mock.ExpectQuery("SELECT").
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"balance", "income", "expense"}).
			AddRow(2995.5, 3000.0, -4.5))

	summary, err := r.Summary(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 2995.5, summary.Balance)
	assert.Equal(t, 3000.0, summary.Income)
	assert.Equal(t, -4.5, summary.Expense)
}
