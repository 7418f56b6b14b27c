package postgres_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	repo "github.com/chamodt-botcalm/Expense-Tracker/internal/repository/postgres"
)

func TestDeviceTokenRepository_Upsert(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewDeviceTokenRepository(mock)

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO device_tokens").
			WithArgs("tok-1", int64(7)).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		assert.NoError(t, r.Upsert(context.Background(), 7, "tok-1"))
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO device_tokens").
			WithArgs("tok-1", int64(7)).
			WillReturnError(fmt.Errorf("db error"))

		assert.Error(t, r.Upsert(context.Background(), 7, "tok-1"))
	})
}

func TestDeviceTokenRepository_ListByUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewDeviceTokenRepository(mock)

	t.Run("returns tokens", func(t *testing.T) {
		mock.ExpectQuery("SELECT token FROM device_tokens").
			WithArgs(int64(7)).
			WillReturnRows(pgxmock.NewRows([]string{"token"}).
				AddRow("tok-1").
				AddRow("tok-2"))

		tokens, err := r.ListByUser(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, []string{"tok-1", "tok-2"}, tokens)
	})

	t.Run("no tokens", func(t *testing.T) {
		mock.ExpectQuery("SELECT token FROM device_tokens").
			WithArgs(int64(8)).
			WillReturnRows(pgxmock.NewRows([]string{"token"}))

		tokens, err := r.ListByUser(context.Background(), 8)
		require.NoError(t, err)
		assert.Empty(t, tokens)
	})
}

func TestDeviceTokenRepository_DeleteTokens(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewDeviceTokenRepository(mock)

	t.Run("bulk delete", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM device_tokens").
			WithArgs([]string{"tok-1", "tok-2"}).
			WillReturnResult(pgxmock.NewResult("DELETE", 2))

		assert.NoError(t, r.DeleteTokens(context.Background(), []string{"tok-1", "tok-2"}))
	})

	t.Run("empty slice is a no-op", func(t *testing.T) {
		// No expectation registered: any query would fail the test.
		assert.NoError(t, r.DeleteTokens(context.Background(), nil))
	})
}
