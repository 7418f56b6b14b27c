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

	"github.com/chamodt-botcalm/Expense-Tracker/internal/domain"
	repo "github.com/chamodt-botcalm/Expense-Tracker/internal/repository/postgres"
)

var userColumns = []string{"id", "email", "password", "name", "profile_photo", "theme", "currency", "date_format", "created_at"}

func userRow(id int64, email string) *pgxmock.Rows {
	return pgxmock.NewRows(userColumns).
		AddRow(id, email, "hash", nil, nil, nil, nil, nil, time.Now())
}

func TestUserRepository_GetByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewUserRepository(mock)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email").
			WithArgs("test@example.com").
			WillReturnRows(userRow(7, "test@example.com"))

		user, err := r.GetByEmail(ctx, "test@example.com")
		require.NoError(t, err)
		assert.Equal(t, int64(7), user.ID)
		assert.Equal(t, "test@example.com", user.Email)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email").
			WithArgs("missing@example.com").
			WillReturnError(pgx.ErrNoRows)

		user, err := r.GetByEmail(ctx, "missing@example.com")
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email").
			WithArgs("test@example.com").
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.GetByEmail(ctx, "test@example.com")
		assert.Error(t, err)
	})
}

func TestUserRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewUserRepository(mock)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO users").
			WithArgs("new@example.com", "new-hash").
			WillReturnRows(userRow(1, "new@example.com"))

		user, err := r.Create(ctx, "new@example.com", "new-hash")
		require.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO users").
			WithArgs("new@example.com", "new-hash").
			WillReturnError(fmt.Errorf("unique violation"))

		_, err := r.Create(ctx, "new@example.com", "new-hash")
		assert.Error(t, err)
	})
}

func TestUserRepository_UpdateProfile(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewUserRepository(mock)
	ctx := context.Background()

	t.Run("patches provided fields", func(t *testing.T) {
		name := "Chamod"
		theme := "dark"
		update := domain.ProfileUpdate{Name: &name, Theme: &theme}

		mock.ExpectQuery("UPDATE users").
			WithArgs(int64(7), &name, (*string)(nil), &theme, (*string)(nil), (*string)(nil)).
			WillReturnRows(pgxmock.NewRows(userColumns).
				AddRow(int64(7), "test@example.com", "hash", &name, nil, &theme, nil, nil, time.Now()))

		user, err := r.UpdateProfile(ctx, 7, update)
		require.NoError(t, err)
		assert.Equal(t, "Chamod", *user.Name)
		assert.Equal(t, "dark", *user.Theme)
	})

	t.Run("empty patch reads current row", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email").
			WithArgs(int64(7)).
			WillReturnRows(userRow(7, "test@example.com"))

		user, err := r.UpdateProfile(ctx, 7, domain.ProfileUpdate{})
		require.NoError(t, err)
		assert.Equal(t, int64(7), user.ID)
	})
}
