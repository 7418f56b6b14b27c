package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/chamodt-botcalm/Expense-Tracker/internal/domain"
)

type UserRepository struct {
	db DB
}

func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, email, password, name, profile_photo, theme, currency, date_format, created_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Name,
		&user.ProfilePhoto, &user.Theme, &user.Currency, &user.DateFormat, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1
		LIMIT 1;
	`
	return scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
		LIMIT 1;
	`
	return scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *UserRepository) Create(ctx context.Context, email, passwordHash string) (*domain.User, error) {
	query := `
		INSERT INTO users (email, password)
		VALUES ($1, $2)
		RETURNING ` + userColumns + `;
	`
	user, err := scanUser(r.db.QueryRow(ctx, query, email, passwordHash))
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// UpdateProfile patches only the provided fields, keeping existing
// values through COALESCE.
func (r *UserRepository) UpdateProfile(ctx context.Context, id int64, update domain.ProfileUpdate) (*domain.User, error) {
	if update.Empty() {
		return r.GetByID(ctx, id)
	}

	query := `
		UPDATE users
		SET
			name = COALESCE($2, name),
			profile_photo = COALESCE($3, profile_photo),
			theme = COALESCE($4, theme),
			currency = COALESCE($5, currency),
			date_format = COALESCE($6, date_format)
		WHERE id = $1
		RETURNING ` + userColumns + `;
	`
	return scanUser(r.db.QueryRow(ctx, query, id,
		update.Name, update.ProfilePhoto, update.Theme, update.Currency, update.DateFormat))
}
