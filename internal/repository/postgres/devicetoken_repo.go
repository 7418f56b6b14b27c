package postgres

import (
	"context"
	"fmt"

	"github.com/chamodt-botcalm/Expense-Tracker/internal/domain"
)

type DeviceTokenRepository struct {
	db DB
}

func NewDeviceTokenRepository(db DB) *DeviceTokenRepository {
	return &DeviceTokenRepository{db: db}
}

var _ domain.DeviceTokenRepository = (*DeviceTokenRepository)(nil)

// Upsert registers a token for a user. The conflict target is the token
// itself: a token moving to another account is reassigned, last writer
// wins.
func (r *DeviceTokenRepository) Upsert(ctx context.Context, userID int64, token string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO device_tokens (token, user_id, registered_at)
		VALUES ($1, $2, now())
		ON CONFLICT (token)
		DO UPDATE SET
			user_id = EXCLUDED.user_id,
			registered_at = now()
	`, token, userID)
	if err != nil {
		return fmt.Errorf("failed to upsert device token: %w", err)
	}
	return nil
}

func (r *DeviceTokenRepository) ListByUser(ctx context.Context, userID int64) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT token FROM device_tokens WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list device tokens: %w", err)
	}
	defer rows.Close()

	var tokens []string
	for rows.Next() {
		var token string
		if err := rows.Scan(&token); err != nil {
			return nil, fmt.Errorf("failed to scan device token: %w", err)
		}
		tokens = append(tokens, token)
	}
	return tokens, rows.Err()
}

func (r *DeviceTokenRepository) DeleteTokens(ctx context.Context, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}
	_, err := r.db.Exec(ctx, `DELETE FROM device_tokens WHERE token = ANY($1)`, tokens)
	if err != nil {
		return fmt.Errorf("failed to delete device tokens: %w", err)
	}
	return nil
}
