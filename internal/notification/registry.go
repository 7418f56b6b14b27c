package notification

import (
	"context"

	"go.uber.org/zap"

	"github.com/chamodt-botcalm/Expense-Tracker/internal/domain"
	autherror "github.com/chamodt-botcalm/Expense-Tracker/internal/errors"
)

// Registry is the durable user → push-token mapping. Registration is
// an idempotent upsert keyed by token; pruning happens only in response
// to delivery-time invalidity signals.
type Registry struct {
	repo   domain.DeviceTokenRepository
	logger *zap.Logger
}

func NewRegistry(repo domain.DeviceTokenRepository, logger *zap.Logger) *Registry {
	return &Registry{repo: repo, logger: logger}
}

func (r *Registry) RegisterToken(ctx context.Context, userID int64, token string) error {
	if userID <= 0 {
		return autherror.NewValidationError("user_id", "valid user_id is required")
	}
	if token == "" {
		return autherror.NewValidationError("fcm_token", "fcm_token is required")
	}
	return r.repo.Upsert(ctx, userID, token)
}

func (r *Registry) TokensFor(ctx context.Context, userID int64) ([]string, error) {
	return r.repo.ListByUser(ctx, userID)
}

func (r *Registry) PruneTokens(ctx context.Context, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}
	r.logger.Info("pruning stale device tokens", zap.Int("count", len(tokens)))
	return r.repo.DeleteTokens(ctx, tokens)
}
