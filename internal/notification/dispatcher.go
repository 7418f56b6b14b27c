package notification

//go:generate mockgen -destination=../mocks/mock_push_client.go -package=mocks github.com/chamodt-botcalm/Expense-Tracker/internal/notification PushClient,TokenSource

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// SendResult pairs one token with its delivery outcome. Unregistered
// marks tokens the transport reports as permanently dead; everything
// else is treated as transient.
type SendResult struct {
	Token        string
	Unregistered bool
	Err          error
}

// PushClient is the external push-messaging collaborator.
type PushClient interface {
	SendMulticast(ctx context.Context, tokens []string, title, body string, data map[string]string) ([]SendResult, error)
}

// ClientFactory builds the push client on first use. An error means
// the transport is unconfigured and the dispatcher stays disabled.
type ClientFactory func(ctx context.Context) (PushClient, error)

// TokenSource is the registry view the dispatcher needs.
type TokenSource interface {
	TokensFor(ctx context.Context, userID int64) ([]string, error)
	PruneTokens(ctx context.Context, tokens []string) error
}

// Dispatcher sends best-effort push notifications to all of a user's
// devices. Push is an enhancement over the realtime channel, so a
// missing or broken transport degrades to a silent no-op rather than
// an error.
type Dispatcher struct {
	tokens  TokenSource
	factory ClientFactory
	logger  *zap.Logger

	initOnce sync.Once
	client   PushClient
}

func NewDispatcher(tokens TokenSource, factory ClientFactory, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{tokens: tokens, factory: factory, logger: logger}
}

func (d *Dispatcher) init(ctx context.Context) {
	d.initOnce.Do(func() {
		client, err := d.factory(ctx)
		if err != nil {
			// Disabled for the process lifetime; every later call no-ops.
			d.logger.Warn("push transport unavailable, notifications disabled", zap.Error(err))
			return
		}
		d.client = client
	})
}

// NotifyUser multicasts one notification to every registered token of
// the user. Fire-and-forget: per-token transient failures are logged,
// permanently dead tokens are pruned, nothing is retried.
func (d *Dispatcher) NotifyUser(ctx context.Context, userID int64, title, body string, data map[string]string) error {
	d.init(ctx)
	if d.client == nil {
		return nil
	}

	tokens, err := d.tokens.TokensFor(ctx, userID)
	if err != nil {
		return err
	}
	if len(tokens) == 0 {
		return nil
	}

	results, err := d.client.SendMulticast(ctx, tokens, title, body, data)
	if err != nil {
		d.logger.Error("push multicast failed",
			zap.Int64("userID", userID),
			zap.Error(err))
		return err
	}

	var stale []string
	for _, res := range results {
		switch {
		case res.Err == nil:
		case res.Unregistered:
			stale = append(stale, res.Token)
		default:
			d.logger.Warn("push delivery failed for token",
				zap.Int64("userID", userID),
				zap.Error(res.Err))
		}
	}

	if len(stale) > 0 {
		if err := d.tokens.PruneTokens(ctx, stale); err != nil {
			d.logger.Error("failed to prune stale tokens", zap.Error(err))
		}
	}

	return nil
}
