package fanout

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chamodt-botcalm/Expense-Tracker/internal/domain"
)

// Coordinator fans a financial-state mutation out to the realtime room,
// the push transport and a cache-invalidation signal. The three legs
// are isolated: none of them can fail another, and none of them can
// fail the mutation that triggered them, which already committed.
type Coordinator struct {
	realtime domain.RealtimeNotifier
	push     domain.PushNotifier
	logger   *zap.Logger
	wg       sync.WaitGroup
}

func NewCoordinator(realtime domain.RealtimeNotifier, push domain.PushNotifier, logger *zap.Logger) *Coordinator {
	return &Coordinator{realtime: realtime, push: push, logger: logger}
}

// Wait blocks until in-flight push deliveries finish. Used on shutdown
// and by tests; normal request handling never waits.
func (c *Coordinator) Wait() {
	c.wg.Wait()
}

func (c *Coordinator) TransactionCreated(ctx context.Context, tx *domain.Transaction) {
	event := domain.FanoutEvent{
		ID:     uuid.NewString(),
		Kind:   domain.EventTxNew,
		UserID: tx.UserID,
		Title:  "New transaction",
		Body:   fmt.Sprintf("%s (%v)", tx.Title, tx.Amount),
		Payload: map[string]interface{}{
			"title":       "New transaction",
			"body":        fmt.Sprintf("%s (%v)", tx.Title, tx.Amount),
			"transaction": tx,
		},
	}
	c.deliver(ctx, event, map[string]string{
		"type": domain.EventTxNew,
		"txId": strconv.FormatInt(tx.ID, 10),
	})
}

func (c *Coordinator) TransactionDeleted(ctx context.Context, userID, txID int64, title string) {
	body := "A transaction was removed"
	if title != "" {
		body = title + " removed"
	}
	event := domain.FanoutEvent{
		ID:     uuid.NewString(),
		Kind:   domain.EventTxDeleted,
		UserID: userID,
		Title:  "Transaction deleted",
		Body:   body,
		Payload: map[string]interface{}{
			"title":          "Transaction deleted",
			"body":           body,
			"transaction_id": txID,
		},
	}
	c.deliver(ctx, event, map[string]string{
		"type": domain.EventTxDeleted,
		"txId": strconv.FormatInt(txID, 10),
	})
}

func (c *Coordinator) ProfileUpdated(ctx context.Context, userID int64) {
	c.emit(userID, domain.EventProfileUpdated, map[string]interface{}{"user_id": userID})
}

// deliver runs the three legs: realtime event, push notification, and
// the summary-invalidate hint for connected peers. Push runs on its
// own goroutine so a slow transport never delays the realtime emits.
func (c *Coordinator) deliver(ctx context.Context, event domain.FanoutEvent, data map[string]string) {
	c.emit(event.UserID, event.Kind, event.Payload)

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				c.logger.Error("push dispatch panicked",
					zap.String("eventID", event.ID),
					zap.Any("panic", r))
			}
		}()
		if err := c.push.NotifyUser(context.WithoutCancel(ctx), event.UserID, event.Title, event.Body, data); err != nil {
			c.logger.Warn("push dispatch failed",
				zap.String("eventID", event.ID),
				zap.Int64("userID", event.UserID),
				zap.Error(err))
		}
	}()

	c.emit(event.UserID, domain.EventSummaryInvalidate, map[string]interface{}{"user_id": event.UserID})
}

func (c *Coordinator) emit(userID int64, event string, payload interface{}) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("realtime emit panicked",
				zap.String("event", event),
				zap.Any("panic", r))
		}
	}()
	c.realtime.EmitToUser(userID, event, payload)
}
