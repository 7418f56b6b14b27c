package notification_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	autherror "github.com/chamodt-botcalm/Expense-Tracker/internal/errors"
	"github.com/chamodt-botcalm/Expense-Tracker/internal/mocks"
	"github.com/chamodt-botcalm/Expense-Tracker/internal/notification"
)

func TestRegistry_RegisterToken_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDeviceTokenRepository(ctrl)
	r := notification.NewRegistry(mockRepo, zap.NewNop())

	mockRepo.EXPECT().Upsert(gomock.Any(), int64(7), "token-abc").Return(nil)

	err := r.RegisterToken(context.Background(), 7, "token-abc")

	assert.NoError(t, err)
}

func TestRegistry_RegisterToken_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDeviceTokenRepository(ctrl)
	r := notification.NewRegistry(mockRepo, zap.NewNop())

	var validationErr *autherror.ValidationError

	err := r.RegisterToken(context.Background(), 0, "token-abc")
	assert.ErrorAs(t, err, &validationErr)

	err = r.RegisterToken(context.Background(), 7, "")
	assert.ErrorAs(t, err, &validationErr)
}

func TestRegistry_PruneTokens_EmptyIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDeviceTokenRepository(ctrl)
	r := notification.NewRegistry(mockRepo, zap.NewNop())

	err := r.PruneTokens(context.Background(), nil)

	assert.NoError(t, err)
}

func TestRegistry_PruneTokens(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDeviceTokenRepository(ctrl)
	r := notification.NewRegistry(mockRepo, zap.NewNop())

	stale := []string{"dead-1", "dead-2"}
	mockRepo.EXPECT().DeleteTokens(gomock.Any(), stale).Return(nil)

	err := r.PruneTokens(context.Background(), stale)

	assert.NoError(t, err)
}
