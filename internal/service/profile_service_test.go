package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/chamodt-botcalm/Expense-Tracker/internal/domain"
	"github.com/chamodt-botcalm/Expense-Tracker/internal/dto"
	autherror "github.com/chamodt-botcalm/Expense-Tracker/internal/errors"
	"github.com/chamodt-botcalm/Expense-Tracker/internal/mocks"
	"github.com/chamodt-botcalm/Expense-Tracker/internal/service"
)

func strPtr(s string) *string { return &s }

func TestProfileService_Get_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	mockFanout := mocks.NewMockFanoutNotifier(ctrl)

	s := service.NewProfileService(mockRepo, mockFanout, zap.NewNop())

	user := &domain.User{ID: 7, Email: "test@example.com"}
	mockRepo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(user, nil)

	got, err := s.Get(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestProfileService_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	mockFanout := mocks.NewMockFanoutNotifier(ctrl)

	s := service.NewProfileService(mockRepo, mockFanout, zap.NewNop())

	mockRepo.EXPECT().GetByID(gomock.Any(), int64(99)).Return(nil, nil)

	got, err := s.Get(context.Background(), 99)

	assert.Nil(t, got)
	assert.Equal(t, autherror.ErrUserNotFound, err)
}

func TestProfileService_Update_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	mockFanout := mocks.NewMockFanoutNotifier(ctrl)

	s := service.NewProfileService(mockRepo, mockFanout, zap.NewNop())

	input := dto.UpdateProfileInput{
		Name:  strPtr("Alice"),
		Theme: strPtr("dark"),
	}
	updated := &domain.User{ID: 7, Email: "test@example.com", Name: strPtr("Alice"), Theme: strPtr("dark")}

	mockRepo.EXPECT().
		UpdateProfile(gomock.Any(), int64(7), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, update domain.ProfileUpdate) (*domain.User, error) {
			assert.Equal(t, "Alice", *update.Name)
			assert.Equal(t, "dark", *update.Theme)
			assert.Nil(t, update.Currency)
			return updated, nil
		})
	mockFanout.EXPECT().ProfileUpdated(gomock.Any(), int64(7))

	got, err := s.Update(context.Background(), 7, input)

	assert.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestProfileService_Update_InvalidTheme(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	mockFanout := mocks.NewMockFanoutNotifier(ctrl)

	s := service.NewProfileService(mockRepo, mockFanout, zap.NewNop())

	got, err := s.Update(context.Background(), 7, dto.UpdateProfileInput{Theme: strPtr("solarized")})

	assert.Nil(t, got)
	var validationErr *autherror.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "theme", validationErr.Field)
}

func TestProfileService_Update_InvalidDateFormat(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	mockFanout := mocks.NewMockFanoutNotifier(ctrl)

	s := service.NewProfileService(mockRepo, mockFanout, zap.NewNop())

	got, err := s.Update(context.Background(), 7, dto.UpdateProfileInput{DateFormat: strPtr("DD.MM.YY")})

	assert.Nil(t, got)
	var validationErr *autherror.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "date_format", validationErr.Field)
}

func TestProfileService_Update_UnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	mockFanout := mocks.NewMockFanoutNotifier(ctrl)

	s := service.NewProfileService(mockRepo, mockFanout, zap.NewNop())

	mockRepo.EXPECT().UpdateProfile(gomock.Any(), int64(99), gomock.Any()).Return(nil, nil)

	got, err := s.Update(context.Background(), 99, dto.UpdateProfileInput{Name: strPtr("Alice")})

	assert.Nil(t, got)
	assert.Equal(t, autherror.ErrUserNotFound, err)
}
