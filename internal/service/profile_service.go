package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/chamodt-botcalm/Expense-Tracker/internal/domain"
	"github.com/chamodt-botcalm/Expense-Tracker/internal/dto"
	autherror "github.com/chamodt-botcalm/Expense-Tracker/internal/errors"
)

var allowedDateFormats = map[string]struct{}{
	"DD/MM/YYYY": {},
	"MM/DD/YYYY": {},
	"YYYY-MM-DD": {},
}

type ProfileService struct {
	repo   domain.UserRepository
	fanout FanoutNotifier
	logger *zap.Logger
}

func NewProfileService(repo domain.UserRepository, fanout FanoutNotifier, logger *zap.Logger) *ProfileService {
	return &ProfileService{repo: repo, fanout: fanout, logger: logger}
}

func (s *ProfileService) Get(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}
	return user, nil
}

func validateProfileInput(input dto.UpdateProfileInput) (domain.ProfileUpdate, error) {
	var update domain.ProfileUpdate

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return update, autherror.NewValidationError("name", "name must be a non-empty string")
		}
		update.Name = &name
	}
	if input.ProfilePhoto != nil {
		photo := strings.TrimSpace(*input.ProfilePhoto)
		if photo == "" {
			return update, autherror.NewValidationError("profile_photo", "profile_photo must be a non-empty string")
		}
		update.ProfilePhoto = &photo
	}
	if input.Theme != nil {
		if *input.Theme != "dark" && *input.Theme != "light" {
			return update, autherror.NewValidationError("theme", "theme must be either 'dark' or 'light'")
		}
		update.Theme = input.Theme
	}
	if input.Currency != nil {
		currency := strings.TrimSpace(*input.Currency)
		if currency == "" {
			return update, autherror.NewValidationError("currency", "currency must be a non-empty string")
		}
		update.Currency = &currency
	}
	if input.DateFormat != nil {
		if _, ok := allowedDateFormats[*input.DateFormat]; !ok {
			return update, autherror.NewValidationError("date_format", "date_format is not supported")
		}
		update.DateFormat = input.DateFormat
	}

	return update, nil
}

// Update patches the profile and notifies the user's other devices.
func (s *ProfileService) Update(ctx context.Context, userID int64, input dto.UpdateProfileInput) (*domain.User, error) {
	update, err := validateProfileInput(input)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.UpdateProfile(ctx, userID, update)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}

	s.fanout.ProfileUpdated(ctx, userID)
	return user, nil
}
