package service

import (
	"context"
	"strings"
	"unicode"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/chamodt-botcalm/Expense-Tracker/internal/domain"
	"github.com/chamodt-botcalm/Expense-Tracker/internal/dto"
	autherror "github.com/chamodt-botcalm/Expense-Tracker/internal/errors"
	"github.com/chamodt-botcalm/Expense-Tracker/internal/signup"
)

// AuthService covers classic email/password sign-up and sign-in plus
// the passkey-gated signup finalization (set-password).
type AuthService struct {
	repo         domain.UserRepository
	sessions     *signup.Store
	tokenService TokenGenerator
	logger       *zap.Logger
}

func NewAuthService(repo domain.UserRepository, sessions *signup.Store, tokenService TokenGenerator, logger *zap.Logger) *AuthService {
	return &AuthService{
		repo:         repo,
		sessions:     sessions,
		tokenService: tokenService,
		logger:       logger,
	}
}

// ValidatePassword enforces the signup password policy.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return autherror.NewValidationError("password", "password must be at least 8 characters")
	}
	hasUpper := false
	hasDigit := false
	for _, r := range password {
		if unicode.IsUpper(r) {
			hasUpper = true
		}
		if unicode.IsDigit(r) {
			hasDigit = true
		}
	}
	if !hasUpper {
		return autherror.NewValidationError("password", "password must contain at least 1 uppercase letter")
	}
	if !hasDigit {
		return autherror.NewValidationError("password", "password must contain at least 1 number")
	}
	return nil
}

func (s *AuthService) SignUp(ctx context.Context, input dto.SignUpInput) (*domain.User, error) {
	if !strings.Contains(input.Email, "@") {
		return nil, autherror.NewValidationError("email", "valid email is required")
	}
	if len(input.Password) < 6 {
		return nil, autherror.NewValidationError("password", "password must be at least 6 characters")
	}

	email := signup.NormalizeEmail(input.Email)

	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, autherror.ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.Create(ctx, email, string(hash))
	if err != nil {
		return nil, err
	}

	s.logger.Info("user created", zap.Int64("userID", user.ID))
	return user, nil
}

func (s *AuthService) SignIn(ctx context.Context, input dto.SignInInput) (*domain.User, *dto.TokenResponse, error) {
	email := signup.NormalizeEmail(input.Email)

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, nil, err
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return nil, nil, autherror.ErrInvalidCredentials
	}

	accessToken, refreshToken, _, err := s.tokenService.Generate(user.ID, user.Email)
	if err != nil {
		return nil, nil, err
	}

	return user, &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// SetPassword finalizes a passkey-verified signup: the exchange token
// authorizes account creation, and success consumes the session so the
// token is single-use.
func (s *AuthService) SetPassword(ctx context.Context, input dto.SetPasswordInput) (*domain.User, error) {
	email := signup.NormalizeEmail(input.Email)

	if err := s.sessions.VerifyExchangeToken(email, input.SignupToken); err != nil {
		return nil, err
	}

	if err := ValidatePassword(input.Password); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		s.sessions.Consume(email)
		return nil, autherror.ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.Create(ctx, email, string(hash))
	if err != nil {
		return nil, err
	}

	s.sessions.Consume(email)
	s.logger.Info("account created via passkey signup", zap.Int64("userID", user.ID))
	return user, nil
}
