package signup

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"go.uber.org/zap"

	"github.com/chamodt-botcalm/Expense-Tracker/internal/domain"
	autherror "github.com/chamodt-botcalm/Expense-Tracker/internal/errors"
)

// CodeFunc produces a 6-digit passkey. Injectable so tests can pin the
// generated code.
type CodeFunc func() (string, error)

// GeneratePasskey draws uniformly from [100000, 999999]. The passkey
// only proves control of an inbox; account creation itself is always
// authorized by the exchange token.
func GeneratePasskey() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("failed to generate passkey: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

// Issuer gates passkey issuance: structural email check, duplicate
// account check, resend cooldown, then issue and email.
type Issuer struct {
	store    *Store
	users    domain.UserRepository
	email    domain.EmailSender
	generate CodeFunc
	logger   *zap.Logger
}

type IssuerOption func(*Issuer)

func WithCodeFunc(fn CodeFunc) IssuerOption {
	return func(i *Issuer) { i.generate = fn }
}

func NewIssuer(store *Store, users domain.UserRepository, email domain.EmailSender, logger *zap.Logger, opts ...IssuerOption) *Issuer {
	i := &Issuer{
		store:    store,
		users:    users,
		email:    email,
		generate: GeneratePasskey,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// NormalizeEmail lowercases and trims; sessions are keyed by the result.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// RequestPasskey issues a fresh passkey for the email and sends it.
// An email delivery failure surfaces as ErrDeliveryFailed but leaves
// the session issued; the caller may resend after the cooldown.
func (i *Issuer) RequestPasskey(ctx context.Context, email string) error {
	if !strings.Contains(email, "@") {
		return autherror.NewValidationError("email", "valid email is required")
	}
	normalized := NormalizeEmail(email)

	existing, err := i.users.GetByEmail(ctx, normalized)
	if err != nil {
		return err
	}
	if existing != nil {
		return autherror.ErrEmailAlreadyRegistered
	}

	if allowed, wait := i.store.CheckCooldown(normalized); !allowed {
		return &autherror.RateLimitError{WaitSeconds: wait}
	}

	code, err := i.generate()
	if err != nil {
		return err
	}
	i.store.Issue(normalized, code)

	if err := i.email.SendPasskey(ctx, normalized, code); err != nil {
		i.logger.Error("failed to send passkey email",
			zap.String("email", normalized),
			zap.Error(err))
		return autherror.ErrDeliveryFailed
	}

	i.logger.Info("passkey issued", zap.String("email", normalized))
	return nil
}
