package signup

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/chamodt-botcalm/Expense-Tracker/internal/domain"
	autherror "github.com/chamodt-botcalm/Expense-Tracker/internal/errors"
)

// sessionStore abstracts the backing map so a durable store can be
// swapped in without touching the state machine.
type sessionStore interface {
	Get(email string) (*domain.VerificationSession, bool)
	Set(email string, session *domain.VerificationSession)
	Delete(email string)
}

type memoryStore struct {
	mu       sync.Mutex
	sessions map[string]*domain.VerificationSession
}

func newMemoryStore() *memoryStore {
	return &memoryStore{sessions: make(map[string]*domain.VerificationSession)}
}

func (m *memoryStore) Get(email string) (*domain.VerificationSession, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[email]
	return s, ok
}

func (m *memoryStore) Set(email string, session *domain.VerificationSession) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[email] = session
}

func (m *memoryStore) Delete(email string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, email)
}

// Store holds short-lived signup sessions keyed by normalized email and
// drives them through issue, verify, token-exchange and consume.
//
// Expiry is checked lazily at read time; there is no sweeper. Memory is
// bounded by the number of distinct emails attempting signup.
type Store struct {
	sessions    sessionStore
	codeTTL     time.Duration
	tokenTTL    time.Duration
	cooldown    time.Duration
	maxAttempts int
	now         func() time.Time
}

type StoreOption func(*Store)

// WithClock overrides the time source. Tests use it to step through
// cooldown and expiry windows.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) { s.now = now }
}

func NewStore(codeTTL, tokenTTL, cooldown time.Duration, maxAttempts int, opts ...StoreOption) *Store {
	s := &Store{
		sessions:    newMemoryStore(),
		codeTTL:     codeTTL,
		tokenTTL:    tokenTTL,
		cooldown:    cooldown,
		maxAttempts: maxAttempts,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func hashValue(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}

func generateExchangeToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate signup token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// Issue overwrites any session for the email with a fresh code hash,
// zero attempts and a new expiry. Exchange-token fields earned by a
// prior verification are carried over, so a resend never revokes a
// token another tab already holds.
func (s *Store) Issue(email, code string) {
	now := s.now()
	next := &domain.VerificationSession{
		Email:         email,
		CodeHash:      hashValue(code),
		AttemptsUsed:  0,
		CodeExpiresAt: now.Add(s.codeTTL),
		LastIssuedAt:  now,
	}
	if existing, ok := s.sessions.Get(email); ok {
		next.ExchangeTokenHash = existing.ExchangeTokenHash
		next.ExchangeTokenExpiresAt = existing.ExchangeTokenExpiresAt
	}
	s.sessions.Set(email, next)
}

// CheckCooldown reports whether a new code may be issued. When denied,
// waitSeconds is the remaining cooldown rounded up.
func (s *Store) CheckCooldown(email string) (allowed bool, waitSeconds int) {
	session, ok := s.sessions.Get(email)
	if !ok {
		return true, 0
	}

	elapsed := s.now().Sub(session.LastIssuedAt)
	if elapsed < s.cooldown {
		return false, int(math.Ceil((s.cooldown - elapsed).Seconds()))
	}
	return true, 0
}

// Verify checks a submitted code. On success it attaches a single-use
// exchange token to the session and returns the plaintext token, which
// is never stored. Checks run not-found, expired, attempts-exceeded,
// hash-compare, in that order, so an expired session never burns an
// attempt.
func (s *Store) Verify(email, code string) (string, error) {
	session, ok := s.sessions.Get(email)
	if !ok {
		return "", autherror.ErrPasskeyNotFound
	}

	if s.now().After(session.CodeExpiresAt) {
		s.sessions.Delete(email)
		return "", autherror.ErrPasskeyExpired
	}

	if session.AttemptsUsed >= s.maxAttempts {
		s.sessions.Delete(email)
		return "", autherror.ErrMaxAttemptsExceeded
	}

	session.AttemptsUsed++
	s.sessions.Set(email, session)

	if hashValue(code) != session.CodeHash {
		// Fail closed the moment the last attempt is burned, so the
		// final wrong guess reads as exhaustion rather than one more
		// invalid-code response against a dead session.
		if session.AttemptsUsed >= s.maxAttempts {
			s.sessions.Delete(email)
			return "", autherror.ErrMaxAttemptsExceeded
		}
		return "", autherror.ErrInvalidPasskey
	}

	token, err := generateExchangeToken()
	if err != nil {
		return "", err
	}
	session.ExchangeTokenHash = hashValue(token)
	session.ExchangeTokenExpiresAt = s.now().Add(s.tokenTTL)
	s.sessions.Set(email, session)

	return token, nil
}

// VerifyExchangeToken validates a previously issued exchange token.
// The session is retained; Consume removes it once the account exists.
func (s *Store) VerifyExchangeToken(email, token string) error {
	session, ok := s.sessions.Get(email)
	if !ok || session.ExchangeTokenHash == "" {
		return autherror.ErrInvalidSignupSession
	}

	if s.now().After(session.ExchangeTokenExpiresAt) {
		return autherror.ErrSignupSessionExpired
	}

	if hashValue(token) != session.ExchangeTokenHash {
		return autherror.ErrInvalidSignupToken
	}

	return nil
}

// Consume unconditionally deletes the session. Called after account
// creation or an explicit cancel; the exchange token is single-use.
func (s *Store) Consume(email string) {
	s.sessions.Delete(email)
}
