package domain

//go:generate mockgen -destination=../mocks/mock_user_repository.go -package=mocks github.com/chamodt-botcalm/Expense-Tracker/internal/domain UserRepository
//go:generate mockgen -destination=../mocks/mock_transaction_repository.go -package=mocks github.com/chamodt-botcalm/Expense-Tracker/internal/domain TransactionRepository
//go:generate mockgen -destination=../mocks/mock_device_token_repository.go -package=mocks github.com/chamodt-botcalm/Expense-Tracker/internal/domain DeviceTokenRepository
//go:generate mockgen -destination=../mocks/mock_email_sender.go -package=mocks github.com/chamodt-botcalm/Expense-Tracker/internal/domain EmailSender
//go:generate mockgen -destination=../mocks/mock_notifiers.go -package=mocks github.com/chamodt-botcalm/Expense-Tracker/internal/domain RealtimeNotifier,PushNotifier

import "context"

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	Create(ctx context.Context, email, passwordHash string) (*User, error)
	UpdateProfile(ctx context.Context, id int64, update ProfileUpdate) (*User, error)
}

type TransactionRepository interface {
	Create(ctx context.Context, userID int64, title string, amount float64, category string) (*Transaction, error)
	ListByUser(ctx context.Context, userID int64) ([]Transaction, error)
	GetByID(ctx context.Context, id int64) (*Transaction, error)
	Delete(ctx context.Context, id int64) error
	Summary(ctx context.Context, userID int64) (*Summary, error)
}

type DeviceTokenRepository interface {
	Upsert(ctx context.Context, userID int64, token string) error
	ListByUser(ctx context.Context, userID int64) ([]string, error)
	DeleteTokens(ctx context.Context, tokens []string) error
}

// EmailSender delivers the plaintext passkey. Fire-and-forget from the
// caller's perspective: a failure never rolls back an issued session.
type EmailSender interface {
	SendPasskey(ctx context.Context, to, passkey string) error
}

// RealtimeNotifier delivers an event to every live connection in a
// user's room. Zero members is a silent no-op.
type RealtimeNotifier interface {
	EmitToUser(userID int64, event string, payload interface{})
}

// PushNotifier reaches a user's registered devices through the push
// transport. Errors are advisory; callers must not fail on them.
type PushNotifier interface {
	NotifyUser(ctx context.Context, userID int64, title, body string, data map[string]string) error
}
