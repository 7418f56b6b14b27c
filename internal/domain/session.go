package domain

import "time"

// VerificationSession is the in-memory state of one in-flight signup.
// Process-local and volatile: a restart silently invalidates it.
type VerificationSession struct {
	Email                  string
	CodeHash               string
	AttemptsUsed           int
	CodeExpiresAt          time.Time
	LastIssuedAt           time.Time
	ExchangeTokenHash      string
	ExchangeTokenExpiresAt time.Time
}
