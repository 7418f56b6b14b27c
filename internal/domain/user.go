package domain

import "time"

type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Name         *string
	ProfilePhoto *string
	Theme        *string
	Currency     *string
	DateFormat   *string
	CreatedAt    time.Time
}

// ProfileUpdate carries a partial profile patch. Nil fields are left
// unchanged by the repository.
type ProfileUpdate struct {
	Name         *string
	ProfilePhoto *string
	Theme        *string
	Currency     *string
	DateFormat   *string
}

func (u ProfileUpdate) Empty() bool {
	return u.Name == nil && u.ProfilePhoto == nil && u.Theme == nil &&
		u.Currency == nil && u.DateFormat == nil
}
