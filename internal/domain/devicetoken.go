package domain

import "time"

// DeviceToken maps a user to one push-messaging token. A token is
// globally unique: re-registering it under another user reassigns it.
type DeviceToken struct {
	UserID       int64
	Token        string
	RegisteredAt time.Time
}
