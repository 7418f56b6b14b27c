package dto

type SaveTokenInput struct {
	UserID   int64  `json:"user_id"`
	FCMToken string `json:"fcm_token"`
}
