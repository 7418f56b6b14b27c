package dto

import "time"

type SignUpInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignInInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserOutput struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Name         *string   `json:"name,omitempty"`
	ProfilePhoto *string   `json:"profile_photo,omitempty"`
	Theme        *string   `json:"theme,omitempty"`
	Currency     *string   `json:"currency,omitempty"`
	DateFormat   *string   `json:"date_format,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
