package dto

type UpdateProfileInput struct {
	Name         *string `json:"name"`
	ProfilePhoto *string `json:"profile_photo"`
	Theme        *string `json:"theme"`
	Currency     *string `json:"currency"`
	DateFormat   *string `json:"date_format"`
}
