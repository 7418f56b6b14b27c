package dto

type SendPasskeyInput struct {
	Email string `json:"email"`
}

type VerifyPasskeyInput struct {
	Email   string `json:"email"`
	Passkey string `json:"passkey"`
}

type SetPasswordInput struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	SignupToken string `json:"signupToken"`
}
