package passwordreset

type RequestResetDTO struct {
	Email string `json:"email"`
}

type VerifyCodeDTO struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

type ConfirmResetDTO struct {
	Email       string `json:"email"`
	Code        string `json:"code"`
	NewPassword string `json:"new_password"`
}
