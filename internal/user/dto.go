package user

type RegisterDTO struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	DOB       string `json:"dob"`
	Password  string `json:"password"`
}

type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileInput carries the multipart form fields of the edit-profile
// flow. AvatarPath is set by the handler after the upload has been staged.
type UpdateProfileInput struct {
	FirstName   string
	LastName    string
	Email       string
	DOB         string
	Password    string
	NewPassword string
	AvatarPath  string
}

type ProfileData struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	DOB       string `json:"dob"`
	Email     string `json:"email"`
	Avatar    string `json:"avatar"`
	SessionID string `json:"session_id"`
}

type UpdateResult struct {
	Avatar    *string `json:"avatar"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
}
