package passwordreset

import "time"

type PasswordReset struct {
	ResetID          uint      `gorm:"primaryKey" json:"reset_id"`
	UserID           uint      `gorm:"not null;index" json:"user_id"`
	Email            string    `gorm:"size:255;not null;index" json:"email"`
	VerificationCode string    `gorm:"size:6;not null" json:"-"`
	Expiration       time.Time `gorm:"not null" json:"expiration"`
	Used             bool      `gorm:"not null;default:false" json:"used"`
	CreatedAt        time.Time `json:"created_at"`
}
