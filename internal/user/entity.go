package user

import (
	"time"

	"github.com/jpdeguzman/alkansave/internal/utils"
)

type User struct {
	UserID         uint       `gorm:"primaryKey" json:"user_id"`
	FirstName      string     `gorm:"size:100;not null" json:"first_name"`
	LastName       string     `gorm:"size:100;not null" json:"last_name"`
	Email          string     `gorm:"size:255;uniqueIndex;not null" json:"email"`
	DOB            utils.Date `gorm:"type:date" json:"dob"`
	PasswordHash   string     `gorm:"size:255;not null" json:"-"`
	ProfilePicture *string    `gorm:"size:255" json:"profile_picture,omitempty"`
	Role           string     `gorm:"size:20;not null;default:user" json:"role"`
	AccountStatus  string     `gorm:"size:20;not null;default:Active" json:"account_status"`
	IsDeleted      bool       `gorm:"not null;default:false" json:"-"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
