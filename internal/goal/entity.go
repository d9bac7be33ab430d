package goal

import (
	"time"

	"github.com/jpdeguzman/alkansave/internal/utils"
)

type Goal struct {
	GoalID         uint        `gorm:"primaryKey" json:"goal_id"`
	UserID         uint        `gorm:"not null;index" json:"user_id"`
	CategoryID     uint        `gorm:"not null" json:"category_id"`
	GoalName       string      `gorm:"size:255;not null" json:"goal_name"`
	TargetAmount   float64     `gorm:"not null" json:"target_amount"`
	SavedAmount    float64     `gorm:"not null;default:0" json:"saved_amount"`
	Status         GoalStatus  `gorm:"size:20;not null;default:Active" json:"status"`
	CompletionDate *utils.Date `gorm:"type:date" json:"completion_date,omitempty"`
	IsDeleted      bool        `gorm:"not null;default:false" json:"-"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}
