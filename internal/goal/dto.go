package goal

import (
	"time"

	"github.com/jpdeguzman/alkansave/internal/utils"
)

type CreateGoalDTO struct {
	CategoryID   uint    `json:"category_id"`
	GoalName     string  `json:"goal_name"`
	TargetAmount float64 `json:"target_amount"`
}

type UpdateGoalDTO struct {
	CategoryID   *uint    `json:"category_id"`
	GoalName     *string  `json:"goal_name"`
	TargetAmount *float64 `json:"target_amount"`
}

type DepositDTO struct {
	Amount    float64 `json:"amount"`
	DateSaved string  `json:"date_saved"`
}

type GoalResponse struct {
	GoalID         uint        `json:"goal_id"`
	CategoryID     uint        `json:"category_id"`
	GoalName       string      `json:"goal_name"`
	TargetAmount   float64     `json:"target_amount"`
	SavedAmount    float64     `json:"saved_amount"`
	Status         GoalStatus  `json:"status"`
	CompletionDate *utils.Date `json:"completion_date,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}
