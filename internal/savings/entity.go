package savings

import "github.com/jpdeguzman/alkansave/internal/utils"

// Transaction is one row of the append-only savings ledger.
type Transaction struct {
	TransactionID uint       `gorm:"primaryKey" json:"transaction_id"`
	GoalID        uint       `gorm:"not null;index" json:"goal_id"`
	Amount        float64    `gorm:"not null" json:"amount"`
	DateSaved     utils.Date `gorm:"type:date;not null" json:"date_saved"`
}

func (Transaction) TableName() string {
	return "savings_transactions"
}
