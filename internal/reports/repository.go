package reports

import (
	"time"

	"gorm.io/gorm"

	"github.com/jpdeguzman/alkansave/internal/utils"
)

// GrowthRow is one ledger entry joined with its goal and category, ordered
// by date. Month bucketing happens in the service so the query stays
// portable across drivers.
type GrowthRow struct {
	DateSaved    utils.Date
	Amount       float64
	GoalName     string
	CategoryName string
}

type CompletionStats struct {
	Completed int
	Active    int
	Total     int
}

type CompletedRow struct {
	GoalName       string
	CategoryName   string
	CompletionDate utils.Date
	SavedAmount    float64
	TargetAmount   float64
}

type Repository interface {
	SavingsRows(userID uint, goalID *uint) ([]GrowthRow, error)
	GoalCompletionStats(userID uint) (*CompletionStats, error)
	CompletedGoalsBetween(userID uint, start, end time.Time) ([]CompletedRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) SavingsRows(userID uint, goalID *uint) ([]GrowthRow, error) {
	q := r.db.
		Table("savings_transactions AS st").
		Select("st.date_saved, st.amount, g.goal_name, c.category_name").
		Joins("JOIN goals g ON st.goal_id = g.goal_id").
		Joins("JOIN categories c ON g.category_id = c.category_id").
		Where("g.user_id = ?", userID)
	if goalID != nil {
		q = q.Where("st.goal_id = ?", *goalID)
	}

	var rows []GrowthRow
	if err := q.Order("st.date_saved ASC, st.goal_id ASC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) GoalCompletionStats(userID uint) (*CompletionStats, error) {
	var stats CompletionStats
	err := r.db.Raw(`
		SELECT
			COALESCE(SUM(CASE WHEN status = 'Completed' THEN 1 ELSE 0 END), 0) AS completed,
			COALESCE(SUM(CASE WHEN status = 'Active' THEN 1 ELSE 0 END), 0) AS active,
			COUNT(*) AS total
		FROM goals
		WHERE user_id = ? AND is_deleted = ?`, userID, false).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *repository) CompletedGoalsBetween(userID uint, start, end time.Time) ([]CompletedRow, error) {
	var rows []CompletedRow
	err := r.db.
		Table("goals AS g").
		Select("g.goal_name, c.category_name, g.completion_date, g.saved_amount, g.target_amount").
		Joins("JOIN categories c ON g.category_id = c.category_id").
		Where("g.user_id = ? AND g.status = ?", userID, "Completed").
		Where("g.completion_date >= ? AND g.completion_date < ?", start, end).
		Order("g.completion_date DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
