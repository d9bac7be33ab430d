package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jpdeguzman/alkansave/internal/category"
	"github.com/jpdeguzman/alkansave/internal/goal"
	"github.com/jpdeguzman/alkansave/internal/savings"
	"github.com/jpdeguzman/alkansave/internal/utils"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&goal.Goal{}, &category.Category{}, &savings.Transaction{}))
	return db
}

func seedReportData(t *testing.T, db *gorm.DB) {
	t.Helper()

	require.NoError(t, db.Create(&[]category.Category{
		{CategoryID: 1, CategoryName: "Gadgets"},
		{CategoryID: 2, CategoryName: "Travel"},
	}).Error)

	completion := utils.NewDate(2024, time.February, 28)
	require.NoError(t, db.Create(&[]goal.Goal{
		{GoalID: 1, UserID: 7, CategoryID: 1, GoalName: "Laptop", TargetAmount: 500, SavedAmount: 350, Status: goal.GoalStatusActive},
		{GoalID: 2, UserID: 7, CategoryID: 2, GoalName: "Trip", TargetAmount: 100, SavedAmount: 100, Status: goal.GoalStatusCompleted, CompletionDate: &completion},
		{GoalID: 3, UserID: 7, CategoryID: 1, GoalName: "Old", TargetAmount: 50, SavedAmount: 0, Status: goal.GoalStatusActive, IsDeleted: true},
		{GoalID: 4, UserID: 9, CategoryID: 1, GoalName: "NotMine", TargetAmount: 10, SavedAmount: 0, Status: goal.GoalStatusActive},
	}).Error)

	require.NoError(t, db.Create(&[]savings.Transaction{
		{GoalID: 1, Amount: 100, DateSaved: utils.NewDate(2024, time.January, 5)},
		{GoalID: 1, Amount: 250, DateSaved: utils.NewDate(2024, time.February, 10)},
		{GoalID: 2, Amount: 100, DateSaved: utils.NewDate(2024, time.February, 20)},
		{GoalID: 4, Amount: 999, DateSaved: utils.NewDate(2024, time.January, 1)},
	}).Error)
}

func TestSavingsRows(t *testing.T) {
	db := newTestDB(t)
	seedReportData(t, db)
	repo := NewRepository(db)

	t.Run("AllGoals", func(t *testing.T) {
		rows, err := repo.SavingsRows(7, nil)
		require.NoError(t, err)
		require.Len(t, rows, 3)

		assert.Equal(t, "Laptop", rows[0].GoalName)
		assert.Equal(t, "Gadgets", rows[0].CategoryName)
		assert.Equal(t, float64(100), rows[0].Amount)
		assert.Equal(t, "2024-01", rows[0].DateSaved.YearMonth())

		// ascending by date
		assert.Equal(t, "2024-02", rows[1].DateSaved.YearMonth())
		assert.Equal(t, "2024-02", rows[2].DateSaved.YearMonth())
	})

	t.Run("FilteredByGoal", func(t *testing.T) {
		goalID := uint(2)
		rows, err := repo.SavingsRows(7, &goalID)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "Trip", rows[0].GoalName)
	})

	t.Run("NoTransactions", func(t *testing.T) {
		rows, err := repo.SavingsRows(999, nil)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}

func TestGoalCompletionStats(t *testing.T) {
	db := newTestDB(t)
	seedReportData(t, db)
	repo := NewRepository(db)

	stats, err := repo.GoalCompletionStats(7)
	require.NoError(t, err)

	// the soft-deleted goal is excluded
	assert.Equal(t, 1, stats.Completed)
	assert.Equal(t, 1, stats.Active)
	assert.Equal(t, 2, stats.Total)

	empty, err := repo.GoalCompletionStats(999)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Total)
}

func TestCompletedGoalsBetween(t *testing.T) {
	db := newTestDB(t)
	seedReportData(t, db)
	repo := NewRepository(db)

	start := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	rows, err := repo.CompletedGoalsBetween(7, start, end)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Trip", rows[0].GoalName)
	assert.Equal(t, "Travel", rows[0].CategoryName)
	assert.Equal(t, "2024-02-28", rows[0].CompletionDate.String())
	assert.Equal(t, float64(100), rows[0].SavedAmount)

	earlier, err := repo.CompletedGoalsBetween(7, start.AddDate(0, -1, 0), start)
	require.NoError(t, err)
	assert.Empty(t, earlier)
}
