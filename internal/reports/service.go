package reports

import (
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Series colors cycle through a fixed palette in goal-insertion order.
var growthPalette = []string{"#fa8fbc", "#24336e", "#ffd1dc", "#8fd3f4"}

var completionColors = []string{"#fa8fbc", "#ffd1dc"}

const completionBorder = "#fff3f8"

var currencyPrinter = message.NewPrinter(language.English)

func formatCurrency(v float64) string {
	return currencyPrinter.Sprintf("₱%.2f", v)
}

type Service interface {
	SavingsGrowth(userID uint, goalID *uint) (*GrowthReport, error)
	GoalCompletion(userID uint) (*CompletionReport, error)
	CompletedGoals(userID uint, month string) ([]CompletedGoal, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

// SavingsGrowth buckets the user's ledger by calendar month and goal.
// Labels are the distinct months in ascending order; each dataset carries
// one point per month in which its goal has any transaction.
func (s *service) SavingsGrowth(userID uint, goalID *uint) (*GrowthReport, error) {
	rows, err := s.repo.SavingsRows(userID, goalID)
	if err != nil {
		return nil, err
	}

	report := &GrowthReport{
		Labels:   []string{},
		Datasets: []GrowthDataset{},
	}
	if len(rows) == 0 {
		return report, nil
	}

	type bucket struct {
		month string
		goal  string
	}
	sums := make(map[bucket]float64)
	goalMonths := make(map[string][]string)
	goalOrder := []string{}

	for _, row := range rows {
		month := row.DateSaved.YearMonth()

		if len(report.Labels) == 0 || report.Labels[len(report.Labels)-1] != month {
			report.Labels = append(report.Labels, month)
		}

		key := bucket{month: month, goal: row.GoalName}
		if _, seen := sums[key]; !seen {
			goalMonths[row.GoalName] = append(goalMonths[row.GoalName], month)
		}
		sums[key] += row.Amount

		if !containsGoal(goalOrder, row.GoalName) {
			goalOrder = append(goalOrder, row.GoalName)
		}
	}

	for i, goalName := range goalOrder {
		color := growthPalette[i%len(growthPalette)]
		data := make([]float64, 0, len(goalMonths[goalName]))
		for _, month := range goalMonths[goalName] {
			data = append(data, sums[bucket{month: month, goal: goalName}])
		}
		report.Datasets = append(report.Datasets, GrowthDataset{
			Label:           goalName,
			Data:            data,
			BackgroundColor: color,
			BorderColor:     color,
			BorderWidth:     1,
		})
	}

	return report, nil
}

func containsGoal(order []string, name string) bool {
	for _, g := range order {
		if g == name {
			return true
		}
	}
	return false
}

// GoalCompletion returns the two-bucket completed/active dataset plus a
// derived completion rate. A user with no goals gets zeros, not an error.
func (s *service) GoalCompletion(userID uint) (*CompletionReport, error) {
	stats, err := s.repo.GoalCompletionStats(userID)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		stats = &CompletionStats{}
	}

	rate := 0
	if stats.Total > 0 {
		rate = int(math.Round(float64(stats.Completed) / float64(stats.Total) * 100))
	}

	report := EmptyCompletionReport()
	report.Datasets[0].Data = []int{stats.Completed, stats.Active}
	report.Meta.CompletionRate = rate
	return report, nil
}

// CompletedGoals lists the goals finished in the given "YYYY-MM" month,
// defaulting to the current one. Monetary fields are formatted as localized
// currency strings at this boundary.
func (s *service) CompletedGoals(userID uint, month string) ([]CompletedGoal, error) {
	target := s.now()
	if month != "" {
		parsed, err := time.Parse("2006-01", month)
		if err != nil {
			// An unparseable month selects nothing, mirroring a string
			// comparison against a malformed filter.
			return []CompletedGoal{}, nil
		}
		target = parsed
	}

	start := time.Date(target.Year(), target.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	rows, err := s.repo.CompletedGoalsBetween(userID, start, end)
	if err != nil {
		return nil, err
	}

	goals := make([]CompletedGoal, 0, len(rows))
	for _, row := range rows {
		pct := 0
		if row.TargetAmount > 0 {
			pct = int(math.Round(row.SavedAmount / row.TargetAmount * 100))
		}
		goals = append(goals, CompletedGoal{
			GoalName:             row.GoalName,
			CategoryName:         row.CategoryName,
			CompletionDate:       row.CompletionDate.String(),
			SavedAmount:          formatCurrency(row.SavedAmount),
			TargetAmount:         formatCurrency(row.TargetAmount),
			CompletionPercentage: pct,
		})
	}
	return goals, nil
}

// EmptyGrowthReport is the degraded savings-growth payload.
func EmptyGrowthReport() *GrowthReport {
	return &GrowthReport{Labels: []string{}, Datasets: []GrowthDataset{}}
}

// EmptyCompletionReport is the degraded goal-completion payload.
func EmptyCompletionReport() *CompletionReport {
	return &CompletionReport{
		Labels: []string{"Completed", "Active"},
		Datasets: []CompletionDataset{{
			Label:           "Goals",
			Data:            []int{0, 0},
			BackgroundColor: completionColors,
			BorderColor:     completionBorder,
			BorderWidth:     2,
		}},
		Meta: CompletionMeta{CompletionRate: 0},
	}
}
