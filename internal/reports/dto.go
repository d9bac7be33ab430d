package reports

// Chart-ready payloads. Field names and casing are part of the contract
// with the dashboard front end.

type GrowthDataset struct {
	Label           string    `json:"label"`
	Data            []float64 `json:"data"`
	BackgroundColor string    `json:"backgroundColor"`
	BorderColor     string    `json:"borderColor"`
	BorderWidth     int       `json:"borderWidth"`
}

type GrowthReport struct {
	Labels   []string        `json:"labels"`
	Datasets []GrowthDataset `json:"datasets"`
}

type CompletionDataset struct {
	Label           string   `json:"label"`
	Data            []int    `json:"data"`
	BackgroundColor []string `json:"backgroundColor"`
	BorderColor     string   `json:"borderColor"`
	BorderWidth     int      `json:"borderWidth"`
}

type CompletionMeta struct {
	CompletionRate int `json:"completion_rate"`
}

type CompletionReport struct {
	Labels   []string            `json:"labels"`
	Datasets []CompletionDataset `json:"datasets"`
	Meta     CompletionMeta      `json:"meta"`
}

type CompletedGoal struct {
	GoalName             string `json:"GoalName"`
	CategoryName         string `json:"CategoryName"`
	CompletionDate       string `json:"completion_date"`
	SavedAmount          string `json:"SavedAmount"`
	TargetAmount         string `json:"TargetAmount"`
	CompletionPercentage int    `json:"completion_percentage"`
}
