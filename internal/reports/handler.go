package reports

import (
	"net/http"
	"strconv"

	"github.com/jpdeguzman/alkansave/internal/auth"
	"github.com/jpdeguzman/alkansave/internal/config"
)

// Handler dispatches the reporting sub-flows on the action parameter.
// Reporting is fail-soft: a failed aggregation degrades to an empty 200
// payload so the dashboard never renders a broken state. Only an unknown
// action (400) and a missing session (401) are hard failures.
type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) HandleReports(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated")
		config.JSON(w, http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
		return
	}

	switch r.URL.Query().Get("action") {
	case "savings_growth":
		var goalID *uint
		if raw := r.URL.Query().Get("goal_id"); raw != "" {
			if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
				v := uint(id)
				goalID = &v
			}
		}

		report, err := h.service.SavingsGrowth(userID, goalID)
		if err != nil {
			log.WithError(err).Error("Savings growth report failed")
			report = EmptyGrowthReport()
		}
		config.JSON(w, http.StatusOK, report)

	case "goal_completion":
		report, err := h.service.GoalCompletion(userID)
		if err != nil {
			log.WithError(err).Error("Goal completion report failed")
			report = EmptyCompletionReport()
		}
		config.JSON(w, http.StatusOK, report)

	case "completed_goals":
		goals, err := h.service.CompletedGoals(userID, r.URL.Query().Get("month"))
		if err != nil {
			log.WithError(err).Error("Completed goals report failed")
			goals = []CompletedGoal{}
		}
		config.JSON(w, http.StatusOK, goals)

	default:
		config.JSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":         "Invalid action",
			"valid_actions": []string{"savings_growth", "goal_completion", "completed_goals"},
		})
	}
}
