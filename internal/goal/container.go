package goal

import (
	"gorm.io/gorm"

	"github.com/jpdeguzman/alkansave/internal/savings"
)

type GoalContainer struct {
	Handler *Handler
	Service Service
	Repo    Repository
}

func NewGoalContainer(db *gorm.DB) *GoalContainer {
	repo := NewRepository(db)
	savingsRepo := savings.NewRepository(db)
	service := NewService(repo, savingsRepo)
	handler := NewHandler(service)

	return &GoalContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
