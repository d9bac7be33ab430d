package reports

import "gorm.io/gorm"

type ReportsContainer struct {
	Handler *Handler
	Service Service
	Repo    Repository
}

func NewReportsContainer(db *gorm.DB) *ReportsContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &ReportsContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
