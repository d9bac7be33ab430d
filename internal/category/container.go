package category

import "gorm.io/gorm"

type CategoryContainer struct {
	Handler *Handler
	Repo    Repository
}

func NewCategoryContainer(db *gorm.DB) *CategoryContainer {
	repo := NewRepository(db)
	handler := NewHandler(repo)

	return &CategoryContainer{
		Handler: handler,
		Repo:    repo,
	}
}
