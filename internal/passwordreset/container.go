package passwordreset

import (
	"gorm.io/gorm"

	"github.com/jpdeguzman/alkansave/internal/user"
)

type PasswordResetContainer struct {
	Handler *Handler
	Service Service
	Repo    Repository
}

func NewPasswordResetContainer(db *gorm.DB, users user.UserRepository) *PasswordResetContainer {
	repo := NewRepository(db)
	service := NewService(repo, users)
	handler := NewHandler(service)

	return &PasswordResetContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
