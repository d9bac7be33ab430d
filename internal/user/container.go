package user

import (
	"time"

	"gorm.io/gorm"

	"github.com/jpdeguzman/alkansave/internal/upload"
)

type UserContainer struct {
	Handler *Handler
	Service Service
	Repo    UserRepository
}

func NewUserContainer(db *gorm.DB, ingestor *upload.Ingestor, defaultAvatar string, sessionTTL time.Duration) *UserContainer {
	repo := NewRepository(db)
	service := NewService(repo, defaultAvatar)
	handler := NewHandler(service, ingestor, sessionTTL)

	return &UserContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
