package container

import (
	"log"

	"github.com/jpdeguzman/alkansave/internal/auth"
	"github.com/jpdeguzman/alkansave/internal/category"
	"github.com/jpdeguzman/alkansave/internal/config"
	"github.com/jpdeguzman/alkansave/internal/goal"
	"github.com/jpdeguzman/alkansave/internal/passwordreset"
	"github.com/jpdeguzman/alkansave/internal/reports"
	"github.com/jpdeguzman/alkansave/internal/upload"
	"github.com/jpdeguzman/alkansave/internal/user"
)

type Container struct {
	Cfg                    *config.Config
	UserContainer          *user.UserContainer
	GoalContainer          *goal.GoalContainer
	CategoryContainer      *category.CategoryContainer
	ReportsContainer       *reports.ReportsContainer
	PasswordResetContainer *passwordreset.PasswordResetContainer
	UploadHandler          *upload.Handler
}

func New() *Container {
	config.Init()
	auth.Init()

	cfg := config.Load()

	db, err := config.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	ingestor := upload.NewIngestor(cfg.UploadDir, cfg.AvatarBaseURL)

	userContainer := user.NewUserContainer(db, ingestor, cfg.DefaultAvatar, cfg.SessionTTL)
	goalContainer := goal.NewGoalContainer(db)
	categoryContainer := category.NewCategoryContainer(db)
	reportsContainer := reports.NewReportsContainer(db)
	passwordResetContainer := passwordreset.NewPasswordResetContainer(db, userContainer.Repo)
	uploadHandler := upload.NewHandler(ingestor, userContainer.Repo)

	return &Container{
		Cfg:                    cfg,
		UserContainer:          userContainer,
		GoalContainer:          goalContainer,
		CategoryContainer:      categoryContainer,
		ReportsContainer:       reportsContainer,
		PasswordResetContainer: passwordResetContainer,
		UploadHandler:          uploadHandler,
	}
}
