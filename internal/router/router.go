package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jpdeguzman/alkansave/internal/auth"
	"github.com/jpdeguzman/alkansave/internal/category"
	"github.com/jpdeguzman/alkansave/internal/goal"
	"github.com/jpdeguzman/alkansave/internal/middlewares"
	"github.com/jpdeguzman/alkansave/internal/passwordreset"
	"github.com/jpdeguzman/alkansave/internal/reports"
	"github.com/jpdeguzman/alkansave/internal/upload"
	"github.com/jpdeguzman/alkansave/internal/user"
)

type RouterConfig struct {
	UserHandler          *user.Handler
	GoalHandler          *goal.Handler
	CategoryHandler      *category.Handler
	ReportsHandler       *reports.Handler
	UploadHandler        *upload.Handler
	PasswordResetHandler *passwordreset.Handler
	UploadDir            string
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	fileServer := http.StripPrefix("/uploads/avatars/", http.FileServer(http.Dir(cfg.UploadDir)))
	r.Get("/uploads/avatars/*", fileServer.ServeHTTP)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", cfg.UserHandler.Register)
			r.Post("/login", cfg.UserHandler.Login)
			r.Post("/logout", auth.NewHandler().Logout)
		})

		r.Mount("/password-reset", passwordreset.Routes(cfg.PasswordResetHandler))

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)

			r.Mount("/profile", user.Routes(cfg.UserHandler))
			r.Post("/profile/avatar", cfg.UploadHandler.UploadAvatar)
			r.Mount("/goals", goal.Routes(cfg.GoalHandler))
			r.Mount("/categories", category.Routes(cfg.CategoryHandler))
			r.Mount("/reports", reports.Routes(cfg.ReportsHandler))
		})
	})

	return r
}
