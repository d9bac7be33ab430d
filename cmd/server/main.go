package main

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/jpdeguzman/alkansave/internal/container"
	"github.com/jpdeguzman/alkansave/internal/router"
)

func main() {
	c := container.New()

	r := router.New(router.RouterConfig{
		UserHandler:          c.UserContainer.Handler,
		GoalHandler:          c.GoalContainer.Handler,
		CategoryHandler:      c.CategoryContainer.Handler,
		ReportsHandler:       c.ReportsContainer.Handler,
		UploadHandler:        c.UploadHandler,
		PasswordResetHandler: c.PasswordResetContainer.Handler,
		UploadDir:            c.Cfg.UploadDir,
	})

	logrus.WithField("addr", c.Cfg.Addr).Info("server listening")
	if err := http.ListenAndServe(c.Cfg.Addr, r); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
