package main

import (
	"net/http"

	"clinic-site/internal/handlers"
	"clinic-site/internal/static"
	"clinic-site/pkg/config"

	"github.com/sirupsen/logrus"
)

func main() {
	// Configure logrus
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetLevel(logrus.InfoLevel)

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}

	logger, err := cfg.Logger()
	if err != nil {
		logrus.Fatal(err)
	}
	log := logrus.NewEntry(logger)

	srv, err := static.New(cfg.PublicDir, static.DefaultAliases(), log)
	if err != nil {
		log.WithError(err).Fatal("Cannot serve public directory")
	}

	log.WithFields(logrus.Fields{
		"port":   cfg.Port,
		"public": srv.Root(),
	}).Infof("Server running on http://localhost:%s", cfg.Port)
	for _, alias := range srv.Aliases() {
		target, _ := srv.Target(alias)
		log.WithField("file", target).Infof("Available page: http://localhost:%s%s", cfg.Port, alias)
	}

	log.Fatal(http.ListenAndServe(cfg.Addr(), handlers.NewRouter(srv, log)))
}
