package main

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/nenexus/nexus-backend/internal/config"
	"github.com/nenexus/nexus-backend/internal/database"
	"github.com/nenexus/nexus-backend/internal/handlers"
	"github.com/nenexus/nexus-backend/internal/middleware"
	"github.com/nenexus/nexus-backend/internal/security"
	"github.com/nenexus/nexus-backend/internal/services"
)

func main() {
	// .env is optional; viper env overrides pick up whatever it sets.
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load configuration")
	}

	db, err := database.Connect(cfg.Database.Path)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to database")
	}

	tokens := security.NewTokenProvider(cfg.JWT.Secret, cfg.JWT.TTL)
	mailer := services.NewEmailService(cfg.SMTP)

	authService := services.NewAuthService(db, tokens, mailer)
	jobService := services.NewJobService(db, cfg.App)
	applicationService := services.NewApplicationService(db, mailer)
	candidateService := services.NewCandidateService(db)

	router := handlers.NewRouter(handlers.RouterDependencies{
		AuthHandler:        handlers.NewAuthHandler(authService),
		JobHandler:         handlers.NewJobHandler(jobService),
		ApplicationHandler: handlers.NewApplicationHandler(applicationService),
		CandidateHandler:   handlers.NewCandidateHandler(candidateService),
		AuthMiddleware:     middleware.NewAuthMiddleware(tokens, db),
		CORSOrigin:         cfg.Server.CORSOrigin,
	})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logrus.WithField("addr", addr).Info("server starting")
	if err := router.Run(addr); err != nil {
		logrus.WithError(err).Fatal("server failed to start")
	}
}
