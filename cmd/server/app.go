package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/taskdeck/taskdeck-api/internal/config"
	"github.com/taskdeck/taskdeck-api/internal/platform/logger"
	"github.com/taskdeck/taskdeck-api/internal/platform/postgres"
	"github.com/taskdeck/taskdeck-api/internal/service/auth"
	"github.com/taskdeck/taskdeck-api/internal/store"
)

// application holds all constructed components and their shared
// dependencies. Everything is wired here at startup; no component reaches
// for hidden package-level state.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore     store.UserStore
	taskStore     store.TaskStore
	revokedTokens store.RevokedTokenStore

	jwtService auth.JWTService
	passwords  *auth.BcryptHasher
}

// initializeApp loads configuration and constructs all application
// components: logger, database connection, migrations, stores, and services.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"cors_origins", cfg.Server.CORSOrigins)

	db, err := openDatabase(cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(db, appLogger); err != nil {
		closeDatabase(db, appLogger)
		return nil, err
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		closeDatabase(db, appLogger)
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	app := &application{
		config:        cfg,
		logger:        appLogger,
		db:            db,
		userStore:     postgres.NewUserStore(db, appLogger),
		taskStore:     postgres.NewTaskStore(db, appLogger),
		revokedTokens: postgres.NewRevokedTokenStore(db, appLogger),
		jwtService:    jwtService,
		passwords:     auth.NewBcryptHasher(),
	}

	app.pruneRevokedTokens()

	return app, nil
}

// pruneRevokedTokens removes denylist entries whose token expiry has passed.
// An expired token can never be re-accepted, so the entries carry no
// information; this keeps the denylist from growing without bound.
func (app *application) pruneRevokedTokens() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	deleted, err := app.revokedTokens.DeleteExpired(ctx, time.Now().UTC())
	if err != nil {
		app.logger.Warn("failed to prune expired denylist entries", "error", err)
		return
	}
	app.logger.Info("denylist sweep complete", "deleted", deleted)
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	closeDatabase(app.db, app.logger)
}
