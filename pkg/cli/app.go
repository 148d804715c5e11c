package cli

import (
	"database/sql"
	"fmt"
	"log/slog"

	"aquaevents/internal/config"
	"aquaevents/internal/db"
	"aquaevents/internal/db/repository"
	"aquaevents/internal/service"
)

// app bundles the opened database handles and the services the commands call.
// Every command opens it on demand and closes it when done.
type app struct {
	Logger *slog.Logger

	Users         *service.UserService
	Categories    *service.CategoryService
	Events        *service.EventService
	Invitations   *service.InvitationService
	Registrations *service.RegistrationService

	writeDB *sql.DB
	readDB  *sql.DB
}

// openApp wires the full stack: config, database pair, migrations,
// repositories, services. The db path resolved by the root command
// overrides whatever the environment says.
func openApp(dbPath string) (*app, error) {
	if err := config.LoadDotEnv(".env"); err != nil {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}

	logger := cfg.NewLogger()
	for _, w := range cfg.Warnings {
		logger.Warn(w)
	}

	writeDB, readDB, err := db.OpenSQLitePair(cfg.DBPath, cfg.ReadPoolSize)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.RunMigrations(writeDB); err != nil {
		_ = writeDB.Close()
		_ = readDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	repos := repository.NewFactory(writeDB, readDB).All()

	return &app{
		Logger:        logger,
		Users:         service.NewUserService(repos.Users, repos.Companies),
		Categories:    service.NewCategoryService(repos.Categories),
		Events:        service.NewEventService(repos.Events, repos.Categories, repos.Registrations, logger),
		Invitations:   service.NewInvitationService(repos.Invitations, repos.Events, logger),
		Registrations: service.NewRegistrationService(repos.Registrations, repos.Events, logger),
		writeDB:       writeDB,
		readDB:        readDB,
	}, nil
}

func (a *app) Close() {
	_ = a.readDB.Close()
	_ = a.writeDB.Close()
}
