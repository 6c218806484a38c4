package server

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog/log"

	"github.com/jobatlas/jobatlas/account"
	"github.com/jobatlas/jobatlas/avatar"
	"github.com/jobatlas/jobatlas/internal/config"
	"github.com/jobatlas/jobatlas/internal/migrations"
	"github.com/jobatlas/jobatlas/jobs"
	jobsinmemory "github.com/jobatlas/jobatlas/jobs/inmemoryrepo"
	jobspostgres "github.com/jobatlas/jobatlas/jobs/postgresrepo"
	"github.com/jobatlas/jobatlas/session"
	"github.com/jobatlas/jobatlas/users"
	usersinmemory "github.com/jobatlas/jobatlas/users/inmemoryrepo"
	userspostgres "github.com/jobatlas/jobatlas/users/postgresrepo"
)

// NewFromConfig wires a ready-to-serve Server from the environment: Postgres
// stores when DATABASE_URL is set, in-memory stores otherwise, plus the
// optional avatar and Google sign-in services when their settings are
// present.
func NewFromConfig(ctx context.Context, cfg config.Config) (*Server, error) {
	userRepo, catalog, err := buildStores(ctx, cfg)
	if err != nil {
		return nil, err
	}

	accounts, err := account.NewService(userRepo)
	if err != nil {
		return nil, fmt.Errorf("[NewFromConfig] account service: %w", err)
	}

	sessions := session.NewManager(cfg.GetSessionSecret(), cfg.GetSessionTTL())

	var options []Option
	if storage := cfg.GetStorage(); storage.Bucket != "" {
		avatars, err := avatar.NewService(storage)
		if err != nil {
			return nil, fmt.Errorf("[NewFromConfig] avatar service: %w", err)
		}
		options = append(options, WithAvatarService(avatars))
	}
	if cfg.GetGoogleClientID() != "" {
		oidcConfig, err := NewGoogleOidc(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("[NewFromConfig] google oidc: %w", err)
		}
		options = append(options, WithOidc(oidcConfig))
	}

	return New(cfg, accounts, catalog, sessions, options...)
}

func buildStores(ctx context.Context, cfg config.Config) (users.Repo, jobs.Repo, error) {
	dsn := cfg.GetDatabaseDSN()
	if dsn == "" {
		log.Warn().Msg("DATABASE_URL is not set, using in-memory stores")
		return usersinmemory.New(), jobsinmemory.New(), nil
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("[buildStores] db open: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, nil, fmt.Errorf("[buildStores] db ping: %w", err)
	}
	if err := runMigrations(ctx, db); err != nil {
		return nil, nil, fmt.Errorf("[buildStores] migrations: %w", err)
	}

	return userspostgres.New(db), jobspostgres.New(db), nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}
