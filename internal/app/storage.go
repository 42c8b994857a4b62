package app

import (
	"context"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/riskibarqy/bowling-league/internal/config"
	"github.com/riskibarqy/bowling-league/internal/domain/league"
	"github.com/riskibarqy/bowling-league/internal/domain/match"
	"github.com/riskibarqy/bowling-league/internal/domain/roster"
	"github.com/riskibarqy/bowling-league/internal/domain/schedule"
	cacherepo "github.com/riskibarqy/bowling-league/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/bowling-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/bowling-league/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/bowling-league/internal/platform/cache"
	"github.com/riskibarqy/bowling-league/internal/platform/logging"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"
)

type repositories struct {
	leagues league.Repository
	weeks   schedule.Repository
	teams   roster.TeamRepository
	bowlers roster.BowlerRepository
	matches match.Repository
	close   func() error
}

func newRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, error) {
	var (
		repos repositories
		err   error
	)
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		repos, err = newPostgresRepositories(ctx, cfg)
	case config.StorageMemory:
		repos = newMemoryRepositories(cfg)
	default:
		return repositories{}, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
	if err != nil {
		return repositories{}, err
	}

	if cfg.CacheEnabled {
		store := cache.NewStore(cfg.CacheTTL)
		repos.leagues = cacherepo.NewLeagueRepository(repos.leagues, store)
		repos.teams = cacherepo.NewTeamRepository(repos.teams, store)
	}

	logger.Info("storage ready",
		"driver", cfg.StorageDriver,
		"db_name", dbNameFromURL(cfg.DBURL),
		"cache_enabled", cfg.CacheEnabled,
		"cache_ttl", cfg.CacheTTL.String(),
		"seed_demo", cfg.SeedDemo,
	)

	return repos, nil
}

func newPostgresRepositories(ctx context.Context, cfg config.Config) (repositories, error) {
	db, err := otelsqlx.Open("postgres", normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary),
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return repositories{}, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxIdleConns)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return repositories{}, fmt.Errorf("ping postgres: %w", err)
	}

	return repositories{
		leagues: postgres.NewLeagueRepository(db),
		weeks:   postgres.NewWeekRepository(db),
		teams:   postgres.NewTeamRepository(db),
		bowlers: postgres.NewBowlerRepository(db),
		matches: postgres.NewMatchRepository(db),
		close:   db.Close,
	}, nil
}

func newMemoryRepositories(cfg config.Config) repositories {
	store := memory.NewStore()
	if cfg.SeedDemo {
		memory.SeedDemo(store, time.Now().UTC())
	}

	return repositories{
		leagues: memory.NewLeagueRepository(store),
		weeks:   memory.NewWeekRepository(store),
		teams:   memory.NewTeamRepository(store),
		bowlers: memory.NewBowlerRepository(store),
		matches: memory.NewMatchRepository(store),
		close:   func() error { return nil },
	}
}
