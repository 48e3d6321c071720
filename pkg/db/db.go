package db

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"supatools/pkg/config"
)

var ErrNoDatabaseURL = errors.New("neither DATABASE_URL nor DIRECT_URL is set")

// Open connects with the runtime connection string (pooler first).
func Open(ctx context.Context, cfg config.Config) (*pgxpool.Pool, error) {
	return open(ctx, runtimeConnString(cfg))
}

// OpenDirect prefers DIRECT_URL, which is what DDL should run through.
func OpenDirect(ctx context.Context, cfg config.Config) (*pgxpool.Pool, error) {
	return open(ctx, migrationConnString(cfg))
}

func open(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	if strings.TrimSpace(connString) == "" {
		return nil, ErrNoDatabaseURL
	}

	// Supabase pooler (PgBouncer) does not support prepared statements.
	// Their pooler DSN typically includes `pgbouncer=true`.
	pcfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, err
	}
	if usesPgBouncer(connString) {
		pcfg.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
		pcfg.ConnConfig.StatementCacheCapacity = 0
		pcfg.ConnConfig.DescriptionCacheCapacity = 0
	}

	pool, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

func usesPgBouncer(connString string) bool {
	return strings.Contains(strings.ToLower(connString), "pgbouncer=true")
}

func runtimeConnString(cfg config.Config) string {
	if strings.TrimSpace(cfg.DatabaseURL) != "" {
		return cfg.DatabaseURL
	}
	return cfg.DirectURL
}

func migrationConnString(cfg config.Config) string {
	if strings.TrimSpace(cfg.DirectURL) != "" {
		return cfg.DirectURL
	}
	// Falls back to the pooler URL; for Supabase, DDL should use DIRECT_URL
	// to avoid PgBouncer limitations.
	return cfg.DatabaseURL
}
