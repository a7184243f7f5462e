package database

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

// ErrInvalidNamespace is returned for a schema name that is not a plain identifier.
var ErrInvalidNamespace = errors.New("database: schema name must contain only letters, digits and underscores")

var namespacePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// bootstrapLockKey serialises concurrent bootstraps of the same database.
const bootstrapLockKey = 7_241_003

// ValidateNamespace checks a schema name before it is used in DDL or search_path.
// An empty name means "no namespace" and is valid.
func ValidateNamespace(schema string) error {
	if schema == "" {
		return nil
	}
	if len(schema) > 63 || !namespacePattern.MatchString(schema) {
		return fmt.Errorf("%w: %q", ErrInvalidNamespace, schema)
	}
	return nil
}

// searchPath quotes the schema the same way Bootstrap creates it, so mixed-case names resolve.
func searchPath(schema string) string {
	return pq.QuoteIdentifier(schema) + ",public"
}

// Connect opens a pgx pool. When schema is set every connection gets search_path="<schema>",public.
func Connect(ctx context.Context, dsn, schema string) (*pgxpool.Pool, error) {
	if err := ValidateNamespace(schema); err != nil {
		return nil, err
	}

	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("database: invalid connection string: %w", err)
	}
	if schema != "" {
		cfg.ConnConfig.RuntimeParams["search_path"] = searchPath(schema)
	}
	cfg.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("database: failed to create pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database: failed to ping: %w", err)
	}

	log.Info().Str("schema", schema).Msg("database connected")
	return pool, nil
}

const createCafeTable = `
CREATE TABLE IF NOT EXISTS cafe (
	id BIGSERIAL PRIMARY KEY,
	name VARCHAR(250) NOT NULL UNIQUE,
	map_url VARCHAR(500) NOT NULL,
	img_url VARCHAR(500) NOT NULL,
	location VARCHAR(250) NOT NULL,
	has_sockets BOOLEAN NOT NULL DEFAULT FALSE,
	has_toilet BOOLEAN NOT NULL DEFAULT FALSE,
	has_wifi BOOLEAN NOT NULL DEFAULT FALSE,
	can_take_calls BOOLEAN NOT NULL DEFAULT FALSE,
	seats VARCHAR(250),
	coffee_price VARCHAR(250),
	lat DOUBLE PRECISION,
	lng DOUBLE PRECISION
);
CREATE INDEX IF NOT EXISTS cafe_location_idx ON cafe (location);
`

// Executor is the subset of pgxpool.Pool used by Bootstrap.
type Executor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Bootstrap ensures the namespace (if any) and the cafe table exist. It is safe to run on every start.
func Bootstrap(ctx context.Context, db Executor, schema string) error {
	if err := ValidateNamespace(schema); err != nil {
		return err
	}

	err := pgx.BeginFunc(ctx, db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock($1)", bootstrapLockKey); err != nil {
			return fmt.Errorf("failed to take bootstrap lock: %w", err)
		}
		if schema != "" {
			if _, err := tx.Exec(ctx, "CREATE SCHEMA IF NOT EXISTS "+pq.QuoteIdentifier(schema)); err != nil {
				return fmt.Errorf("failed to create schema: %w", err)
			}
		}
		if _, err := tx.Exec(ctx, createCafeTable); err != nil {
			return fmt.Errorf("failed to create cafe table: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("database: bootstrap: %w", err)
	}

	log.Info().Str("schema", schema).Msg("database bootstrap completed")
	return nil
}
