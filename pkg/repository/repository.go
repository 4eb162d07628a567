package repository

import (
	"context"
	"embed"
	"fmt"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // postgres driver for hosted stores
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure Go SQLite driver
)

//go:embed schema_sqlite.sql schema_postgres.sql
var schemaFS embed.FS

// supported database drivers
const (
	driverSQLite   = "sqlite"
	driverPostgres = "pgx"
)

// Config represents database configuration
type Config struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Repositories contains all repository instances
type Repositories struct {
	Response *ResponseRepository
	DB       *sqlx.DB
}

// NewRepositories opens the database, prepares the schema and creates all repositories.
// DSN with postgres:// or postgresql:// scheme selects PostgreSQL, anything else is SQLite.
func NewRepositories(ctx context.Context, cfg Config) (*Repositories, error) {
	if cfg.DSN == "" {
		cfg.DSN = "file:tgsurvey.db?cache=shared&mode=rwc&_txlock=immediate"
	}

	driver := driverName(cfg.DSN)
	db, err := sqlx.Open(driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// configure connection pool
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if driver == driverSQLite {
		if err := applyPragmas(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	if err := initSchema(ctx, db, driver); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Repositories{
		Response: NewResponseRepository(db),
		DB:       db,
	}, nil
}

// Close closes the database connection
func (r *Repositories) Close() error {
	return r.DB.Close()
}

// driverName picks the sql driver by DSN scheme
func driverName(dsn string) string {
	lower := strings.ToLower(dsn)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return driverPostgres
	}
	return driverSQLite
}

// applyPragmas tunes SQLite for a concurrent web workload
func applyPragmas(ctx context.Context, db *sqlx.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA cache_size = -16000", // 16MB cache
		"PRAGMA temp_store = MEMORY",
		"PRAGMA busy_timeout = 5000", // 5 second timeout for locks
	}

	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			return fmt.Errorf("execute %s: %w", pragma, err)
		}
	}
	return nil
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sqlx.DB, driver string) error {
	name := "schema_sqlite.sql"
	if driver == driverPostgres {
		name = "schema_postgres.sql"
	}

	schema, err := schemaFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}

	if _, err := db.ExecContext(ctx, string(schema)); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}

	return nil
}
