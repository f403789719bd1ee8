// Package database opens the shared connection pool and hides the few
// differences between the supported SQL drivers.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
	"time"
)

// Supported driver names, as registered with database/sql
const (
	Postgres = "pgx"
	MySQL    = "mysql"
	SQLite   = "sqlite"
)

func init() {
	// sqlx only knows the cgo driver name sqlite3
	sqlx.BindDriver(SQLite, sqlx.QUESTION)
}

const (
	mysqlDuplicateEntry     = 1062
	postgresUniqueViolation = "23505"
)

// Config drives Open
type Config struct {
	Driver       string
	URL          string
	MaxOpenConns int
	PingTimeout  time.Duration
}

// Open opens a pool for the driver and checks it answers a ping
func Open(cfg Config) (*sql.DB, error) {
	switch cfg.Driver {
	case Postgres, MySQL, SQLite:
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := sql.Open(cfg.Driver, cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("error to connect to database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxOpenConns / 2)
	if cfg.Driver == SQLite {
		// an in-memory database lives as long as its connection
		db.SetMaxIdleConns(cfg.MaxOpenConns)
	}
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.PingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("could not connect to database: %w", err)
	}

	return db, nil
}

// IsUniqueViolation reports whether err carries a unique constraint violation
// signalled by one of the supported drivers
func IsUniqueViolation(err error) bool {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlDuplicateEntry
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == postgresUniqueViolation
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return true
		}
	}

	return false
}
