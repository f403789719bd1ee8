// Package dbtest points the process-wide resources at throwaway backends for tests.
package dbtest

import (
	"context"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/ribgsilva/note-crud/persistence/v1/schema"
	"github.com/ribgsilva/note-crud/platform/database"
	"github.com/ribgsilva/note-crud/sys"
	"go.uber.org/zap/zaptest"
	"testing"
	"time"
)

// Setup wires sys.R to a fresh in-memory SQLite database holding the notes schema.
// With cache set, a miniredis server backs sys.R.Cache and is returned, otherwise nil is returned.
// Everything is torn down when the test ends.
func Setup(t *testing.T, cache bool) *miniredis.Miniredis {
	t.Helper()

	sys.Configs.Database.Driver = database.SQLite
	sys.Configs.Database.OperationTimeout = 5 * time.Second
	sys.Configs.Cache.Enabled = cache
	sys.Configs.Cache.OperationTimeout = 5 * time.Second
	sys.Configs.Cache.CacheTTL = time.Hour
	sys.Configs.Messaging.ShutdownTimeout = 5 * time.Second

	sys.R.Log = zaptest.NewLogger(t).Sugar()

	// a single connection keeps the in-memory database alive and shared
	db, err := database.Open(database.Config{
		Driver:       database.SQLite,
		URL:          ":memory:",
		MaxOpenConns: 1,
		PingTimeout:  2 * time.Second,
	})
	if err != nil {
		t.Fatalf("open database: %s", err)
	}
	sys.R.Database = db

	if err := schema.Create(context.Background()); err != nil {
		t.Fatalf("create schema: %s", err)
	}

	var s *miniredis.Miniredis
	sys.R.Cache = nil
	if cache {
		s = miniredis.RunT(t)
		sys.R.Cache = redis.NewClient(&redis.Options{Addr: s.Addr()})
	}

	t.Cleanup(func() {
		if sys.R.Cache != nil {
			_ = sys.R.Cache.Close()
			sys.R.Cache = nil
		}
		_ = db.Close()
		sys.R.Database = nil
	})

	return s
}

// Count returns how many notes are stored, optionally only those with the title
func Count(t *testing.T, title string) int {
	t.Helper()

	q := "SELECT COUNT(*) FROM notes"
	var args []any
	if title != "" {
		q += " WHERE title = ?"
		args = append(args, title)
	}

	var n int
	if err := sys.R.Database.QueryRow(q, args...).Scan(&n); err != nil {
		t.Fatalf("count notes: %s", err)
	}
	return n
}
