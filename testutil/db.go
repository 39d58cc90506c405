// Package testutil provides shared helpers for database-backed tests.
//
// Helpers that read TEST_DATABASE_URL skip the calling test when it is unset,
// so `go test ./...` stays green on machines without Postgres. The
// container-backed helpers in container.go need the integration build tag.
package testutil

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/pressly/goose/v3"

	"github.com/pkordes/nc-news/backend/migrations"
)

// DSNEnv names the environment variable holding the test database URL.
const DSNEnv = "TEST_DATABASE_URL"

// NewPool opens a pool on TEST_DATABASE_URL, skipping the test when unset.
// The pool is closed when the test finishes.
func NewPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	return OpenPool(t, requireDSN(t))
}

// OpenPool opens and pings a pool on dsn. The pool is closed on cleanup.
func OpenPool(t *testing.T, dsn string) *pgxpool.Pool {
	t.Helper()

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("testutil.OpenPool: %v", err)
	}
	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		t.Fatalf("testutil.OpenPool: ping: %v", err)
	}

	t.Cleanup(pool.Close)
	return pool
}

// NewSQLDB opens a *sql.DB on TEST_DATABASE_URL through the pgx stdlib
// driver. goose works on database/sql, not on pools.
func NewSQLDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := openSQLDB(requireDSN(t))
	if err != nil {
		t.Fatalf("testutil.NewSQLDB: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// MustOpenSQLDB is for TestMain, where there is no *testing.T.
// Callers close the returned handle.
func MustOpenSQLDB(dsn string) *sql.DB {
	db, err := openSQLDB(dsn)
	if err != nil {
		panic("testutil.MustOpenSQLDB: " + err.Error())
	}
	return db
}

// Migrate applies all pending migrations to the database at dsn.
func Migrate(t *testing.T, dsn string) {
	t.Helper()

	db, err := openSQLDB(dsn)
	if err != nil {
		t.Fatalf("testutil.Migrate: %v", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		t.Fatalf("testutil.Migrate: provider: %v", err)
	}
	if _, err := provider.Up(context.Background()); err != nil {
		t.Fatalf("testutil.Migrate: up: %v", err)
	}
}

func openSQLDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func requireDSN(t *testing.T) string {
	t.Helper()
	dsn := os.Getenv(DSNEnv)
	if dsn == "" {
		t.Skip(DSNEnv + " not set; skipping database test")
	}
	return dsn
}
