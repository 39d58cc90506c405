// Package repo contains all database access logic for the NC News API.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here, only SQL, type mapping and translation of
// Postgres error codes into domain errors.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pkordes/nc-news/backend/internal/domain"
	"github.com/pkordes/nc-news/backend/internal/query"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scan helpers to be
// reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// Postgres SQLSTATE codes translated at this boundary.
const (
	pgInvalidTextRepresentation = "22P02"
	pgNumericValueOutOfRange    = "22003"
	pgNotNullViolation          = "23502"
	pgForeignKeyViolation       = "23503"
	pgUniqueViolation           = "23505"
)

// translatePgError maps store-level error codes onto the domain taxonomy.
// Errors that are not *pgconn.PgError, or carry an unmapped code, pass through.
func translatePgError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgInvalidTextRepresentation, pgNumericValueOutOfRange, pgNotNullViolation:
		return fmt.Errorf("%w: %w", domain.ErrMalformedInput, err)
	case pgForeignKeyViolation:
		return fmt.Errorf("%w: %w", domain.ErrNotFound, err)
	case pgUniqueViolation:
		return fmt.Errorf("%w: %w", domain.ErrConflict, err)
	}
	return err
}

// paginate appends LIMIT and OFFSET to b as p requires.
func paginate(b *query.Builder, p domain.PaginationParams) {
	if p.Paginated() {
		b.Limit(p.Limit)
	}
	if p.HasOffset() {
		b.Offset(p.Offset())
	}
}

func direction(o domain.SortOrder) query.Direction {
	if o == domain.OrderAsc {
		return query.Asc
	}
	return query.Desc
}

// count runs a COUNT(*) statement produced by query.Builder.Count.
func count(ctx context.Context, d db, stmt query.Statement) (int64, error) {
	var n int64
	if err := d.QueryRow(ctx, stmt.SQL(), stmt.Args()...).Scan(&n); err != nil {
		return 0, translatePgError(err)
	}
	return n, nil
}
