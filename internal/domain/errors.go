package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// Per-entity not-found errors. Each wraps ErrNotFound so callers that only
// care about absence can still use errors.Is(err, ErrNotFound).
var (
	ErrArticleNotFound = fmt.Errorf("article %w", ErrNotFound)
	ErrCommentNotFound = fmt.Errorf("comment %w", ErrNotFound)
	ErrUserNotFound    = fmt.Errorf("user %w", ErrNotFound)
	ErrTopicNotFound   = fmt.Errorf("topic %w", ErrNotFound)
)

// ErrMalformedInput is returned when an identifier or body field has the wrong
// shape for the store to even attempt the operation (non-numeric id, missing
// required field, wrong JSON type).
// Handlers should map this to HTTP 400 "Bad Request".
var ErrMalformedInput = errors.New("malformed input")

// ErrInvalidPagination is returned when limit or page is not a positive integer.
var ErrInvalidPagination = fmt.Errorf("%w: limit and page must be positive integers", ErrMalformedInput)

// ErrInvalidQuery is returned when a well-formed query parameter is outside its
// allow-list (sort_by, order).
// Handlers should map this to HTTP 400 "Invalid Query".
var ErrInvalidQuery = errors.New("invalid query")

// ErrInvalidFilter is returned when a filter value is not in the current set of
// valid values (e.g. an unknown topic slug).
var ErrInvalidFilter = fmt.Errorf("%w: unknown filter value", ErrInvalidQuery)

// ErrConflict is returned when an insert collides with an existing natural key.
var ErrConflict = errors.New("already exists")

// PayloadError reports a create body that carries a field outside the
// permitted set for Entity.
type PayloadError struct {
	Entity string // "article", "comment", "topic"
	Field  string
}

// Error implements the error interface.
func (e *PayloadError) Error() string {
	return fmt.Sprintf("invalid %s payload: unexpected field %q", e.Entity, e.Field)
}
