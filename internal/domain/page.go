package domain

import "math"

// DefaultLimit is the page size used when a page is requested without a limit.
const DefaultLimit = 10

// PaginationParams carries page/limit values from the HTTP layer to the repo layer.
// Page is 1-indexed. The zero value means "no pagination": the whole result set.
type PaginationParams struct {
	// Page is the requested page number, or 0 when no page was requested.
	Page int
	// Limit is the maximum number of items to return, or 0 for no limit.
	Limit int
}

// NewPaginationParams builds a PaginationParams from optional HTTP query params.
//
//   - both nil: no LIMIT/OFFSET at all
//   - page set, limit nil: limit falls back to DefaultLimit
//   - limit set, page nil: LIMIT only, no OFFSET
//
// Values below 1 are rejected with ErrInvalidPagination rather than coerced.
func NewPaginationParams(page, limit *int) (PaginationParams, error) {
	var p PaginationParams
	if limit != nil {
		if *limit < 1 {
			return PaginationParams{}, ErrInvalidPagination
		}
		p.Limit = *limit
	}
	if page != nil {
		if *page < 1 {
			return PaginationParams{}, ErrInvalidPagination
		}
		p.Page = *page
		if p.Limit == 0 {
			p.Limit = DefaultLimit
		}
	}
	return p, nil
}

// Paginated reports whether a LIMIT clause applies.
func (p PaginationParams) Paginated() bool {
	return p.Limit > 0
}

// HasOffset reports whether an OFFSET clause applies. OFFSET is only emitted
// when the caller asked for a page.
func (p PaginationParams) HasOffset() bool {
	return p.Page > 0
}

// Offset returns the zero-based row offset for a SQL OFFSET clause.
// Offsets beyond math.MaxInt saturate: such a page is past the end of any
// table and yields an empty result.
func (p PaginationParams) Offset() int {
	if p.Page < 1 || p.Limit < 1 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Limit
}
