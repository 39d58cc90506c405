package domain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/nc-news/backend/internal/domain"
)

func intPtr(v int) *int { return &v }

func TestNewPaginationParams(t *testing.T) {
	tests := []struct {
		name       string
		page       *int
		limit      *int
		want       domain.PaginationParams
		paginated  bool
		hasOffset  bool
		wantOffset int
	}{
		{name: "both absent", want: domain.PaginationParams{}},
		{
			name: "page only falls back to default limit", page: intPtr(2),
			want: domain.PaginationParams{Page: 2, Limit: 10}, paginated: true, hasOffset: true, wantOffset: 10,
		},
		{
			name: "limit only", limit: intPtr(5),
			want: domain.PaginationParams{Limit: 5}, paginated: true,
		},
		{
			name: "limit and page", page: intPtr(3), limit: intPtr(5),
			want: domain.PaginationParams{Page: 3, Limit: 5}, paginated: true, hasOffset: true, wantOffset: 10,
		},
		{
			name: "first page has zero offset", page: intPtr(1), limit: intPtr(5),
			want: domain.PaginationParams{Page: 1, Limit: 5}, paginated: true, hasOffset: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := domain.NewPaginationParams(tc.page, tc.limit)

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.paginated, got.Paginated())
			assert.Equal(t, tc.hasOffset, got.HasOffset())
			assert.Equal(t, tc.wantOffset, got.Offset())
		})
	}
}

func TestPaginationParams_OffsetSaturates(t *testing.T) {
	for _, tc := range []struct {
		name        string
		page, limit int
	}{
		{"product overflows", 922337203685477590, 10},
		{"max page", math.MaxInt, 1 << 20},
		{"max page and limit", math.MaxInt, math.MaxInt},
	} {
		t.Run(tc.name, func(t *testing.T) {
			p, err := domain.NewPaginationParams(intPtr(tc.page), intPtr(tc.limit))
			require.NoError(t, err)

			assert.Equal(t, math.MaxInt, p.Offset())
		})
	}
}

func TestPaginationParams_OffsetAtBoundary(t *testing.T) {
	limit := 10
	page := math.MaxInt/limit + 1 // (page-1)*limit is the largest multiple that fits

	p, err := domain.NewPaginationParams(intPtr(page), intPtr(limit))
	require.NoError(t, err)

	assert.Equal(t, (page-1)*limit, p.Offset())
	assert.GreaterOrEqual(t, p.Offset(), 0)
}

func TestNewPaginationParams_RejectsNonPositive(t *testing.T) {
	for _, tc := range []struct {
		name        string
		page, limit *int
	}{
		{"zero limit", nil, intPtr(0)},
		{"negative limit", intPtr(1), intPtr(-5)},
		{"zero page", intPtr(0), nil},
		{"negative page", intPtr(-1), intPtr(5)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := domain.NewPaginationParams(tc.page, tc.limit)

			assert.ErrorIs(t, err, domain.ErrInvalidPagination)
			// Pagination failures surface as 400 Bad Request, same as other malformed input.
			assert.ErrorIs(t, err, domain.ErrMalformedInput)
		})
	}
}
