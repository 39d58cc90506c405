package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/nc-news/backend/internal/query"
)

const base = "SELECT a.id, COUNT(c.id) AS n FROM a LEFT JOIN c ON c.a_id = a.id"

var cols = query.NewAllowList(map[string]string{
	"id":    "a.id",
	"topic": "a.topic",
	"votes": "a.votes",
})

func TestBuilder_Build(t *testing.T) {
	id := cols.MustLookup("id")
	topic := cols.MustLookup("topic")
	votes := cols.MustLookup("votes")

	tests := []struct {
		name     string
		build    func() *query.Builder
		wantSQL  string
		wantArgs []any
	}{
		{
			name:     "base only",
			build:    func() *query.Builder { return query.Select(base) },
			wantSQL:  base,
			wantArgs: []any{},
		},
		{
			name: "filter takes $1",
			build: func() *query.Builder {
				return query.Select(base).WhereEq(topic, "mitch")
			},
			wantSQL:  base + " WHERE a.topic = $1",
			wantArgs: []any{"mitch"},
		},
		{
			name: "group before order",
			build: func() *query.Builder {
				return query.Select(base).OrderBy(votes, query.Asc).GroupBy(id)
			},
			wantSQL:  base + " GROUP BY a.id ORDER BY a.votes ASC",
			wantArgs: []any{},
		},
		{
			name: "filter, limit, offset numbered in order",
			build: func() *query.Builder {
				return query.Select(base).
					WhereEq(topic, "mitch").
					GroupBy(id).
					OrderBy(votes, query.Desc).
					Limit(5).
					Offset(10)
			},
			wantSQL:  base + " WHERE a.topic = $1 GROUP BY a.id ORDER BY a.votes DESC LIMIT $2 OFFSET $3",
			wantArgs: []any{"mitch", 5, 10},
		},
		{
			name: "no filter: limit takes $1",
			build: func() *query.Builder {
				return query.Select(base).GroupBy(id).Limit(5).Offset(0)
			},
			wantSQL:  base + " GROUP BY a.id LIMIT $1 OFFSET $2",
			wantArgs: []any{5, 0},
		},
		{
			name: "call order does not change placeholder order",
			build: func() *query.Builder {
				return query.Select(base).Offset(20).Limit(10).WhereEq(topic, "cats")
			},
			wantSQL:  base + " WHERE a.topic = $1 LIMIT $2 OFFSET $3",
			wantArgs: []any{"cats", 10, 20},
		},
		{
			name: "two predicates are ANDed",
			build: func() *query.Builder {
				return query.Select(base).WhereEq(topic, "cats").WhereEq(id, int64(3))
			},
			wantSQL:  base + " WHERE a.topic = $1 AND a.id = $2",
			wantArgs: []any{"cats", int64(3)},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			stmt := tc.build().Build()

			assert.Equal(t, tc.wantSQL, stmt.SQL())
			assert.Equal(t, tc.wantArgs, stmt.Args())
		})
	}
}

func TestBuilder_CountSharesFilter(t *testing.T) {
	b := query.Select(base).
		WhereEq(cols.MustLookup("topic"), "mitch").
		GroupBy(cols.MustLookup("id")).
		OrderBy(cols.MustLookup("votes"), query.Asc).
		Limit(5).
		Offset(10)

	page := b.Build()
	count := b.Count()

	assert.Equal(t,
		"SELECT COUNT(*) FROM ("+base+" WHERE a.topic = $1 GROUP BY a.id) AS filtered",
		count.SQL())
	assert.Equal(t, []any{"mitch"}, count.Args())
	// The count binds exactly the page query's filter arguments.
	assert.Equal(t, page.Args()[:len(count.Args())], count.Args())
}

func TestStatement_ArgsIsACopy(t *testing.T) {
	stmt := query.Select(base).WhereEq(cols.MustLookup("topic"), "mitch").Build()

	args := stmt.Args()
	args[0] = "tampered"

	assert.Equal(t, []any{"mitch"}, stmt.Args())
}

func TestBuilder_ZeroIdentPanics(t *testing.T) {
	assert.Panics(t, func() {
		query.Select(base).OrderBy(query.Ident{}, query.Asc)
	})
	assert.Panics(t, func() {
		query.Select(base).WhereEq(query.Ident{}, "x")
	})
}

func TestAllowList_Lookup(t *testing.T) {
	got, ok := cols.Lookup("votes")
	require.True(t, ok)
	assert.Equal(t, "a.votes", got.String())

	for _, bad := range []string{"", "Votes", "a.votes", "votes DESC; DROP TABLE a"} {
		_, ok := cols.Lookup(bad)
		assert.False(t, ok, bad)
	}

	assert.Equal(t, []string{"id", "topic", "votes"}, cols.Names())
	assert.Panics(t, func() { cols.MustLookup("nope") })
}
