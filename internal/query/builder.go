// Package query assembles parameterized Postgres statements for filterable,
// sortable, paginated collection queries.
//
// Values are always bound as positional parameters ($1, $2, ...). Identifiers
// (filter and sort columns) cannot be parameterized by Postgres, so they are
// spliced into the SQL text, but only as an Ident, which can only be obtained
// from an AllowList.
package query

import (
	"fmt"
	"strings"
)

// Direction is the direction of an ORDER BY term. The zero value is Desc.
type Direction int

const (
	Desc Direction = iota
	Asc
)

func (d Direction) sql() string {
	if d == Asc {
		return "ASC"
	}
	return "DESC"
}

// Statement is an immutable SQL template paired with its bound arguments.
// Args()[i] is bound to placeholder $i+1.
type Statement struct {
	sql  string
	args []any
}

// SQL returns the statement text.
func (s Statement) SQL() string { return s.sql }

// Args returns a copy of the bound arguments in placeholder order.
func (s Statement) Args() []any {
	out := make([]any, len(s.args))
	copy(out, s.args)
	return out
}

type condition struct {
	col   Ident
	value any
}

type ordering struct {
	col Ident
	dir Direction
}

// Builder accumulates the clauses of a collection query.
// Clauses are rendered in a fixed order regardless of call order:
// WHERE, GROUP BY, ORDER BY, LIMIT, OFFSET. Placeholders are numbered in that
// same order, so filter values always take the lowest indexes and OFFSET the
// highest.
type Builder struct {
	base    string
	where   []condition
	groupBy []Ident
	orderBy []ordering
	limit   *int
	offset  *int
}

// Select starts a builder from base, the SELECT ... FROM ... [JOIN ...] part
// of the statement. base must be a constant owned by the caller; it is never
// derived from request input.
func Select(base string) *Builder {
	return &Builder{base: strings.TrimSpace(base)}
}

// WhereEq adds an equality predicate "col = $n". Multiple predicates are
// joined with AND.
func (b *Builder) WhereEq(col Ident, value any) *Builder {
	mustIdent(col)
	b.where = append(b.where, condition{col: col, value: value})
	return b
}

// GroupBy adds grouping columns.
func (b *Builder) GroupBy(cols ...Ident) *Builder {
	for _, c := range cols {
		mustIdent(c)
	}
	b.groupBy = append(b.groupBy, cols...)
	return b
}

// OrderBy adds an ordering term.
func (b *Builder) OrderBy(col Ident, dir Direction) *Builder {
	mustIdent(col)
	b.orderBy = append(b.orderBy, ordering{col: col, dir: dir})
	return b
}

// Limit sets the LIMIT value.
func (b *Builder) Limit(n int) *Builder {
	b.limit = &n
	return b
}

// Offset sets the OFFSET value.
func (b *Builder) Offset(n int) *Builder {
	b.offset = &n
	return b
}

// Build renders the full statement including ordering and pagination.
func (b *Builder) Build() Statement {
	var (
		sb   strings.Builder
		args []any
	)
	sb.WriteString(b.base)
	args = b.writeFiltered(&sb, args)

	if len(b.orderBy) > 0 {
		sb.WriteString(" ORDER BY ")
		for i, o := range b.orderBy {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(o.col.name)
			sb.WriteByte(' ')
			sb.WriteString(o.dir.sql())
		}
	}
	if b.limit != nil {
		args = append(args, *b.limit)
		fmt.Fprintf(&sb, " LIMIT $%d", len(args))
	}
	if b.offset != nil {
		args = append(args, *b.offset)
		fmt.Fprintf(&sb, " OFFSET $%d", len(args))
	}

	return Statement{sql: sb.String(), args: args}
}

// Count renders a statement returning the number of rows the filtered,
// grouped query matches, ignoring ordering and pagination. It binds exactly
// the filter values, so its predicates are identical to Build's.
func (b *Builder) Count() Statement {
	var sb strings.Builder
	sb.WriteString("SELECT COUNT(*) FROM (")
	sb.WriteString(b.base)
	args := b.writeFiltered(&sb, nil)
	sb.WriteString(") AS filtered")
	return Statement{sql: sb.String(), args: args}
}

// writeFiltered appends the WHERE and GROUP BY clauses shared by Build and Count.
func (b *Builder) writeFiltered(sb *strings.Builder, args []any) []any {
	for i, c := range b.where {
		if i == 0 {
			sb.WriteString(" WHERE ")
		} else {
			sb.WriteString(" AND ")
		}
		args = append(args, c.value)
		fmt.Fprintf(sb, "%s = $%d", c.col.name, len(args))
	}
	if len(b.groupBy) > 0 {
		sb.WriteString(" GROUP BY ")
		for i, g := range b.groupBy {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(g.name)
		}
	}
	return args
}

func mustIdent(i Ident) {
	if i.name == "" {
		panic("query: zero Ident; identifiers must come from an AllowList")
	}
}
