package query

import "sort"

// Ident is an SQL identifier that has passed an allow-list check.
// Its field is unexported so the only way to obtain a non-zero Ident is
// AllowList.Lookup.
type Ident struct {
	name string
}

// String returns the identifier as it appears in SQL.
func (i Ident) String() string { return i.name }

// AllowList maps externally visible names (e.g. a sort_by value) to the
// qualified column they stand for.
type AllowList struct {
	idents map[string]Ident
}

// NewAllowList builds an AllowList from name → column pairs. Columns are
// fixed strings chosen by the caller, e.g. {"votes": "articles.votes"}.
func NewAllowList(columns map[string]string) AllowList {
	idents := make(map[string]Ident, len(columns))
	for name, col := range columns {
		idents[name] = Ident{name: col}
	}
	return AllowList{idents: idents}
}

// Lookup returns the Ident for name. Matching is exact and case-sensitive.
func (a AllowList) Lookup(name string) (Ident, bool) {
	i, ok := a.idents[name]
	return i, ok
}

// MustLookup is Lookup for names the caller itself put in the list.
// It panics when name is missing.
func (a AllowList) MustLookup(name string) Ident {
	i, ok := a.Lookup(name)
	if !ok {
		panic("query: " + name + " is not in the allow-list")
	}
	return i
}

// Names returns the permitted external names in sorted order.
func (a AllowList) Names() []string {
	names := make([]string, 0, len(a.idents))
	for n := range a.idents {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
