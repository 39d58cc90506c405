package domain

import "fmt"

// ArticleSort is the closed set of columns an article listing may be sorted by.
// The zero value is SortByCreatedAt, the default ordering.
type ArticleSort int

const (
	SortByCreatedAt ArticleSort = iota
	SortByTitle
	SortByTopic
	SortByAuthor
	SortByVotes
)

var articleSortNames = map[ArticleSort]string{
	SortByCreatedAt: "created_at",
	SortByTitle:     "title",
	SortByTopic:     "topic",
	SortByAuthor:    "author",
	SortByVotes:     "votes",
}

// String returns the wire name of the sort column.
func (s ArticleSort) String() string {
	if name, ok := articleSortNames[s]; ok {
		return name
	}
	return fmt.Sprintf("ArticleSort(%d)", int(s))
}

// ParseArticleSort maps a sort_by query value to an ArticleSort.
// Anything outside the allow-list is ErrInvalidQuery.
func ParseArticleSort(s string) (ArticleSort, error) {
	for sort, name := range articleSortNames {
		if name == s {
			return sort, nil
		}
	}
	return 0, fmt.Errorf("%w: sort_by %q", ErrInvalidQuery, s)
}

// SortOrder is the direction of an ordering. The zero value is OrderDesc.
type SortOrder int

const (
	OrderDesc SortOrder = iota
	OrderAsc
)

// String returns the wire name of the order.
func (o SortOrder) String() string {
	if o == OrderAsc {
		return "asc"
	}
	return "desc"
}

// ParseSortOrder maps an order query value to a SortOrder.
// Only "asc" and "desc" are accepted; matching is exact.
func ParseSortOrder(s string) (SortOrder, error) {
	switch s {
	case "asc":
		return OrderAsc, nil
	case "desc":
		return OrderDesc, nil
	}
	return 0, fmt.Errorf("%w: order %q", ErrInvalidQuery, s)
}

// ArticleQuery is the raw, unvalidated form of a GET /articles request.
// Nil pointers mean the parameter was absent.
type ArticleQuery struct {
	Topic      *string
	SortBy     *string
	Order      *string
	Pagination PaginationParams
}

// ArticleFilter is the equality filter shared by a listing and its count.
// An empty Topic means no filter.
type ArticleFilter struct {
	Topic string
}

// ArticleListing is a validated article listing request. Every field has
// passed its allow-list check.
type ArticleListing struct {
	Filter     ArticleFilter
	Sort       ArticleSort
	Order      SortOrder
	Pagination PaginationParams
}
