package service

import (
	"fmt"
	"slices"
	"strings"

	"github.com/pkordes/nc-news/backend/internal/domain"
)

// validateArticleQuery turns raw listing parameters into a validated listing.
// It stops at the first rejection, checking topic, then sort_by, then order.
// topics is the current set of topic slugs; it is only consulted when a
// topic filter is present.
func validateArticleQuery(q domain.ArticleQuery, topics []string) (domain.ArticleListing, error) {
	listing := domain.ArticleListing{Pagination: q.Pagination}

	if q.Topic != nil {
		if !slices.Contains(topics, *q.Topic) {
			return domain.ArticleListing{}, fmt.Errorf("%w: topic %q", domain.ErrInvalidFilter, *q.Topic)
		}
		listing.Filter.Topic = *q.Topic
	}

	if q.SortBy != nil {
		sort, err := domain.ParseArticleSort(*q.SortBy)
		if err != nil {
			return domain.ArticleListing{}, err
		}
		listing.Sort = sort
	}

	if q.Order != nil {
		order, err := domain.ParseSortOrder(*q.Order)
		if err != nil {
			return domain.ArticleListing{}, err
		}
		listing.Order = order
	}

	return listing, nil
}

func validateNewArticle(a domain.NewArticle) error {
	return requireFields(
		field{"author", a.Author},
		field{"title", a.Title},
		field{"body", a.Body},
		field{"topic", a.Topic},
	)
}

func validateNewComment(c domain.NewComment) error {
	return requireFields(field{"username", c.Username}, field{"body", c.Body})
}

func validateTopic(t domain.Topic) error {
	return requireFields(field{"slug", t.Slug}, field{"description", t.Description})
}

type field struct {
	name  string
	value string
}

// requireFields rejects the first field that is empty or whitespace-only.
func requireFields(fields ...field) error {
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s is required", domain.ErrMalformedInput, f.name)
		}
	}
	return nil
}
