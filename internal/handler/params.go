package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"

	"github.com/pkordes/nc-news/backend/internal/domain"
)

// pathID binds a numeric path parameter. Anything that is not an integer in
// int64 range is ErrMalformedInput, so it never reaches the store.
func pathID(r *http.Request, name string) (int64, error) {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), &id,
		runtime.BindStyledParameterOptions{
			ParamLocation: runtime.ParamLocationPath,
			Explode:       false,
			Required:      true,
		})
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", domain.ErrMalformedInput, name, err)
	}
	return id, nil
}

// paginationParams binds the optional limit and page query parameters.
func paginationParams(r *http.Request) (domain.PaginationParams, error) {
	var limit, page *int
	q := r.URL.Query()

	if err := runtime.BindQueryParameter("form", true, false, "limit", q, &limit); err != nil {
		return domain.PaginationParams{}, fmt.Errorf("%w: %w", domain.ErrInvalidPagination, err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "page", q, &page); err != nil {
		return domain.PaginationParams{}, fmt.Errorf("%w: %w", domain.ErrInvalidPagination, err)
	}
	return domain.NewPaginationParams(page, limit)
}

// articleQuery binds the article listing parameters. Values are not checked
// against their allow-lists here; the service does that.
func articleQuery(r *http.Request) (domain.ArticleQuery, error) {
	p, err := paginationParams(r)
	if err != nil {
		return domain.ArticleQuery{}, err
	}
	aq := domain.ArticleQuery{Pagination: p}

	q := r.URL.Query()
	for name, dst := range map[string]**string{
		"topic":   &aq.Topic,
		"sort_by": &aq.SortBy,
		"order":   &aq.Order,
	} {
		if err := runtime.BindQueryParameter("form", true, false, name, q, dst); err != nil {
			return domain.ArticleQuery{}, fmt.Errorf("%w: %s: %w", domain.ErrInvalidQuery, name, err)
		}
		// An empty value (?topic=) means the parameter was not given.
		if *dst != nil && **dst == "" {
			*dst = nil
		}
	}
	return aq, nil
}
