// Package service contains the business logic for the NC News API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here: services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/pkordes/nc-news/backend/internal/domain"
	"github.com/pkordes/nc-news/backend/internal/repo"
)

// ArticleService implements business logic for Article operations.
// It holds the topics repo because the topic filter is validated against the
// topics currently stored.
type ArticleService struct {
	articles repo.ArticleRepo
	topics   repo.TopicRepo
}

// NewArticleService constructs an ArticleService backed by the provided repos.
func NewArticleService(articles repo.ArticleRepo, topics repo.TopicRepo) *ArticleService {
	return &ArticleService{articles: articles, topics: topics}
}

// List validates q and returns one page of articles together with the number
// of articles matching the filter across all pages.
// Returns domain.ErrInvalidFilter for an unknown topic and domain.ErrInvalidQuery
// for a sort_by or order outside its allow-list.
func (s *ArticleService) List(ctx context.Context, q domain.ArticleQuery) (domain.ArticlePage, error) {
	var slugs []string
	if q.Topic != nil {
		var err error
		slugs, err = s.topics.ListSlugs(ctx)
		if err != nil {
			return domain.ArticlePage{}, fmt.Errorf("service.ArticleService.List: %w", err)
		}
	}

	listing, err := validateArticleQuery(q, slugs)
	if err != nil {
		return domain.ArticlePage{}, err
	}

	var page domain.ArticlePage
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		articles, err := s.articles.List(gctx, listing)
		page.Articles = articles
		return err
	})
	g.Go(func() error {
		total, err := s.articles.Count(gctx, listing.Filter)
		page.TotalCount = total
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.ArticlePage{}, fmt.Errorf("service.ArticleService.List: %w", err)
	}

	if page.Articles == nil {
		page.Articles = []domain.Article{}
	}
	return page, nil
}

// GetByID returns a single article with its body.
// Returns domain.ErrArticleNotFound if no article with that ID exists.
func (s *ArticleService) GetByID(ctx context.Context, id int64) (domain.Article, error) {
	result, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return domain.Article{}, fmt.Errorf("service.ArticleService.GetByID: %w", err)
	}
	return result, nil
}

// Create validates and persists a new article.
// Returns domain.ErrMalformedInput when a required field is blank and
// domain.ErrNotFound when the author or topic does not exist.
func (s *ArticleService) Create(ctx context.Context, a domain.NewArticle) (domain.Article, error) {
	if err := validateNewArticle(a); err != nil {
		return domain.Article{}, err
	}
	result, err := s.articles.Create(ctx, a)
	if err != nil {
		return domain.Article{}, fmt.Errorf("service.ArticleService.Create: %w", err)
	}
	return result, nil
}

// Vote adds inc to the article's votes and returns the updated article.
func (s *ArticleService) Vote(ctx context.Context, id int64, inc int) (domain.Article, error) {
	result, err := s.articles.UpdateVotes(ctx, id, inc)
	if err != nil {
		return domain.Article{}, fmt.Errorf("service.ArticleService.Vote: %w", err)
	}
	return result, nil
}

// Delete removes an article and all of its comments.
func (s *ArticleService) Delete(ctx context.Context, id int64) error {
	if err := s.articles.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.ArticleService.Delete: %w", err)
	}
	return nil
}
