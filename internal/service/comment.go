package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/pkordes/nc-news/backend/internal/domain"
	"github.com/pkordes/nc-news/backend/internal/repo"
)

// CommentService implements business logic for Comment operations.
// Listing and posting are scoped to an article, so it also holds the article
// and user repos for existence checks.
type CommentService struct {
	comments repo.CommentRepo
	articles repo.ArticleRepo
	users    repo.UserRepo
}

// NewCommentService constructs a CommentService backed by the provided repos.
func NewCommentService(comments repo.CommentRepo, articles repo.ArticleRepo, users repo.UserRepo) *CommentService {
	return &CommentService{comments: comments, articles: articles, users: users}
}

// ListByArticle returns one page of an article's comments, newest first, and
// the article's total comment count. The existence check, page query, and
// count query run concurrently.
// Returns domain.ErrArticleNotFound if the article does not exist.
func (s *CommentService) ListByArticle(ctx context.Context, articleID int64, p domain.PaginationParams) (domain.CommentPage, error) {
	var (
		page   domain.CommentPage
		exists bool
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		exists, err = s.articles.Exists(gctx, articleID)
		return err
	})
	g.Go(func() error {
		comments, err := s.comments.ListByArticle(gctx, articleID, p)
		page.Comments = comments
		return err
	})
	g.Go(func() error {
		total, err := s.comments.CountByArticle(gctx, articleID)
		page.TotalCount = total
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.CommentPage{}, fmt.Errorf("service.CommentService.ListByArticle: %w", err)
	}
	if !exists {
		return domain.CommentPage{}, fmt.Errorf("service.CommentService.ListByArticle: %w", domain.ErrArticleNotFound)
	}

	if page.Comments == nil {
		page.Comments = []domain.Comment{}
	}
	return page, nil
}

// Create posts a comment on an article.
// Returns domain.ErrMalformedInput when username or body is blank,
// domain.ErrUserNotFound for an unknown username, and
// domain.ErrArticleNotFound for an unknown article.
func (s *CommentService) Create(ctx context.Context, articleID int64, c domain.NewComment) (domain.Comment, error) {
	if err := validateNewComment(c); err != nil {
		return domain.Comment{}, err
	}

	ok, err := s.users.Exists(ctx, c.Username)
	if err != nil {
		return domain.Comment{}, fmt.Errorf("service.CommentService.Create: %w", err)
	}
	if !ok {
		return domain.Comment{}, fmt.Errorf("service.CommentService.Create: %w", domain.ErrUserNotFound)
	}

	ok, err = s.articles.Exists(ctx, articleID)
	if err != nil {
		return domain.Comment{}, fmt.Errorf("service.CommentService.Create: %w", err)
	}
	if !ok {
		return domain.Comment{}, fmt.Errorf("service.CommentService.Create: %w", domain.ErrArticleNotFound)
	}

	result, err := s.comments.Create(ctx, articleID, c)
	if err != nil {
		return domain.Comment{}, fmt.Errorf("service.CommentService.Create: %w", err)
	}
	return result, nil
}

// Vote adds inc to the comment's votes and returns the updated comment.
func (s *CommentService) Vote(ctx context.Context, id int64, inc int) (domain.Comment, error) {
	result, err := s.comments.UpdateVotes(ctx, id, inc)
	if err != nil {
		return domain.Comment{}, fmt.Errorf("service.CommentService.Vote: %w", err)
	}
	return result, nil
}

// Delete removes a comment by ID.
func (s *CommentService) Delete(ctx context.Context, id int64) error {
	if err := s.comments.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.CommentService.Delete: %w", err)
	}
	return nil
}
