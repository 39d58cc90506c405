package service_test

import (
	"context"

	"github.com/pkordes/nc-news/backend/internal/domain"
	"github.com/pkordes/nc-news/backend/internal/repo"
)

// Hand-written test doubles. Each method delegates to a function field so a
// test only sets the behaviour it exercises; calling an unset field panics,
// which flags an unexpected repo call.

type mockArticleRepo struct {
	list        func(ctx context.Context, l domain.ArticleListing) ([]domain.Article, error)
	count       func(ctx context.Context, f domain.ArticleFilter) (int64, error)
	getByID     func(ctx context.Context, id int64) (domain.Article, error)
	exists      func(ctx context.Context, id int64) (bool, error)
	create      func(ctx context.Context, a domain.NewArticle) (domain.Article, error)
	updateVotes func(ctx context.Context, id int64, inc int) (domain.Article, error)
	delete      func(ctx context.Context, id int64) error
}

func (m *mockArticleRepo) List(ctx context.Context, l domain.ArticleListing) ([]domain.Article, error) {
	return m.list(ctx, l)
}
func (m *mockArticleRepo) Count(ctx context.Context, f domain.ArticleFilter) (int64, error) {
	return m.count(ctx, f)
}
func (m *mockArticleRepo) GetByID(ctx context.Context, id int64) (domain.Article, error) {
	return m.getByID(ctx, id)
}
func (m *mockArticleRepo) Exists(ctx context.Context, id int64) (bool, error) {
	return m.exists(ctx, id)
}
func (m *mockArticleRepo) Create(ctx context.Context, a domain.NewArticle) (domain.Article, error) {
	return m.create(ctx, a)
}
func (m *mockArticleRepo) UpdateVotes(ctx context.Context, id int64, inc int) (domain.Article, error) {
	return m.updateVotes(ctx, id, inc)
}
func (m *mockArticleRepo) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}

type mockCommentRepo struct {
	listByArticle  func(ctx context.Context, articleID int64, p domain.PaginationParams) ([]domain.Comment, error)
	countByArticle func(ctx context.Context, articleID int64) (int64, error)
	create         func(ctx context.Context, articleID int64, c domain.NewComment) (domain.Comment, error)
	updateVotes    func(ctx context.Context, id int64, inc int) (domain.Comment, error)
	delete         func(ctx context.Context, id int64) error
}

func (m *mockCommentRepo) ListByArticle(ctx context.Context, articleID int64, p domain.PaginationParams) ([]domain.Comment, error) {
	return m.listByArticle(ctx, articleID, p)
}
func (m *mockCommentRepo) CountByArticle(ctx context.Context, articleID int64) (int64, error) {
	return m.countByArticle(ctx, articleID)
}
func (m *mockCommentRepo) Create(ctx context.Context, articleID int64, c domain.NewComment) (domain.Comment, error) {
	return m.create(ctx, articleID, c)
}
func (m *mockCommentRepo) UpdateVotes(ctx context.Context, id int64, inc int) (domain.Comment, error) {
	return m.updateVotes(ctx, id, inc)
}
func (m *mockCommentRepo) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}

type mockTopicRepo struct {
	list      func(ctx context.Context) ([]domain.Topic, error)
	listSlugs func(ctx context.Context) ([]string, error)
	create    func(ctx context.Context, t domain.Topic) (domain.Topic, error)
}

func (m *mockTopicRepo) List(ctx context.Context) ([]domain.Topic, error) { return m.list(ctx) }
func (m *mockTopicRepo) ListSlugs(ctx context.Context) ([]string, error) {
	return m.listSlugs(ctx)
}
func (m *mockTopicRepo) Create(ctx context.Context, t domain.Topic) (domain.Topic, error) {
	return m.create(ctx, t)
}

type mockUserRepo struct {
	list          func(ctx context.Context) ([]domain.User, error)
	getByUsername func(ctx context.Context, username string) (domain.User, error)
	exists        func(ctx context.Context, username string) (bool, error)
}

func (m *mockUserRepo) List(ctx context.Context) ([]domain.User, error) { return m.list(ctx) }
func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	return m.getByUsername(ctx, username)
}
func (m *mockUserRepo) Exists(ctx context.Context, username string) (bool, error) {
	return m.exists(ctx, username)
}

// compile-time checks: the mocks must satisfy the repo interfaces.
var (
	_ repo.ArticleRepo = (*mockArticleRepo)(nil)
	_ repo.CommentRepo = (*mockCommentRepo)(nil)
	_ repo.TopicRepo   = (*mockTopicRepo)(nil)
	_ repo.UserRepo    = (*mockUserRepo)(nil)
)

func ptr[T any](v T) *T { return &v }
