package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pkordes/nc-news/backend/internal/domain"
	"github.com/pkordes/nc-news/backend/internal/handler"
)

type mockArticleService struct {
	list    func(ctx context.Context, q domain.ArticleQuery) (domain.ArticlePage, error)
	getByID func(ctx context.Context, id int64) (domain.Article, error)
	create  func(ctx context.Context, a domain.NewArticle) (domain.Article, error)
	vote    func(ctx context.Context, id int64, inc int) (domain.Article, error)
	delete  func(ctx context.Context, id int64) error
}

func (m *mockArticleService) List(ctx context.Context, q domain.ArticleQuery) (domain.ArticlePage, error) {
	return m.list(ctx, q)
}
func (m *mockArticleService) GetByID(ctx context.Context, id int64) (domain.Article, error) {
	return m.getByID(ctx, id)
}
func (m *mockArticleService) Create(ctx context.Context, a domain.NewArticle) (domain.Article, error) {
	return m.create(ctx, a)
}
func (m *mockArticleService) Vote(ctx context.Context, id int64, inc int) (domain.Article, error) {
	return m.vote(ctx, id, inc)
}
func (m *mockArticleService) Delete(ctx context.Context, id int64) error { return m.delete(ctx, id) }

type mockCommentService struct {
	listByArticle func(ctx context.Context, articleID int64, p domain.PaginationParams) (domain.CommentPage, error)
	create        func(ctx context.Context, articleID int64, c domain.NewComment) (domain.Comment, error)
	vote          func(ctx context.Context, id int64, inc int) (domain.Comment, error)
	delete        func(ctx context.Context, id int64) error
}

func (m *mockCommentService) ListByArticle(ctx context.Context, articleID int64, p domain.PaginationParams) (domain.CommentPage, error) {
	return m.listByArticle(ctx, articleID, p)
}
func (m *mockCommentService) Create(ctx context.Context, articleID int64, c domain.NewComment) (domain.Comment, error) {
	return m.create(ctx, articleID, c)
}
func (m *mockCommentService) Vote(ctx context.Context, id int64, inc int) (domain.Comment, error) {
	return m.vote(ctx, id, inc)
}
func (m *mockCommentService) Delete(ctx context.Context, id int64) error { return m.delete(ctx, id) }

type mockTopicService struct {
	list   func(ctx context.Context) ([]domain.Topic, error)
	create func(ctx context.Context, t domain.Topic) (domain.Topic, error)
}

func (m *mockTopicService) List(ctx context.Context) ([]domain.Topic, error) { return m.list(ctx) }
func (m *mockTopicService) Create(ctx context.Context, t domain.Topic) (domain.Topic, error) {
	return m.create(ctx, t)
}

type mockUserService struct {
	list          func(ctx context.Context) ([]domain.User, error)
	getByUsername func(ctx context.Context, username string) (domain.User, error)
}

func (m *mockUserService) List(ctx context.Context) ([]domain.User, error) { return m.list(ctx) }
func (m *mockUserService) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	return m.getByUsername(ctx, username)
}

// compile-time checks: the mocks must satisfy the servicer interfaces.
var (
	_ handler.ArticleServicer = (*mockArticleService)(nil)
	_ handler.CommentServicer = (*mockCommentService)(nil)
	_ handler.TopicServicer   = (*mockTopicService)(nil)
	_ handler.UserServicer    = (*mockUserService)(nil)
)

// services bundles the mocks for one test. Nil fields are replaced with empty
// mocks so an unexpected call panics inside the mock rather than on a nil interface.
type services struct {
	articles *mockArticleService
	comments *mockCommentService
	topics   *mockTopicService
	users    *mockUserService
}

// do sends a request through the full /api router and returns the recorder.
func do(t *testing.T, svc services, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	if svc.articles == nil {
		svc.articles = &mockArticleService{}
	}
	if svc.comments == nil {
		svc.comments = &mockCommentService{}
	}
	if svc.topics == nil {
		svc.topics = &mockTopicService{}
	}
	if svc.users == nil {
		svc.users = &mockUserService{}
	}
	srv := handler.NewServer(svc.articles, svc.comments, svc.topics, svc.users, []byte(`{"GET /api":{}}`))

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)
	return rec
}
