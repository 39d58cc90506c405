// Package handler implements the HTTP handlers for the NC News API.
// All handlers are methods on Server. Methods are split into resource-specific
// files (article.go, comment.go, etc.) but all share the same Server struct so
// they can access its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/nc-news/backend/internal/domain"
)

// ArticleServicer defines the business operations the article handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type ArticleServicer interface {
	List(ctx context.Context, q domain.ArticleQuery) (domain.ArticlePage, error)
	GetByID(ctx context.Context, id int64) (domain.Article, error)
	Create(ctx context.Context, a domain.NewArticle) (domain.Article, error)
	Vote(ctx context.Context, id int64, inc int) (domain.Article, error)
	Delete(ctx context.Context, id int64) error
}

// CommentServicer defines the business operations the comment handlers depend on.
type CommentServicer interface {
	ListByArticle(ctx context.Context, articleID int64, p domain.PaginationParams) (domain.CommentPage, error)
	Create(ctx context.Context, articleID int64, c domain.NewComment) (domain.Comment, error)
	Vote(ctx context.Context, id int64, inc int) (domain.Comment, error)
	Delete(ctx context.Context, id int64) error
}

// TopicServicer defines the business operations the topic handlers depend on.
type TopicServicer interface {
	List(ctx context.Context) ([]domain.Topic, error)
	Create(ctx context.Context, t domain.Topic) (domain.Topic, error)
}

// UserServicer defines the business operations the user handlers depend on.
type UserServicer interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByUsername(ctx context.Context, username string) (domain.User, error)
}

// Server holds the services behind every API endpoint.
// Wire it in main.go by mounting Routes on the root router.
type Server struct {
	articles  ArticleServicer
	comments  CommentServicer
	topics    TopicServicer
	users     UserServicer
	endpoints []byte
}

// NewServer constructs the Server with all its dependencies.
// endpoints is the JSON document served at GET /api.
func NewServer(articles ArticleServicer, comments CommentServicer, topics TopicServicer, users UserServicer, endpoints []byte) *Server {
	return &Server{
		articles:  articles,
		comments:  comments,
		topics:    topics,
		users:     users,
		endpoints: endpoints,
	}
}

// Routes returns a router serving the whole /api tree. Unknown paths and
// unsupported methods both answer 404 "Endpoint Not Found".
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.NotFound(NotFound)
	r.MethodNotAllowed(NotFound)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", s.GetEndpoints)
		r.Get("/healthcheck", s.GetHealth)

		r.Get("/topics", s.ListTopics)
		r.Post("/topics", s.CreateTopic)

		r.Get("/users", s.ListUsers)
		r.Get("/users/{username}", s.GetUser)

		r.Route("/articles", func(r chi.Router) {
			r.Get("/", s.ListArticles)
			r.Post("/", s.CreateArticle)
			r.Get("/{article_id}", s.GetArticle)
			r.Patch("/{article_id}", s.VoteArticle)
			r.Delete("/{article_id}", s.DeleteArticle)
			r.Get("/{article_id}/comments", s.ListArticleComments)
			r.Post("/{article_id}/comments", s.CreateArticleComment)
		})

		r.Patch("/comments/{comment_id}", s.VoteComment)
		r.Delete("/comments/{comment_id}", s.DeleteComment)
	})
	return r
}

// NotFound answers any request that matched no route.
func NotFound(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusNotFound, messageBody{Message: "Endpoint Not Found"})
}
