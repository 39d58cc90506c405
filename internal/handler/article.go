package handler

import (
	"net/http"
	"time"

	"github.com/pkordes/nc-news/backend/internal/domain"
)

// articleJSON is the wire form of an article. Body is omitted from listings.
type articleJSON struct {
	ArticleID     int64     `json:"article_id"`
	Title         string    `json:"title"`
	Topic         string    `json:"topic"`
	Author        string    `json:"author"`
	Body          string    `json:"body,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	Votes         int       `json:"votes"`
	ArticleImgURL string    `json:"article_img_url"`
	CommentCount  int       `json:"comment_count"`
}

func articleToResponse(a domain.Article) articleJSON {
	return articleJSON{
		ArticleID:     a.ID,
		Title:         a.Title,
		Topic:         a.Topic,
		Author:        a.Author,
		Body:          a.Body,
		CreatedAt:     a.CreatedAt,
		Votes:         a.Votes,
		ArticleImgURL: a.ArticleImgURL,
		CommentCount:  a.CommentCount,
	}
}

type articleBody struct {
	Article articleJSON `json:"article"`
}

type articleListBody struct {
	Articles   []articleJSON `json:"articles"`
	TotalCount int64         `json:"total_count"`
}

// articleRequest is the POST /api/articles body.
type articleRequest struct {
	Author        string `json:"author"`
	Title         string `json:"title"`
	Body          string `json:"body"`
	Topic         string `json:"topic"`
	ArticleImgURL string `json:"article_img_url"`
}

var articleFields = []string{"author", "title", "body", "topic", "article_img_url"}

// ListArticles handles GET /api/articles.
// Supports ?topic=, ?sort_by=, ?order=, ?limit= and ?page=.
func (s *Server) ListArticles(w http.ResponseWriter, r *http.Request) {
	q, err := articleQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	page, err := s.articles.List(r.Context(), q)
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := articleListBody{
		Articles:   make([]articleJSON, len(page.Articles)),
		TotalCount: page.TotalCount,
	}
	for i, a := range page.Articles {
		out.Articles[i] = articleToResponse(a)
	}
	writeJSON(w, http.StatusOK, out)
}

// CreateArticle handles POST /api/articles.
func (s *Server) CreateArticle(w http.ResponseWriter, r *http.Request) {
	var req articleRequest
	if err := decodeAllowed(r, "article", articleFields, &req); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := s.articles.Create(r.Context(), domain.NewArticle{
		Author:        req.Author,
		Title:         req.Title,
		Body:          req.Body,
		Topic:         req.Topic,
		ArticleImgURL: req.ArticleImgURL,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, articleBody{Article: articleToResponse(created)})
}

// GetArticle handles GET /api/articles/{article_id}.
func (s *Server) GetArticle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "article_id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	a, err := s.articles.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, articleBody{Article: articleToResponse(a)})
}

// VoteArticle handles PATCH /api/articles/{article_id}.
func (s *Server) VoteArticle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "article_id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	inc, err := decodeVote(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	a, err := s.articles.Vote(r.Context(), id, inc)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusAccepted, articleBody{Article: articleToResponse(a)})
}

// DeleteArticle handles DELETE /api/articles/{article_id}.
// The article's comments are removed with it.
func (s *Server) DeleteArticle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "article_id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := s.articles.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
