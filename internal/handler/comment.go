package handler

import (
	"net/http"
	"time"

	"github.com/pkordes/nc-news/backend/internal/domain"
)

type commentJSON struct {
	CommentID int64     `json:"comment_id"`
	Body      string    `json:"body"`
	ArticleID int64     `json:"article_id"`
	Author    string    `json:"author"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
}

func commentToResponse(c domain.Comment) commentJSON {
	return commentJSON{
		CommentID: c.ID,
		Body:      c.Body,
		ArticleID: c.ArticleID,
		Author:    c.Author,
		Votes:     c.Votes,
		CreatedAt: c.CreatedAt,
	}
}

type commentBody struct {
	Comment commentJSON `json:"comment"`
}

type commentListBody struct {
	Comments   []commentJSON `json:"comments"`
	TotalCount int64         `json:"total_count"`
}

type commentRequest struct {
	Username string `json:"username"`
	Body     string `json:"body"`
}

var commentFields = []string{"username", "body"}

// ListArticleComments handles GET /api/articles/{article_id}/comments.
// Supports ?limit= and ?page=; comments are always newest first.
func (s *Server) ListArticleComments(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "article_id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	p, err := paginationParams(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	page, err := s.comments.ListByArticle(r.Context(), id, p)
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := commentListBody{
		Comments:   make([]commentJSON, len(page.Comments)),
		TotalCount: page.TotalCount,
	}
	for i, c := range page.Comments {
		out.Comments[i] = commentToResponse(c)
	}
	writeJSON(w, http.StatusOK, out)
}

// CreateArticleComment handles POST /api/articles/{article_id}/comments.
func (s *Server) CreateArticleComment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "article_id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req commentRequest
	if err := decodeAllowed(r, "comment", commentFields, &req); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := s.comments.Create(r.Context(), id, domain.NewComment{Username: req.Username, Body: req.Body})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, commentBody{Comment: commentToResponse(created)})
}

// VoteComment handles PATCH /api/comments/{comment_id}.
func (s *Server) VoteComment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "comment_id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	inc, err := decodeVote(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	c, err := s.comments.Vote(r.Context(), id, inc)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusAccepted, commentBody{Comment: commentToResponse(c)})
}

// DeleteComment handles DELETE /api/comments/{comment_id}.
func (s *Server) DeleteComment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "comment_id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := s.comments.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
