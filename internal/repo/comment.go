package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pkordes/nc-news/backend/internal/domain"
	"github.com/pkordes/nc-news/backend/internal/query"
)

// CommentRepo defines the persistence operations for Comments.
type CommentRepo interface {
	// ListByArticle returns one page of an article's comments, newest first.
	// An article with no comments (or a page past the end) yields an empty slice.
	ListByArticle(ctx context.Context, articleID int64, p domain.PaginationParams) ([]domain.Comment, error)

	// CountByArticle returns how many comments the article has.
	CountByArticle(ctx context.Context, articleID int64) (int64, error)

	// Create inserts a comment on the given article.
	Create(ctx context.Context, articleID int64, c domain.NewComment) (domain.Comment, error)

	// UpdateVotes adds inc to the comment's votes.
	// Returns domain.ErrCommentNotFound if no comment with that ID exists.
	UpdateVotes(ctx context.Context, id int64, inc int) (domain.Comment, error)

	// Delete removes a comment by ID.
	// Returns domain.ErrCommentNotFound if no comment with that ID exists.
	Delete(ctx context.Context, id int64) error
}

// pgCommentRepo is the Postgres implementation of CommentRepo.
type pgCommentRepo struct {
	db db
}

// NewCommentRepo constructs a CommentRepo backed by the provided db connection.
func NewCommentRepo(db db) CommentRepo {
	return &pgCommentRepo{db: db}
}

const commentSelect = `SELECT comment_id, body, author, article_id, created_at, votes FROM comments`

const commentReturning = `comment_id, body, author, article_id, created_at, votes`

var commentColumns = query.NewAllowList(map[string]string{
	"article_id": "comments.article_id",
	"created_at": "comments.created_at",
})

func commentsOfArticle(articleID int64) *query.Builder {
	return query.Select(commentSelect).WhereEq(commentColumns.MustLookup("article_id"), articleID)
}

// ListByArticle returns the requested page of comments ordered by created_at DESC.
func (r *pgCommentRepo) ListByArticle(ctx context.Context, articleID int64, p domain.PaginationParams) ([]domain.Comment, error) {
	b := commentsOfArticle(articleID).OrderBy(commentColumns.MustLookup("created_at"), query.Desc)
	paginate(b, p)
	stmt := b.Build()

	rows, err := r.db.Query(ctx, stmt.SQL(), stmt.Args()...)
	if err != nil {
		return nil, fmt.Errorf("repo.CommentRepo.ListByArticle: %w", translatePgError(err))
	}
	defer rows.Close()

	comments := []domain.Comment{}
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.CommentRepo.ListByArticle: scan: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.CommentRepo.ListByArticle: rows: %w", err)
	}
	return comments, nil
}

// CountByArticle counts the article's comments with the same predicate as ListByArticle.
func (r *pgCommentRepo) CountByArticle(ctx context.Context, articleID int64) (int64, error) {
	n, err := count(ctx, r.db, commentsOfArticle(articleID).Count())
	if err != nil {
		return 0, fmt.Errorf("repo.CommentRepo.CountByArticle: %w", err)
	}
	return n, nil
}

// Create inserts a comment row and returns it.
func (r *pgCommentRepo) Create(ctx context.Context, articleID int64, c domain.NewComment) (domain.Comment, error) {
	const q = `
		INSERT INTO comments (body, author, article_id)
		VALUES (@body, @author, @article_id)
		RETURNING ` + commentReturning

	args := pgx.NamedArgs{
		"body":       c.Body,
		"author":     c.Username,
		"article_id": articleID,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanComment(row)
	if err != nil {
		return domain.Comment{}, fmt.Errorf("repo.CommentRepo.Create: %w", err)
	}
	return result, nil
}

// UpdateVotes applies a relative vote change and returns the updated comment.
func (r *pgCommentRepo) UpdateVotes(ctx context.Context, id int64, inc int) (domain.Comment, error) {
	const q = `
		UPDATE comments
		SET votes = votes + @inc
		WHERE comment_id = @id
		RETURNING ` + commentReturning

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id, "inc": inc})
	result, err := scanComment(row)
	if err != nil {
		return domain.Comment{}, fmt.Errorf("repo.CommentRepo.UpdateVotes: %w", err)
	}
	return result, nil
}

// Delete removes a comment by primary key.
func (r *pgCommentRepo) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM comments WHERE comment_id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.CommentRepo.Delete: %w", translatePgError(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.CommentRepo.Delete: %w", domain.ErrCommentNotFound)
	}
	return nil
}

// scanComment maps a single database row into a domain.Comment.
func scanComment(s scanner) (domain.Comment, error) {
	var c domain.Comment
	err := s.Scan(&c.ID, &c.Body, &c.Author, &c.ArticleID, &c.CreatedAt, &c.Votes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Comment{}, domain.ErrCommentNotFound
		}
		return domain.Comment{}, translatePgError(err)
	}
	return c, nil
}
