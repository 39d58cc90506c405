// Package seed loads datasets into the NC News database: the fixed dataset the
// integration tests assert against, and generated datasets of any size for
// local development.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/pkordes/nc-news/backend/internal/domain"
)

// DefaultArticleImgURL is the image the schema assigns when none is given.
const DefaultArticleImgURL = "https://images.pexels.com/photos/97050/pexels-photo-97050.jpeg?w=700&h=700"

// Article is an article row as seeded. IDs are assigned by the database in
// slice order, starting at 1.
type Article struct {
	Title         string
	Topic         string
	Author        string
	Body          string
	CreatedAt     time.Time
	Votes         int
	ArticleImgURL string
}

// Comment is a comment row as seeded. ArticleID is the 1-based position of
// the article in Data.Articles.
type Comment struct {
	Body      string
	ArticleID int64
	Author    string
	Votes     int
	CreatedAt time.Time
}

// Data is a complete dataset.
type Data struct {
	Topics   []domain.Topic
	Users    []domain.User
	Articles []Article
	Comments []Comment
}

// beginner is satisfied by *pgxpool.Pool and *pgx.Conn.
type beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Run replaces the contents of every table with d inside one transaction.
// Identity sequences are reset, so article and comment IDs start at 1.
func Run(ctx context.Context, db beginner, d Data) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("seed.Run: begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `TRUNCATE comments, articles, users, topics RESTART IDENTITY CASCADE`); err != nil {
		return fmt.Errorf("seed.Run: truncate: %w", err)
	}

	if err := copyRows(ctx, tx, "topics", []string{"slug", "description"}, len(d.Topics), func(i int) []any {
		t := d.Topics[i]
		return []any{t.Slug, t.Description}
	}); err != nil {
		return err
	}

	if err := copyRows(ctx, tx, "users", []string{"username", "name", "avatar_url"}, len(d.Users), func(i int) []any {
		u := d.Users[i]
		return []any{u.Username, u.Name, u.AvatarURL}
	}); err != nil {
		return err
	}

	articleCols := []string{"title", "topic", "author", "body", "created_at", "votes", "article_img_url"}
	if err := copyRows(ctx, tx, "articles", articleCols, len(d.Articles), func(i int) []any {
		a := d.Articles[i]
		img := a.ArticleImgURL
		if img == "" {
			img = DefaultArticleImgURL
		}
		return []any{a.Title, a.Topic, a.Author, a.Body, a.CreatedAt, a.Votes, img}
	}); err != nil {
		return err
	}

	commentCols := []string{"body", "article_id", "author", "votes", "created_at"}
	if err := copyRows(ctx, tx, "comments", commentCols, len(d.Comments), func(i int) []any {
		c := d.Comments[i]
		return []any{c.Body, c.ArticleID, c.Author, c.Votes, c.CreatedAt}
	}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("seed.Run: commit: %w", err)
	}
	return nil
}

// copyRows bulk-loads n rows into table with COPY. COPY preserves row order,
// which is what makes serial IDs follow slice order.
func copyRows(ctx context.Context, tx pgx.Tx, table string, cols []string, n int, row func(i int) []any) error {
	if n == 0 {
		return nil
	}
	src := pgx.CopyFromSlice(n, func(i int) ([]any, error) { return row(i), nil })
	if _, err := tx.CopyFrom(ctx, pgx.Identifier{table}, cols, src); err != nil {
		return fmt.Errorf("seed.Run: copy %s: %w", table, err)
	}
	return nil
}
