package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/nc-news/backend/internal/domain"
	"github.com/pkordes/nc-news/backend/internal/repo"
	"github.com/pkordes/nc-news/backend/testutil"
)

// newTestTx opens a transaction against the test database. The transaction is
// rolled back when the test finishes, so nothing a test writes survives it.
//
// Fixtures use uuid-suffixed slugs and usernames, so tests never collide with
// rows left by a seed run against the same database.
func newTestTx(t *testing.T) pgx.Tx {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		_ = tx.Rollback(context.Background())
	})
	return tx
}

func uniqueName(prefix string) string {
	return prefix + "_" + uuid.NewString()[:8]
}

// seedTopic inserts a topic with a unique slug and returns the slug.
func seedTopic(t *testing.T, tx pgx.Tx) string {
	t.Helper()
	got, err := repo.NewTopicRepo(tx).Create(context.Background(), domain.Topic{
		Slug:        uniqueName("topic"),
		Description: "fixture topic",
	})
	require.NoError(t, err, "seed topic")
	return got.Slug
}

// seedUser inserts a user with a unique username and returns the username.
func seedUser(t *testing.T, tx pgx.Tx) string {
	t.Helper()
	username := uniqueName("user")
	_, err := tx.Exec(context.Background(),
		`INSERT INTO users (username, name, avatar_url) VALUES ($1, $2, $3)`,
		username, "Fixture User", "https://example.com/avatar.png")
	require.NoError(t, err, "seed user")
	return username
}

// seedArticle inserts an article through the repo and returns it.
func seedArticle(t *testing.T, tx pgx.Tx, topic, author, title string) domain.Article {
	t.Helper()
	got, err := repo.NewArticleRepo(tx).Create(context.Background(), domain.NewArticle{
		Author: author,
		Title:  title,
		Body:   "fixture body",
		Topic:  topic,
	})
	require.NoError(t, err, "seed article")
	return got
}

// seedComment inserts a comment with an explicit created_at. now() is frozen
// for the whole transaction, so ordering tests must set timestamps themselves.
func seedComment(t *testing.T, tx pgx.Tx, articleID int64, author string, at time.Time) int64 {
	t.Helper()
	var id int64
	err := tx.QueryRow(context.Background(),
		`INSERT INTO comments (body, author, article_id, created_at)
		 VALUES ($1, $2, $3, $4) RETURNING comment_id`,
		"fixture comment", author, articleID, at).Scan(&id)
	require.NoError(t, err, "seed comment")
	return id
}
