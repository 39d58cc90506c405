//go:build integration

package seed_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/nc-news/backend/internal/seed"
	"github.com/pkordes/nc-news/backend/testutil"
)

// TestRun loads the fixed dataset into a throwaway database and checks that
// identities restart at 1.
func TestRun(t *testing.T) {
	pool := testutil.OpenPool(t, testutil.RunPostgres(t))
	ctx := context.Background()

	d := seed.TestData()
	require.NoError(t, seed.Run(ctx, pool, d))
	// A second run must replace, not append.
	require.NoError(t, seed.Run(ctx, pool, d))

	var articles, comments int
	require.NoError(t, pool.QueryRow(ctx, `SELECT COUNT(*) FROM articles`).Scan(&articles))
	require.NoError(t, pool.QueryRow(ctx, `SELECT COUNT(*) FROM comments`).Scan(&comments))
	assert.Equal(t, len(d.Articles), articles)
	assert.Equal(t, len(d.Comments), comments)

	var title string
	require.NoError(t, pool.QueryRow(ctx, `SELECT title FROM articles WHERE article_id = 1`).Scan(&title))
	assert.Equal(t, d.Articles[0].Title, title)

	var img string
	require.NoError(t, pool.QueryRow(ctx, `SELECT article_img_url FROM articles WHERE article_id = 1`).Scan(&img))
	assert.Equal(t, d.Articles[0].ArticleImgURL, img)
}

func TestRun_Fake(t *testing.T) {
	pool := testutil.OpenPool(t, testutil.RunPostgres(t))
	ctx := context.Background()

	d := seed.Fake(50, 11)
	require.NoError(t, seed.Run(ctx, pool, d))

	var maxID int
	require.NoError(t, pool.QueryRow(ctx, `SELECT MAX(article_id) FROM articles`).Scan(&maxID))
	assert.Equal(t, len(d.Articles), maxID)
}
