package seed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/nc-news/backend/internal/seed"
)

func TestFake_Sizes(t *testing.T) {
	d := seed.Fake(40, 1)

	assert.Len(t, d.Articles, 40)
	assert.Len(t, d.Topics, 4)
	assert.Len(t, d.Users, 10)
	assert.LessOrEqual(t, len(d.Comments), 3*40)
}

func TestFake_ReferencesResolve(t *testing.T) {
	assertReferencesResolve(t, seed.Fake(100, 7))
}

func TestFake_Deterministic(t *testing.T) {
	assert.Equal(t, seed.Fake(25, 42), seed.Fake(25, 42))
}

func TestFake_CommentsFollowTheirArticle(t *testing.T) {
	d := seed.Fake(30, 3)
	for _, c := range d.Comments {
		a := d.Articles[c.ArticleID-1]
		assert.False(t, c.CreatedAt.Before(a.CreatedAt), "comment predates its article")
	}
}

func TestFake_Empty(t *testing.T) {
	d := seed.Fake(0, 1)

	assert.Empty(t, d.Articles)
	assert.Empty(t, d.Comments)
	assert.Len(t, d.Topics, 3)
	assert.Len(t, d.Users, 2)
}
