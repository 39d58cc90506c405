package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pkordes/nc-news/backend/internal/domain"
	"github.com/pkordes/nc-news/backend/internal/query"
)

// ArticleRepo defines the persistence operations for Articles.
// The service layer depends on this interface, not the concrete Postgres implementation,
// which allows the service to be unit-tested with a mock.
type ArticleRepo interface {
	// List returns one page of articles matching the listing's filter, in the
	// listing's order. Body is not populated.
	List(ctx context.Context, l domain.ArticleListing) ([]domain.Article, error)

	// Count returns how many articles match f, ignoring pagination.
	Count(ctx context.Context, f domain.ArticleFilter) (int64, error)

	// GetByID retrieves a single article including body and comment_count.
	// Returns domain.ErrArticleNotFound if no article with that ID exists.
	GetByID(ctx context.Context, id int64) (domain.Article, error)

	// Exists reports whether an article with that ID exists.
	Exists(ctx context.Context, id int64) (bool, error)

	// Create inserts a new article and returns the persisted record.
	Create(ctx context.Context, a domain.NewArticle) (domain.Article, error)

	// UpdateVotes adds inc (which may be negative) to the article's votes.
	// Returns domain.ErrArticleNotFound if no article with that ID exists.
	UpdateVotes(ctx context.Context, id int64, inc int) (domain.Article, error)

	// Delete removes an article's comments and then the article itself, as two
	// statements with no enclosing transaction.
	// Returns domain.ErrArticleNotFound if no article with that ID exists.
	Delete(ctx context.Context, id int64) error
}

// pgArticleRepo is the Postgres implementation of ArticleRepo.
type pgArticleRepo struct {
	db db
}

// NewArticleRepo constructs an ArticleRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewArticleRepo(db db) ArticleRepo {
	return &pgArticleRepo{db: db}
}

const articleListBase = `SELECT articles.article_id, articles.title, articles.topic, articles.author,
	articles.created_at, articles.votes, articles.article_img_url,
	COUNT(comments.comment_id)::int AS comment_count
FROM articles
LEFT JOIN comments ON comments.article_id = articles.article_id`

const articleReturning = `article_id, title, topic, author, body, created_at, votes, article_img_url,
	(SELECT COUNT(*)::int FROM comments WHERE comments.article_id = articles.article_id) AS comment_count`

// articleColumns is the allow-list of article identifiers that may appear in a
// listing statement. Keys match domain.ArticleSort names.
var articleColumns = query.NewAllowList(map[string]string{
	"article_id": "articles.article_id",
	"title":      "articles.title",
	"topic":      "articles.topic",
	"author":     "articles.author",
	"created_at": "articles.created_at",
	"votes":      "articles.votes",
})

// filteredArticles is the part of a listing shared by the page query and the
// count query: base projection, topic predicate, and grouping.
func filteredArticles(f domain.ArticleFilter) *query.Builder {
	b := query.Select(articleListBase)
	if f.Topic != "" {
		b.WhereEq(articleColumns.MustLookup("topic"), f.Topic)
	}
	return b.GroupBy(articleColumns.MustLookup("article_id"))
}

// articleListStatement renders the paged listing statement for l.
func articleListStatement(l domain.ArticleListing) (query.Statement, error) {
	sortCol, ok := articleColumns.Lookup(l.Sort.String())
	if !ok {
		return query.Statement{}, fmt.Errorf("%w: sort_by %s", domain.ErrInvalidQuery, l.Sort)
	}
	b := filteredArticles(l.Filter).OrderBy(sortCol, direction(l.Order))
	paginate(b, l.Pagination)
	return b.Build(), nil
}

// List returns one page of articles for the validated listing.
func (r *pgArticleRepo) List(ctx context.Context, l domain.ArticleListing) ([]domain.Article, error) {
	stmt, err := articleListStatement(l)
	if err != nil {
		return nil, fmt.Errorf("repo.ArticleRepo.List: %w", err)
	}

	rows, err := r.db.Query(ctx, stmt.SQL(), stmt.Args()...)
	if err != nil {
		return nil, fmt.Errorf("repo.ArticleRepo.List: %w", translatePgError(err))
	}
	defer rows.Close()

	articles := []domain.Article{}
	for rows.Next() {
		a, err := scanArticleSummary(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ArticleRepo.List: scan: %w", err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ArticleRepo.List: rows: %w", err)
	}
	return articles, nil
}

// Count returns the number of articles the filter matches with no pagination.
func (r *pgArticleRepo) Count(ctx context.Context, f domain.ArticleFilter) (int64, error) {
	n, err := count(ctx, r.db, filteredArticles(f).Count())
	if err != nil {
		return 0, fmt.Errorf("repo.ArticleRepo.Count: %w", err)
	}
	return n, nil
}

// GetByID retrieves an article by primary key with its comment_count.
func (r *pgArticleRepo) GetByID(ctx context.Context, id int64) (domain.Article, error) {
	const q = `
		SELECT articles.article_id, articles.title, articles.topic, articles.author, articles.body,
		       articles.created_at, articles.votes, articles.article_img_url,
		       COUNT(comments.comment_id)::int AS comment_count
		FROM articles
		LEFT JOIN comments ON comments.article_id = articles.article_id
		WHERE articles.article_id = @id
		GROUP BY articles.article_id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanArticle(row)
	if err != nil {
		return domain.Article{}, fmt.Errorf("repo.ArticleRepo.GetByID: %w", err)
	}
	return result, nil
}

// Exists reports whether the article row is present.
func (r *pgArticleRepo) Exists(ctx context.Context, id int64) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM articles WHERE article_id = @id)`

	var ok bool
	if err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}).Scan(&ok); err != nil {
		return false, fmt.Errorf("repo.ArticleRepo.Exists: %w", translatePgError(err))
	}
	return ok, nil
}

// Create inserts a new article row. When ArticleImgURL is empty the column is
// omitted so the schema default applies.
func (r *pgArticleRepo) Create(ctx context.Context, a domain.NewArticle) (domain.Article, error) {
	args := pgx.NamedArgs{
		"title":  a.Title,
		"topic":  a.Topic,
		"author": a.Author,
		"body":   a.Body,
	}

	q := `
		INSERT INTO articles (title, topic, author, body)
		VALUES (@title, @topic, @author, @body)
		RETURNING ` + articleReturning
	if a.ArticleImgURL != "" {
		args["article_img_url"] = a.ArticleImgURL
		q = `
		INSERT INTO articles (title, topic, author, body, article_img_url)
		VALUES (@title, @topic, @author, @body, @article_img_url)
		RETURNING ` + articleReturning
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanArticle(row)
	if err != nil {
		return domain.Article{}, fmt.Errorf("repo.ArticleRepo.Create: %w", err)
	}
	return result, nil
}

// UpdateVotes applies a relative vote change and returns the updated record.
func (r *pgArticleRepo) UpdateVotes(ctx context.Context, id int64, inc int) (domain.Article, error) {
	const q = `
		UPDATE articles
		SET votes = votes + @inc
		WHERE article_id = @id
		RETURNING ` + articleReturning

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id, "inc": inc})
	result, err := scanArticle(row)
	if err != nil {
		return domain.Article{}, fmt.Errorf("repo.ArticleRepo.UpdateVotes: %w", err)
	}
	return result, nil
}

// Delete removes the article's comments, then the article.
// A failure between the two statements leaves the comments deleted and the
// article present; callers retry the delete.
func (r *pgArticleRepo) Delete(ctx context.Context, id int64) error {
	const (
		deleteComments = `DELETE FROM comments WHERE article_id = @id`
		deleteArticle  = `DELETE FROM articles WHERE article_id = @id`
	)
	args := pgx.NamedArgs{"id": id}

	if _, err := r.db.Exec(ctx, deleteComments, args); err != nil {
		return fmt.Errorf("repo.ArticleRepo.Delete: comments: %w", translatePgError(err))
	}

	tag, err := r.db.Exec(ctx, deleteArticle, args)
	if err != nil {
		return fmt.Errorf("repo.ArticleRepo.Delete: %w", translatePgError(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ArticleRepo.Delete: %w", domain.ErrArticleNotFound)
	}
	return nil
}

// scanArticleSummary maps a listing row (no body) into a domain.Article.
func scanArticleSummary(s scanner) (domain.Article, error) {
	var a domain.Article
	err := s.Scan(&a.ID, &a.Title, &a.Topic, &a.Author, &a.CreatedAt, &a.Votes, &a.ArticleImgURL, &a.CommentCount)
	if err != nil {
		return domain.Article{}, translatePgError(err)
	}
	return a, nil
}

// scanArticle maps a full article row into a domain.Article.
func scanArticle(s scanner) (domain.Article, error) {
	var a domain.Article
	err := s.Scan(&a.ID, &a.Title, &a.Topic, &a.Author, &a.Body, &a.CreatedAt, &a.Votes, &a.ArticleImgURL, &a.CommentCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Article{}, domain.ErrArticleNotFound
		}
		return domain.Article{}, translatePgError(err)
	}
	return a, nil
}
