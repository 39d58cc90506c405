package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pkordes/nc-news/backend/internal/domain"
)

// TopicRepo defines the persistence operations for Topics.
// The topics table doubles as the allow-list for the article topic filter.
type TopicRepo interface {
	// List returns all topics ordered by slug.
	List(ctx context.Context) ([]domain.Topic, error)

	// ListSlugs returns the current set of topic slugs.
	ListSlugs(ctx context.Context) ([]string, error)

	// Create inserts a topic. Returns domain.ErrConflict if the slug is taken.
	Create(ctx context.Context, t domain.Topic) (domain.Topic, error)
}

// pgTopicRepo is the Postgres implementation of TopicRepo.
type pgTopicRepo struct {
	db db
}

// NewTopicRepo constructs a TopicRepo backed by the provided db connection.
func NewTopicRepo(db db) TopicRepo {
	return &pgTopicRepo{db: db}
}

func (r *pgTopicRepo) List(ctx context.Context) ([]domain.Topic, error) {
	const q = `SELECT slug, description FROM topics ORDER BY slug`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.TopicRepo.List: %w", translatePgError(err))
	}
	defer rows.Close()

	topics := []domain.Topic{}
	for rows.Next() {
		var t domain.Topic
		if err := rows.Scan(&t.Slug, &t.Description); err != nil {
			return nil, fmt.Errorf("repo.TopicRepo.List: scan: %w", err)
		}
		topics = append(topics, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TopicRepo.List: rows: %w", translatePgError(err))
	}
	return topics, nil
}

func (r *pgTopicRepo) ListSlugs(ctx context.Context) ([]string, error) {
	const q = `SELECT slug FROM topics`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.TopicRepo.ListSlugs: %w", translatePgError(err))
	}
	slugs, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("repo.TopicRepo.ListSlugs: %w", translatePgError(err))
	}
	return slugs, nil
}

func (r *pgTopicRepo) Create(ctx context.Context, t domain.Topic) (domain.Topic, error) {
	const q = `
		INSERT INTO topics (slug, description)
		VALUES (@slug, @description)
		RETURNING slug, description`

	var out domain.Topic
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"slug": t.Slug, "description": t.Description}).
		Scan(&out.Slug, &out.Description)
	if err != nil {
		return domain.Topic{}, fmt.Errorf("repo.TopicRepo.Create: %w", translatePgError(err))
	}
	return out, nil
}
