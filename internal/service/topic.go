package service

import (
	"context"
	"fmt"

	"github.com/pkordes/nc-news/backend/internal/domain"
	"github.com/pkordes/nc-news/backend/internal/repo"
)

// TopicService implements business logic for Topic operations.
type TopicService struct {
	repo repo.TopicRepo
}

// NewTopicService constructs a TopicService backed by the provided TopicRepo.
func NewTopicService(r repo.TopicRepo) *TopicService {
	return &TopicService{repo: r}
}

// List returns every topic. Always non-nil.
func (s *TopicService) List(ctx context.Context) ([]domain.Topic, error) {
	topics, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TopicService.List: %w", err)
	}
	if topics == nil {
		return []domain.Topic{}, nil
	}
	return topics, nil
}

// Create validates and persists a new topic.
// Returns domain.ErrMalformedInput for a blank slug or description and
// domain.ErrConflict when the slug already exists.
func (s *TopicService) Create(ctx context.Context, t domain.Topic) (domain.Topic, error) {
	if err := validateTopic(t); err != nil {
		return domain.Topic{}, err
	}
	result, err := s.repo.Create(ctx, t)
	if err != nil {
		return domain.Topic{}, fmt.Errorf("service.TopicService.Create: %w", err)
	}
	return result, nil
}
