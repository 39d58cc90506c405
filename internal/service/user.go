package service

import (
	"context"
	"fmt"

	"github.com/pkordes/nc-news/backend/internal/domain"
	"github.com/pkordes/nc-news/backend/internal/repo"
)

// UserService implements read operations for Users.
type UserService struct {
	repo repo.UserRepo
}

// NewUserService constructs a UserService backed by the provided UserRepo.
func NewUserService(r repo.UserRepo) *UserService {
	return &UserService{repo: r}
}

// List returns every user. Always non-nil.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.UserService.List: %w", err)
	}
	if users == nil {
		return []domain.User{}, nil
	}
	return users, nil
}

// GetByUsername returns domain.ErrUserNotFound if the username is unknown.
func (s *UserService) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return domain.User{}, fmt.Errorf("service.UserService.GetByUsername: %w", err)
	}
	return u, nil
}
