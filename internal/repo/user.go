package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/nc-news/backend/internal/domain"
)

// UserRepo defines the read operations for Users.
type UserRepo interface {
	// List returns all users ordered by username.
	List(ctx context.Context) ([]domain.User, error)

	// GetByUsername returns domain.ErrUserNotFound if the username is unknown.
	GetByUsername(ctx context.Context, username string) (domain.User, error)

	// Exists reports whether a user with that username exists.
	Exists(ctx context.Context, username string) (bool, error)
}

// pgUserRepo is the Postgres implementation of UserRepo.
type pgUserRepo struct {
	db db
}

// NewUserRepo constructs a UserRepo backed by the provided db connection.
func NewUserRepo(db db) UserRepo {
	return &pgUserRepo{db: db}
}

func (r *pgUserRepo) List(ctx context.Context) ([]domain.User, error) {
	const q = `SELECT username, name, avatar_url FROM users ORDER BY username`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.UserRepo.List: %w", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.UserRepo.List: scan: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.UserRepo.List: rows: %w", err)
	}
	return users, nil
}

func (r *pgUserRepo) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	const q = `SELECT username, name, avatar_url FROM users WHERE username = @username`

	u, err := scanUser(r.db.QueryRow(ctx, q, pgx.NamedArgs{"username": username}))
	if err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.GetByUsername: %w", err)
	}
	return u, nil
}

func (r *pgUserRepo) Exists(ctx context.Context, username string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM users WHERE username = @username)`

	var ok bool
	if err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"username": username}).Scan(&ok); err != nil {
		return false, fmt.Errorf("repo.UserRepo.Exists: %w", err)
	}
	return ok, nil
}

// scanUser maps a row into a domain.User; avatar_url is nullable.
func scanUser(s scanner) (domain.User, error) {
	var (
		u      domain.User
		avatar pgtype.Text
	)
	if err := s.Scan(&u.Username, &u.Name, &avatar); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, err
	}
	u.AvatarURL = avatar.String
	return u, nil
}
