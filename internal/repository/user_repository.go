package repository

import (
	"context"

	"wikiflow-server/internal/domain"
)

// UserRepository persists only the current-user pointer. The user set itself
// is static configuration and never stored.
type UserRepository interface {
	CurrentUser(ctx context.Context) (*domain.User, error)
	SetCurrentUser(ctx context.Context, user *domain.User) error
}

type userRepository struct {
	store Store
}

func NewUserRepository(store Store) UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) CurrentUser(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := r.store.Load(ctx, KeyCurrentUser, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) SetCurrentUser(ctx context.Context, user *domain.User) error {
	return r.store.Save(ctx, KeyCurrentUser, user)
}
