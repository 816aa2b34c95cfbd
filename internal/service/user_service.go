package service

import (
	"context"
	"errors"

	"wikiflow-server/internal/domain"
	"wikiflow-server/internal/repository"
)

// UserService exposes the fixed persona directory and the persisted
// current-user pointer. There is no real authentication; identity is a demo
// persona switchable at will.
type UserService struct {
	repo     repository.UserRepository
	personas []domain.User
}

func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{
		repo:     repo,
		personas: repository.Personas(),
	}
}

// CurrentUser returns the persisted current-user pointer, defaulting to the
// first configured persona when nothing has been persisted yet.
func (s *UserService) CurrentUser(ctx context.Context) (*domain.User, error) {
	user, err := s.repo.CurrentUser(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			def := s.personas[0]
			return &def, nil
		}
		return nil, err
	}
	return user, nil
}

// SwitchUser points the current user at the persona with the given id,
// falling back to the default persona when the id is unknown, and persists
// the choice.
func (s *UserService) SwitchUser(ctx context.Context, id string) (*domain.User, error) {
	selected := s.personas[0]
	for _, p := range s.personas {
		if p.ID == id {
			selected = p
			break
		}
	}

	if err := s.repo.SetCurrentUser(ctx, &selected); err != nil {
		return nil, err
	}
	return &selected, nil
}

// AvailableUsers returns the full configured persona list.
func (s *UserService) AvailableUsers() []domain.User {
	return s.personas
}
