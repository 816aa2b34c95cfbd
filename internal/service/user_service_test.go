package service

import (
	"context"
	"testing"

	"wikiflow-server/internal/domain"
	"wikiflow-server/internal/repository"
)

type mockUserRepo struct {
	current *domain.User
}

func (m *mockUserRepo) CurrentUser(ctx context.Context) (*domain.User, error) {
	if m.current == nil {
		return nil, repository.ErrNotFound
	}
	return m.current, nil
}

func (m *mockUserRepo) SetCurrentUser(ctx context.Context, user *domain.User) error {
	m.current = user
	return nil
}

func TestUserService_CurrentDefaultsToFirstPersona(t *testing.T) {
	svc := NewUserService(&mockUserRepo{})

	user, err := svc.CurrentUser(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if user.ID != "u1" {
		t.Errorf("default persona = %q, want u1", user.ID)
	}
	if user.Role != domain.RoleAdmin {
		t.Errorf("default role = %q, want ADMIN", user.Role)
	}
}

func TestUserService_SwitchPersists(t *testing.T) {
	repo := &mockUserRepo{}
	svc := NewUserService(repo)

	user, err := svc.SwitchUser(context.Background(), "u2")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if user.ID != "u2" || user.Role != domain.RoleEditor {
		t.Errorf("switched to %q/%q, want u2/EDITOR", user.ID, user.Role)
	}
	if repo.current == nil || repo.current.ID != "u2" {
		t.Error("switch must persist the pointer")
	}

	current, _ := svc.CurrentUser(context.Background())
	if current.ID != "u2" {
		t.Errorf("current user = %q, want u2", current.ID)
	}
}

func TestUserService_SwitchUnknownFallsBack(t *testing.T) {
	svc := NewUserService(&mockUserRepo{})

	user, err := svc.SwitchUser(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if user.ID != "u1" {
		t.Errorf("unknown id must fall back to the default persona, got %q", user.ID)
	}
}

func TestUserService_AvailableUsers(t *testing.T) {
	svc := NewUserService(&mockUserRepo{})

	users := svc.AvailableUsers()
	if len(users) != 3 {
		t.Fatalf("expected 3 personas, got %d", len(users))
	}
	roles := map[domain.Role]bool{}
	for _, u := range users {
		roles[u.Role] = true
	}
	for _, r := range []domain.Role{domain.RoleAdmin, domain.RoleEditor, domain.RoleViewer} {
		if !roles[r] {
			t.Errorf("missing persona with role %s", r)
		}
	}
}
