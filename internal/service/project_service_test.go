package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"wikiflow-server/internal/domain"
	"wikiflow-server/internal/repository"
)

type mockProjectRepo struct {
	projects []*domain.Project
	writes   int
}

func (m *mockProjectRepo) All(ctx context.Context) ([]*domain.Project, error) {
	if m.projects == nil {
		return nil, repository.ErrNotFound
	}
	return m.projects, nil
}

func (m *mockProjectRepo) ReplaceAll(ctx context.Context, projects []*domain.Project) error {
	m.projects = projects
	m.writes++
	return nil
}

func TestProjectService_BootstrapSeedsOnce(t *testing.T) {
	repo := &mockProjectRepo{}
	svc := NewProjectService(repo, nil)

	projects, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(projects) != 2 {
		t.Fatalf("expected 2 seeded projects, got %d", len(projects))
	}

	svc.List(context.Background())
	if repo.writes != 1 {
		t.Errorf("second list must not reseed, got %d writes", repo.writes)
	}
}

func TestProjectService_SaveCreateIgnoresSuppliedID(t *testing.T) {
	repo := &mockProjectRepo{}
	svc := NewProjectService(repo, nil)
	actor := testActor(domain.RoleAdmin)

	svc.List(context.Background())

	created, err := svc.Save(context.Background(), actor, &domain.SaveProjectRequest{
		ID:   "does-not-exist",
		Name: "New Project",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if created.ID == "does-not-exist" || created.ID == "" {
		t.Errorf("create must assign a fresh id, got %q", created.ID)
	}
	if created.CreatedBy != actor.Name {
		t.Errorf("createdBy = %q, want acting user name", created.CreatedBy)
	}
	if created.Status != domain.ProjectActive {
		t.Errorf("default status = %q, want ACTIVE", created.Status)
	}

	list, _ := svc.List(context.Background())
	if list[0].ID != created.ID {
		t.Error("new project must be inserted at the front")
	}
}

func TestProjectService_SaveUpdatePreservesCreation(t *testing.T) {
	repo := &mockProjectRepo{}
	svc := NewProjectService(repo, nil)
	actor := testActor(domain.RoleAdmin)

	seeded, _ := svc.List(context.Background())
	original := seeded[0]

	updated, err := svc.Save(context.Background(), actor, &domain.SaveProjectRequest{
		ID:          original.ID,
		Name:        "Renamed",
		Description: original.Description,
		Status:      domain.ProjectArchived,
		Members:     original.Members,
		Tasks:       original.Tasks,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if updated.ID != original.ID {
		t.Error("update must not change the project id")
	}
	if !updated.CreatedAt.Equal(original.CreatedAt) {
		t.Error("update must not change createdAt")
	}
	if updated.CreatedBy != original.CreatedBy {
		t.Error("update must not change createdBy")
	}
	if updated.Name != "Renamed" || updated.Status != domain.ProjectArchived {
		t.Error("update must apply the requested fields")
	}
}

func TestProjectService_AddTask(t *testing.T) {
	repo := &mockProjectRepo{}
	svc := NewProjectService(repo, nil)
	actor := testActor(domain.RoleEditor)

	seeded, _ := svc.List(context.Background())
	project := seeded[0]
	before := len(project.Tasks)

	updated, err := svc.AddTask(context.Background(), actor, project.ID, &domain.AddTaskRequest{
		Title:  "Review accessibility",
		Status: domain.TaskReview,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(updated.Tasks) != before+1 {
		t.Fatalf("expected %d tasks, got %d", before+1, len(updated.Tasks))
	}
	task := updated.Tasks[len(updated.Tasks)-1]
	if task.ID == "" {
		t.Error("new task must get a fresh id")
	}
	if task.Status != domain.TaskReview {
		t.Errorf("task status = %q, want target lane", task.Status)
	}
	if task.Priority != domain.PriorityMedium {
		t.Errorf("default priority = %q, want MEDIUM", task.Priority)
	}
	if task.AssigneeID != actor.ID {
		t.Errorf("assignee = %q, want acting user id", task.AssigneeID)
	}
}

func TestProjectService_MoveTaskChangesOnlyStatus(t *testing.T) {
	repo := &mockProjectRepo{}
	svc := NewProjectService(repo, nil)
	actor := testActor(domain.RoleEditor)

	seeded, _ := svc.List(context.Background())
	project := seeded[0]
	beforeUpdatedAt := project.UpdatedAt

	var moved domain.Task
	others := map[string]domain.Task{}
	for _, tk := range project.Tasks {
		if tk.ID == "t3" {
			moved = tk
		} else {
			others[tk.ID] = tk
		}
	}

	updated, err := svc.MoveTask(context.Background(), actor, project.ID, "t3", domain.TaskDone)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	for _, tk := range updated.Tasks {
		if tk.ID == "t3" {
			if tk.Status != domain.TaskDone {
				t.Errorf("moved task status = %q, want DONE", tk.Status)
			}
			want := moved
			want.Status = domain.TaskDone
			if !reflect.DeepEqual(tk, want) {
				t.Error("move must change only the status field of the moved task")
			}
			continue
		}
		if !reflect.DeepEqual(tk, others[tk.ID]) {
			t.Errorf("task %s must be unchanged by the move", tk.ID)
		}
	}

	if updated.UpdatedAt.Before(beforeUpdatedAt) {
		t.Error("project updatedAt must advance on a task move")
	}

	// Lanes have no transition graph: DONE straight back to TODO is fine.
	back, err := svc.MoveTask(context.Background(), actor, project.ID, "t3", domain.TaskTodo)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	for _, tk := range back.Tasks {
		if tk.ID == "t3" && tk.Status != domain.TaskTodo {
			t.Errorf("task status = %q, want TODO", tk.Status)
		}
	}
}

func TestProjectService_MoveTaskUnknownTask(t *testing.T) {
	repo := &mockProjectRepo{}
	svc := NewProjectService(repo, nil)

	seeded, _ := svc.List(context.Background())

	_, err := svc.MoveTask(context.Background(), testActor(domain.RoleAdmin), seeded[0].ID, "missing", domain.TaskDone)
	if !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestProjectService_DeleteTask(t *testing.T) {
	repo := &mockProjectRepo{}
	svc := NewProjectService(repo, nil)
	actor := testActor(domain.RoleAdmin)

	seeded, _ := svc.List(context.Background())
	project := seeded[0]
	before := len(project.Tasks)

	updated, err := svc.DeleteTask(context.Background(), actor, project.ID, "t1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(updated.Tasks) != before-1 {
		t.Errorf("expected %d tasks, got %d", before-1, len(updated.Tasks))
	}
	for _, tk := range updated.Tasks {
		if tk.ID == "t1" {
			t.Error("deleted task must be gone")
		}
	}

	_, err = svc.DeleteTask(context.Background(), actor, project.ID, "t1")
	if !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}
