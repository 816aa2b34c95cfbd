package service

import (
	"context"
	"errors"
	"time"

	"wikiflow-server/internal/domain"
	"wikiflow-server/internal/repository"

	"github.com/google/uuid"
)

type ProjectService struct {
	repo repository.ProjectRepository
	feed ChangeFeed
}

func NewProjectService(repo repository.ProjectRepository, feed ChangeFeed) *ProjectService {
	return &ProjectService{
		repo: repo,
		feed: feed,
	}
}

// List returns the full stored collection, seeding the store on first run.
func (s *ProjectService) List(ctx context.Context) ([]*domain.Project, error) {
	projects, err := s.repo.All(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			seed := repository.SeedProjects()
			if err := s.repo.ReplaceAll(ctx, seed); err != nil {
				return nil, err
			}
			return seed, nil
		}
		return nil, err
	}
	return projects, nil
}

// Get returns a single project by id.
func (s *ProjectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	projects, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	if idx := indexOfProject(projects, id); idx >= 0 {
		return projects[idx], nil
	}
	return nil, ErrProjectNotFound
}

// Save upserts a project. Updates preserve id, createdAt and createdBy and
// refresh only updatedAt; projects keep no history.
func (s *ProjectService) Save(ctx context.Context, actor *domain.User, req *domain.SaveProjectRequest) (*domain.Project, error) {
	projects, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = domain.ProjectActive
	}

	now := time.Now()
	var saved *domain.Project

	if idx := indexOfProject(projects, req.ID); idx >= 0 {
		old := projects[idx]
		saved = &domain.Project{
			ID:          old.ID,
			Name:        req.Name,
			Description: req.Description,
			Status:      status,
			Members:     req.Members,
			Tasks:       req.Tasks,
			CreatedBy:   old.CreatedBy,
			CreatedAt:   old.CreatedAt,
			UpdatedAt:   now,
		}
		projects[idx] = saved
	} else {
		saved = &domain.Project{
			ID:          uuid.New().String(),
			Name:        req.Name,
			Description: req.Description,
			Status:      status,
			Members:     req.Members,
			Tasks:       req.Tasks,
			CreatedBy:   actor.Name,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if saved.Tasks == nil {
			saved.Tasks = []domain.Task{}
		}
		projects = append([]*domain.Project{saved}, projects...)
	}

	if err := s.repo.ReplaceAll(ctx, projects); err != nil {
		return nil, err
	}

	if s.feed != nil {
		s.feed.Broadcast(EventProjectSaved, saved)
	}

	return saved, nil
}

// AddTask appends a task to a project's board. The task gets a fresh id,
// the acting user as assignee and MEDIUM priority unless one is given. Task
// mutations always persist as whole-project saves.
func (s *ProjectService) AddTask(ctx context.Context, actor *domain.User, projectID string, req *domain.AddTaskRequest) (*domain.Project, error) {
	project, err := s.Get(ctx, projectID)
	if err != nil {
		return nil, err
	}

	priority := req.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}

	task := domain.Task{
		ID:         uuid.New().String(),
		Title:      req.Title,
		Status:     req.Status,
		Priority:   priority,
		AssigneeID: actor.ID,
		DueDate:    req.DueDate,
		CreatedAt:  time.Now(),
	}

	return s.saveTasks(ctx, actor, project, append(append([]domain.Task{}, project.Tasks...), task))
}

// MoveTask changes a task's lane. Only the status field of the matching
// task changes; any lane may move to any other lane.
func (s *ProjectService) MoveTask(ctx context.Context, actor *domain.User, projectID, taskID string, status domain.TaskStatus) (*domain.Project, error) {
	project, err := s.Get(ctx, projectID)
	if err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, len(project.Tasks))
	found := false
	for i, t := range project.Tasks {
		if t.ID == taskID {
			t.Status = status
			found = true
		}
		tasks[i] = t
	}
	if !found {
		return nil, ErrTaskNotFound
	}

	return s.saveTasks(ctx, actor, project, tasks)
}

// DeleteTask removes a task from its project's board.
func (s *ProjectService) DeleteTask(ctx context.Context, actor *domain.User, projectID, taskID string) (*domain.Project, error) {
	project, err := s.Get(ctx, projectID)
	if err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(project.Tasks))
	for _, t := range project.Tasks {
		if t.ID != taskID {
			tasks = append(tasks, t)
		}
	}
	if len(tasks) == len(project.Tasks) {
		return nil, ErrTaskNotFound
	}

	return s.saveTasks(ctx, actor, project, tasks)
}

func (s *ProjectService) saveTasks(ctx context.Context, actor *domain.User, project *domain.Project, tasks []domain.Task) (*domain.Project, error) {
	return s.Save(ctx, actor, &domain.SaveProjectRequest{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		Status:      project.Status,
		Members:     project.Members,
		Tasks:       tasks,
	})
}

func indexOfProject(projects []*domain.Project, id string) int {
	if id == "" {
		return -1
	}
	for i, p := range projects {
		if p.ID == id {
			return i
		}
	}
	return -1
}
