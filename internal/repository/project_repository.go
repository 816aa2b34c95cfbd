package repository

import (
	"context"

	"wikiflow-server/internal/domain"
)

// ProjectRepository reads and rewrites the project collection as a single
// unit. Tasks are embedded in their project and never persisted separately.
type ProjectRepository interface {
	All(ctx context.Context) ([]*domain.Project, error)
	ReplaceAll(ctx context.Context, projects []*domain.Project) error
}

type projectRepository struct {
	store Store
}

func NewProjectRepository(store Store) ProjectRepository {
	return &projectRepository{store: store}
}

func (r *projectRepository) All(ctx context.Context) ([]*domain.Project, error) {
	var projects []*domain.Project
	if err := r.store.Load(ctx, KeyProjects, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *projectRepository) ReplaceAll(ctx context.Context, projects []*domain.Project) error {
	return r.store.Save(ctx, KeyProjects, projects)
}
