package inmemory

import (
	"context"
	"time"

	"learnql/internal/adapter/out/storage"
	"learnql/internal/model"
	"learnql/pkg/pagination"
)

type ProjectStorage struct {
	projects *table[model.Project]
}

func NewProjectStorage() *ProjectStorage {
	return &ProjectStorage{projects: newTable[model.Project]()}
}

func (s *ProjectStorage) CreateProject(_ context.Context, in model.Project) (model.Project, error) {
	if in.CreatedAt.IsZero() {
		in.CreatedAt = time.Now().UTC()
	}
	return s.projects.insert(in,
		func(p *model.Project, id int64) { p.ID = id },
		func(p model.Project) bool { return p.Code == in.Code },
	)
}

func (s *ProjectStorage) GetProjectByID(_ context.Context, projectID int64) (model.Project, error) {
	return s.projects.get(projectID)
}

func (s *ProjectStorage) UpdateProject(_ context.Context, projectID int64, upd storage.ProjectUpdate) (model.Project, error) {
	return s.projects.update(projectID, func(p *model.Project) {
		if upd.Name != nil {
			p.Name = *upd.Name
		}
		if upd.Description != nil {
			p.Description = *upd.Description
		}
	})
}

func (s *ProjectStorage) DeleteProject(_ context.Context, projectID int64) error {
	return s.projects.delete(projectID)
}

func (s *ProjectStorage) ListProjects(_ context.Context, w pagination.Window) ([]model.Project, error) {
	return s.projects.list(w, nil), nil
}
