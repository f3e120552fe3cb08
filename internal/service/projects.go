package service

import (
	"context"
	"fmt"

	"learnql/internal/adapter/out/storage"
	"learnql/internal/model"
	"learnql/pkg/pagination"
)

//go:generate mockgen -source=projects.go -destination=./project_storage_mock_test.go -package=service learnql/internal/service ProjectStorage
type ProjectStorage interface {
	CreateProject(ctx context.Context, p model.Project) (model.Project, error)
	GetProjectByID(ctx context.Context, projectID int64) (model.Project, error)
	UpdateProject(ctx context.Context, projectID int64, upd storage.ProjectUpdate) (model.Project, error)
	DeleteProject(ctx context.Context, projectID int64) error
	ListProjects(ctx context.Context, w pagination.Window) ([]model.Project, error)
}

// ProjectContents reports what still lives inside a project.
type ProjectContents interface {
	ListContent(ctx context.Context, filter storage.ContentFilter, w pagination.Window) ([]model.Content, error)
	ListDomains(ctx context.Context, filter storage.DomainFilter, w pagination.Window) ([]model.Domain, error)
	ListActions(ctx context.Context, filter storage.ActionFilter, w pagination.Window) ([]model.Action, error)
}

type ProjectService struct {
	projectStorage ProjectStorage
	contents       ProjectContents
	tx             TxManager
}

func NewProjectService(projectStorage ProjectStorage, contents ProjectContents, tx TxManager) *ProjectService {
	return &ProjectService{
		projectStorage: projectStorage,
		contents:       contents,
		tx:             tx,
	}
}

func projectKey(p model.Project) int64 { return p.ID }

func (s *ProjectService) CreateProject(ctx context.Context, req CreateProjectRequest) (model.Project, error) {
	if err := validateRequest(req); err != nil {
		return model.Project{}, err
	}
	return s.projectStorage.CreateProject(ctx, model.Project{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
	})
}

func (s *ProjectService) GetProject(ctx context.Context, projectID int64) (model.Project, error) {
	if err := validateID("projectID", projectID); err != nil {
		return model.Project{}, err
	}
	return s.projectStorage.GetProjectByID(ctx, projectID)
}

func (s *ProjectService) UpdateProject(ctx context.Context, req UpdateProjectRequest) (model.Project, error) {
	if err := validateRequest(req); err != nil {
		return model.Project{}, err
	}
	return s.projectStorage.UpdateProject(ctx, req.ID, storage.ProjectUpdate{
		Name:        req.Name,
		Description: req.Description,
	})
}

// DeleteProject removes an empty project. Projects that still hold content,
// domains or recorded actions are rejected with ErrConflict.
func (s *ProjectService) DeleteProject(ctx context.Context, projectID int64) error {
	if err := validateID("projectID", projectID); err != nil {
		return err
	}

	one := pagination.Window{Limit: 1}
	return s.tx.Do(ctx, func(ctx context.Context) error {
		if _, err := s.projectStorage.GetProjectByID(ctx, projectID); err != nil {
			return err
		}

		content, err := s.contents.ListContent(ctx, storage.ContentFilter{ProjectID: &projectID}, one)
		if err != nil {
			return err
		}
		if len(content) > 0 {
			return fmt.Errorf("%w: project still has content", ErrConflict)
		}

		domains, err := s.contents.ListDomains(ctx, storage.DomainFilter{ProjectID: &projectID}, one)
		if err != nil {
			return err
		}
		if len(domains) > 0 {
			return fmt.Errorf("%w: project still has domains", ErrConflict)
		}

		actions, err := s.contents.ListActions(ctx, storage.ActionFilter{ProjectID: &projectID}, one)
		if err != nil {
			return err
		}
		if len(actions) > 0 {
			return fmt.Errorf("%w: project still has actions", ErrConflict)
		}

		return s.projectStorage.DeleteProject(ctx, projectID)
	})
}

func (s *ProjectService) ListProjects(ctx context.Context, args pagination.Args) (pagination.Connection[model.Project], error) {
	return paginate(ctx, pagination.Ascending, args, projectKey, func(ctx context.Context, w pagination.Window) ([]model.Project, error) {
		return s.projectStorage.ListProjects(ctx, w)
	})
}
