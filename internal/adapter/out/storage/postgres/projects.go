package postgres

import (
	"context"
	"fmt"

	"learnql/internal/adapter/out/storage"
	"learnql/internal/model"
	"learnql/pkg/pagination"
	"learnql/pkg/tableinfo"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
)

var projectColumns = []string{
	tableinfo.ProjectIDColumn,
	tableinfo.ProjectCodeColumn,
	tableinfo.ProjectNameColumn,
	tableinfo.ProjectDescriptionColumn,
	tableinfo.ProjectCreatedAtColumn,
}

type ProjectStorage struct {
	Storage
}

func NewProjectStorage(db trmpgx.Tr, getter *trmpgx.CtxGetter) *ProjectStorage {
	return &ProjectStorage{Storage{db: db, getter: getter}}
}

func scanProject(row pgx.Row) (model.Project, error) {
	var out model.Project
	err := row.Scan(&out.ID, &out.Code, &out.Name, &out.Description, &out.CreatedAt)
	return out, err
}

func (s *ProjectStorage) CreateProject(ctx context.Context, p model.Project) (model.Project, error) {
	qb := psql.
		Insert(tableinfo.ProjectsTableName).
		Columns(
			tableinfo.ProjectCodeColumn,
			tableinfo.ProjectNameColumn,
			tableinfo.ProjectDescriptionColumn,
		).
		Values(p.Code, p.Name, p.Description).
		Suffix(returning(projectColumns))

	return queryOne(ctx, s.tr(ctx), "insert project", qb, scanProject)
}

func (s *ProjectStorage) GetProjectByID(ctx context.Context, projectID int64) (model.Project, error) {
	qb := psql.
		Select(projectColumns...).
		From(tableinfo.ProjectsTableName).
		Where(sq.Eq{tableinfo.ProjectIDColumn: projectID})

	return queryOne(ctx, s.tr(ctx), "select project by id", qb, scanProject)
}

func (s *ProjectStorage) UpdateProject(ctx context.Context, projectID int64, upd storage.ProjectUpdate) (model.Project, error) {
	set := map[string]any{}
	if upd.Name != nil {
		set[tableinfo.ProjectNameColumn] = *upd.Name
	}
	if upd.Description != nil {
		set[tableinfo.ProjectDescriptionColumn] = *upd.Description
	}
	if len(set) == 0 {
		return s.GetProjectByID(ctx, projectID)
	}

	qb := psql.
		Update(tableinfo.ProjectsTableName).
		SetMap(set).
		Where(sq.Eq{tableinfo.ProjectIDColumn: projectID}).
		Suffix(returning(projectColumns))

	return queryOne(ctx, s.tr(ctx), "update project", qb, scanProject)
}

func (s *ProjectStorage) DeleteProject(ctx context.Context, projectID int64) error {
	qb := psql.
		Delete(tableinfo.ProjectsTableName).
		Where(sq.Eq{tableinfo.ProjectIDColumn: projectID})

	return execOne(ctx, s.tr(ctx), "delete project", qb)
}

func (s *ProjectStorage) ListProjects(ctx context.Context, w pagination.Window) ([]model.Project, error) {
	qb, err := applyWindow(
		psql.Select(projectColumns...).From(tableinfo.ProjectsTableName),
		tableinfo.ProjectIDColumn,
		w,
	)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	return queryAll(ctx, s.tr(ctx), "select projects", qb, scanProject)
}
