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

var actionColumns = []string{
	tableinfo.ActionIDColumn,
	tableinfo.ActionUserIDColumn,
	tableinfo.ActionProjectIDColumn,
	tableinfo.ActionVerbColumn,
	tableinfo.ActionContentIDColumn,
	tableinfo.ActionResultColumn,
	tableinfo.ActionTimestampColumn,
	tableinfo.ActionCreatedAtColumn,
}

type ActionStorage struct {
	Storage
}

func NewActionStorage(db trmpgx.Tr, getter *trmpgx.CtxGetter) *ActionStorage {
	return &ActionStorage{Storage{db: db, getter: getter}}
}

func scanAction(row pgx.Row) (model.Action, error) {
	var out model.Action
	err := row.Scan(
		&out.ID,
		&out.UserID,
		&out.ProjectID,
		&out.Verb,
		&out.ContentID,
		&out.Result,
		&out.Timestamp,
		&out.CreatedAt,
	)
	return out, err
}

func (s *ActionStorage) CreateAction(ctx context.Context, a model.Action) (model.Action, error) {
	qb := psql.
		Insert(tableinfo.ActionsTableName).
		Columns(
			tableinfo.ActionUserIDColumn,
			tableinfo.ActionProjectIDColumn,
			tableinfo.ActionVerbColumn,
			tableinfo.ActionContentIDColumn,
			tableinfo.ActionResultColumn,
			tableinfo.ActionTimestampColumn,
		).
		Values(a.UserID, a.ProjectID, a.Verb, a.ContentID, a.Result, a.Timestamp).
		Suffix(returning(actionColumns))

	return queryOne(ctx, s.tr(ctx), "insert action", qb, scanAction)
}

func (s *ActionStorage) GetActionByID(ctx context.Context, actionID int64) (model.Action, error) {
	qb := psql.
		Select(actionColumns...).
		From(tableinfo.ActionsTableName).
		Where(sq.Eq{tableinfo.ActionIDColumn: actionID})

	return queryOne(ctx, s.tr(ctx), "select action by id", qb, scanAction)
}

func (s *ActionStorage) ListActions(ctx context.Context, filter storage.ActionFilter, w pagination.Window) ([]model.Action, error) {
	qb := psql.Select(actionColumns...).From(tableinfo.ActionsTableName)
	if filter.UserID != nil {
		qb = qb.Where(sq.Eq{tableinfo.ActionUserIDColumn: *filter.UserID})
	}
	if filter.ProjectID != nil {
		qb = qb.Where(sq.Eq{tableinfo.ActionProjectIDColumn: *filter.ProjectID})
	}
	if filter.Verb != nil {
		qb = qb.Where(sq.Eq{tableinfo.ActionVerbColumn: *filter.Verb})
	}

	qb, err := applyWindow(qb, tableinfo.ActionIDColumn, w)
	if err != nil {
		return nil, fmt.Errorf("list actions: %w", err)
	}

	return queryAll(ctx, s.tr(ctx), "select actions", qb, scanAction)
}
