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

var modelStateColumns = []string{
	tableinfo.ModelStateIDColumn,
	tableinfo.ModelStateUserIDColumn,
	tableinfo.ModelStateDomainIDColumn,
	tableinfo.ModelStateTypeColumn,
	tableinfo.ModelStateCreatorColumn,
	tableinfo.ModelStateDataColumn + "::text",
	tableinfo.ModelStateCreatedAtColumn,
}

type ModelStateStorage struct {
	Storage
}

func NewModelStateStorage(db trmpgx.Tr, getter *trmpgx.CtxGetter) *ModelStateStorage {
	return &ModelStateStorage{Storage{db: db, getter: getter}}
}

func scanModelState(row pgx.Row) (model.ModelState, error) {
	var out model.ModelState
	err := row.Scan(
		&out.ID,
		&out.UserID,
		&out.DomainID,
		&out.Type,
		&out.Creator,
		&out.Data,
		&out.CreatedAt,
	)
	return out, err
}

func (s *ModelStateStorage) CreateModelState(ctx context.Context, m model.ModelState) (model.ModelState, error) {
	qb := psql.
		Insert(tableinfo.ModelStatesTableName).
		Columns(
			tableinfo.ModelStateUserIDColumn,
			tableinfo.ModelStateDomainIDColumn,
			tableinfo.ModelStateTypeColumn,
			tableinfo.ModelStateCreatorColumn,
			tableinfo.ModelStateDataColumn,
		).
		Values(m.UserID, m.DomainID, m.Type, m.Creator, sq.Expr("?::json", m.Data)).
		Suffix(returning(modelStateColumns))

	return queryOne(ctx, s.tr(ctx), "insert model state", qb, scanModelState)
}

func (s *ModelStateStorage) GetModelStateByID(ctx context.Context, modelStateID int64) (model.ModelState, error) {
	qb := psql.
		Select(modelStateColumns...).
		From(tableinfo.ModelStatesTableName).
		Where(sq.Eq{tableinfo.ModelStateIDColumn: modelStateID})

	return queryOne(ctx, s.tr(ctx), "select model state by id", qb, scanModelState)
}

func (s *ModelStateStorage) ListModelStates(ctx context.Context, filter storage.ModelStateFilter, w pagination.Window) ([]model.ModelState, error) {
	qb := psql.Select(modelStateColumns...).From(tableinfo.ModelStatesTableName)
	if filter.UserID != nil {
		qb = qb.Where(sq.Eq{tableinfo.ModelStateUserIDColumn: *filter.UserID})
	}
	if filter.DomainID != nil {
		qb = qb.Where(sq.Eq{tableinfo.ModelStateDomainIDColumn: *filter.DomainID})
	}
	if filter.Type != nil {
		qb = qb.Where(sq.Eq{tableinfo.ModelStateTypeColumn: *filter.Type})
	}

	qb, err := applyWindow(qb, tableinfo.ModelStateIDColumn, w)
	if err != nil {
		return nil, fmt.Errorf("list model states: %w", err)
	}

	return queryAll(ctx, s.tr(ctx), "select model states", qb, scanModelState)
}
