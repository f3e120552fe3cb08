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

var contentColumns = []string{
	tableinfo.ContentIDColumn,
	tableinfo.ContentProjectIDColumn,
	tableinfo.ContentCodeColumn,
	tableinfo.ContentNameColumn,
	tableinfo.ContentDescriptionColumn,
	tableinfo.ContentKindColumn,
	tableinfo.ContentURLColumn,
	tableinfo.ContentTagsColumn,
	tableinfo.ContentCreatedAtColumn,
}

type ContentStorage struct {
	Storage
}

func NewContentStorage(db trmpgx.Tr, getter *trmpgx.CtxGetter) *ContentStorage {
	return &ContentStorage{Storage{db: db, getter: getter}}
}

func scanContent(row pgx.Row) (model.Content, error) {
	var out model.Content
	err := row.Scan(
		&out.ID,
		&out.ProjectID,
		&out.Code,
		&out.Name,
		&out.Description,
		&out.Kind,
		&out.URL,
		&out.Tags,
		&out.CreatedAt,
	)
	return out, err
}

func (s *ContentStorage) CreateContent(ctx context.Context, c model.Content) (model.Content, error) {
	tags := c.Tags
	if tags == nil {
		tags = []string{}
	}

	qb := psql.
		Insert(tableinfo.ContentTableName).
		Columns(
			tableinfo.ContentProjectIDColumn,
			tableinfo.ContentCodeColumn,
			tableinfo.ContentNameColumn,
			tableinfo.ContentDescriptionColumn,
			tableinfo.ContentKindColumn,
			tableinfo.ContentURLColumn,
			tableinfo.ContentTagsColumn,
		).
		Values(c.ProjectID, c.Code, c.Name, c.Description, c.Kind, c.URL, tags).
		Suffix(returning(contentColumns))

	return queryOne(ctx, s.tr(ctx), "insert content", qb, scanContent)
}

func (s *ContentStorage) GetContentByID(ctx context.Context, contentID int64) (model.Content, error) {
	qb := psql.
		Select(contentColumns...).
		From(tableinfo.ContentTableName).
		Where(sq.Eq{tableinfo.ContentIDColumn: contentID})

	return queryOne(ctx, s.tr(ctx), "select content by id", qb, scanContent)
}

func (s *ContentStorage) UpdateContent(ctx context.Context, contentID int64, upd storage.ContentUpdate) (model.Content, error) {
	set := map[string]any{}
	if upd.Name != nil {
		set[tableinfo.ContentNameColumn] = *upd.Name
	}
	if upd.Description != nil {
		set[tableinfo.ContentDescriptionColumn] = *upd.Description
	}
	if upd.Kind != nil {
		set[tableinfo.ContentKindColumn] = *upd.Kind
	}
	if upd.URL != nil {
		set[tableinfo.ContentURLColumn] = *upd.URL
	}
	if upd.Tags != nil {
		set[tableinfo.ContentTagsColumn] = upd.Tags
	}
	if len(set) == 0 {
		return s.GetContentByID(ctx, contentID)
	}

	qb := psql.
		Update(tableinfo.ContentTableName).
		SetMap(set).
		Where(sq.Eq{tableinfo.ContentIDColumn: contentID}).
		Suffix(returning(contentColumns))

	return queryOne(ctx, s.tr(ctx), "update content", qb, scanContent)
}

func (s *ContentStorage) DeleteContent(ctx context.Context, contentID int64) error {
	qb := psql.
		Delete(tableinfo.ContentTableName).
		Where(sq.Eq{tableinfo.ContentIDColumn: contentID})

	return execOne(ctx, s.tr(ctx), "delete content", qb)
}

func (s *ContentStorage) ListContent(ctx context.Context, filter storage.ContentFilter, w pagination.Window) ([]model.Content, error) {
	qb := psql.Select(contentColumns...).From(tableinfo.ContentTableName)
	if filter.ProjectID != nil {
		qb = qb.Where(sq.Eq{tableinfo.ContentProjectIDColumn: *filter.ProjectID})
	}
	if filter.Kind != nil {
		qb = qb.Where(sq.Eq{tableinfo.ContentKindColumn: *filter.Kind})
	}
	if filter.Tag != nil {
		qb = qb.Where(sq.Expr("? = ANY("+tableinfo.ContentTagsColumn+")", *filter.Tag))
	}

	qb, err := applyWindow(qb, tableinfo.ContentIDColumn, w)
	if err != nil {
		return nil, fmt.Errorf("list content: %w", err)
	}

	return queryAll(ctx, s.tr(ctx), "select content", qb, scanContent)
}
