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

var (
	domainColumns = []string{
		tableinfo.DomainIDColumn,
		tableinfo.DomainProjectIDColumn,
		tableinfo.DomainCodeColumn,
		tableinfo.DomainNameColumn,
		tableinfo.DomainCreatedAtColumn,
	}
	topicColumns = []string{
		tableinfo.TopicIDColumn,
		tableinfo.TopicDomainIDColumn,
		tableinfo.TopicParentIDColumn,
		tableinfo.TopicCodeColumn,
		tableinfo.TopicNameColumn,
		tableinfo.TopicCreatedAtColumn,
	}
	kcColumns = []string{
		tableinfo.KCIDColumn,
		tableinfo.KCDomainIDColumn,
		tableinfo.KCCodeColumn,
		tableinfo.KCNameColumn,
		tableinfo.KCCreatedAtColumn,
	}
)

// DomainStorage keeps domains together with their topics and knowledge
// components.
type DomainStorage struct {
	Storage
}

func NewDomainStorage(db trmpgx.Tr, getter *trmpgx.CtxGetter) *DomainStorage {
	return &DomainStorage{Storage{db: db, getter: getter}}
}

func scanDomain(row pgx.Row) (model.Domain, error) {
	var out model.Domain
	err := row.Scan(&out.ID, &out.ProjectID, &out.Code, &out.Name, &out.CreatedAt)
	return out, err
}

func scanTopic(row pgx.Row) (model.Topic, error) {
	var out model.Topic
	err := row.Scan(&out.ID, &out.DomainID, &out.ParentID, &out.Code, &out.Name, &out.CreatedAt)
	return out, err
}

func scanKC(row pgx.Row) (model.KC, error) {
	var out model.KC
	err := row.Scan(&out.ID, &out.DomainID, &out.Code, &out.Name, &out.CreatedAt)
	return out, err
}

func (s *DomainStorage) CreateDomain(ctx context.Context, d model.Domain) (model.Domain, error) {
	qb := psql.
		Insert(tableinfo.DomainsTableName).
		Columns(
			tableinfo.DomainProjectIDColumn,
			tableinfo.DomainCodeColumn,
			tableinfo.DomainNameColumn,
		).
		Values(d.ProjectID, d.Code, d.Name).
		Suffix(returning(domainColumns))

	return queryOne(ctx, s.tr(ctx), "insert domain", qb, scanDomain)
}

func (s *DomainStorage) GetDomainByID(ctx context.Context, domainID int64) (model.Domain, error) {
	qb := psql.
		Select(domainColumns...).
		From(tableinfo.DomainsTableName).
		Where(sq.Eq{tableinfo.DomainIDColumn: domainID})

	return queryOne(ctx, s.tr(ctx), "select domain by id", qb, scanDomain)
}

func (s *DomainStorage) ListDomains(ctx context.Context, filter storage.DomainFilter, w pagination.Window) ([]model.Domain, error) {
	qb := psql.Select(domainColumns...).From(tableinfo.DomainsTableName)
	if filter.ProjectID != nil {
		qb = qb.Where(sq.Eq{tableinfo.DomainProjectIDColumn: *filter.ProjectID})
	}

	qb, err := applyWindow(qb, tableinfo.DomainIDColumn, w)
	if err != nil {
		return nil, fmt.Errorf("list domains: %w", err)
	}

	return queryAll(ctx, s.tr(ctx), "select domains", qb, scanDomain)
}

func (s *DomainStorage) CreateTopic(ctx context.Context, t model.Topic) (model.Topic, error) {
	qb := psql.
		Insert(tableinfo.TopicsTableName).
		Columns(
			tableinfo.TopicDomainIDColumn,
			tableinfo.TopicParentIDColumn,
			tableinfo.TopicCodeColumn,
			tableinfo.TopicNameColumn,
		).
		Values(t.DomainID, t.ParentID, t.Code, t.Name).
		Suffix(returning(topicColumns))

	return queryOne(ctx, s.tr(ctx), "insert topic", qb, scanTopic)
}

func (s *DomainStorage) GetTopicByID(ctx context.Context, topicID int64) (model.Topic, error) {
	qb := psql.
		Select(topicColumns...).
		From(tableinfo.TopicsTableName).
		Where(sq.Eq{tableinfo.TopicIDColumn: topicID})

	return queryOne(ctx, s.tr(ctx), "select topic by id", qb, scanTopic)
}

func (s *DomainStorage) ListTopics(ctx context.Context, filter storage.TopicFilter, w pagination.Window) ([]model.Topic, error) {
	qb := psql.Select(topicColumns...).From(tableinfo.TopicsTableName)
	if filter.DomainID != nil {
		qb = qb.Where(sq.Eq{tableinfo.TopicDomainIDColumn: *filter.DomainID})
	}
	switch {
	case filter.ParentID != nil:
		qb = qb.Where(sq.Eq{tableinfo.TopicParentIDColumn: *filter.ParentID})
	case filter.RootsOnly:
		qb = qb.Where(sq.Eq{tableinfo.TopicParentIDColumn: nil})
	}

	qb, err := applyWindow(qb, tableinfo.TopicIDColumn, w)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}

	return queryAll(ctx, s.tr(ctx), "select topics", qb, scanTopic)
}

func (s *DomainStorage) CreateKC(ctx context.Context, kc model.KC) (model.KC, error) {
	qb := psql.
		Insert(tableinfo.KCsTableName).
		Columns(
			tableinfo.KCDomainIDColumn,
			tableinfo.KCCodeColumn,
			tableinfo.KCNameColumn,
		).
		Values(kc.DomainID, kc.Code, kc.Name).
		Suffix(returning(kcColumns))

	return queryOne(ctx, s.tr(ctx), "insert kc", qb, scanKC)
}

func (s *DomainStorage) GetKCByID(ctx context.Context, kcID int64) (model.KC, error) {
	qb := psql.
		Select(kcColumns...).
		From(tableinfo.KCsTableName).
		Where(sq.Eq{tableinfo.KCIDColumn: kcID})

	return queryOne(ctx, s.tr(ctx), "select kc by id", qb, scanKC)
}

func (s *DomainStorage) ListKCs(ctx context.Context, filter storage.KCFilter, w pagination.Window) ([]model.KC, error) {
	qb := psql.Select(kcColumns...).From(tableinfo.KCsTableName)
	if filter.DomainID != nil {
		qb = qb.Where(sq.Eq{tableinfo.KCDomainIDColumn: *filter.DomainID})
	}

	qb, err := applyWindow(qb, tableinfo.KCIDColumn, w)
	if err != nil {
		return nil, fmt.Errorf("list kcs: %w", err)
	}

	return queryAll(ctx, s.tr(ctx), "select kcs", qb, scanKC)
}
