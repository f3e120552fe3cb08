package service

import (
	"context"
	"fmt"

	"learnql/internal/adapter/out/storage"
	"learnql/internal/model"
	"learnql/pkg/pagination"
)

//go:generate mockgen -source=domains.go -destination=./domain_storage_mock_test.go -package=service learnql/internal/service DomainStorage
type DomainStorage interface {
	CreateDomain(ctx context.Context, d model.Domain) (model.Domain, error)
	GetDomainByID(ctx context.Context, domainID int64) (model.Domain, error)
	ListDomains(ctx context.Context, filter storage.DomainFilter, w pagination.Window) ([]model.Domain, error)

	CreateTopic(ctx context.Context, t model.Topic) (model.Topic, error)
	GetTopicByID(ctx context.Context, topicID int64) (model.Topic, error)
	ListTopics(ctx context.Context, filter storage.TopicFilter, w pagination.Window) ([]model.Topic, error)

	CreateKC(ctx context.Context, kc model.KC) (model.KC, error)
	GetKCByID(ctx context.Context, kcID int64) (model.KC, error)
	ListKCs(ctx context.Context, filter storage.KCFilter, w pagination.Window) ([]model.KC, error)
}

type DomainService struct {
	domainStorage DomainStorage
	projects      ProjectReader
	tx            TxManager
}

func NewDomainService(domainStorage DomainStorage, projects ProjectReader, tx TxManager) *DomainService {
	return &DomainService{
		domainStorage: domainStorage,
		projects:      projects,
		tx:            tx,
	}
}

func domainKey(d model.Domain) int64 { return d.ID }
func topicKey(t model.Topic) int64   { return t.ID }
func kcKey(kc model.KC) int64        { return kc.ID }

func (s *DomainService) CreateDomain(ctx context.Context, req CreateDomainRequest) (model.Domain, error) {
	if err := validateRequest(req); err != nil {
		return model.Domain{}, err
	}

	var out model.Domain
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		if _, err := s.projects.GetProjectByID(ctx, req.ProjectID); err != nil {
			return notFoundAs("project", err)
		}

		var err error
		out, err = s.domainStorage.CreateDomain(ctx, model.Domain{
			ProjectID: req.ProjectID,
			Code:      req.Code,
			Name:      req.Name,
		})
		return err
	})
	return out, err
}

func (s *DomainService) GetDomain(ctx context.Context, domainID int64) (model.Domain, error) {
	if err := validateID("domainID", domainID); err != nil {
		return model.Domain{}, err
	}
	return s.domainStorage.GetDomainByID(ctx, domainID)
}

func (s *DomainService) ListDomains(ctx context.Context, filter storage.DomainFilter, args pagination.Args) (pagination.Connection[model.Domain], error) {
	return paginate(ctx, pagination.Ascending, args, domainKey, func(ctx context.Context, w pagination.Window) ([]model.Domain, error) {
		return s.domainStorage.ListDomains(ctx, filter, w)
	})
}

// CreateTopic adds a topic to a domain. A parent topic must belong to the
// same domain.
func (s *DomainService) CreateTopic(ctx context.Context, req CreateTopicRequest) (model.Topic, error) {
	if err := validateRequest(req); err != nil {
		return model.Topic{}, err
	}

	var out model.Topic
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		if _, err := s.domainStorage.GetDomainByID(ctx, req.DomainID); err != nil {
			return notFoundAs("domain", err)
		}

		if req.ParentID != nil {
			parent, err := s.domainStorage.GetTopicByID(ctx, *req.ParentID)
			if err != nil {
				return notFoundAs("parent topic", err)
			}
			if parent.DomainID != req.DomainID {
				return fmt.Errorf("%w: parent topic %d belongs to another domain", ErrInvalidRequest, parent.ID)
			}
		}

		var err error
		out, err = s.domainStorage.CreateTopic(ctx, model.Topic{
			DomainID: req.DomainID,
			ParentID: req.ParentID,
			Code:     req.Code,
			Name:     req.Name,
		})
		return err
	})
	return out, err
}

func (s *DomainService) GetTopic(ctx context.Context, topicID int64) (model.Topic, error) {
	if err := validateID("topicID", topicID); err != nil {
		return model.Topic{}, err
	}
	return s.domainStorage.GetTopicByID(ctx, topicID)
}

func (s *DomainService) ListTopics(ctx context.Context, filter storage.TopicFilter, args pagination.Args) (pagination.Connection[model.Topic], error) {
	return paginate(ctx, pagination.Ascending, args, topicKey, func(ctx context.Context, w pagination.Window) ([]model.Topic, error) {
		return s.domainStorage.ListTopics(ctx, filter, w)
	})
}

func (s *DomainService) CreateKC(ctx context.Context, req CreateKCRequest) (model.KC, error) {
	if err := validateRequest(req); err != nil {
		return model.KC{}, err
	}

	var out model.KC
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		if _, err := s.domainStorage.GetDomainByID(ctx, req.DomainID); err != nil {
			return notFoundAs("domain", err)
		}

		var err error
		out, err = s.domainStorage.CreateKC(ctx, model.KC{
			DomainID: req.DomainID,
			Code:     req.Code,
			Name:     req.Name,
		})
		return err
	})
	return out, err
}

func (s *DomainService) GetKC(ctx context.Context, kcID int64) (model.KC, error) {
	if err := validateID("kcID", kcID); err != nil {
		return model.KC{}, err
	}
	return s.domainStorage.GetKCByID(ctx, kcID)
}

func (s *DomainService) ListKCs(ctx context.Context, filter storage.KCFilter, args pagination.Args) (pagination.Connection[model.KC], error) {
	return paginate(ctx, pagination.Ascending, args, kcKey, func(ctx context.Context, w pagination.Window) ([]model.KC, error) {
		return s.domainStorage.ListKCs(ctx, filter, w)
	})
}
