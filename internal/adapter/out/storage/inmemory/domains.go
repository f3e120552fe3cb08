package inmemory

import (
	"context"
	"time"

	"learnql/internal/adapter/out/storage"
	"learnql/internal/model"
	"learnql/pkg/pagination"
)

// DomainStorage keeps domains together with their topics and knowledge
// components.
type DomainStorage struct {
	domains *table[model.Domain]
	topics  *table[model.Topic]
	kcs     *table[model.KC]
}

func NewDomainStorage() *DomainStorage {
	return &DomainStorage{
		domains: newTable[model.Domain](),
		topics:  newTable[model.Topic](),
		kcs:     newTable[model.KC](),
	}
}

func (s *DomainStorage) CreateDomain(_ context.Context, in model.Domain) (model.Domain, error) {
	if in.CreatedAt.IsZero() {
		in.CreatedAt = time.Now().UTC()
	}
	return s.domains.insert(in,
		func(d *model.Domain, id int64) { d.ID = id },
		func(d model.Domain) bool { return d.ProjectID == in.ProjectID && d.Code == in.Code },
	)
}

func (s *DomainStorage) GetDomainByID(_ context.Context, domainID int64) (model.Domain, error) {
	return s.domains.get(domainID)
}

func (s *DomainStorage) ListDomains(_ context.Context, filter storage.DomainFilter, w pagination.Window) ([]model.Domain, error) {
	return s.domains.list(w, func(d model.Domain) bool {
		return filter.ProjectID == nil || d.ProjectID == *filter.ProjectID
	}), nil
}

func (s *DomainStorage) CreateTopic(_ context.Context, in model.Topic) (model.Topic, error) {
	if in.CreatedAt.IsZero() {
		in.CreatedAt = time.Now().UTC()
	}
	return s.topics.insert(in,
		func(t *model.Topic, id int64) { t.ID = id },
		func(t model.Topic) bool { return t.DomainID == in.DomainID && t.Code == in.Code },
	)
}

func (s *DomainStorage) GetTopicByID(_ context.Context, topicID int64) (model.Topic, error) {
	return s.topics.get(topicID)
}

func (s *DomainStorage) ListTopics(_ context.Context, filter storage.TopicFilter, w pagination.Window) ([]model.Topic, error) {
	return s.topics.list(w, func(t model.Topic) bool {
		if filter.DomainID != nil && t.DomainID != *filter.DomainID {
			return false
		}
		switch {
		case filter.ParentID != nil:
			return t.ParentID != nil && *t.ParentID == *filter.ParentID
		case filter.RootsOnly:
			return t.ParentID == nil
		}
		return true
	}), nil
}

func (s *DomainStorage) CreateKC(_ context.Context, in model.KC) (model.KC, error) {
	if in.CreatedAt.IsZero() {
		in.CreatedAt = time.Now().UTC()
	}
	return s.kcs.insert(in,
		func(kc *model.KC, id int64) { kc.ID = id },
		func(kc model.KC) bool { return kc.DomainID == in.DomainID && kc.Code == in.Code },
	)
}

func (s *DomainStorage) GetKCByID(_ context.Context, kcID int64) (model.KC, error) {
	return s.kcs.get(kcID)
}

func (s *DomainStorage) ListKCs(_ context.Context, filter storage.KCFilter, w pagination.Window) ([]model.KC, error) {
	return s.kcs.list(w, func(kc model.KC) bool {
		return filter.DomainID == nil || kc.DomainID == *filter.DomainID
	}), nil
}
