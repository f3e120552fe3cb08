package inmemory

import (
	"context"
	"time"

	"learnql/internal/adapter/out/storage"
	"learnql/internal/model"
	"learnql/pkg/pagination"
)

type ModelStateStorage struct {
	states *table[model.ModelState]
}

func NewModelStateStorage() *ModelStateStorage {
	return &ModelStateStorage{states: newTable[model.ModelState]()}
}

func (s *ModelStateStorage) CreateModelState(_ context.Context, in model.ModelState) (model.ModelState, error) {
	if in.CreatedAt.IsZero() {
		in.CreatedAt = time.Now().UTC()
	}
	return s.states.insert(in, func(m *model.ModelState, id int64) { m.ID = id }, nil)
}

func (s *ModelStateStorage) GetModelStateByID(_ context.Context, modelStateID int64) (model.ModelState, error) {
	return s.states.get(modelStateID)
}

func (s *ModelStateStorage) ListModelStates(_ context.Context, filter storage.ModelStateFilter, w pagination.Window) ([]model.ModelState, error) {
	return s.states.list(w, func(m model.ModelState) bool {
		if filter.UserID != nil && m.UserID != *filter.UserID {
			return false
		}
		if filter.DomainID != nil && m.DomainID != *filter.DomainID {
			return false
		}
		if filter.Type != nil && m.Type != *filter.Type {
			return false
		}
		return true
	}), nil
}
