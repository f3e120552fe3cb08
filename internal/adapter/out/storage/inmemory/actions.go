package inmemory

import (
	"context"
	"time"

	"learnql/internal/adapter/out/storage"
	"learnql/internal/model"
	"learnql/pkg/pagination"
)

type ActionStorage struct {
	actions *table[model.Action]
}

func NewActionStorage() *ActionStorage {
	return &ActionStorage{actions: newTable[model.Action]()}
}

func (s *ActionStorage) CreateAction(_ context.Context, in model.Action) (model.Action, error) {
	if in.CreatedAt.IsZero() {
		in.CreatedAt = time.Now().UTC()
	}
	return s.actions.insert(in, func(a *model.Action, id int64) { a.ID = id }, nil)
}

func (s *ActionStorage) GetActionByID(_ context.Context, actionID int64) (model.Action, error) {
	return s.actions.get(actionID)
}

func (s *ActionStorage) ListActions(_ context.Context, filter storage.ActionFilter, w pagination.Window) ([]model.Action, error) {
	return s.actions.list(w, func(a model.Action) bool {
		if filter.UserID != nil && a.UserID != *filter.UserID {
			return false
		}
		if filter.ProjectID != nil && a.ProjectID != *filter.ProjectID {
			return false
		}
		if filter.Verb != nil && a.Verb != *filter.Verb {
			return false
		}
		return true
	}), nil
}

// detachContent clears the content reference of actions pointing at contentID.
func (s *ActionStorage) detachContent(contentID int64) int {
	return s.actions.updateWhere(
		func(a model.Action) bool { return a.ContentID != nil && *a.ContentID == contentID },
		func(a *model.Action) { a.ContentID = nil },
	)
}
