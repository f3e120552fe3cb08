package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"learnql/internal/adapter/out/storage"
	"learnql/internal/model"
	"learnql/pkg/logger"
	"learnql/pkg/pagination"
)

//go:generate mockgen -source=actions.go -destination=./action_storage_mock_test.go -package=service learnql/internal/service ActionStorage,ActionBus
type ActionStorage interface {
	CreateAction(ctx context.Context, a model.Action) (model.Action, error)
	GetActionByID(ctx context.Context, actionID int64) (model.Action, error)
	ListActions(ctx context.Context, filter storage.ActionFilter, w pagination.Window) ([]model.Action, error)
}

type ActionBus interface {
	Subscribe(ctx context.Context, projectID int64) (<-chan model.Action, error)
	Publish(ctx context.Context, projectID int64, a model.Action) error
}

type UserReader interface {
	GetUserByID(ctx context.Context, userID int64) (model.User, error)
}

type ProjectReader interface {
	GetProjectByID(ctx context.Context, projectID int64) (model.Project, error)
}

type ContentReader interface {
	GetContentByID(ctx context.Context, contentID int64) (model.Content, error)
}

type ActionService struct {
	actionStorage ActionStorage
	actionBus     ActionBus
	users         UserReader
	projects      ProjectReader
	content       ContentReader
	tx            TxManager
	now           func() time.Time
}

func NewActionService(
	actionStorage ActionStorage,
	actionBus ActionBus,
	users UserReader,
	projects ProjectReader,
	content ContentReader,
	tx TxManager,
) *ActionService {
	return &ActionService{
		actionStorage: actionStorage,
		actionBus:     actionBus,
		users:         users,
		projects:      projects,
		content:       content,
		tx:            tx,
		now:           time.Now,
	}
}

// Actions are listed newest first.
var actionsPaginator = pagination.Descending

func actionKey(a model.Action) int64 { return a.ID }

func (s *ActionService) RecordAction(ctx context.Context, req RecordActionRequest) (model.Action, error) {
	if err := validateRequest(req); err != nil {
		return model.Action{}, err
	}

	ts := s.now().UTC()
	if req.Timestamp != "" {
		parsed, err := time.Parse(time.RFC3339Nano, req.Timestamp)
		if err != nil {
			return model.Action{}, fmt.Errorf("%w: invalid timestamp %q", ErrInvalidRequest, req.Timestamp)
		}
		ts = parsed
	}

	var out model.Action
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		user, err := s.users.GetUserByID(ctx, req.UserID)
		if err != nil {
			return notFoundAs("user", err)
		}
		if user.Locked {
			return fmt.Errorf("%w: user %d is locked", ErrForbidden, user.ID)
		}

		if _, err := s.projects.GetProjectByID(ctx, req.ProjectID); err != nil {
			return notFoundAs("project", err)
		}

		if req.ContentID != nil {
			content, err := s.content.GetContentByID(ctx, *req.ContentID)
			if err != nil {
				return notFoundAs("content", err)
			}
			if content.ProjectID != req.ProjectID {
				return fmt.Errorf("%w: content %d is not part of project %d", ErrInvalidRequest, content.ID, req.ProjectID)
			}
		}

		out, err = s.actionStorage.CreateAction(ctx, model.Action{
			UserID:    req.UserID,
			ProjectID: req.ProjectID,
			Verb:      req.Verb,
			ContentID: req.ContentID,
			Result:    req.Result,
			Timestamp: ts,
		})
		return err
	})
	if err != nil {
		return model.Action{}, err
	}

	if s.actionBus != nil {
		if err := s.actionBus.Publish(ctx, out.ProjectID, out); err != nil {
			logger.FromContext(ctx).Warn("publish action", "action_id", out.ID, "error", err)
		}
	}
	return out, nil
}

func (s *ActionService) GetAction(ctx context.Context, actionID int64) (model.Action, error) {
	if err := validateID("actionID", actionID); err != nil {
		return model.Action{}, err
	}
	return s.actionStorage.GetActionByID(ctx, actionID)
}

func (s *ActionService) ListActions(ctx context.Context, filter storage.ActionFilter, args pagination.Args) (pagination.Connection[model.Action], error) {
	return paginate(ctx, actionsPaginator, args, actionKey, func(ctx context.Context, w pagination.Window) ([]model.Action, error) {
		return s.actionStorage.ListActions(ctx, filter, w)
	})
}

// Listen streams actions recorded for a project until ctx is done.
func (s *ActionService) Listen(ctx context.Context, projectID int64) (<-chan model.Action, error) {
	if err := validateID("projectID", projectID); err != nil {
		return nil, err
	}
	if s.actionBus == nil {
		return nil, fmt.Errorf("%w: no action bus configured", ErrInternalError)
	}
	if _, err := s.projects.GetProjectByID(ctx, projectID); err != nil {
		return nil, notFoundAs("project", err)
	}
	return s.actionBus.Subscribe(ctx, projectID)
}

// notFoundAs names the missing entity in a not-found error.
func notFoundAs(entity string, err error) error {
	if errors.Is(err, ErrNotFound) {
		return fmt.Errorf("%s %w", entity, ErrNotFound)
	}
	return err
}
