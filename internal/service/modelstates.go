package service

import (
	"context"

	"learnql/internal/adapter/out/storage"
	"learnql/internal/model"
	"learnql/pkg/pagination"
)

//go:generate mockgen -source=modelstates.go -destination=./modelstate_storage_mock_test.go -package=service learnql/internal/service ModelStateStorage
type ModelStateStorage interface {
	CreateModelState(ctx context.Context, ms model.ModelState) (model.ModelState, error)
	GetModelStateByID(ctx context.Context, modelStateID int64) (model.ModelState, error)
	ListModelStates(ctx context.Context, filter storage.ModelStateFilter, w pagination.Window) ([]model.ModelState, error)
}

type DomainReader interface {
	GetDomainByID(ctx context.Context, domainID int64) (model.Domain, error)
}

type ModelStateService struct {
	modelStateStorage ModelStateStorage
	users             UserReader
	domains           DomainReader
	tx                TxManager
}

func NewModelStateService(modelStateStorage ModelStateStorage, users UserReader, domains DomainReader, tx TxManager) *ModelStateService {
	return &ModelStateService{
		modelStateStorage: modelStateStorage,
		users:             users,
		domains:           domains,
		tx:                tx,
	}
}

// Model states are listed newest first.
var modelStatesPaginator = pagination.Descending

func modelStateKey(m model.ModelState) int64 { return m.ID }

func (s *ModelStateService) CreateModelState(ctx context.Context, req CreateModelStateRequest) (model.ModelState, error) {
	if err := validateRequest(req); err != nil {
		return model.ModelState{}, err
	}

	var out model.ModelState
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		if _, err := s.users.GetUserByID(ctx, req.UserID); err != nil {
			return notFoundAs("user", err)
		}
		if _, err := s.domains.GetDomainByID(ctx, req.DomainID); err != nil {
			return notFoundAs("domain", err)
		}

		var err error
		out, err = s.modelStateStorage.CreateModelState(ctx, model.ModelState{
			UserID:   req.UserID,
			DomainID: req.DomainID,
			Type:     req.Type,
			Creator:  req.Creator,
			Data:     req.Data,
		})
		return err
	})
	return out, err
}

func (s *ModelStateService) GetModelState(ctx context.Context, modelStateID int64) (model.ModelState, error) {
	if err := validateID("modelStateID", modelStateID); err != nil {
		return model.ModelState{}, err
	}
	return s.modelStateStorage.GetModelStateByID(ctx, modelStateID)
}

func (s *ModelStateService) ListModelStates(ctx context.Context, filter storage.ModelStateFilter, args pagination.Args) (pagination.Connection[model.ModelState], error) {
	return paginate(ctx, modelStatesPaginator, args, modelStateKey, func(ctx context.Context, w pagination.Window) ([]model.ModelState, error) {
		return s.modelStateStorage.ListModelStates(ctx, filter, w)
	})
}
