package service

import (
	"context"

	"learnql/internal/adapter/out/storage"
	"learnql/internal/model"
	"learnql/pkg/pagination"
)

//go:generate mockgen -source=content.go -destination=./content_storage_mock_test.go -package=service learnql/internal/service ContentStorage
type ContentStorage interface {
	CreateContent(ctx context.Context, c model.Content) (model.Content, error)
	GetContentByID(ctx context.Context, contentID int64) (model.Content, error)
	UpdateContent(ctx context.Context, contentID int64, upd storage.ContentUpdate) (model.Content, error)
	DeleteContent(ctx context.Context, contentID int64) error
	ListContent(ctx context.Context, filter storage.ContentFilter, w pagination.Window) ([]model.Content, error)
}

type ContentService struct {
	contentStorage ContentStorage
	projects       ProjectReader
	tx             TxManager
}

func NewContentService(contentStorage ContentStorage, projects ProjectReader, tx TxManager) *ContentService {
	return &ContentService{
		contentStorage: contentStorage,
		projects:       projects,
		tx:             tx,
	}
}

func contentKey(c model.Content) int64 { return c.ID }

func (s *ContentService) CreateContent(ctx context.Context, req CreateContentRequest) (model.Content, error) {
	if err := validateRequest(req); err != nil {
		return model.Content{}, err
	}

	var out model.Content
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		if _, err := s.projects.GetProjectByID(ctx, req.ProjectID); err != nil {
			return notFoundAs("project", err)
		}

		var err error
		out, err = s.contentStorage.CreateContent(ctx, model.Content{
			ProjectID:   req.ProjectID,
			Code:        req.Code,
			Name:        req.Name,
			Description: req.Description,
			Kind:        req.Kind,
			URL:         req.URL,
			Tags:        req.Tags,
		})
		return err
	})
	return out, err
}

func (s *ContentService) GetContent(ctx context.Context, contentID int64) (model.Content, error) {
	if err := validateID("contentID", contentID); err != nil {
		return model.Content{}, err
	}
	return s.contentStorage.GetContentByID(ctx, contentID)
}

func (s *ContentService) UpdateContent(ctx context.Context, req UpdateContentRequest) (model.Content, error) {
	if err := validateRequest(req); err != nil {
		return model.Content{}, err
	}
	return s.contentStorage.UpdateContent(ctx, req.ID, storage.ContentUpdate{
		Name:        req.Name,
		Description: req.Description,
		Kind:        req.Kind,
		URL:         req.URL,
		Tags:        req.Tags,
	})
}

func (s *ContentService) DeleteContent(ctx context.Context, contentID int64) error {
	if err := validateID("contentID", contentID); err != nil {
		return err
	}
	return s.contentStorage.DeleteContent(ctx, contentID)
}

func (s *ContentService) ListContent(ctx context.Context, filter storage.ContentFilter, args pagination.Args) (pagination.Connection[model.Content], error) {
	return paginate(ctx, pagination.Ascending, args, contentKey, func(ctx context.Context, w pagination.Window) ([]model.Content, error) {
		return s.contentStorage.ListContent(ctx, filter, w)
	})
}
