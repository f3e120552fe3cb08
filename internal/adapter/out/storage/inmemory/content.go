package inmemory

import (
	"context"
	"slices"
	"time"

	"learnql/internal/adapter/out/storage"
	"learnql/internal/model"
	"learnql/pkg/pagination"
)

type ContentStorage struct {
	content *table[model.Content]
	actions *ActionStorage
}

// NewContentStorage returns an empty content table. Deleting content clears
// the reference on actions stored in actions, which may be nil.
func NewContentStorage(actions *ActionStorage) *ContentStorage {
	return &ContentStorage{content: newTable[model.Content](), actions: actions}
}

func (s *ContentStorage) CreateContent(_ context.Context, in model.Content) (model.Content, error) {
	if in.CreatedAt.IsZero() {
		in.CreatedAt = time.Now().UTC()
	}
	in.Tags = slices.Clone(in.Tags)

	out, err := s.content.insert(in,
		func(c *model.Content, id int64) { c.ID = id },
		func(c model.Content) bool { return c.ProjectID == in.ProjectID && c.Code == in.Code },
	)
	return cloneContent(out), err
}

func (s *ContentStorage) GetContentByID(_ context.Context, contentID int64) (model.Content, error) {
	c, err := s.content.get(contentID)
	return cloneContent(c), err
}

func (s *ContentStorage) UpdateContent(_ context.Context, contentID int64, upd storage.ContentUpdate) (model.Content, error) {
	c, err := s.content.update(contentID, func(c *model.Content) {
		if upd.Name != nil {
			c.Name = *upd.Name
		}
		if upd.Description != nil {
			c.Description = *upd.Description
		}
		if upd.Kind != nil {
			c.Kind = *upd.Kind
		}
		if upd.URL != nil {
			c.URL = upd.URL
		}
		if upd.Tags != nil {
			c.Tags = slices.Clone(upd.Tags)
		}
	})
	return cloneContent(c), err
}

func (s *ContentStorage) DeleteContent(_ context.Context, contentID int64) error {
	if err := s.content.delete(contentID); err != nil {
		return err
	}
	if s.actions != nil {
		s.actions.detachContent(contentID)
	}
	return nil
}

func (s *ContentStorage) ListContent(_ context.Context, filter storage.ContentFilter, w pagination.Window) ([]model.Content, error) {
	out := s.content.list(w, func(c model.Content) bool {
		if filter.ProjectID != nil && c.ProjectID != *filter.ProjectID {
			return false
		}
		if filter.Kind != nil && c.Kind != *filter.Kind {
			return false
		}
		if filter.Tag != nil && !slices.Contains(c.Tags, *filter.Tag) {
			return false
		}
		return true
	})
	for i := range out {
		out[i] = cloneContent(out[i])
	}
	return out, nil
}

func cloneContent(c model.Content) model.Content {
	c.Tags = slices.Clone(c.Tags)
	return c
}
