package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/funfungun/1-seven-0/internal/models"
	"github.com/funfungun/1-seven-0/internal/repository"
)

type TagService interface {
	ListTags(ctx context.Context, page repository.Page) ([]models.Tag, int64, error)
	GetTag(ctx context.Context, id uuid.UUID) (*models.Tag, error)
}

type tagService struct{ store *repository.Store }

func NewTagService(store *repository.Store) TagService { return &tagService{store: store} }

func (s *tagService) ListTags(ctx context.Context, page repository.Page) ([]models.Tag, int64, error) {
	return s.store.Tags.List(ctx, page)
}

func (s *tagService) GetTag(ctx context.Context, id uuid.UUID) (*models.Tag, error) {
	t, err := s.store.Tags.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "tag")
	}
	return t, nil
}
