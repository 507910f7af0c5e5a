package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/funfungun/1-seven-0/internal/models"
)

type TagRepository interface {
	// FindOrCreate resolves each name to a tag, creating missing ones.
	FindOrCreate(ctx context.Context, names []string) ([]models.Tag, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Tag, error)
	List(ctx context.Context, page Page) ([]models.Tag, int64, error)
	// DeleteOrphans removes those of ids that no group references any more.
	DeleteOrphans(ctx context.Context, ids []uuid.UUID) (int64, error)
}

type tagRepository struct{ db *gorm.DB }

func NewTagRepository(db *gorm.DB) TagRepository { return &tagRepository{db: db} }

func (r *tagRepository) FindOrCreate(ctx context.Context, names []string) ([]models.Tag, error) {
	tags := make([]models.Tag, 0, len(names))
	for _, name := range names {
		var tag models.Tag
		err := r.db.WithContext(ctx).
			Where(models.Tag{Name: name}).
			Attrs(models.Tag{ID: uuid.New()}).
			FirstOrCreate(&tag).Error
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

func (r *tagRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Tag, error) {
	var t models.Tag
	if err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *tagRepository) List(ctx context.Context, page Page) ([]models.Tag, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Tag{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ts []models.Tag
	err := r.db.WithContext(ctx).
		Order("created_at ASC").Order("name ASC").
		Offset(page.Offset).Limit(page.Limit).
		Find(&ts).Error
	return ts, total, err
}

func (r *tagRepository) DeleteOrphans(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	referenced := r.db.Table("group_tags").Select("tag_id")
	res := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Where("id NOT IN (?)", referenced).
		Delete(&models.Tag{})
	return res.RowsAffected, res.Error
}
