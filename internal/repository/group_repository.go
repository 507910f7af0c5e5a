package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/funfungun/1-seven-0/internal/models"
)

// GroupOrder is a sortable column of the group list.
type GroupOrder string

const (
	GroupOrderCreatedAt        GroupOrder = "createdAt"
	GroupOrderLikeCount        GroupOrder = "likeCount"
	GroupOrderParticipantCount GroupOrder = "participantCount"
)

// GroupQuery filters and orders the group list.
type GroupQuery struct {
	Page
	Search  string
	OrderBy GroupOrder
	Desc    bool
}

type GroupRepository interface {
	Create(ctx context.Context, group *models.Group) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Group, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	List(ctx context.Context, q GroupQuery) ([]models.Group, int64, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]any) error
	Delete(ctx context.Context, id uuid.UUID) error
	AddLikes(ctx context.Context, id uuid.UUID, delta int) error

	ReplaceTags(ctx context.Context, group *models.Group, tags []models.Tag) error
	ClearTags(ctx context.Context, group *models.Group) error
	DeleteBadges(ctx context.Context, groupID uuid.UUID) error
}

type groupRepository struct{ db *gorm.DB }

func NewGroupRepository(db *gorm.DB) GroupRepository { return &groupRepository{db: db} }

// Create inserts the group row only; tags and participants are attached separately.
func (r *groupRepository) Create(ctx context.Context, group *models.Group) error {
	if group.ID == uuid.Nil {
		group.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Omit("Tags", "Badges", "Participants").Create(group).Error
}

func (r *groupRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Group, error) {
	var g models.Group
	err := r.withRelations(r.db.WithContext(ctx)).First(&g, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *groupRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Group{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *groupRepository) List(ctx context.Context, q GroupQuery) ([]models.Group, int64, error) {
	base := func() *gorm.DB {
		tx := r.db.WithContext(ctx).Model(&models.Group{})
		if q.Search != "" {
			tx = tx.Where("LOWER(groups.name) LIKE ?", "%"+strings.ToLower(q.Search)+"%")
		}
		return tx
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	dir := " ASC"
	if q.Desc {
		dir = " DESC"
	}
	tx := base()
	switch q.OrderBy {
	case GroupOrderLikeCount:
		tx = tx.Order("groups.like_count" + dir)
	case GroupOrderParticipantCount:
		tx = tx.Order("(SELECT COUNT(*) FROM participants WHERE participants.group_id = groups.id)" + dir)
	}
	tx = tx.Order("groups.created_at" + dir).Order("groups.id")

	var gs []models.Group
	err := r.withRelations(tx).Offset(q.Offset).Limit(q.Limit).Find(&gs).Error
	return gs, total, err
}

func (r *groupRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	res := r.db.WithContext(ctx).Model(&models.Group{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *groupRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.Group{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// AddLikes applies delta in a single UPDATE so concurrent likes are not lost.
func (r *groupRepository) AddLikes(ctx context.Context, id uuid.UUID, delta int) error {
	res := r.db.WithContext(ctx).Model(&models.Group{}).Where("id = ?", id).
		UpdateColumn("like_count", gorm.Expr("like_count + ?", delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *groupRepository) ReplaceTags(ctx context.Context, group *models.Group, tags []models.Tag) error {
	return r.db.WithContext(ctx).Model(group).Association("Tags").Replace(tags)
}

func (r *groupRepository) ClearTags(ctx context.Context, group *models.Group) error {
	return r.db.WithContext(ctx).Model(group).Association("Tags").Clear()
}

func (r *groupRepository) DeleteBadges(ctx context.Context, groupID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("group_id = ?", groupID).Delete(&models.Badge{}).Error
}

func (r *groupRepository) withRelations(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Tags", func(db *gorm.DB) *gorm.DB { return db.Order("tags.name") }).
		Preload("Badges", func(db *gorm.DB) *gorm.DB { return db.Order("badges.created_at") }).
		Preload("Participants", func(db *gorm.DB) *gorm.DB {
			return db.Order("participants.created_at").Order("participants.nickname")
		})
}
