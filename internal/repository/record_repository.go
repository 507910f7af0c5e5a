package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/funfungun/1-seven-0/internal/models"
)

// RecordOrder is a sortable column of the record list.
type RecordOrder string

const (
	RecordOrderCreatedAt RecordOrder = "createdAt"
	RecordOrderTime      RecordOrder = "time"
)

// RecordQuery filters a group's records. Search matches the author nickname.
type RecordQuery struct {
	Page
	GroupID uuid.UUID
	Search  string
	OrderBy RecordOrder
	Desc    bool
}

type RecordRepository interface {
	Create(ctx context.Context, record *models.Record) error
	GetByID(ctx context.Context, groupID, id uuid.UUID) (*models.Record, error)
	List(ctx context.Context, q RecordQuery) ([]models.Record, int64, error)
	DeleteByGroup(ctx context.Context, groupID uuid.UUID) error
	DeleteByAuthor(ctx context.Context, authorID uuid.UUID) error
}

type recordRepository struct{ db *gorm.DB }

func NewRecordRepository(db *gorm.DB) RecordRepository { return &recordRepository{db: db} }

func (r *recordRepository) Create(ctx context.Context, record *models.Record) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Omit("Author").Create(record).Error
}

func (r *recordRepository) GetByID(ctx context.Context, groupID, id uuid.UUID) (*models.Record, error) {
	var rec models.Record
	err := r.db.WithContext(ctx).
		Joins("JOIN participants ON participants.id = records.author_id").
		Where("participants.group_id = ?", groupID).
		Preload("Author").
		First(&rec, "records.id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *recordRepository) List(ctx context.Context, q RecordQuery) ([]models.Record, int64, error) {
	base := func() *gorm.DB {
		tx := r.db.WithContext(ctx).Model(&models.Record{}).
			Joins("JOIN participants ON participants.id = records.author_id").
			Where("participants.group_id = ?", q.GroupID)
		if q.Search != "" {
			tx = tx.Where("LOWER(participants.nickname) LIKE ?", "%"+strings.ToLower(q.Search)+"%")
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
	if q.OrderBy == RecordOrderTime {
		tx = tx.Order("records.time" + dir)
	}
	tx = tx.Order("records.created_at" + dir).Order("records.id")

	var rs []models.Record
	err := tx.Preload("Author").Offset(q.Offset).Limit(q.Limit).Find(&rs).Error
	return rs, total, err
}

func (r *recordRepository) DeleteByGroup(ctx context.Context, groupID uuid.UUID) error {
	authors := r.db.Model(&models.Participant{}).Select("id").Where("group_id = ?", groupID)
	return r.db.WithContext(ctx).Where("author_id IN (?)", authors).Delete(&models.Record{}).Error
}

func (r *recordRepository) DeleteByAuthor(ctx context.Context, authorID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("author_id = ?", authorID).Delete(&models.Record{}).Error
}
