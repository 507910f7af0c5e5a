package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/funfungun/1-seven-0/internal/models"
)

type ParticipantRepository interface {
	Create(ctx context.Context, participant *models.Participant) error
	Update(ctx context.Context, participant *models.Participant) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByGroup(ctx context.Context, groupID uuid.UUID) error

	GetByNickname(ctx context.Context, groupID uuid.UUID, nickname string) (*models.Participant, error)
	CountByGroup(ctx context.Context, groupID uuid.UUID) (int64, error)
	CountOwners(ctx context.Context, groupID uuid.UUID) (int64, error)

	// ListWithRecordsSince loads every participant of the group with only the
	// records created at or after since.
	ListWithRecordsSince(ctx context.Context, groupID uuid.UUID, since time.Time) ([]models.Participant, error)
}

type participantRepository struct{ db *gorm.DB }

func NewParticipantRepository(db *gorm.DB) ParticipantRepository {
	return &participantRepository{db: db}
}

func (r *participantRepository) Create(ctx context.Context, participant *models.Participant) error {
	if participant.ID == uuid.Nil {
		participant.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Omit("Group", "Records").Create(participant).Error
}

func (r *participantRepository) Update(ctx context.Context, participant *models.Participant) error {
	return r.db.WithContext(ctx).Omit("Group", "Records").Save(participant).Error
}

func (r *participantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.Participant{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *participantRepository) DeleteByGroup(ctx context.Context, groupID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("group_id = ?", groupID).Delete(&models.Participant{}).Error
}

func (r *participantRepository) GetByNickname(ctx context.Context, groupID uuid.UUID, nickname string) (*models.Participant, error) {
	var p models.Participant
	err := r.db.WithContext(ctx).Where("group_id = ? AND nickname = ?", groupID, nickname).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *participantRepository) CountByGroup(ctx context.Context, groupID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Participant{}).Where("group_id = ?", groupID).Count(&count).Error
	return count, err
}

func (r *participantRepository) CountOwners(ctx context.Context, groupID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Participant{}).
		Where("group_id = ? AND is_owner = ?", groupID, true).Count(&count).Error
	return count, err
}

func (r *participantRepository) ListWithRecordsSince(ctx context.Context, groupID uuid.UUID, since time.Time) ([]models.Participant, error) {
	var ps []models.Participant
	err := r.db.WithContext(ctx).
		Preload("Records", "created_at >= ?", since).
		Where("group_id = ?", groupID).
		Order("created_at ASC").
		Find(&ps).Error
	return ps, err
}
