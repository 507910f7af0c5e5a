package models

import (
	"time"

	"github.com/google/uuid"
)

// BadgeType enumerates the achievements a group can earn.
type BadgeType string

const (
	BadgeParticipation10 BadgeType = "PARTICIPATION_10"
	BadgeRecord100       BadgeType = "RECORD_100"
	BadgeLike100         BadgeType = "LIKE_100"
)

// Badge marks an achievement earned by a group.
type Badge struct {
	ID        uuid.UUID `json:"id" gorm:"type:text;primaryKey"`
	GroupID   uuid.UUID `json:"groupId" gorm:"type:text;not null;index"`
	Type      BadgeType `json:"type" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
