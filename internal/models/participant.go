package models

import (
	"time"

	"github.com/google/uuid"
)

// Participant is a member of exactly one group. Nicknames are unique per group.
type Participant struct {
	ID        uuid.UUID `json:"id" gorm:"type:text;primaryKey"`
	GroupID   uuid.UUID `json:"groupId" gorm:"type:text;not null;uniqueIndex:idx_participant_group_nickname"`
	Nickname  string    `json:"nickname" gorm:"type:text;not null;uniqueIndex:idx_participant_group_nickname"`
	Password  string    `json:"-" gorm:"type:text;not null"`
	IsOwner   bool      `json:"isOwner" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relations
	Group   *Group   `json:"-" gorm:"foreignKey:GroupID"`
	Records []Record `json:"records,omitempty" gorm:"foreignKey:AuthorID"`
}
