package models

import (
	"time"

	"github.com/google/uuid"
)

// Tag is a shared label; tags are created on first use.
type Tag struct {
	ID        uuid.UUID `json:"id" gorm:"type:text;primaryKey"`
	Name      string    `json:"name" gorm:"type:text;not null;uniqueIndex"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Groups []Group `json:"-" gorm:"many2many:group_tags"`
}
