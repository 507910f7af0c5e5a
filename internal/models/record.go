package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ExerciseType is the kind of activity a record logs.
type ExerciseType string

const (
	ExerciseRun  ExerciseType = "RUN"
	ExerciseBike ExerciseType = "BIKE"
	ExerciseSwim ExerciseType = "SWIM"
)

// ParseExerciseType accepts any casing and returns the stored upper-case form.
func ParseExerciseType(s string) (ExerciseType, bool) {
	switch t := ExerciseType(strings.ToUpper(strings.TrimSpace(s))); t {
	case ExerciseRun, ExerciseBike, ExerciseSwim:
		return t, true
	default:
		return "", false
	}
}

// Record is one logged exercise session. Time is in minutes, Distance in km.
type Record struct {
	ID           uuid.UUID    `json:"id" gorm:"type:text;primaryKey"`
	ExerciseType ExerciseType `json:"exerciseType" gorm:"type:text;not null"`
	Description  *string      `json:"description" gorm:"type:text"`
	Time         int          `json:"time" gorm:"type:integer;not null"`
	Distance     float64      `json:"distance" gorm:"not null"`
	Photos       []string     `json:"photos" gorm:"type:text;serializer:json"`
	AuthorID     uuid.UUID    `json:"authorId" gorm:"type:text;not null;index"`
	CreatedAt    time.Time    `json:"createdAt" gorm:"index"`
	UpdatedAt    time.Time    `json:"updatedAt"`

	// Relations
	Author Participant `json:"author" gorm:"foreignKey:AuthorID"`
}
