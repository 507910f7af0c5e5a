package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store bundles the repositories that share one gorm handle, so a service can
// run several of them inside a single transaction.
type Store struct {
	db *gorm.DB

	Groups       GroupRepository
	Participants ParticipantRepository
	Tags         TagRepository
	Records      RecordRepository
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:           db,
		Groups:       NewGroupRepository(db),
		Participants: NewParticipantRepository(db),
		Tags:         NewTagRepository(db),
		Records:      NewRecordRepository(db),
	}
}

// Transaction runs fn against a Store bound to one transaction. Returning an
// error from fn rolls everything back.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}

// Page is an offset/limit window over a list query.
type Page struct {
	Offset int
	Limit  int
}
