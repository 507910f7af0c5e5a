package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/funfungun/1-seven-0/internal/models"
	"github.com/funfungun/1-seven-0/internal/repository"
	"github.com/funfungun/1-seven-0/pkg/database"
)

const ownerPassword = "password1"

func newTestStore(t *testing.T) *repository.Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := database.NewDatabase(dsn, "silent")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return repository.NewStore(db.DB)
}

func createTestGroup(t *testing.T, svc GroupService, name string, tags ...string) *models.Group {
	t.Helper()
	g, err := svc.CreateGroup(context.Background(), CreateGroupInput{
		OwnerNickname: "alice",
		OwnerPassword: ownerPassword,
		Name:          name,
		Description:   "test group",
		GoalRep:       10,
		Tags:          tags,
	})
	require.NoError(t, err)
	return g
}

func addRecord(t *testing.T, store *repository.Store, author uuid.UUID, minutes int) *models.Record {
	t.Helper()
	rec := &models.Record{
		ExerciseType: models.ExerciseRun,
		Time:         minutes,
		Distance:     5,
		Photos:       []string{"a.jpg"},
		AuthorID:     author,
	}
	require.NoError(t, store.Records.Create(context.Background(), rec))
	return rec
}

func strPtr(s string) *string { return &s }
