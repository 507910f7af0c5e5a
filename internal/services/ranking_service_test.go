package services

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funfungun/1-seven-0/internal/models"
	"github.com/funfungun/1-seven-0/internal/repository"
)

func TestWindowStart(t *testing.T) {
	tests := []struct {
		name   string
		now    time.Time
		period RankPeriod
		want   time.Time
	}{
		{
			name:   "weekly",
			now:    time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC),
			period: PeriodWeekly,
			want:   time.Date(2024, 5, 3, 12, 0, 0, 0, time.UTC),
		},
		{
			name:   "monthly",
			now:    time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC),
			period: PeriodMonthly,
			want:   time.Date(2024, 4, 10, 12, 0, 0, 0, time.UTC),
		},
		{
			name:   "monthly clamps into leap february",
			now:    time.Date(2024, 3, 31, 8, 30, 0, 0, time.UTC),
			period: PeriodMonthly,
			want:   time.Date(2024, 2, 29, 8, 30, 0, 0, time.UTC),
		},
		{
			name:   "monthly across the year boundary",
			now:    time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			period: PeriodMonthly,
			want:   time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "non-utc input is normalized",
			now:    time.Date(2024, 5, 10, 9, 0, 0, 0, time.FixedZone("KST", 9*3600)),
			period: PeriodWeekly,
			want:   time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := WindowStart(tt.now, tt.period)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}

	_, err := WindowStart(time.Now(), "yearly")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRank(t *testing.T) {
	participants := []models.Participant{
		{Nickname: "c"},
		{Nickname: "b", Records: []models.Record{{Time: 10}, {Time: 20}}},
		{Nickname: "a", Records: []models.Record{{Time: 5}, {Time: 5}, {Time: 5}}},
		{Nickname: "d", Records: []models.Record{{Time: 40}, {Time: 1}}},
	}

	ranking := Rank(participants)
	require.Len(t, ranking, 4)

	nicknames := make([]string, 0, len(ranking))
	for _, e := range ranking {
		nicknames = append(nicknames, e.Nickname)
	}
	assert.Equal(t, []string{"a", "d", "b", "c"}, nicknames)
	assert.Equal(t, 41, ranking[1].RecordTime)

	assert.True(t, sort.SliceIsSorted(ranking, func(i, j int) bool {
		if ranking[i].RecordCount != ranking[j].RecordCount {
			return ranking[i].RecordCount > ranking[j].RecordCount
		}
		return ranking[i].RecordTime > ranking[j].RecordTime
	}))
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3}

	assert.Equal(t, []int{2, 3}, paginate(items, repository.Page{Offset: 1, Limit: 5}))
	assert.Equal(t, []int{1}, paginate(items, repository.Page{Limit: 1}))
	assert.Equal(t, []int{}, paginate(items, repository.Page{Offset: 3, Limit: 1}))
	assert.Equal(t, []int{}, paginate(items, repository.Page{Offset: -100, Limit: 10}))
}

func TestComputeRanking(t *testing.T) {
	store := newTestStore(t)
	groups := NewGroupService(store, PlainCredentials{})
	ctx := context.Background()

	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	svc := NewRankingService(store, func() time.Time { return now })

	g := createTestGroup(t, groups, "Runners")
	owner := g.Owner()
	bob, err := groups.JoinGroup(ctx, g.ID, ParticipantInput{Nickname: "bob", Password: "bobpassword"})
	require.NoError(t, err)
	_, err = groups.JoinGroup(ctx, g.ID, ParticipantInput{Nickname: "carol", Password: "carolpassword"})
	require.NoError(t, err)

	insert := func(author uuid.UUID, minutes int, at time.Time) {
		rec := &models.Record{
			ExerciseType: models.ExerciseRun,
			Time:         minutes,
			Photos:       []string{"p.jpg"},
			AuthorID:     author,
			CreatedAt:    at,
		}
		require.NoError(t, store.Records.Create(ctx, rec))
	}

	// bob: 4 records totalling 20 minutes this week
	for i := 0; i < 4; i++ {
		insert(bob.ID, 5, now.Add(-time.Duration(i+1)*24*time.Hour))
	}
	// alice: 2 records totalling 30 minutes this week, one more three weeks ago
	insert(owner.ID, 10, now.Add(-2*24*time.Hour))
	insert(owner.ID, 20, now.Add(-3*24*time.Hour))
	insert(owner.ID, 60, now.Add(-21*24*time.Hour))

	t.Run("weekly", func(t *testing.T) {
		entries, total, err := svc.ComputeRanking(ctx, g.ID, PeriodWeekly, repository.Page{Limit: 10})
		require.NoError(t, err)
		assert.EqualValues(t, 3, total)
		require.Len(t, entries, 3)

		assert.Equal(t, RankEntry{ParticipantID: bob.ID, Nickname: "bob", RecordCount: 4, RecordTime: 20}, entries[0])
		assert.Equal(t, RankEntry{ParticipantID: owner.ID, Nickname: "alice", RecordCount: 2, RecordTime: 30}, entries[1])
		assert.Equal(t, "carol", entries[2].Nickname)
		assert.Zero(t, entries[2].RecordCount)
		assert.Zero(t, entries[2].RecordTime)
	})

	t.Run("monthly includes older records", func(t *testing.T) {
		entries, _, err := svc.ComputeRanking(ctx, g.ID, PeriodMonthly, repository.Page{Limit: 10})
		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, "bob", entries[0].Nickname)
		assert.Equal(t, 3, entries[1].RecordCount)
		assert.Equal(t, 90, entries[1].RecordTime)
	})

	t.Run("pagination", func(t *testing.T) {
		entries, total, err := svc.ComputeRanking(ctx, g.ID, PeriodWeekly, repository.Page{Offset: 1, Limit: 1})
		require.NoError(t, err)
		assert.EqualValues(t, 3, total)
		require.Len(t, entries, 1)
		assert.Equal(t, "alice", entries[0].Nickname)

		entries, _, err = svc.ComputeRanking(ctx, g.ID, PeriodWeekly, repository.Page{Offset: 10, Limit: 5})
		require.NoError(t, err)
		assert.NotNil(t, entries)
		assert.Empty(t, entries)
	})

	t.Run("unknown group", func(t *testing.T) {
		_, _, err := svc.ComputeRanking(ctx, uuid.New(), PeriodWeekly, repository.Page{Limit: 10})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("invalid period", func(t *testing.T) {
		_, _, err := svc.ComputeRanking(ctx, g.ID, "daily", repository.Page{Limit: 10})
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestComputeRankingWindowStartIsInclusive(t *testing.T) {
	store := newTestStore(t)
	groups := NewGroupService(store, PlainCredentials{})
	ctx := context.Background()

	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	since, err := WindowStart(now, PeriodWeekly)
	require.NoError(t, err)

	g := createTestGroup(t, groups, "Edge")
	owner := g.Owner()
	for _, at := range []time.Time{since, since.Add(-time.Nanosecond)} {
		rec := &models.Record{
			ExerciseType: models.ExerciseSwim,
			Time:         10,
			Photos:       []string{"p.jpg"},
			AuthorID:     owner.ID,
			CreatedAt:    at,
		}
		require.NoError(t, store.Records.Create(ctx, rec))
	}

	svc := NewRankingService(store, func() time.Time { return now })
	entries, _, err := svc.ComputeRanking(ctx, g.ID, PeriodWeekly, repository.Page{Limit: 10})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 1, entries[0].RecordCount)
	assert.Equal(t, 10, entries[0].RecordTime)
}
