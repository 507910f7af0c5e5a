package services

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/funfungun/1-seven-0/internal/models"
	"github.com/funfungun/1-seven-0/internal/repository"
)

// RankPeriod selects the trailing window of a leaderboard.
type RankPeriod string

const (
	PeriodWeekly  RankPeriod = "weekly"
	PeriodMonthly RankPeriod = "monthly"
)

// RankEntry is one participant's activity within the window.
type RankEntry struct {
	ParticipantID uuid.UUID `json:"participantId"`
	Nickname      string    `json:"nickname"`
	RecordCount   int       `json:"recordCount"`
	RecordTime    int       `json:"recordTime"`
}

type RankingService interface {
	// ComputeRanking returns one page of the leaderboard and the number of
	// participants in the group.
	ComputeRanking(ctx context.Context, groupID uuid.UUID, period RankPeriod, page repository.Page) ([]RankEntry, int64, error)
}

type rankingService struct {
	store *repository.Store
	now   func() time.Time
}

func NewRankingService(store *repository.Store, now func() time.Time) RankingService {
	if now == nil {
		now = time.Now
	}
	return &rankingService{store: store, now: now}
}

func (s *rankingService) ComputeRanking(ctx context.Context, groupID uuid.UUID, period RankPeriod, page repository.Page) ([]RankEntry, int64, error) {
	since, err := WindowStart(s.now(), period)
	if err != nil {
		return nil, 0, err
	}

	exists, err := s.store.Groups.Exists(ctx, groupID)
	if err != nil {
		return nil, 0, err
	}
	if !exists {
		return nil, 0, newError(ErrNotFound, "Group not found")
	}

	participants, err := s.store.Participants.ListWithRecordsSince(ctx, groupID, since)
	if err != nil {
		return nil, 0, err
	}

	ranking := Rank(participants)
	return paginate(ranking, page), int64(len(ranking)), nil
}

// WindowStart returns the start of the trailing window ending at now, in UTC.
// Monthly windows subtract one calendar month and clamp to the last day of the
// shorter month, so March 31 maps to the end of February.
func WindowStart(now time.Time, period RankPeriod) (time.Time, error) {
	now = now.UTC()
	switch period {
	case PeriodWeekly:
		return now.AddDate(0, 0, -7), nil
	case PeriodMonthly:
		year, month, day := now.Date()
		firstOfPrev := time.Date(year, month-1, 1, now.Hour(), now.Minute(), now.Second(), now.Nanosecond(), time.UTC)
		if last := daysIn(firstOfPrev); day > last {
			day = last
		}
		return firstOfPrev.AddDate(0, 0, day-1), nil
	default:
		return time.Time{}, newError(ErrValidation, "Invalid period. Use 'weekly' or 'monthly'.")
	}
}

func daysIn(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Rank aggregates each participant's loaded records and orders them by record
// count, then total time, both descending. Participants without records stay
// in the list; full ties keep their input order.
func Rank(participants []models.Participant) []RankEntry {
	entries := make([]RankEntry, 0, len(participants))
	for _, p := range participants {
		e := RankEntry{
			ParticipantID: p.ID,
			Nickname:      p.Nickname,
			RecordCount:   len(p.Records),
		}
		for _, r := range p.Records {
			e.RecordTime += r.Time
		}
		entries = append(entries, e)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].RecordCount != entries[j].RecordCount {
			return entries[i].RecordCount > entries[j].RecordCount
		}
		return entries[i].RecordTime > entries[j].RecordTime
	})
	return entries
}

func paginate[T any](items []T, page repository.Page) []T {
	if page.Offset < 0 || page.Offset >= len(items) {
		return []T{}
	}
	end := len(items)
	if page.Limit > 0 && page.Offset+page.Limit < end {
		end = page.Offset + page.Limit
	}
	return items[page.Offset:end]
}
