package services

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/funfungun/1-seven-0/internal/models"
	"github.com/funfungun/1-seven-0/internal/repository"
	"github.com/funfungun/1-seven-0/pkg/notify"
)

// RecordNotifier receives new records after they are committed. It must not block.
type RecordNotifier interface {
	RecordCreated(ev notify.RecordEvent)
}

type RecordService interface {
	CreateRecord(ctx context.Context, groupID uuid.UUID, in CreateRecordInput) (*models.Record, error)
	GetRecord(ctx context.Context, groupID, recordID uuid.UUID) (*models.Record, error)
	ListRecords(ctx context.Context, groupID uuid.UUID, in ListRecordsInput) ([]models.Record, int64, error)
}

type CreateRecordInput struct {
	AuthorNickname string   `json:"authorNickname"`
	AuthorPassword string   `json:"authorPassword"`
	ExerciseType   string   `json:"exerciseType" validate:"required"`
	Description    *string  `json:"description"`
	Time           int      `json:"time" validate:"min=1"`
	Distance       float64  `json:"distance" validate:"min=0"`
	Photos         []string `json:"photos" validate:"min=1,max=5,dive,required"`
}

type ListRecordsInput struct {
	repository.Page
	Search  string
	Order   string
	OrderBy string
}

type recordService struct {
	store    *repository.Store
	creds    Credentials
	notifier RecordNotifier
}

func NewRecordService(store *repository.Store, creds Credentials, notifier RecordNotifier) RecordService {
	return &recordService{store: store, creds: creds, notifier: notifier}
}

func (s *recordService) CreateRecord(ctx context.Context, groupID uuid.UUID, in CreateRecordInput) (*models.Record, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	exerciseType, ok := models.ParseExerciseType(in.ExerciseType)
	if !ok {
		return nil, newError(ErrValidation, "exerciseType must be one of RUN, BIKE, SWIM")
	}

	g, err := s.store.Groups.GetByID(ctx, groupID)
	if err != nil {
		return nil, storeError(err, "group")
	}

	author, err := s.store.Participants.GetByNickname(ctx, groupID, in.AuthorNickname)
	if err != nil || !s.creds.Matches(author.Password, in.AuthorPassword) {
		if err != nil && !isKind(storeError(err, "participant"), ErrNotFound) {
			return nil, err
		}
		return nil, newError(ErrForbidden, "Not a participant of this group")
	}

	description := in.Description
	if description != nil && *description == "" {
		description = nil
	}
	rec := &models.Record{
		ExerciseType: exerciseType,
		Description:  description,
		Time:         in.Time,
		Distance:     in.Distance,
		Photos:       in.Photos,
		AuthorID:     author.ID,
	}
	if err := s.store.Records.Create(ctx, rec); err != nil {
		return nil, err
	}
	rec.Author = *author

	slog.InfoContext(ctx, "record created", "group_id", groupID, "record_id", rec.ID, "author", author.Nickname)

	if s.notifier != nil && g.DiscordWebhookURL != "" {
		s.notifier.RecordCreated(notify.RecordEvent{
			WebhookURL:   g.DiscordWebhookURL,
			GroupName:    g.Name,
			ExerciseType: string(rec.ExerciseType),
			Author:       author.Nickname,
			Time:         rec.Time,
			Distance:     rec.Distance,
			CreatedAt:    rec.CreatedAt,
		})
	}
	return rec, nil
}

func (s *recordService) GetRecord(ctx context.Context, groupID, recordID uuid.UUID) (*models.Record, error) {
	rec, err := s.store.Records.GetByID(ctx, groupID, recordID)
	if err != nil {
		return nil, storeError(err, "record")
	}
	return rec, nil
}

// ListRecords orders by time or createdAt; unknown values fall back to newest first.
func (s *recordService) ListRecords(ctx context.Context, groupID uuid.UUID, in ListRecordsInput) ([]models.Record, int64, error) {
	q := repository.RecordQuery{
		Page:    in.Page,
		GroupID: groupID,
		Search:  in.Search,
		OrderBy: repository.RecordOrderCreatedAt,
		Desc:    in.Order != "asc",
	}
	switch repository.RecordOrder(in.OrderBy) {
	case repository.RecordOrderTime:
		q.OrderBy = repository.RecordOrderTime
	case repository.RecordOrderCreatedAt:
	default:
		q.Desc = true
	}

	exists, err := s.store.Groups.Exists(ctx, groupID)
	if err != nil {
		return nil, 0, err
	}
	if !exists {
		return nil, 0, newError(ErrNotFound, "Group not found")
	}

	return s.store.Records.List(ctx, q)
}
