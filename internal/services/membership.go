package services

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/funfungun/1-seven-0/internal/models"
	"github.com/funfungun/1-seven-0/internal/repository"
)

// ParticipantInput identifies a participant by nickname and password.
type ParticipantInput struct {
	Nickname string `json:"nickname" validate:"min=1,max=20"`
	Password string `json:"password" validate:"min=8,max=20"`
}

// JoinGroup adds a non-owner participant. The (group, nickname) unique index
// backs the duplicate check against concurrent joins.
func (s *groupService) JoinGroup(ctx context.Context, groupID uuid.UUID, in ParticipantInput) (*models.Participant, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	exists, err := s.store.Groups.Exists(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, newError(ErrNotFound, "Group not found")
	}

	if _, err := s.store.Participants.GetByNickname(ctx, groupID, in.Nickname); err == nil {
		return nil, newError(ErrConflict, "Already joined the group")
	} else if storeErr := storeError(err, "participant"); !isKind(storeErr, ErrNotFound) {
		return nil, storeErr
	}

	hashed, err := s.creds.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	p := &models.Participant{
		GroupID:  groupID,
		Nickname: in.Nickname,
		Password: hashed,
	}
	if err := s.store.Participants.Create(ctx, p); err != nil {
		if err = storeError(err, "participant"); isKind(err, ErrConflict) {
			return nil, newError(ErrConflict, "Already joined the group")
		}
		return nil, err
	}

	slog.InfoContext(ctx, "participant joined", "group_id", groupID, "participant_id", p.ID)
	return p, nil
}

// LeaveGroup removes a non-owner participant together with their records.
// The owner check comes first so an owner is refused whatever password is sent.
func (s *groupService) LeaveGroup(ctx context.Context, groupID uuid.UUID, in ParticipantInput) error {
	if in.Nickname == "" {
		return newError(ErrValidation, "nickname is required")
	}

	var leftID uuid.UUID
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		p, err := tx.Participants.GetByNickname(ctx, groupID, in.Nickname)
		if err != nil {
			return storeError(err, "participant")
		}
		if p.IsOwner {
			return newError(ErrForbidden, "Owner cannot leave the group")
		}
		if !s.creds.Matches(p.Password, in.Password) {
			return newError(ErrUnauthorized, "Wrong password")
		}
		if err := tx.Records.DeleteByAuthor(ctx, p.ID); err != nil {
			return err
		}
		leftID = p.ID
		return storeError(tx.Participants.Delete(ctx, p.ID), "participant")
	})
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "participant left", "group_id", groupID, "participant_id", leftID)
	return nil
}

func (s *groupService) Like(ctx context.Context, groupID uuid.UUID) (*models.Group, error) {
	return s.addLikes(ctx, groupID, 1)
}

// Unlike has no floor; the counter may go negative.
func (s *groupService) Unlike(ctx context.Context, groupID uuid.UUID) (*models.Group, error) {
	return s.addLikes(ctx, groupID, -1)
}

func (s *groupService) addLikes(ctx context.Context, groupID uuid.UUID, delta int) (*models.Group, error) {
	if err := s.store.Groups.AddLikes(ctx, groupID, delta); err != nil {
		return nil, storeError(err, "group")
	}
	return s.GetGroup(ctx, groupID)
}
