package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/funfungun/1-seven-0/internal/models"
	"github.com/funfungun/1-seven-0/internal/repository"
)

// GroupService owns the group lifecycle and membership. Every multi-row
// mutation runs in one transaction, and a group always has exactly one owner.
type GroupService interface {
	CreateGroup(ctx context.Context, in CreateGroupInput) (*models.Group, error)
	GetGroup(ctx context.Context, id uuid.UUID) (*models.Group, error)
	ListGroups(ctx context.Context, in ListGroupsInput) ([]models.Group, int64, error)
	UpdateGroup(ctx context.Context, id uuid.UUID, in UpdateGroupInput) (*models.Group, error)
	DeleteGroup(ctx context.Context, id uuid.UUID, ownerPassword string) error

	JoinGroup(ctx context.Context, groupID uuid.UUID, in ParticipantInput) (*models.Participant, error)
	LeaveGroup(ctx context.Context, groupID uuid.UUID, in ParticipantInput) error
	Like(ctx context.Context, groupID uuid.UUID) (*models.Group, error)
	Unlike(ctx context.Context, groupID uuid.UUID) (*models.Group, error)
}

type CreateGroupInput struct {
	OwnerNickname     string   `json:"ownerNickname" validate:"min=1,max=20"`
	OwnerPassword     string   `json:"ownerPassword" validate:"min=8,max=20"`
	Name              string   `json:"name" validate:"min=1,max=60"`
	Description       string   `json:"description"`
	PhotoURL          string   `json:"photoUrl"`
	GoalRep           int      `json:"goalRep" validate:"min=1"`
	DiscordWebhookURL string   `json:"discordWebhookUrl" validate:"omitempty,url"`
	DiscordInviteURL  string   `json:"discordInviteUrl" validate:"omitempty,url"`
	Tags              []string `json:"tags" validate:"max=20,dive,min=1,max=30"`
}

// UpdateGroupInput is a partial update; nil fields are left unchanged and a
// nil Tags keeps the current tag set. An empty link clears it. OwnerPassword
// authorizes the change.
type UpdateGroupInput struct {
	OwnerPassword     string   `json:"ownerPassword" validate:"required"`
	OwnerNickname     *string  `json:"ownerNickname" validate:"omitnil,min=1,max=20"`
	NewOwnerPassword  *string  `json:"newOwnerPassword" validate:"omitnil,min=8,max=20"`
	Name              *string  `json:"name" validate:"omitnil,min=1,max=60"`
	Description       *string  `json:"description"`
	PhotoURL          *string  `json:"photoUrl"`
	GoalRep           *int     `json:"goalRep" validate:"omitnil,min=1"`
	DiscordWebhookURL *string  `json:"discordWebhookUrl" validate:"omitnil,url_or_empty"`
	DiscordInviteURL  *string  `json:"discordInviteUrl" validate:"omitnil,url_or_empty"`
	Tags              []string `json:"tags" validate:"max=20,dive,min=1,max=30"`
}

type ListGroupsInput struct {
	repository.Page
	Search  string
	Order   string
	OrderBy string
}

type groupService struct {
	store *repository.Store
	creds Credentials
}

func NewGroupService(store *repository.Store, creds Credentials) GroupService {
	return &groupService{store: store, creds: creds}
}

func (s *groupService) CreateGroup(ctx context.Context, in CreateGroupInput) (*models.Group, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	hashed, err := s.creds.Hash(in.OwnerPassword)
	if err != nil {
		return nil, err
	}

	g := &models.Group{
		ID:                uuid.New(),
		Name:              in.Name,
		Description:       in.Description,
		PhotoURL:          in.PhotoURL,
		GoalRep:           in.GoalRep,
		DiscordWebhookURL: in.DiscordWebhookURL,
		DiscordInviteURL:  in.DiscordInviteURL,
	}
	err = s.store.Transaction(ctx, func(tx *repository.Store) error {
		if err := tx.Groups.Create(ctx, g); err != nil {
			return err
		}
		tags, err := tx.Tags.FindOrCreate(ctx, uniqueNames(in.Tags))
		if err != nil {
			return err
		}
		if len(tags) > 0 {
			if err := tx.Groups.ReplaceTags(ctx, g, tags); err != nil {
				return err
			}
		}
		owner := &models.Participant{
			GroupID:  g.ID,
			Nickname: in.OwnerNickname,
			Password: hashed,
			IsOwner:  true,
		}
		return tx.Participants.Create(ctx, owner)
	})
	if err != nil {
		return nil, storeError(err, "group")
	}

	slog.InfoContext(ctx, "group created", "group_id", g.ID, "owner", in.OwnerNickname, "tags", len(in.Tags))
	return s.GetGroup(ctx, g.ID)
}

func (s *groupService) GetGroup(ctx context.Context, id uuid.UUID) (*models.Group, error) {
	g, err := s.store.Groups.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "group")
	}
	return g, nil
}

func (s *groupService) ListGroups(ctx context.Context, in ListGroupsInput) ([]models.Group, int64, error) {
	q := repository.GroupQuery{Page: in.Page, Search: in.Search}

	switch in.Order {
	case "", "desc":
		q.Desc = true
	case "asc":
	default:
		return nil, 0, newError(ErrValidation, "The order parameter must be one of the following values: ['asc', 'desc'].")
	}

	switch orderBy := repository.GroupOrder(in.OrderBy); orderBy {
	case "":
		q.OrderBy = repository.GroupOrderCreatedAt
	case repository.GroupOrderCreatedAt, repository.GroupOrderLikeCount, repository.GroupOrderParticipantCount:
		q.OrderBy = orderBy
	default:
		return nil, 0, newError(ErrValidation, "The orderBy parameter must be one of the following values: ['likeCount', 'participantCount', 'createdAt'].")
	}

	gs, total, err := s.store.Groups.List(ctx, q)
	if err != nil {
		return nil, 0, err
	}
	return gs, total, nil
}

func (s *groupService) UpdateGroup(ctx context.Context, id uuid.UUID, in UpdateGroupInput) (*models.Group, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		g, owner, err := s.authorizeOwner(ctx, tx, id, in.OwnerPassword)
		if err != nil {
			return err
		}

		if err := tx.Groups.Update(ctx, id, groupFields(in)); err != nil {
			return storeError(err, "group")
		}

		if in.Tags != nil {
			previous := tagIDs(g.Tags)
			tags, err := tx.Tags.FindOrCreate(ctx, uniqueNames(in.Tags))
			if err != nil {
				return err
			}
			if err := tx.Groups.ReplaceTags(ctx, g, tags); err != nil {
				return err
			}
			if _, err := tx.Tags.DeleteOrphans(ctx, previous); err != nil {
				return err
			}
		}

		if in.OwnerNickname == nil && in.NewOwnerPassword == nil {
			return nil
		}
		if in.OwnerNickname != nil {
			owner.Nickname = *in.OwnerNickname
		}
		if in.NewOwnerPassword != nil {
			hashed, err := s.creds.Hash(*in.NewOwnerPassword)
			if err != nil {
				return err
			}
			owner.Password = hashed
		}
		return storeError(tx.Participants.Update(ctx, owner), "participant")
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "group updated", "group_id", id, "retagged", in.Tags != nil)
	return s.GetGroup(ctx, id)
}

func (s *groupService) DeleteGroup(ctx context.Context, id uuid.UUID, ownerPassword string) error {
	var removedTags int64
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		g, _, err := s.authorizeOwner(ctx, tx, id, ownerPassword)
		if err != nil {
			return err
		}

		previous := tagIDs(g.Tags)
		if err := tx.Groups.ClearTags(ctx, g); err != nil {
			return err
		}
		if removedTags, err = tx.Tags.DeleteOrphans(ctx, previous); err != nil {
			return err
		}
		if err := tx.Records.DeleteByGroup(ctx, id); err != nil {
			return err
		}
		if err := tx.Groups.DeleteBadges(ctx, id); err != nil {
			return err
		}
		if err := tx.Participants.DeleteByGroup(ctx, id); err != nil {
			return err
		}
		return storeError(tx.Groups.Delete(ctx, id), "group")
	})
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "group deleted", "group_id", id, "orphan_tags_removed", removedTags)
	return nil
}

// authorizeOwner loads the group and checks password against its owner.
func (s *groupService) authorizeOwner(ctx context.Context, tx *repository.Store, id uuid.UUID, password string) (*models.Group, *models.Participant, error) {
	g, err := tx.Groups.GetByID(ctx, id)
	if err != nil {
		return nil, nil, storeError(err, "group")
	}
	owner := g.Owner()
	if owner == nil {
		return nil, nil, newError(ErrNotFound, "owner not found in participants")
	}
	if !s.creds.Matches(owner.Password, password) {
		return nil, nil, newError(ErrUnauthorized, "Wrong password")
	}
	return g, owner, nil
}

func groupFields(in UpdateGroupInput) map[string]any {
	fields := map[string]any{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.PhotoURL != nil {
		fields["photo_url"] = *in.PhotoURL
	}
	if in.GoalRep != nil {
		fields["goal_rep"] = *in.GoalRep
	}
	if in.DiscordWebhookURL != nil {
		fields["discord_webhook_url"] = *in.DiscordWebhookURL
	}
	if in.DiscordInviteURL != nil {
		fields["discord_invite_url"] = *in.DiscordInviteURL
	}
	return fields
}

func tagIDs(tags []models.Tag) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(tags))
	for _, t := range tags {
		ids = append(ids, t.ID)
	}
	return ids
}

// uniqueNames trims names and drops blanks and duplicates, keeping first-seen order.
func uniqueNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
