package handlers

import (
	"strings"

	"github.com/google/uuid"

	"github.com/funfungun/1-seven-0/internal/models"
	"github.com/funfungun/1-seven-0/internal/services"
)

// Wire shapes. Timestamps are Unix milliseconds and passwords never leave the server.

type GroupResponse struct {
	ID                uuid.UUID             `json:"id"`
	Name              string                `json:"name"`
	Description       string                `json:"description"`
	PhotoURL          string                `json:"photoUrl"`
	GoalRep           int                   `json:"goalRep"`
	DiscordWebhookURL string                `json:"discordWebhookUrl"`
	DiscordInviteURL  string                `json:"discordInviteUrl"`
	LikeCount         int                   `json:"likeCount"`
	Tags              []string              `json:"tags"`
	Owner             *ParticipantResponse  `json:"owner"`
	Participants      []ParticipantResponse `json:"participants"`
	CreatedAt         int64                 `json:"createdAt"`
	UpdatedAt         int64                 `json:"updatedAt"`
	Badges            []string              `json:"badges"`
}

type ParticipantResponse struct {
	ID        uuid.UUID `json:"id"`
	Nickname  string    `json:"nickname"`
	CreatedAt int64     `json:"createdAt"`
	UpdatedAt int64     `json:"updatedAt"`
}

type AuthorResponse struct {
	ID       uuid.UUID `json:"id"`
	Nickname string    `json:"nickname"`
}

type RecordResponse struct {
	ID           uuid.UUID      `json:"id"`
	ExerciseType string         `json:"exerciseType"`
	Description  *string        `json:"description"`
	Time         int            `json:"time"`
	Distance     float64        `json:"distance"`
	Photos       []string       `json:"photos"`
	Author       AuthorResponse `json:"author"`
	CreatedAt    int64          `json:"createdAt"`
}

type TagResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt int64     `json:"createdAt"`
	UpdatedAt int64     `json:"updatedAt"`
}

// ListResponse is the envelope of every paginated endpoint.
type ListResponse[T any] struct {
	Data  []T   `json:"data"`
	Total int64 `json:"total"`
}

// FormatGroup projects a group loaded with tags, badges and participants.
// The owner is pulled out into its own field and also stays in participants.
func FormatGroup(g *models.Group) GroupResponse {
	resp := GroupResponse{
		ID:                g.ID,
		Name:              g.Name,
		Description:       g.Description,
		PhotoURL:          g.PhotoURL,
		GoalRep:           g.GoalRep,
		DiscordWebhookURL: g.DiscordWebhookURL,
		DiscordInviteURL:  g.DiscordInviteURL,
		LikeCount:         g.LikeCount,
		Tags:              g.TagNames(),
		Participants:      make([]ParticipantResponse, 0, len(g.Participants)),
		CreatedAt:         g.CreatedAt.UnixMilli(),
		UpdatedAt:         g.UpdatedAt.UnixMilli(),
		Badges:            make([]string, 0, len(g.Badges)),
	}

	if owner := g.Owner(); owner != nil {
		o := FormatParticipant(owner)
		resp.Owner = &o
	}
	for i := range g.Participants {
		resp.Participants = append(resp.Participants, FormatParticipant(&g.Participants[i]))
	}
	for _, b := range g.Badges {
		resp.Badges = append(resp.Badges, string(b.Type))
	}
	return resp
}

func FormatGroups(gs []models.Group) []GroupResponse {
	out := make([]GroupResponse, 0, len(gs))
	for i := range gs {
		out = append(out, FormatGroup(&gs[i]))
	}
	return out
}

func FormatParticipant(p *models.Participant) ParticipantResponse {
	return ParticipantResponse{
		ID:        p.ID,
		Nickname:  p.Nickname,
		CreatedAt: p.CreatedAt.UnixMilli(),
		UpdatedAt: p.UpdatedAt.UnixMilli(),
	}
}

// FormatRecord projects a record with its author; the exercise type goes out lower-case.
func FormatRecord(r *models.Record) RecordResponse {
	photos := r.Photos
	if photos == nil {
		photos = []string{}
	}
	return RecordResponse{
		ID:           r.ID,
		ExerciseType: strings.ToLower(string(r.ExerciseType)),
		Description:  r.Description,
		Time:         r.Time,
		Distance:     r.Distance,
		Photos:       photos,
		Author: AuthorResponse{
			ID:       r.Author.ID,
			Nickname: r.Author.Nickname,
		},
		CreatedAt: r.CreatedAt.UnixMilli(),
	}
}

func FormatRecords(rs []models.Record) []RecordResponse {
	out := make([]RecordResponse, 0, len(rs))
	for i := range rs {
		out = append(out, FormatRecord(&rs[i]))
	}
	return out
}

func FormatTag(t *models.Tag) TagResponse {
	return TagResponse{
		ID:        t.ID,
		Name:      t.Name,
		CreatedAt: t.CreatedAt.UnixMilli(),
		UpdatedAt: t.UpdatedAt.UnixMilli(),
	}
}

func FormatTags(ts []models.Tag) []TagResponse {
	out := make([]TagResponse, 0, len(ts))
	for i := range ts {
		out = append(out, FormatTag(&ts[i]))
	}
	return out
}

func formatRanking(entries []services.RankEntry) []services.RankEntry {
	if entries == nil {
		return []services.RankEntry{}
	}
	return entries
}
