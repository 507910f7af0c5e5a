package models

import (
	"time"

	"github.com/google/uuid"
)

// Group is a fitness challenge that participants join and log records in.
type Group struct {
	ID                uuid.UUID `json:"id" gorm:"type:text;primaryKey"`
	Name              string    `json:"name" gorm:"type:text;not null;index"`
	Description       string    `json:"description" gorm:"type:text"`
	PhotoURL          string    `json:"photoUrl" gorm:"type:text"`
	GoalRep           int       `json:"goalRep" gorm:"type:integer;not null;default:1"`
	DiscordWebhookURL string    `json:"discordWebhookUrl" gorm:"type:text"`
	DiscordInviteURL  string    `json:"discordInviteUrl" gorm:"type:text"`
	LikeCount         int       `json:"likeCount" gorm:"type:integer;not null;default:0"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`

	// Relations
	Tags         []Tag         `json:"tags" gorm:"many2many:group_tags"`
	Badges       []Badge       `json:"badges" gorm:"foreignKey:GroupID"`
	Participants []Participant `json:"participants" gorm:"foreignKey:GroupID"`
}

// Owner returns the owning participant, or nil when participants were not loaded.
func (g *Group) Owner() *Participant {
	for i := range g.Participants {
		if g.Participants[i].IsOwner {
			return &g.Participants[i]
		}
	}
	return nil
}

// TagNames returns the names of the attached tags in load order.
func (g *Group) TagNames() []string {
	names := make([]string, 0, len(g.Tags))
	for _, t := range g.Tags {
		names = append(names, t.Name)
	}
	return names
}
