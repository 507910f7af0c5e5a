package database

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/funfungun/1-seven-0/internal/models"
)

// Seed wipes every table and loads demo data in one transaction. hash turns
// demo passwords into their stored form.
func (d *Database) Seed(ctx context.Context, hash func(string) (string, error)) error {
	return d.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, table := range []string{"records", "badges", "participants", "group_tags", "groups", "tags"} {
			if err := tx.Exec("DELETE FROM ?", clause.Table{Name: table}).Error; err != nil {
				return fmt.Errorf("failed to clear %s: %w", table, err)
			}
		}

		tags := map[string]*models.Tag{}
		for _, name := range []string{"running", "cycling", "swimming", "morning", "weekend", "beginner"} {
			t := &models.Tag{ID: uuid.New(), Name: name}
			if err := tx.Create(t).Error; err != nil {
				return err
			}
			tags[name] = t
		}

		password, err := hash("password123")
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		for _, sg := range seedGroups {
			g := models.Group{
				ID:          uuid.New(),
				Name:        sg.name,
				Description: sg.description,
				GoalRep:     sg.goalRep,
				LikeCount:   sg.likes,
			}
			for _, tn := range sg.tags {
				g.Tags = append(g.Tags, *tags[tn])
			}
			if err := tx.Create(&g).Error; err != nil {
				return fmt.Errorf("failed to create group %q: %w", sg.name, err)
			}

			for i, nick := range sg.members {
				p := models.Participant{
					ID:       uuid.New(),
					GroupID:  g.ID,
					Nickname: nick,
					Password: password,
					IsOwner:  i == 0,
				}
				if err := tx.Create(&p).Error; err != nil {
					return err
				}

				// staggered records over the last few weeks so both leaderboards differ
				for j := 0; j < len(sg.members)-i+1; j++ {
					r := models.Record{
						ID:           uuid.New(),
						ExerciseType: sg.exercise,
						Time:         20 + 5*j,
						Distance:     float64(3 + j),
						Photos:       []string{"https://picsum.photos/seed/" + nick + "/600/400"},
						AuthorID:     p.ID,
						CreatedAt:    now.Add(-time.Duration(j*4+i) * 24 * time.Hour),
					}
					if err := tx.Omit("Author").Create(&r).Error; err != nil {
						return err
					}
				}
			}

			if sg.likes >= 100 {
				b := models.Badge{ID: uuid.New(), GroupID: g.ID, Type: models.BadgeLike100}
				if err := tx.Create(&b).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}

type seedGroup struct {
	name        string
	description string
	goalRep     int
	likes       int
	exercise    models.ExerciseType
	tags        []string
	members     []string
}

var seedGroups = []seedGroup{
	{
		name:        "Han River Runners",
		description: "Evening 5k along the river, all paces welcome.",
		goalRep:     20,
		likes:       120,
		exercise:    models.ExerciseRun,
		tags:        []string{"running", "beginner"},
		members:     []string{"minji", "jun", "sora", "taeho"},
	},
	{
		name:        "Weekend Wheels",
		description: "Long rides every Saturday morning.",
		goalRep:     8,
		likes:       42,
		exercise:    models.ExerciseBike,
		tags:        []string{"cycling", "weekend", "morning"},
		members:     []string{"dohyun", "yuna"},
	},
	{
		name:        "Lap Counters",
		description: "Pool sessions before work.",
		goalRep:     12,
		likes:       7,
		exercise:    models.ExerciseSwim,
		tags:        []string{"swimming", "morning"},
		members:     []string{"eunji", "hyun", "seo"},
	},
}
