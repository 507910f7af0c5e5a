package notify

import (
	"fmt"
	"time"
)

type discordMessage struct {
	Embeds []discordEmbed `json:"embeds"`
}

type discordEmbed struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Fields      []discordField `json:"fields"`
	Timestamp   string         `json:"timestamp"`
}

type discordField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

func discordPayload(ev RecordEvent) discordMessage {
	at := ev.CreatedAt
	if at.IsZero() {
		at = time.Now()
	}
	return discordMessage{Embeds: []discordEmbed{{
		Title:       "New exercise record!",
		Description: fmt.Sprintf("**Group**: %s", ev.GroupName),
		Fields: []discordField{
			{Name: "Exercise", Value: ev.ExerciseType, Inline: true},
			{Name: "Author", Value: ev.Author, Inline: true},
			{Name: "Time", Value: fmt.Sprintf("%d min", ev.Time), Inline: true},
			{Name: "Distance", Value: fmt.Sprintf("%gkm", ev.Distance), Inline: true},
		},
		Timestamp: at.UTC().Format(time.RFC3339),
	}}}
}
