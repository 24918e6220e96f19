package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laplazadevs/memeoftheweekbot/internal/domain"
)

func TestFormatAnnouncement_NoWinners(t *testing.T) {
	got := FormatAnnouncement("😂 Meme de la semana", nil)

	assert.Contains(t, got.Content, "😂 Meme de la semana")
	assert.Contains(t, got.Content, "no hubo ganadores")
	assert.Empty(t, got.MediaURLs)
	assert.Equal(t, 1, strings.Count(got.Content, "no hubo ganadores"))
}

func TestFormatAnnouncement_ThreeWinners(t *testing.T) {
	createdAt := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	winners := []domain.ScoredMessage{
		{
			Message: &domain.Message{
				ID: "m1", AuthorID: "u1", URL: "https://discord.com/channels/g/c/m1", CreatedAt: createdAt,
				Attachments: []domain.Attachment{{URL: "https://cdn.example/uno.png"}},
			},
			Count: 5,
		},
		{
			Message: &domain.Message{
				ID: "m2", AuthorID: "u2", URL: "https://discord.com/channels/g/c/m2", CreatedAt: createdAt,
			},
			Count: 2,
		},
		{
			Message: &domain.Message{
				ID: "m3", AuthorID: "u3", URL: "https://discord.com/channels/g/c/m3", CreatedAt: createdAt,
				Attachments: []domain.Attachment{{URL: "https://cdn.example/tres.png"}},
			},
			Count: 1,
		},
	}

	got := FormatAnnouncement("😂 Meme de la semana", winners)

	lines := strings.Split(got.Content, "\n")
	require.Len(t, lines, 4, "title plus one line per winner")

	assert.True(t, strings.HasPrefix(lines[1], "#1 "))
	assert.True(t, strings.HasPrefix(lines[2], "#2 "))
	assert.True(t, strings.HasPrefix(lines[3], "#3 "))

	assert.Contains(t, lines[1], "<@u1>")
	assert.Contains(t, lines[1], "5 reacciones")
	assert.Contains(t, lines[1], "https://discord.com/channels/g/c/m1")

	assert.Contains(t, lines[3], "1 reacción", "count of one reads in singular")

	// Only winners with media contribute attachments, in rank order.
	assert.Equal(t, []string{"https://cdn.example/uno.png", "https://cdn.example/tres.png"}, got.MediaURLs)
}

func TestFormatAnnouncement_SingleWinner(t *testing.T) {
	winners := []domain.ScoredMessage{
		{
			Message: &domain.Message{ID: "m1", AuthorID: "u1", URL: "https://discord.com/channels/g/c/m1"},
			Count:   3,
		},
	}

	got := FormatAnnouncement("🦴 Hueso de la semana", winners)

	assert.Contains(t, got.Content, "#1 ")
	assert.NotContains(t, got.Content, "#2 ")
	assert.Empty(t, got.MediaURLs)
}
