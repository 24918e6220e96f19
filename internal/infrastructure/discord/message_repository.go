package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/laplazadevs/memeoftheweekbot/internal/domain"
)

// MessageRepository reads channel messages through the Discord REST API.
type MessageRepository struct {
	session *discordgo.Session
}

// NewMessageRepository creates a repository backed by the given session.
func NewMessageRepository(session *discordgo.Session) *MessageRepository {
	return &MessageRepository{session: session}
}

// FetchPage returns one page of messages, newest first. A non-empty beforeID
// restricts the page to messages strictly older than that id.
func (r *MessageRepository) FetchPage(ctx context.Context, channelID string, limit int, beforeID string) ([]*domain.Message, error) {
	msgs, err := r.session.ChannelMessages(channelID, limit, beforeID, "", "", discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("fetch channel page: %w", err)
	}

	page := make([]*domain.Message, 0, len(msgs))
	for _, m := range msgs {
		page = append(page, convertMessage(m))
	}
	return page, nil
}

// convertMessage maps a platform message onto the domain model.
func convertMessage(m *discordgo.Message) *domain.Message {
	reactions := make([]domain.Reaction, 0, len(m.Reactions))
	for _, r := range m.Reactions {
		if r.Emoji == nil {
			continue
		}
		reactions = append(reactions, domain.Reaction{
			Name:  r.Emoji.Name,
			ID:    r.Emoji.ID,
			Count: r.Count,
		})
	}

	attachments := make([]domain.Attachment, 0, len(m.Attachments))
	for _, a := range m.Attachments {
		attachments = append(attachments, domain.Attachment{
			URL:      a.URL,
			Filename: a.Filename,
		})
	}

	var authorID string
	var isBot bool
	if m.Author != nil {
		authorID = m.Author.ID
		isBot = m.Author.Bot
	}

	return &domain.Message{
		ID:          m.ID,
		ChannelID:   m.ChannelID,
		GuildID:     m.GuildID,
		AuthorID:    authorID,
		Content:     m.Content,
		URL:         messageURL(m),
		CreatedAt:   m.Timestamp,
		Attachments: attachments,
		Reactions:   reactions,
		IsBot:       isBot,
	}
}

// messageURL builds the canonical jump link for a message. History responses
// do not carry one, so it is derived from the ids.
func messageURL(m *discordgo.Message) string {
	guild := m.GuildID
	if guild == "" {
		guild = "@me"
	}
	return fmt.Sprintf("https://discord.com/channels/%s/%s/%s", guild, m.ChannelID, m.ID)
}
