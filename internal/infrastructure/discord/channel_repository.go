package discord

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/bwmarrin/discordgo"

	"github.com/laplazadevs/memeoftheweekbot/internal/domain"
)

// ChannelRepository validates channel ids through the Discord REST API.
type ChannelRepository struct {
	session *discordgo.Session
}

// NewChannelRepository creates a repository backed by the given session.
func NewChannelRepository(session *discordgo.Session) *ChannelRepository {
	return &ChannelRepository{session: session}
}

// Resolve checks that channelID refers to a channel the bot can see. A valid
// id pointing at nothing maps to domain.ErrChannelNotFound; every other
// failure is passed through.
func (r *ChannelRepository) Resolve(ctx context.Context, channelID string) error {
	_, err := r.session.Channel(channelID, discordgo.WithContext(ctx))
	if err == nil {
		return nil
	}

	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) && restErr.Response != nil && restErr.Response.StatusCode == http.StatusNotFound {
		return domain.ErrChannelNotFound
	}
	return fmt.Errorf("resolve channel: %w", err)
}
