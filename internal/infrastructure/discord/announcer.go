package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/laplazadevs/memeoftheweekbot/internal/domain"
)

// InteractionAnnouncer posts contest announcements against a slash-command
// interaction. The first announcement fills the deferred acknowledgment; the
// rest go out as follow-up messages.
type InteractionAnnouncer struct {
	session     *discordgo.Session
	interaction *discordgo.Interaction
	replied     bool
}

// NewInteractionAnnouncer creates an announcer bound to one interaction.
func NewInteractionAnnouncer(session *discordgo.Session, interaction *discordgo.Interaction) *InteractionAnnouncer {
	return &InteractionAnnouncer{session: session, interaction: interaction}
}

// Replied reports whether the acknowledgment has already been filled with a
// result message.
func (a *InteractionAnnouncer) Replied() bool {
	return a.replied
}

// Announce sends one announcement. Media URLs ride along as image embeds so
// Discord renders the winning attachments inline.
func (a *InteractionAnnouncer) Announce(ctx context.Context, ann domain.Announcement) error {
	embeds := make([]*discordgo.MessageEmbed, 0, len(ann.MediaURLs))
	for _, url := range ann.MediaURLs {
		embeds = append(embeds, &discordgo.MessageEmbed{
			Image: &discordgo.MessageEmbedImage{URL: url},
		})
	}

	if !a.replied {
		content := ann.Content
		_, err := a.session.InteractionResponseEdit(a.interaction, &discordgo.WebhookEdit{
			Content: &content,
			Embeds:  &embeds,
		}, discordgo.WithContext(ctx))
		if err != nil {
			return fmt.Errorf("fill acknowledgment: %w", err)
		}
		a.replied = true
		return nil
	}

	_, err := a.session.FollowupMessageCreate(a.interaction, true, &discordgo.WebhookParams{
		Content: ann.Content,
		Embeds:  embeds,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("post follow-up: %w", err)
	}
	return nil
}
