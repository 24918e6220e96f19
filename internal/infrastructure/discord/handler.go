package discord

import (
	"context"
	"errors"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"github.com/laplazadevs/memeoftheweekbot/internal/domain"
	"github.com/laplazadevs/memeoftheweekbot/internal/service"
)

// CommandName is the slash command that triggers the weekly tally.
const CommandName = "concurso"

// User-visible strings. The community the bot serves speaks Spanish.
const (
	msgMissingChannel = "⚠️ Falta configurar el canal del concurso (CONTEST_CHANNEL_ID)."
	msgChannelGone    = "⚠️ No encuentro el canal del concurso. Revisen la configuración."
	msgFailure        = "😵 Algo salió mal contando las reacciones. Intenten de nuevo más tarde."
)

// Command returns the application command definition for registration.
func Command() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        CommandName,
		Description: "Cuenta las reacciones de la semana y anuncia los ganadores",
	}
}

// announcer is what the invocation flow needs from an InteractionAnnouncer:
// posting results, and knowing whether any result already went out.
type announcer interface {
	domain.Announcer
	Replied() bool
}

// Handler dispatches slash-command invocations into the contest service and
// owns the single top-level error boundary: whatever happens, the invoker
// always gets a response.
type Handler struct {
	channelID  func() string
	resolver   domain.ChannelResolver
	source     domain.MessageSource
	categories []service.Category
	log        zerolog.Logger
}

// NewHandler wires a handler. channelID is a function, not a value, because
// the channel configuration is read and validated per invocation; operators
// can fix it without restarting the bot.
func NewHandler(channelID func() string, resolver domain.ChannelResolver, source domain.MessageSource, categories []service.Category, log zerolog.Logger) *Handler {
	return &Handler{
		channelID:  channelID,
		resolver:   resolver,
		source:     source,
		categories: categories,
		log:        log,
	}
}

// Handle is the discordgo InteractionCreate handler.
func (h *Handler) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	if i.ApplicationCommandData().Name != CommandName {
		return
	}

	ctx := context.Background()
	h.log.Info().Str("command", CommandName).Msg("invocation received")

	ackErr := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if ackErr != nil {
		h.log.Error().Err(ackErr).Msg("acknowledgment failed")
	}

	ann := NewInteractionAnnouncer(s, i.Interaction)
	if err := h.run(ctx, ann); err != nil {
		h.fail(ctx, s, i, ann, ackErr == nil, err)
		return
	}
	h.log.Info().Msg("invocation finished")
}

// run walks the configuration and not-found branches, then hands off to the
// contest. Both branches resolve to a user-visible notice and a clean return;
// only transport and unexpected failures surface as errors.
func (h *Handler) run(ctx context.Context, ann announcer) error {
	channelID := h.channelID()
	if channelID == "" {
		return ann.Announce(ctx, domain.Announcement{Content: msgMissingChannel})
	}

	if err := h.resolver.Resolve(ctx, channelID); err != nil {
		if errors.Is(err, domain.ErrChannelNotFound) {
			return ann.Announce(ctx, domain.Announcement{Content: msgChannelGone})
		}
		return err
	}

	window, err := service.ContestWindow()
	if err != nil {
		return err
	}

	contest := service.NewContest(h.source, ann, h.categories, h.log)
	return contest.Run(ctx, channelID, window)
}

// fail reports a failed invocation: log once, then a single generic message.
// When results already went out, the notice follows them instead of
// overwriting the acknowledgment; otherwise it fills the acknowledgment, or
// falls back to a fresh reply when the acknowledgment itself never went out.
func (h *Handler) fail(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, ann announcer, acked bool, err error) {
	h.log.Error().Err(err).Msg("invocation failed")

	if ann.Replied() {
		if annErr := ann.Announce(ctx, domain.Announcement{Content: msgFailure}); annErr != nil {
			h.log.Error().Err(annErr).Msg("failure notice follow-up failed")
		}
		return
	}

	if acked {
		content := msgFailure
		_, editErr := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
			Content: &content,
		}, discordgo.WithContext(ctx))
		if editErr != nil {
			h.log.Error().Err(editErr).Msg("failure notice edit failed")
		}
		return
	}

	respErr := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: msgFailure},
	})
	if respErr != nil {
		h.log.Error().Err(respErr).Msg("failure notice reply failed")
	}
}
