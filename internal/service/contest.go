package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/laplazadevs/memeoftheweekbot/internal/domain"
)

// Category pairs a display title with the reaction set that qualifies for it.
type Category struct {
	Title string
	Set   domain.ReactionSet
}

// Contest tallies one contest invocation: collect the window's messages once,
// then rank and announce each category over the same collected set.
type Contest struct {
	collector  *Collector
	announcer  domain.Announcer
	categories []Category
	log        zerolog.Logger
}

// NewContest wires a contest run over the given source and announcer.
func NewContest(source domain.MessageSource, announcer domain.Announcer, categories []Category, log zerolog.Logger) *Contest {
	return &Contest{
		collector:  NewCollector(source),
		announcer:  announcer,
		categories: categories,
		log:        log,
	}
}

// Run executes the full flow for one invocation. An empty window is not an
// error: the invoker gets an informational notice and the run succeeds. A
// failed announcement for one category is logged and does not block the next;
// the accumulated failures are still returned so the invoker hears about them.
func (c *Contest) Run(ctx context.Context, channelID string, window domain.TimeWindow) error {
	messages, err := c.collector.Collect(ctx, channelID, window)
	if err != nil {
		return fmt.Errorf("collect messages: %w", err)
	}

	c.log.Info().
		Time("window_start", window.Start).
		Time("window_end", window.End).
		Int("messages", len(messages)).
		Msg("window collected")

	if len(messages) == 0 {
		return c.announcer.Announce(ctx, domain.Announcement{
			Content: "No hubo mensajes en el canal esta semana, así que no hay concurso. 🤷",
		})
	}

	var failures []error
	for _, cat := range c.categories {
		winners := TopReacted(messages, cat.Set, maxWinners)
		c.log.Info().Str("category", cat.Title).Int("winners", len(winners)).Msg("category ranked")

		if err := c.announcer.Announce(ctx, FormatAnnouncement(cat.Title, winners)); err != nil {
			c.log.Error().Err(err).Str("category", cat.Title).Msg("announcement failed")
			failures = append(failures, fmt.Errorf("announce %q: %w", cat.Title, err))
		}
	}
	return errors.Join(failures...)
}
