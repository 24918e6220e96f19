package service

import (
	"context"

	"github.com/laplazadevs/memeoftheweekbot/internal/domain"
)

// maxPageSize is the largest page the platform serves per history request.
const maxPageSize = 100

// Collector walks a reverse-chronological paged feed and keeps the messages
// whose creation time falls inside a window.
type Collector struct {
	source   domain.MessageSource
	pageSize int
}

// NewCollector creates a Collector reading from the given source.
func NewCollector(source domain.MessageSource) *Collector {
	return &Collector{
		source:   source,
		pageSize: maxPageSize,
	}
}

// Collect returns the channel's messages with CreatedAt inside the window,
// newest first. It pages backward in time using the oldest message of each
// page as the next exclusive cursor, and stops as soon as the feed is
// exhausted or a page's oldest message predates the window. Bot-authored
// messages are skipped so the bot's own announcements never compete.
// Retrieval errors propagate unchanged; there are no retries.
func (c *Collector) Collect(ctx context.Context, channelID string, window domain.TimeWindow) ([]*domain.Message, error) {
	// A window that spans no time matches nothing; an invocation exactly at
	// the weekly anchor produces one. Skip the feed walk entirely.
	if !window.IsValid() {
		return nil, nil
	}

	var collected []*domain.Message

	beforeID := ""
	for {
		page, err := c.source.FetchPage(ctx, channelID, c.pageSize, beforeID)
		if err != nil {
			return nil, err
		}
		if len(page) == 0 {
			return collected, nil
		}

		for _, msg := range page {
			if msg.IsBot {
				continue
			}
			if window.Contains(msg.CreatedAt) {
				collected = append(collected, msg)
			}
		}

		// The feed is strictly reverse-chronological: once the oldest message
		// of a page predates the window, no older page can qualify.
		oldest := page[len(page)-1]
		if oldest.CreatedAt.Before(window.Start) {
			return collected, nil
		}
		beforeID = oldest.ID
	}
}
