package domain

import (
	"context"
	"errors"
)

// ErrChannelNotFound reports a channel id that the platform cannot resolve.
var ErrChannelNotFound = errors.New("channel not found")

// MessageSource provides reverse-chronological paged retrieval of channel
// messages, newest first. A non-empty beforeID bounds the page to messages
// strictly older than that id.
type MessageSource interface {
	FetchPage(ctx context.Context, channelID string, limit int, beforeID string) ([]*Message, error)
}

// ChannelResolver checks that a channel id refers to a reachable channel.
type ChannelResolver interface {
	Resolve(ctx context.Context, channelID string) error
}

// Announcer posts contest results back to the invoker.
type Announcer interface {
	Announce(ctx context.Context, a Announcement) error
}
