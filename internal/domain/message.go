package domain

import "time"

// Attachment is a media reference carried by a message.
type Attachment struct {
	URL      string
	Filename string
}

// Reaction represents one reaction type on a message. Name holds the unicode
// emoji; ID is set only for platform-custom emoji.
type Reaction struct {
	Name  string
	ID    string
	Count int
}

// Message represents a channel message as read from the platform. The contest
// only ever reads messages, it never mutates them.
type Message struct {
	ID          string
	ChannelID   string
	GuildID     string
	AuthorID    string
	Content     string
	URL         string
	CreatedAt   time.Time
	Attachments []Attachment
	Reactions   []Reaction
	IsBot       bool
}

// HasReactions reports whether the message has any reactions at all.
func (m *Message) HasReactions() bool {
	return len(m.Reactions) > 0
}

// QualifyingCount sums the counts of the reactions whose name or id belongs
// to the given set. Each reaction type is visited once, so a reaction that
// matched by name is never counted again by id.
func (m *Message) QualifyingCount(set ReactionSet) int {
	total := 0
	for _, r := range m.Reactions {
		if set.Contains(r.Name) || set.Contains(r.ID) {
			total += r.Count
		}
	}
	return total
}

// FirstAttachmentURL returns the URL of the first attachment, or an empty
// string when the message carries no media.
func (m *Message) FirstAttachmentURL() string {
	if len(m.Attachments) == 0 {
		return ""
	}
	return m.Attachments[0].URL
}
