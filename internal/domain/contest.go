package domain

// ReactionSet is an ordered set of reaction identifiers that qualify for one
// contest category. An identifier is either a unicode emoji or the id string
// of a platform-custom emoji; membership is exact string equality.
type ReactionSet struct {
	ids   []string
	index map[string]struct{}
}

// NewReactionSet builds a set from the given identifiers, preserving order
// and dropping empty strings and duplicates.
func NewReactionSet(ids ...string) ReactionSet {
	set := ReactionSet{index: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := set.index[id]; ok {
			continue
		}
		set.index[id] = struct{}{}
		set.ids = append(set.ids, id)
	}
	return set
}

// Contains reports whether id is a member of the set. The empty string never
// matches, so messages with custom emoji do not qualify against unicode-only
// sets by accident.
func (s ReactionSet) Contains(id string) bool {
	if id == "" {
		return false
	}
	_, ok := s.index[id]
	return ok
}

// Identifiers returns a copy of the member identifiers in insertion order.
func (s ReactionSet) Identifiers() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// Len returns the number of members.
func (s ReactionSet) Len() int {
	return len(s.ids)
}

// ScoredMessage pairs a message with its qualifying-reaction count. It is
// derived and recomputed on every invocation.
type ScoredMessage struct {
	Message *Message
	Count   int
}

// Announcement is a formatted contest result ready to be posted.
type Announcement struct {
	Content   string
	MediaURLs []string
}
