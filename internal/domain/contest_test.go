package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewReactionSet(t *testing.T) {
	tests := []struct {
		name     string
		ids      []string
		expected []string
	}{
		{
			name:     "keeps insertion order",
			ids:      []string{"🤣", "😂", "927364"},
			expected: []string{"🤣", "😂", "927364"},
		},
		{
			name:     "drops duplicates",
			ids:      []string{"🤣", "🤣", "😂"},
			expected: []string{"🤣", "😂"},
		},
		{
			name:     "drops empty identifiers",
			ids:      []string{"", "🤣", ""},
			expected: []string{"🤣"},
		},
		{
			name:     "empty set",
			ids:      nil,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := NewReactionSet(tt.ids...)
			assert.Equal(t, tt.expected, set.Identifiers())
			assert.Equal(t, len(tt.expected), set.Len())
		})
	}
}

func TestReactionSet_Contains(t *testing.T) {
	set := NewReactionSet("🤣", "927364")

	assert.True(t, set.Contains("🤣"))
	assert.True(t, set.Contains("927364"))
	assert.False(t, set.Contains("😂"))
	assert.False(t, set.Contains(""), "empty identifier must never match")
}

func TestReactionSet_IdentifiersIsACopy(t *testing.T) {
	set := NewReactionSet("🤣", "😂")

	ids := set.Identifiers()
	ids[0] = "🔥"

	assert.Equal(t, []string{"🤣", "😂"}, set.Identifiers())
}
