package service

import (
	"sort"

	"github.com/laplazadevs/memeoftheweekbot/internal/domain"
)

// TopReacted scores every message against the qualifying reaction set and
// returns up to k results ordered by descending count. Messages with no
// qualifying reactions are dropped. Equal counts rank the earlier message
// first, so reruns over the same week are deterministic. An empty set or an
// empty message slice yields an empty result.
func TopReacted(messages []*domain.Message, set domain.ReactionSet, k int) []domain.ScoredMessage {
	scored := make([]domain.ScoredMessage, 0, len(messages))
	for _, msg := range messages {
		if !msg.HasReactions() {
			continue
		}
		count := msg.QualifyingCount(set)
		if count <= 0 {
			continue
		}
		scored = append(scored, domain.ScoredMessage{Message: msg, Count: count})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Count != scored[j].Count {
			return scored[i].Count > scored[j].Count
		}
		return scored[i].Message.CreatedAt.Before(scored[j].Message.CreatedAt)
	})

	if len(scored) > k {
		scored = scored[:k]
	}
	return scored
}
