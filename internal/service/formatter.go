package service

import (
	"fmt"
	"strings"

	"github.com/laplazadevs/memeoftheweekbot/internal/domain"
)

// maxWinners is how many messages each category announces.
const maxWinners = 3

// FormatAnnouncement builds the announcement for one contest category. Zero
// winners produce a "no winners" notice instead of an error. Each winner gets
// an ordinal line with mention, count and a link to the original message; the
// first attachment of each winner is carried along as media.
func FormatAnnouncement(title string, winners []domain.ScoredMessage) domain.Announcement {
	if len(winners) == 0 {
		return domain.Announcement{
			Content: fmt.Sprintf("**%s**\nEsta semana no hubo ganadores. ¡Reaccionen más la próxima! 😢", title),
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**%s**\n", title)

	var media []string
	for i, w := range winners {
		fmt.Fprintf(&b, "#%d — <@%s> con %d %s: %s\n",
			i+1, w.Message.AuthorID, w.Count, pluralReactions(w.Count), w.Message.URL)
		if url := w.Message.FirstAttachmentURL(); url != "" {
			media = append(media, url)
		}
	}

	return domain.Announcement{
		Content:   strings.TrimSuffix(b.String(), "\n"),
		MediaURLs: media,
	}
}

func pluralReactions(n int) string {
	if n == 1 {
		return "reacción"
	}
	return "reacciones"
}
