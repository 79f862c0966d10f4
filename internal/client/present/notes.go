package present

import (
	"html"
	"strings"

	"github.com/dmitrijs2005/studydash/internal/client/models"
	"github.com/microcosm-cc/bluemonday"
)

// EmptyNotesMessage is shown when the note list is loaded but empty.
const EmptyNotesMessage = "No notes uploaded yet. Upload your first note!"

var previewPolicy = bluemonday.StrictPolicy()

// NoteCard is one note tile.
type NoteCard struct {
	ID         string
	Filename   string
	Preview    string
	Topics     string
	UploadDate string
}

// BuildNotes maps note summaries to cards, keeping the backend's order.
func BuildNotes(notes []models.NoteSummary) []NoteCard {
	cards := make([]NoteCard, 0, len(notes))
	for _, n := range notes {
		cards = append(cards, NoteCard{
			ID:         n.ID,
			Filename:   n.Filename,
			Preview:    Preview(n.PreviewText),
			Topics:     Topics(n.Topics),
			UploadDate: n.UploadDate,
		})
	}
	return cards
}

// Topics joins topics with ", ", or returns N/A for an empty list.
func Topics(topics []string) string {
	if len(topics) == 0 {
		return NotAvailable
	}
	return strings.Join(topics, ", ")
}

// Preview strips markup from OCR'd preview text. The sanitizer escapes
// entities for HTML output; they are unescaped again for the terminal.
func Preview(text string) string {
	return strings.TrimSpace(html.UnescapeString(previewPolicy.Sanitize(text)))
}
