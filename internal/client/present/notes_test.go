package present

import (
	"testing"

	"github.com/dmitrijs2005/studydash/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopics(t *testing.T) {
	assert.Equal(t, "Linear Algebra, Eigenvalues", Topics([]string{"Linear Algebra", "Eigenvalues"}))
	assert.Equal(t, "Solo", Topics([]string{"Solo"}))
	assert.Equal(t, NotAvailable, Topics([]string{}))
	assert.Equal(t, NotAvailable, Topics(nil))
}

func TestPreview_StripsMarkup(t *testing.T) {
	assert.Equal(t, "Hello world", Preview("<p>Hello <b>world</b></p>"))
	assert.Equal(t, "a & b < c", Preview("  a & b < c "))
	assert.Equal(t, "", Preview("<script>alert(1)</script>"))
}

func TestBuildNotes(t *testing.T) {
	cards := BuildNotes([]models.NoteSummary{
		{ID: "1", Filename: "a.pdf", PreviewText: "first", Topics: []string{"x", "y"}},
		{ID: "2", Filename: "b.png", PreviewText: "second", Topics: []string{}, UploadDate: "2026-10-01"},
	})

	require.Len(t, cards, 2)
	assert.Equal(t, NoteCard{ID: "1", Filename: "a.pdf", Preview: "first", Topics: "x, y"}, cards[0])
	assert.Equal(t, "N/A", cards[1].Topics)
	assert.Equal(t, "2026-10-01", cards[1].UploadDate)
}

func TestBuildNotes_Empty(t *testing.T) {
	cards := BuildNotes(nil)
	assert.NotNil(t, cards)
	assert.Empty(t, cards)
}
