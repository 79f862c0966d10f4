// Package render draws view states as terminal text.
//
// Output is a pure function of the loader state and the presentation
// options: Loading and Error short-circuit before any payload is touched.
package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/studydash/internal/client/loader"
	"github.com/dmitrijs2005/studydash/internal/client/models"
	"github.com/dmitrijs2005/studydash/internal/client/present"
)

const (
	DefaultBarWidth = 30

	noWeeklyMessage = "No weekly progress data available."
	noTopicsMessage = "No topic mastery data available."
)

var (
	primary  = lipgloss.AdaptiveColor{Light: "#1565C0", Dark: "#64B5F6"}
	success  = lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: "#81C784"}
	danger   = lipgloss.AdaptiveColor{Light: "#C62828", Dark: "#E57373"}
	muted    = lipgloss.AdaptiveColor{Light: "#616161", Dark: "#9E9E9E"}
	trackCol = lipgloss.AdaptiveColor{Light: "#E0E0E0", Dark: "#424242"}
)

// Renderer holds the styles for one output. It has no other state.
type Renderer struct {
	barWidth int

	heading  lipgloss.Style
	section  lipgloss.Style
	text     lipgloss.Style
	subtle   lipgloss.Style
	errText  lipgloss.Style
	card     lipgloss.Style
	cardVal  lipgloss.Style
	fill     lipgloss.Style
	track    lipgloss.Style
	positive lipgloss.Style
	negative lipgloss.Style
}

// New builds a Renderer whose styles target r (see lipgloss.NewRenderer).
// barWidth is the number of cells a 100% bar occupies.
func New(r *lipgloss.Renderer, barWidth int) *Renderer {
	if barWidth <= 0 {
		barWidth = DefaultBarWidth
	}
	return &Renderer{
		barWidth: barWidth,
		heading:  r.NewStyle().Bold(true),
		section:  r.NewStyle().Bold(true).Foreground(primary),
		text:     r.NewStyle(),
		subtle:   r.NewStyle().Foreground(muted),
		errText:  r.NewStyle().Foreground(danger),
		card:     r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(muted).Padding(0, 1).Align(lipgloss.Center),
		cardVal:  r.NewStyle().Bold(true),
		fill:     r.NewStyle().Foreground(primary),
		track:    r.NewStyle().Foreground(trackCol),
		positive: r.NewStyle().Foreground(success),
		negative: r.NewStyle().Foreground(danger),
	}
}

// LoadingMessage is the busy text of a view.
func LoadingMessage(view string) string {
	return fmt.Sprintf("Loading %s...", view)
}

// ErrorMessage is the text of a view's Error state.
func ErrorMessage(message string) string {
	return "Error: " + message
}

// Bar draws a horizontal bar filled to pct percent of the bar width. Values
// outside [0,100] are drawn as empty or full.
func (r *Renderer) Bar(pct float64) string {
	if math.IsNaN(pct) {
		pct = 0
	}
	cells := int(math.Round(math.Max(0, math.Min(100, pct)) / 100 * float64(r.barWidth)))
	return r.fill.Render(strings.Repeat("█", cells)) + r.track.Render(strings.Repeat("░", r.barWidth-cells))
}

// Delta draws a topic's change indicator, or "" when there is none.
func (r *Renderer) Delta(d *present.Delta) string {
	if d == nil {
		return ""
	}
	style := r.positive
	if !d.Positive() {
		style = r.negative
	}
	return style.Render(d.Direction.Glyph() + " " + d.Magnitude)
}

// Dashboard renders the dashboard view for st.
func (r *Renderer) Dashboard(st loader.State[*models.DashboardStats], displayName string, opts present.Options) string {
	switch st.Phase {
	case loader.Loading:
		return r.text.Render(LoadingMessage("dashboard"))
	case loader.Error:
		return r.errText.Render(ErrorMessage(st.Message))
	}

	v := present.BuildDashboard(st.Payload, displayName, opts)

	var b strings.Builder
	b.WriteString(r.heading.Render(v.Greeting))
	b.WriteString("\n\n")
	b.WriteString(r.cards(v.Cards))
	b.WriteString("\n\n")
	b.WriteString(r.weekly(v.Weekly))
	b.WriteString("\n\n")
	b.WriteString(r.topics(v.Topics))
	return b.String()
}

func (r *Renderer) cards(cards []present.StatCard) string {
	boxes := make([]string, 0, len(cards))
	for _, c := range cards {
		boxes = append(boxes, r.card.Render(r.cardVal.Render(c.Value)+"\n"+r.subtle.Render(c.Title)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

func (r *Renderer) weekly(bars []present.WeeklyBar) string {
	var b strings.Builder
	b.WriteString(r.section.Render("Weekly Progress"))
	b.WriteString("\n")
	if len(bars) == 0 {
		b.WriteString(r.subtle.Render(noWeeklyMessage))
		return b.String()
	}
	for _, w := range bars {
		fmt.Fprintf(&b, "%-5s %s %6s  %s\n", w.Day, r.Bar(w.WidthPct), w.Hours,
			r.subtle.Render("Accuracy: "+w.Accuracy))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *Renderer) topics(bars []present.TopicBar) string {
	var b strings.Builder
	b.WriteString(r.section.Render("Topic Mastery"))
	b.WriteString("\n")
	if len(bars) == 0 {
		b.WriteString(r.subtle.Render(noTopicsMessage))
		return b.String()
	}
	for _, t := range bars {
		line := fmt.Sprintf("%-20s %s %5s", t.Topic, r.Bar(t.WidthPct), t.Percentage)
		if d := r.Delta(t.Delta); d != "" {
			line += "  " + d
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// Notes renders the note list view for st.
func (r *Renderer) Notes(st loader.State[[]models.NoteSummary]) string {
	switch st.Phase {
	case loader.Loading:
		return r.text.Render(LoadingMessage("notes"))
	case loader.Error:
		return r.errText.Render(ErrorMessage(st.Message))
	}

	if len(st.Payload) == 0 {
		return r.text.Render(present.EmptyNotesMessage)
	}

	var b strings.Builder
	b.WriteString(r.heading.Render("My Notes"))
	for _, n := range present.BuildNotes(st.Payload) {
		b.WriteString("\n\n")
		b.WriteString(r.section.Render(n.Filename))
		b.WriteString("\n")
		if n.Preview != "" {
			b.WriteString(n.Preview)
			b.WriteString("\n")
		}
		b.WriteString(r.subtle.Render("Topics: " + n.Topics))
		b.WriteString("\n")
		meta := "id " + n.ID
		if n.UploadDate != "" {
			meta += " · uploaded " + n.UploadDate
		}
		b.WriteString(r.subtle.Render(meta))
	}
	return b.String()
}
