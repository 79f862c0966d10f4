package present

import (
	"math"

	"github.com/dmitrijs2005/studydash/internal/client/models"
)

// Options holds per-field presentation switches.
//
// Study time and average accuracy treat zero as "not yet measured" and show
// N/A, while the integer counters show a real 0. The two switches let a zero
// hour or zero percent count as a measurement instead.
type Options struct {
	ZeroStudyTimeIsMeasured bool
	ZeroAccuracyIsMeasured  bool
}

// StatCard is one summary tile.
type StatCard struct {
	Title string
	Value string
}

// WeeklyBar is one day of the weekly progress chart. WidthPct is in [0,100]
// relative to the busiest day of the series; Width is its "<n>%" form.
type WeeklyBar struct {
	Day      string
	Hours    string
	Accuracy string
	WidthPct float64
	Width    string
}

// Direction of a delta indicator.
type Direction int

const (
	Up Direction = iota
	Down
)

// Glyph returns the arrow drawn for d.
func (d Direction) Glyph() string {
	if d == Down {
		return "▼"
	}
	return "▲"
}

// Delta is the signed change of a topic. Magnitude is |change| as "<n>%".
type Delta struct {
	Direction Direction
	Magnitude string
}

// Positive reports whether the delta is styled as an improvement.
func (d Delta) Positive() bool { return d.Direction == Up }

// TopicBar is one row of the topic mastery chart. Delta is nil when the
// backend sent no change value.
type TopicBar struct {
	Topic      string
	Percentage string
	WidthPct   float64
	Width      string
	Delta      *Delta
}

// DashboardView is everything the dashboard renderer needs.
type DashboardView struct {
	Greeting string
	Cards    []StatCard
	Weekly   []WeeklyBar
	Topics   []TopicBar
}

// Greeting returns the dashboard headline for displayName, verbatim.
func Greeting(displayName string) string {
	return "Hello, " + displayName + "! Here's your Study Analytics."
}

// BuildDashboard computes the dashboard view. A nil stats yields N/A cards
// and empty charts.
func BuildDashboard(stats *models.DashboardStats, displayName string, opts Options) DashboardView {
	if stats == nil {
		stats = &models.DashboardStats{}
	}
	return DashboardView{
		Greeting: Greeting(displayName),
		Cards:    Cards(stats, opts),
		Weekly:   WeeklyBars(stats.WeeklyProgress),
		Topics:   TopicBars(stats.TopicMastery),
	}
}

// Cards returns the five summary tiles in display order.
func Cards(stats *models.DashboardStats, opts Options) []StatCard {
	return []StatCard{
		{Title: "Study Time", Value: truthy(stats.StudyTimeHours, "h", opts.ZeroStudyTimeIsMeasured)},
		{Title: "Avg Score", Value: truthy(stats.AverageAccuracy, "%", opts.ZeroAccuracyIsMeasured)},
		{Title: "Day Streak", Value: defined(stats.DaysStreak)},
		{Title: "Notes Added", Value: defined(stats.NotesUploaded)},
		{Title: "Quizzes Done", Value: defined(stats.QuizzesSolved)},
	}
}

// WeeklyBars scales each day against the maximum time_h of series. A series
// whose maximum is zero (or negative) draws every bar at 0%.
func WeeklyBars(series []models.WeeklyProgress) []WeeklyBar {
	if len(series) == 0 {
		return nil
	}

	peak := math.Inf(-1)
	for _, p := range series {
		peak = math.Max(peak, p.TimeH)
	}

	bars := make([]WeeklyBar, 0, len(series))
	for _, p := range series {
		w := 0.0
		if peak > 0 {
			w = p.TimeH / peak * 100
		}
		if math.IsNaN(w) || math.IsInf(w, 0) {
			w = 0
		}
		bars = append(bars, WeeklyBar{
			Day:      p.Day,
			Hours:    formatNumber(p.TimeH) + "h",
			Accuracy: percent(p.Accuracy),
			WidthPct: w,
			Width:    percent(w),
		})
	}
	return bars
}

// TopicBars maps mastery rows to bars. The width is the percentage itself;
// values are trusted to be in [0,100].
func TopicBars(rows []models.TopicMastery) []TopicBar {
	if len(rows) == 0 {
		return nil
	}
	bars := make([]TopicBar, 0, len(rows))
	for _, r := range rows {
		bars = append(bars, TopicBar{
			Topic:      r.Topic,
			Percentage: percent(r.Percentage),
			WidthPct:   r.Percentage,
			Width:      percent(r.Percentage),
			Delta:      NewDelta(r.Change),
		})
	}
	return bars
}

// NewDelta returns nil for an absent change, otherwise Up for change >= 0
// and Down for change < 0.
func NewDelta(change *float64) *Delta {
	if change == nil {
		return nil
	}
	d := &Delta{Direction: Up, Magnitude: percent(math.Abs(*change))}
	if *change < 0 {
		d.Direction = Down
	}
	return d
}
