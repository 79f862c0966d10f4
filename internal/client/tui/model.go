// Package tui is the full-screen Bubble Tea front end: one tab per view,
// each backed by its own loader.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/studydash/internal/client/loader"
	"github.com/dmitrijs2005/studydash/internal/client/models"
	"github.com/dmitrijs2005/studydash/internal/client/present"
	"github.com/dmitrijs2005/studydash/internal/client/render"
)

type tab int

const (
	dashboardTab tab = iota
	notesTab
	tabCount
)

func (t tab) title() string {
	if t == notesTab {
		return "My Notes"
	}
	return "Dashboard"
}

// loadedMsg tells the model that an activation of view settled. The loader
// already holds the committed state; a superseded activation arrives with
// committed=false and changes nothing.
type loadedMsg struct {
	view       tab
	generation uint64
	committed  bool
}

// Deps is what the model needs from the application.
type Deps struct {
	Dashboard   *loader.Loader[*models.DashboardStats]
	Notes       *loader.Loader[[]models.NoteSummary]
	Renderer    *render.Renderer
	DisplayName string
	Options     present.Options
}

// Model is the tea.Model of the TUI.
type Model struct {
	ctx  context.Context
	deps Deps
	keys keyMap

	active  tab
	spinner spinner.Model

	tabOn  lipgloss.Style
	tabOff lipgloss.Style
	help   lipgloss.Style

	quitting bool
}

// New builds a model whose loads run under ctx.
func New(ctx context.Context, deps Deps) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot

	return Model{
		ctx:     ctx,
		deps:    deps,
		keys:    defaultKeyMap(),
		spinner: s,
		tabOn:   lipgloss.NewStyle().Bold(true).Underline(true).Padding(0, 1),
		tabOff:  lipgloss.NewStyle().Faint(true).Padding(0, 1),
		help:    lipgloss.NewStyle().Faint(true),
	}
}

// Run starts the program on the alternate screen and blocks until the user
// quits. Both loaders are closed on return.
func Run(ctx context.Context, deps Deps, opts ...tea.ProgramOption) error {
	defer deps.Dashboard.Close()
	defer deps.Notes.Close()

	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	if _, err := tea.NewProgram(New(ctx, deps), opts...).Run(); err != nil {
		return fmt.Errorf("failed to run tui: %w", err)
	}
	return nil
}

func (m Model) Init() tea.Cmd {
	dash := m.activate(dashboardTab)
	notes := m.activate(notesTab)
	return tea.Batch(m.spinner.Tick, dash, notes)
}

// activate begins a new activation of view synchronously, so the loader is
// in Loading before the next frame, and returns the command that settles it.
func (m Model) activate(view tab) tea.Cmd {
	switch view {
	case dashboardTab:
		a := m.deps.Dashboard.Begin(m.ctx)
		return func() tea.Msg {
			_, ok := m.deps.Dashboard.Run(a)
			return loadedMsg{view: view, generation: a.Generation, committed: ok}
		}
	case notesTab:
		a := m.deps.Notes.Begin(m.ctx)
		return func() tea.Msg {
			_, ok := m.deps.Notes.Run(a)
			return loadedMsg{view: view, generation: a.Generation, committed: ok}
		}
	}
	return nil
}

func (m Model) loading(view tab) bool {
	if view == notesTab {
		return m.deps.Notes.State().IsLoading()
	}
	return m.deps.Dashboard.State().IsLoading()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			m.deps.Dashboard.Close()
			m.deps.Notes.Close()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.active = (m.active + 1) % tabCount
		case key.Matches(msg, m.keys.Prev):
			m.active = (m.active + tabCount - 1) % tabCount
		case key.Matches(msg, m.keys.Refresh):
			cmd := m.activate(m.active)
			return m, tea.Batch(m.spinner.Tick, cmd)
		}
		return m, nil

	case loadedMsg:
		// Rendering reads the loader, so a committed result only needs a redraw.
		return m, nil

	case spinner.TickMsg:
		if !m.loading(dashboardTab) && !m.loading(notesTab) {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	tabs := make([]string, 0, tabCount)
	for t := tab(0); t < tabCount; t++ {
		style := m.tabOff
		if t == m.active {
			style = m.tabOn
		}
		tabs = append(tabs, style.Render(t.title()))
	}

	var body string
	switch m.active {
	case dashboardTab:
		body = m.deps.Renderer.Dashboard(m.deps.Dashboard.State(), m.deps.DisplayName, m.deps.Options)
	case notesTab:
		body = m.deps.Renderer.Notes(m.deps.Notes.State())
	}
	if m.loading(m.active) {
		body = m.spinner.View() + " " + body
	}

	helps := make([]string, 0, len(m.keys.help()))
	for _, b := range m.keys.help() {
		helps = append(helps, b.Help().Key+" "+b.Help().Desc)
	}

	return strings.Join([]string{
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
		"",
		body,
		"",
		m.help.Render(strings.Join(helps, " • ")),
	}, "\n")
}
