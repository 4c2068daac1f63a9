// Package filter implements a fuzzy-searchable list prompt: typing mutates
// a query that's re-run against internal/fuzzy on every keystroke.
// Grounded on original_source/examples/filter_demo.cpp (placeholder,
// height-bounded results) and the teacher's bubbles/list/list.go filter
// mode.
package filter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	tuikit "github.com/nodewerx/tuikit"
	"github.com/nodewerx/tuikit/internal/fuzzy"
)

// Model is the filter widget's state.
type Model struct {
	Items       []string
	Placeholder string
	Height      int

	Query     string
	Cursor    int
	matches   []fuzzy.Item

	Submitted bool
	Cancelled bool

	queryStyle   lipgloss.Style
	matchStyle   lipgloss.Style
	cursorMarker lipgloss.Style
}

// ShouldQuit implements tuikit.Quitter.
func (m Model) ShouldQuit() bool { return m.Submitted || m.Cancelled }

// New returns a filter over items with the given visible-results height.
func New(items []string, height int) Model {
	m := Model{
		Items:        items,
		Height:       height,
		queryStyle:   lipgloss.NewStyle().Bold(true),
		matchStyle:   lipgloss.NewStyle().Underline(true),
		cursorMarker: lipgloss.NewStyle().Bold(true),
	}
	m.refilter()
	return m
}

func (m *Model) refilter() {
	m.matches = fuzzy.Filter(m.Query, m.Items, false)
	if m.Cursor >= len(m.matches) {
		m.Cursor = len(m.matches) - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

// Selected returns the currently highlighted item, or "" if nothing
// matches.
func (m Model) Selected() string {
	if m.Cursor < 0 || m.Cursor >= len(m.matches) {
		return ""
	}
	return m.Items[m.matches[m.Cursor].Index]
}

// Update implements spec.md's Filter contract: typing mutates the query
// and re-runs the fuzzy filter; Up/Down move through the filtered indices;
// Enter submits the current selection; Esc cancels.
func Update(m Model, msg tuikit.Msg) (Model, tuikit.Cmd) {
	key, ok := msg.(tuikit.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.Type {
	case tuikit.KeyUp:
		if m.Cursor > 0 {
			m.Cursor--
		}
	case tuikit.KeyDown:
		if m.Cursor < len(m.matches)-1 {
			m.Cursor++
		}
	case tuikit.KeyEnter:
		m.Submitted = true
	case tuikit.KeyEscape, tuikit.KeyCtrlC:
		m.Cancelled = true
	case tuikit.KeyBackspace:
		if len(m.Query) > 0 {
			r := []rune(m.Query)
			m.Query = string(r[:len(r)-1])
			m.refilter()
		}
	case tuikit.KeyRune, tuikit.KeySpace:
		m.Query += string(key.Rune)
		m.refilter()
	}
	return m, nil
}

// View renders the prompt, the query, and up to Height matched rows with
// the matched rune positions underlined.
func View(m Model) string {
	var b strings.Builder
	query := m.Query
	if query == "" && m.Placeholder != "" {
		b.WriteString("> " + lipgloss.NewStyle().Faint(true).Render(m.Placeholder))
	} else {
		b.WriteString("> " + m.queryStyle.Render(query))
	}

	height := m.Height
	if height <= 0 || height > len(m.matches) {
		height = len(m.matches)
	}
	for i := 0; i < height; i++ {
		b.WriteString("\n")
		item := m.Items[m.matches[i].Index]
		line := highlight(item, m.matches[i].Match.Positions, m.matchStyle)
		if i == m.Cursor {
			b.WriteString(m.cursorMarker.Render("> ") + line)
		} else {
			b.WriteString("  " + line)
		}
	}
	return b.String()
}

func highlight(s string, positions []int, style lipgloss.Style) string {
	if len(positions) == 0 {
		return s
	}
	pos := make(map[int]bool, len(positions))
	for _, p := range positions {
		pos[p] = true
	}
	var b strings.Builder
	for i, r := range []rune(s) {
		if pos[i] {
			b.WriteString(style.Render(string(r)))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Filter is the fluent builder.
type Filter struct {
	model Model
}

// NewFilter starts building a filter prompt.
func NewFilter(items []string) *Filter { return &Filter{model: New(items, 10)} }

func (f *Filter) Placeholder(p string) *Filter {
	f.model.Placeholder = p
	return f
}

func (f *Filter) Height(h int) *Filter {
	f.model.Height = h
	return f
}

// Run starts the Elm loop and returns the selected item, or ("", false) on
// cancellation.
func (f *Filter) Run() (string, bool) {
	p := tuikit.NewProgram(
		func() (tuikit.Model, tuikit.Cmd) { return f.model, nil },
		func(m tuikit.Model, msg tuikit.Msg) (tuikit.Model, tuikit.Cmd) {
			return Update(m.(Model), msg)
		},
		func(m tuikit.Model) string { return View(m.(Model)) },
	)
	final, err := p.Run()
	if err != nil {
		return "", false
	}
	fm := final.(Model)
	if fm.Cancelled || !fm.Submitted {
		return "", false
	}
	return fm.Selected(), true
}
