// Package list implements a plain navigable list of string items. Grounded
// on the teacher's bubbles/list/list.go, trimmed to spec.md's narrower
// contract: pagination styling and in-widget filtering are out of scope
// here (filtering is its own widget, widgets/filter, per spec.md's
// component table).
package list

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	tuikit "github.com/nodewerx/tuikit"
)

// Model is the list's state.
type Model struct {
	Items  []string
	Cursor int

	Submitted bool
	Cancelled bool

	markerStyle   lipgloss.Style
	selectedStyle lipgloss.Style
}

// ShouldQuit implements tuikit.Quitter.
func (m Model) ShouldQuit() bool { return m.Submitted || m.Cancelled }

// New returns a list over items.
func New(items []string) Model {
	return Model{
		Items:         items,
		markerStyle:   lipgloss.NewStyle().Bold(true),
		selectedStyle: lipgloss.NewStyle().Bold(true),
	}
}

// Selected returns the item currently under the cursor, or "" if empty.
func (m Model) Selected() string {
	if m.Cursor < 0 || m.Cursor >= len(m.Items) {
		return ""
	}
	return m.Items[m.Cursor]
}

// Update implements spec.md's List contract: Up/Down/j/k navigate,
// Home/End jump, Enter submits the selected item, Esc cancels. Navigation
// at the extremes clamps rather than wraps or errors (spec §7).
func Update(m Model, msg tuikit.Msg) (Model, tuikit.Cmd) {
	key, ok := msg.(tuikit.KeyMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}
	switch {
	case key.Type == tuikit.KeyUp || (key.Type == tuikit.KeyRune && key.Rune == 'k'):
		if m.Cursor > 0 {
			m.Cursor--
		}
	case key.Type == tuikit.KeyDown || (key.Type == tuikit.KeyRune && key.Rune == 'j'):
		if m.Cursor < len(m.Items)-1 {
			m.Cursor++
		}
	case key.Type == tuikit.KeyHome:
		m.Cursor = 0
	case key.Type == tuikit.KeyEnd:
		m.Cursor = len(m.Items) - 1
	case key.Type == tuikit.KeyEnter:
		m.Submitted = true
	case key.Type == tuikit.KeyEscape || key.Type == tuikit.KeyCtrlC:
		m.Cancelled = true
	}
	return m, nil
}

// View renders each row, prefixing the selected row with a cursor marker.
func View(m Model) string {
	rows := lo.Map(m.Items, func(item string, i int) string {
		if i == m.Cursor {
			return m.markerStyle.Render("> ") + m.selectedStyle.Render(item)
		}
		return "  " + item
	})
	return strings.Join(rows, "\n")
}

// List is the fluent builder.
type List struct {
	model Model
}

// NewList starts building a list prompt.
func NewList(items []string) *List { return &List{model: New(items)} }

// Run starts the Elm loop and returns the selected index, or (0, false) on
// cancellation.
func (l *List) Run() (int, bool) {
	p := tuikit.NewProgram(
		func() (tuikit.Model, tuikit.Cmd) { return l.model, nil },
		func(m tuikit.Model, msg tuikit.Msg) (tuikit.Model, tuikit.Cmd) {
			return Update(m.(Model), msg)
		},
		func(m tuikit.Model) string { return View(m.(Model)) },
	)
	final, err := p.Run()
	if err != nil {
		return 0, false
	}
	fm := final.(Model)
	if fm.Cancelled || !fm.Submitted {
		return 0, false
	}
	return fm.Cursor, true
}
