// Package pager implements a full-screen, alt-screen content viewer built
// on widgets/viewport. Grounded on the teacher's root pager/pager.go
// generalized with the same scroll vocabulary viewport.go exposes.
package pager

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	tuikit "github.com/nodewerx/tuikit"
	"github.com/nodewerx/tuikit/widgets/viewport"
)

// Model is the pager's state.
type Model struct {
	Content         string
	Width, Height   int
	ShowLineNumbers bool

	vp        viewport.Model
	Cancelled bool

	statusStyle lipgloss.Style
}

// ShouldQuit implements tuikit.Quitter.
func (m Model) ShouldQuit() bool { return m.Cancelled }

// New returns a pager over content, sized width x height.
func New(content string, width, height int) Model {
	vp := viewport.New(width, height-1) // reserve one row for the status line
	vp.SetContent(content)
	return Model{
		Content:     content,
		Width:       width,
		Height:      height,
		vp:          vp,
		statusStyle: lipgloss.NewStyle().Faint(true),
	}
}

// Update implements spec.md's Pager contract: the same keys as Viewport
// (j/k scroll, d/u half-page, Space page-down, g/G top/bottom, Ctrl-C
// cancel) plus q/Esc to quit. The shared keys are delegated to
// viewport.Update rather than re-implemented here.
func Update(m Model, msg tuikit.Msg) (Model, tuikit.Cmd) {
	key, ok := msg.(tuikit.KeyMsg)
	if ok && (key.Type == tuikit.KeyEscape || (key.Type == tuikit.KeyRune && key.Rune == 'q')) {
		m.Cancelled = true
		return m, nil
	}

	vp, cmd := viewport.Update(m.vp, msg)
	m.vp = vp
	if vp.Cancelled {
		m.Cancelled = true
	}
	return m, cmd
}

// View renders the viewport followed by a status line reporting scroll
// position.
func View(m Model) string {
	body := m.vp.View()
	if m.ShowLineNumbers {
		lines := strings.Split(body, "\n")
		for i, l := range lines {
			lines[i] = strconv.Itoa(i+1) + " " + l
		}
		body = strings.Join(lines, "\n")
	}
	status := fmt.Sprintf("%3.0f%%", m.vp.ScrollPercent())
	return body + "\n" + m.statusStyle.Render(status)
}

// Pager is the fluent builder.
type Pager struct {
	model Model
}

// NewPager starts building a pager over content, sized width x height.
func NewPager(content string, width, height int) *Pager {
	return &Pager{model: New(content, width, height)}
}

func (p *Pager) LineNumbers(on bool) *Pager {
	p.model.ShowLineNumbers = on
	return p
}

// Run starts the Elm loop in the alternate screen and returns once the
// user quits.
func (p *Pager) Run() {
	prog := tuikit.NewProgram(
		func() (tuikit.Model, tuikit.Cmd) { return p.model, nil },
		func(m tuikit.Model, msg tuikit.Msg) (tuikit.Model, tuikit.Cmd) {
			return Update(m.(Model), msg)
		},
		func(m tuikit.Model) string { return View(m.(Model)) },
		tuikit.WithAltScreen(),
	)
	_, _ = prog.Run()
}
