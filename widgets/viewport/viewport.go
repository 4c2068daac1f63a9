// Package viewport implements a scrollable window over a block of text.
// Grounded on the teacher's root viewport/viewport.go, generalized per
// original_source/examples/viewport_demo.cpp's direct ScrollPercent/AtTop/
// AtBottom query API (the teacher exposes the same information but only
// for its own internal rendering, not as a public query surface).
package viewport

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"

	tuikit "github.com/nodewerx/tuikit"
	"github.com/nodewerx/tuikit/internal/runeutil"
)

// Model is the viewport's state.
type Model struct {
	Width  int
	Height int
	Wrap   bool

	Cancelled bool

	offset  int
	lines   []string
	content string
}

// ShouldQuit implements tuikit.Quitter.
func (m Model) ShouldQuit() bool { return m.Cancelled }

// New returns a viewport of the given size.
func New(width, height int) Model {
	return Model{Width: width, Height: height}
}

// SetContent replaces the viewport's text, resetting scroll position.
func (m *Model) SetContent(s string) {
	m.content = strings.ReplaceAll(s, "\r\n", "\n")
	m.reflow()
	m.offset = 0
}

// reflow recomputes m.lines from m.content, re-wrapping if Wrap is set.
// Separate from SetContent so the fluent builder can toggle Wrap after
// content has already been loaded.
func (m *Model) reflow() {
	s := m.content
	if m.Wrap && m.Width > 0 {
		s = wordwrap.String(s, m.Width)
	}
	m.lines = strings.Split(s, "\n")
}

func (m *Model) clampOffset() {
	max := len(m.lines) - m.Height
	if max < 0 {
		max = 0
	}
	if m.offset > max {
		m.offset = max
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// ScrollDown moves the window down by n lines.
func (m *Model) ScrollDown(n int) {
	m.offset += n
	m.clampOffset()
}

// ScrollUp moves the window up by n lines.
func (m *Model) ScrollUp(n int) {
	m.offset -= n
	m.clampOffset()
}

// HalfPageDown scrolls down by half the viewport's height.
func (m *Model) HalfPageDown() { m.ScrollDown(m.Height / 2) }

// HalfPageUp scrolls up by half the viewport's height.
func (m *Model) HalfPageUp() { m.ScrollUp(m.Height / 2) }

// PageDown scrolls down by a full viewport height.
func (m *Model) PageDown() { m.ScrollDown(m.Height) }

// GotoTop scrolls to the first line.
func (m *Model) GotoTop() { m.offset = 0 }

// GotoBottom scrolls to the last full page.
func (m *Model) GotoBottom() {
	m.offset = len(m.lines) - m.Height
	m.clampOffset()
}

// AtTop reports whether the viewport is scrolled to the first line.
func (m Model) AtTop() bool { return m.offset <= 0 }

// AtBottom reports whether the viewport shows the last line.
func (m Model) AtBottom() bool {
	return m.offset >= len(m.lines)-m.Height
}

// ScrollPercent returns the scroll position as a percentage in [0, 100].
// A viewport tall enough to show all content reports 100.
func (m Model) ScrollPercent() float64 {
	max := len(m.lines) - m.Height
	if max <= 0 {
		return 100
	}
	return float64(m.offset) / float64(max) * 100
}

// View renders the visible window over the content.
func (m Model) View() string {
	end := m.offset + m.Height
	if end > len(m.lines) {
		end = len(m.lines)
	}
	start := m.offset
	if start > end {
		start = end
	}
	visible := m.lines[start:end]
	if m.Width > 0 {
		// Copy before truncating: visible aliases m.lines' backing array,
		// and View must not mutate stored content.
		truncated := make([]string, len(visible))
		for i, l := range visible {
			truncated[i] = runeutil.Truncate(l, m.Width, "")
		}
		visible = truncated
	}
	return strings.Join(visible, "\n")
}

// Update implements spec.md's Viewport contract: j/k scroll, d/u half-page,
// Space page-down, g/G top/bottom. Ctrl-C cancels, per the runtime's
// universal cancellation convention (spec §4.5) rather than a contract entry
// of its own; Pager layers q/Esc to quit on top of this same contract
// instead of re-implementing it.
func Update(m Model, msg tuikit.Msg) (Model, tuikit.Cmd) {
	key, ok := msg.(tuikit.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Type == tuikit.KeyCtrlC:
		m.Cancelled = true
	case key.Type == tuikit.KeyDown || (key.Type == tuikit.KeyRune && key.Rune == 'j'):
		m.ScrollDown(1)
	case key.Type == tuikit.KeyUp || (key.Type == tuikit.KeyRune && key.Rune == 'k'):
		m.ScrollUp(1)
	case key.Type == tuikit.KeyRune && key.Rune == 'd':
		m.HalfPageDown()
	case key.Type == tuikit.KeyRune && key.Rune == 'u':
		m.HalfPageUp()
	case key.Type == tuikit.KeySpace:
		m.PageDown()
	case key.Type == tuikit.KeyRune && key.Rune == 'g':
		m.GotoTop()
	case key.Type == tuikit.KeyRune && key.Rune == 'G':
		m.GotoBottom()
	}
	return m, nil
}

// View is the widget-kit-style wrapper around Model.View, for callers that
// hold a tuikit.Model rather than a concrete viewport.Model.
func View(m Model) string { return m.View() }

// Viewport is the fluent builder.
type Viewport struct {
	model Model
}

// NewViewport starts building a viewport over content, sized width x height.
func NewViewport(content string, width, height int) *Viewport {
	m := New(width, height)
	m.SetContent(content)
	return &Viewport{model: m}
}

// Wrap turns word-wrapping at Width on or off, re-flowing already-loaded
// content.
func (v *Viewport) Wrap(on bool) *Viewport {
	v.model.Wrap = on
	v.model.reflow()
	v.model.clampOffset()
	return v
}

// Run starts the Elm loop and returns false if the user cancelled with
// Ctrl-C (or raw mode could not be acquired at all, per spec §7's failure
// semantics). Update has no other key that ends the loop, so Run returns
// true only when the input stream closes.
func (v *Viewport) Run() bool {
	p := tuikit.NewProgram(
		func() (tuikit.Model, tuikit.Cmd) { return v.model, nil },
		func(m tuikit.Model, msg tuikit.Msg) (tuikit.Model, tuikit.Cmd) {
			return Update(m.(Model), msg)
		},
		func(m tuikit.Model) string { return View(m.(Model)) },
	)
	final, err := p.Run()
	if err != nil {
		return false
	}
	return !final.(Model).Cancelled
}
