// Package cursor is a small blinking-cursor sub-model embedded by
// textinput and textarea. Grounded on the teacher's textinput.go Cursor
// field usage (a nested Model whose blink state textinput/textarea defer
// to) generalized from the teacher's 10-line root cursor.go stub.
package cursor

import (
	"time"

	tuikit "github.com/nodewerx/tuikit"
)

// BlinkMsg identifies a blink by cursor ID. The blink cycle itself runs on
// tuikit.TickMsg (see blinkCmd and Update); nothing in this package
// produces or handles BlinkMsg.
type BlinkMsg struct{ ID int }

// Model tracks whether the cursor is currently visible and focused. A
// Model that isn't Focused never renders, regardless of blink phase.
type Model struct {
	Focused bool
	visible bool
	id      int
	rate    time.Duration
}

// New returns an unfocused cursor with the default 530ms blink rate.
func New() Model {
	return Model{rate: 530 * time.Millisecond}
}

// Focus marks the cursor focused and immediately visible, returning the
// command that starts the blink cycle.
func (m *Model) Focus() tuikit.Cmd {
	m.Focused = true
	m.visible = true
	m.id++
	return m.blinkCmd()
}

// Blur marks the cursor unfocused; it stops rendering.
func (m *Model) Blur() {
	m.Focused = false
	m.visible = false
}

func (m *Model) blinkCmd() tuikit.Cmd {
	id := m.id
	return tuikit.Tick(m.rate, id)
}

// Update handles the blink tick, toggling visibility and rescheduling
// itself. Any TickMsg with a stale ID (from a cursor reset since the tick
// was scheduled) is ignored.
func (m Model) Update(msg tuikit.Msg) (Model, tuikit.Cmd) {
	tick, ok := msg.(tuikit.TickMsg)
	if !ok || !m.Focused || tick.ID != m.id {
		return m, nil
	}
	m.visible = !m.visible
	return m, m.blinkCmd()
}

// Visible reports whether the cursor should currently be drawn.
func (m Model) Visible() bool { return m.Focused && m.visible }
