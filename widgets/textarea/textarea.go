// Package textarea implements a multi-line editable text field. Grounded
// on the teacher's bubbles/textarea/textarea.go for the editing model
// (line-oriented buffer, cursor row/col, viewport scrolling) generalized
// to this module's Key/Cmd types; word wrap at render time uses
// github.com/muesli/reflow/wordwrap, the same library the teacher reaches
// for in its own soft-wrap helpers.
package textarea

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	tuikit "github.com/nodewerx/tuikit"
	"github.com/nodewerx/tuikit/widgets/cursor"
)

// Model is the text area's state.
type Model struct {
	Placeholder string
	CharLimit   int
	Width       int
	Height      int
	ShowLineNumbers bool
	Cursor      cursor.Model

	Submitted bool
	Cancelled bool

	lines  []string
	row    int
	col    int
	scroll int
}

// ShouldQuit implements tuikit.Quitter.
func (m Model) ShouldQuit() bool { return m.Submitted || m.Cancelled }

// New returns a textarea with one empty line and default settings.
func New() Model {
	return Model{
		Width:  80,
		Height: 6,
		Cursor: cursor.New(),
		lines:  []string{""},
	}
}

// Value returns the full text, lines joined by newline.
func (m Model) Value() string { return strings.Join(m.lines, "\n") }

// SetValue replaces the text.
func (m *Model) SetValue(s string) {
	m.lines = strings.Split(s, "\n")
	if len(m.lines) == 0 {
		m.lines = []string{""}
	}
	m.row = clamp(m.row, 0, len(m.lines)-1)
	m.col = clamp(m.col, 0, len([]rune(m.lines[m.row])))
}

// Focus focuses the textarea and starts the cursor blink.
func (m *Model) Focus() tuikit.Cmd { return m.Cursor.Focus() }

// Blur unfocuses the textarea.
func (m *Model) Blur() { m.Cursor.Blur() }

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (m Model) totalRunes() int {
	n := 0
	for _, l := range m.lines {
		n += len([]rune(l))
	}
	return n
}

// Update implements spec.md's TextArea contract: as TextInput plus Enter
// for newline, submit on Ctrl-D, and scrolling the viewport to keep the
// cursor visible. Unlike TextInput it has no clipboard paste binding and no
// password echo mode.
func Update(m Model, msg tuikit.Msg) (Model, tuikit.Cmd) {
	key, ok := msg.(tuikit.KeyMsg)
	if !ok {
		var cmd tuikit.Cmd
		m.Cursor, cmd = m.Cursor.Update(msg)
		return m, cmd
	}

	switch key.Type {
	case tuikit.KeyCtrlD:
		m.Submitted = true
	case tuikit.KeyEscape, tuikit.KeyCtrlC:
		m.Cancelled = true
	case tuikit.KeyEnter:
		if m.CharLimit <= 0 || m.totalRunes() < m.CharLimit {
			line := []rune(m.lines[m.row])
			before, after := string(line[:m.col]), string(line[m.col:])
			m.lines[m.row] = before
			rest := append([]string{after}, m.lines[m.row+1:]...)
			m.lines = append(m.lines[:m.row+1], rest...)
			m.row++
			m.col = 0
		}
	case tuikit.KeyBackspace:
		if m.col > 0 {
			line := []rune(m.lines[m.row])
			m.lines[m.row] = string(append(line[:m.col-1], line[m.col:]...))
			m.col--
		} else if m.row > 0 {
			prevLen := len([]rune(m.lines[m.row-1]))
			m.lines[m.row-1] += m.lines[m.row]
			m.lines = append(m.lines[:m.row], m.lines[m.row+1:]...)
			m.row--
			m.col = prevLen
		}
	case tuikit.KeyDelete:
		line := []rune(m.lines[m.row])
		if m.col < len(line) {
			m.lines[m.row] = string(append(line[:m.col], line[m.col+1:]...))
		} else if m.row < len(m.lines)-1 {
			m.lines[m.row] += m.lines[m.row+1]
			m.lines = append(m.lines[:m.row+1], m.lines[m.row+2:]...)
		}
	case tuikit.KeyLeft:
		if m.col > 0 {
			m.col--
		} else if m.row > 0 {
			m.row--
			m.col = len([]rune(m.lines[m.row]))
		}
	case tuikit.KeyRight:
		if m.col < len([]rune(m.lines[m.row])) {
			m.col++
		} else if m.row < len(m.lines)-1 {
			m.row++
			m.col = 0
		}
	case tuikit.KeyUp:
		if m.row > 0 {
			m.row--
			m.col = clamp(m.col, 0, len([]rune(m.lines[m.row])))
		}
	case tuikit.KeyDown:
		if m.row < len(m.lines)-1 {
			m.row++
			m.col = clamp(m.col, 0, len([]rune(m.lines[m.row])))
		}
	case tuikit.KeyHome:
		m.col = 0
	case tuikit.KeyEnd:
		m.col = len([]rune(m.lines[m.row]))
	case tuikit.KeyRune, tuikit.KeySpace:
		if m.CharLimit <= 0 || m.totalRunes() < m.CharLimit {
			line := []rune(m.lines[m.row])
			merged := append(line[:m.col:m.col], append([]rune{key.Rune}, line[m.col:]...)...)
			m.lines[m.row] = string(merged)
			m.col++
		}
	}

	if m.Height > 0 {
		if m.row < m.scroll {
			m.scroll = m.row
		} else if m.row >= m.scroll+m.Height {
			m.scroll = m.row - m.Height + 1
		}
	}
	return m, nil
}

// View renders the visible window of lines, word-wrapped at Width,
// optionally prefixed with line numbers.
func View(m Model) string {
	if len(m.lines) == 1 && m.lines[0] == "" && m.Placeholder != "" {
		return lipgloss.NewStyle().Faint(true).Render(m.Placeholder)
	}

	height := m.Height
	if height <= 0 {
		height = len(m.lines)
	}
	end := m.scroll + height
	if end > len(m.lines) {
		end = len(m.lines)
	}

	var b strings.Builder
	for i := m.scroll; i < end; i++ {
		line := m.lines[i]
		if m.Width > 0 {
			line = wordwrap.String(line, m.Width)
		}
		if m.ShowLineNumbers {
			b.WriteString(lipgloss.NewStyle().Faint(true).Render(padNum(i+1, 3)) + " ")
		}
		b.WriteString(line)
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func padNum(n, width int) string {
	s := strconv.Itoa(n)
	for len(s) < width {
		s = " " + s
	}
	return s
}

// TextArea is the fluent builder.
type TextArea struct {
	model Model
}

// NewArea starts building a text area.
func NewArea() *TextArea { return &TextArea{model: New()} }

func (t *TextArea) Placeholder(p string) *TextArea {
	t.model.Placeholder = p
	return t
}

func (t *TextArea) Width(w int) *TextArea {
	t.model.Width = w
	return t
}

func (t *TextArea) Height(h int) *TextArea {
	t.model.Height = h
	return t
}

func (t *TextArea) LineNumbers(on bool) *TextArea {
	t.model.ShowLineNumbers = on
	return t
}

func (t *TextArea) CharLimit(n int) *TextArea {
	t.model.CharLimit = n
	return t
}

// Run starts the Elm loop and returns the submitted text, or ("", false)
// on cancellation.
func (t *TextArea) Run() (string, bool) {
	p := tuikit.NewProgram(
		func() (tuikit.Model, tuikit.Cmd) { return t.model, t.model.Focus() },
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
	return fm.Value(), true
}
