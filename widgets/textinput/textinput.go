// Package textinput implements a single-line editable text field. Grounded
// on the teacher's bubbles/textinput/textinput.go: the KeyMap-driven
// editing model, EchoMode, CharLimit, and clipboard paste are carried
// across; multi-line editing is factored out into widgets/textarea instead
// (matching the teacher's own split between the two packages).
package textinput

import (
	"github.com/atotto/clipboard"

	tuikit "github.com/nodewerx/tuikit"
	"github.com/nodewerx/tuikit/internal/runeutil"
	"github.com/nodewerx/tuikit/widgets/cursor"

	"github.com/charmbracelet/lipgloss"
)

// EchoMode sets how keystrokes are displayed.
type EchoMode int

const (
	EchoNormal EchoMode = iota
	EchoPassword
	EchoNone
)

// KeyMap is the set of keybindings textinput responds to. Each field holds
// the tuikit.KeyMsg.String() forms that trigger it, so callers can rebind
// by replacing the slice (e.g. KeyMap.Paste = []string{"ctrl+v", "cmd+v"}).
type KeyMap struct {
	CharacterForward        []string
	CharacterBackward       []string
	DeleteCharacterBackward []string
	DeleteCharacterForward  []string
	LineStart               []string
	LineEnd                 []string
	Paste                   []string
}

// DefaultKeyMap is the default set of textinput keybindings.
var DefaultKeyMap = KeyMap{
	CharacterForward:        []string{"right"},
	CharacterBackward:       []string{"left"},
	DeleteCharacterBackward: []string{"backspace"},
	DeleteCharacterForward:  []string{"delete"},
	LineStart:               []string{"home"},
	LineEnd:                 []string{"end"},
	Paste:                   []string{"ctrl+v"},
}

// matchesKey reports whether k's string form is one of keys.
func matchesKey(k tuikit.KeyMsg, keys []string) bool {
	s := k.String()
	for _, v := range keys {
		if s == v {
			return true
		}
	}
	return false
}

// Model is the text input's state.
type Model struct {
	Prompt           string
	Placeholder      string
	EchoMode         EchoMode
	EchoCharacter    rune
	CharLimit        int
	Width            int
	KeyMap           KeyMap
	Cursor           cursor.Model
	PromptStyle      lipgloss.Style
	TextStyle        lipgloss.Style
	PlaceholderStyle lipgloss.Style

	Submitted bool
	Cancelled bool

	value []rune
	pos   int
}

// ShouldQuit implements tuikit.Quitter.
func (m Model) ShouldQuit() bool { return m.Submitted || m.Cancelled }

// New returns a textinput with default settings.
func New() Model {
	return Model{
		Prompt:           "> ",
		EchoCharacter:    '•',
		KeyMap:           DefaultKeyMap,
		Cursor:           cursor.New(),
		PlaceholderStyle: lipgloss.NewStyle().Faint(true),
	}
}

// Value returns the current text.
func (m Model) Value() string { return string(m.value) }

// SetValue replaces the current text, clamping to CharLimit if set.
func (m *Model) SetValue(s string) {
	runes := []rune(s)
	if m.CharLimit > 0 && len(runes) > m.CharLimit {
		runes = runes[:m.CharLimit]
	}
	m.value = runes
	if m.pos > len(m.value) {
		m.pos = len(m.value)
	}
}

// Focus focuses the input and starts the cursor blink.
func (m *Model) Focus() tuikit.Cmd { return m.Cursor.Focus() }

// Blur unfocuses the input.
func (m *Model) Blur() { m.Cursor.Blur() }

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// widthOK reports whether appending add runes would keep the value's
// display width within Width (0 means unbounded). Excess keystrokes are
// silently ignored per spec §4.6.
func (m Model) widthOK(add string) bool {
	if m.Width <= 0 {
		return true
	}
	return runeutil.DisplayWidth(string(m.value)+add) <= m.Width
}

// Update handles a key message per spec.md's TextInput contract: printable
// runes insert at the cursor; Backspace/Delete remove; Left/Right/Home/End
// move the cursor; CharLimit and Width bound the value; Enter submits; Esc
// cancels.
func Update(m Model, msg tuikit.Msg) (Model, tuikit.Cmd) {
	switch v := msg.(type) {
	case tuikit.KeyMsg:
		km := tuikit.KeyMsg(v)
		switch {
		case km.Type == tuikit.KeyEnter:
			m.Submitted = true
			return m, nil
		case km.Type == tuikit.KeyEscape || km.Type == tuikit.KeyCtrlC:
			m.Cancelled = true
			return m, nil
		case matchesKey(km, m.KeyMap.CharacterBackward):
			m.pos = clamp(m.pos-1, 0, len(m.value))
			return m, nil
		case matchesKey(km, m.KeyMap.CharacterForward):
			m.pos = clamp(m.pos+1, 0, len(m.value))
			return m, nil
		case matchesKey(km, m.KeyMap.LineStart):
			m.pos = 0
			return m, nil
		case matchesKey(km, m.KeyMap.LineEnd):
			m.pos = len(m.value)
			return m, nil
		case matchesKey(km, m.KeyMap.DeleteCharacterBackward):
			if m.pos > 0 {
				m.value = append(m.value[:m.pos-1], m.value[m.pos:]...)
				m.pos--
			}
			return m, nil
		case matchesKey(km, m.KeyMap.DeleteCharacterForward):
			if m.pos < len(m.value) {
				m.value = append(m.value[:m.pos], m.value[m.pos+1:]...)
			}
			return m, nil
		case matchesKey(km, m.KeyMap.Paste):
			return m, pasteCmd
		case km.Type == tuikit.KeyRune || km.Type == tuikit.KeySpace:
			if m.CharLimit > 0 && len(m.value) >= m.CharLimit {
				return m, nil
			}
			if !m.widthOK(string(km.Rune)) {
				return m, nil
			}
			m.value = append(m.value[:m.pos], append([]rune{km.Rune}, m.value[m.pos:]...)...)
			m.pos++
			return m, nil
		}
		return m, nil
	case pasteMsg:
		text := []rune(string(v))
		if m.CharLimit > 0 && len(m.value)+len(text) > m.CharLimit {
			room := m.CharLimit - len(m.value)
			if room < 0 {
				room = 0
			}
			text = text[:room]
		}
		for len(text) > 0 && !m.widthOK(string(text)) {
			text = text[:len(text)-1]
		}
		m.value = append(m.value[:m.pos], append(text, m.value[m.pos:]...)...)
		m.pos += len(text)
		return m, nil
	default:
		var cmd tuikit.Cmd
		m.Cursor, cmd = m.Cursor.Update(msg)
		return m, cmd
	}
}

type pasteMsg string

func pasteCmd() tuikit.Msg {
	text, err := clipboard.ReadAll()
	if err != nil {
		return nil
	}
	return pasteMsg(text)
}

// View renders the prompt, the (possibly masked) value or placeholder, and
// the cursor.
func View(m Model) string {
	text := string(m.value)
	display := text
	switch m.EchoMode {
	case EchoPassword:
		display = maskString(text, m.EchoCharacter)
	case EchoNone:
		display = ""
	}

	if text == "" && m.Placeholder != "" {
		return m.PromptStyle.Render(m.Prompt) + m.PlaceholderStyle.Render(m.Placeholder)
	}

	if m.Cursor.Visible() {
		pos := clamp(m.pos, 0, len([]rune(display)))
		runes := []rune(display)
		before := string(runes[:pos])
		var cursorChar, after string
		if pos < len(runes) {
			cursorChar = string(runes[pos])
			after = string(runes[pos+1:])
		} else {
			cursorChar = " "
		}
		cursorStyle := lipgloss.NewStyle().Reverse(true)
		return m.PromptStyle.Render(m.Prompt) + m.TextStyle.Render(before) +
			cursorStyle.Render(cursorChar) + m.TextStyle.Render(after)
	}
	return m.PromptStyle.Render(m.Prompt) + m.TextStyle.Render(display)
}

func maskString(s string, mask rune) string {
	runes := []rune(s)
	out := make([]rune, len(runes))
	for i := range runes {
		out[i] = mask
	}
	return string(out)
}

// TextInput is the fluent builder.
type TextInput struct {
	model Model
}

// NewInput starts building a text input prompt.
func NewInput() *TextInput { return &TextInput{model: New()} }

func (t *TextInput) Prompt(p string) *TextInput {
	t.model.Prompt = p
	return t
}

func (t *TextInput) Placeholder(p string) *TextInput {
	t.model.Placeholder = p
	return t
}

func (t *TextInput) Password() *TextInput {
	t.model.EchoMode = EchoPassword
	return t
}

func (t *TextInput) CharLimit(n int) *TextInput {
	t.model.CharLimit = n
	return t
}

func (t *TextInput) Width(n int) *TextInput {
	t.model.Width = n
	return t
}

// Run starts the Elm loop and returns the submitted value, or ("", false)
// on cancellation (including failed raw-mode acquisition, per spec §7).
func (t *TextInput) Run() (string, bool) {
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
