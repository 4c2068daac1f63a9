package textinput

import (
	"testing"

	"github.com/stretchr/testify/assert"

	tuikit "github.com/nodewerx/tuikit"
)

func typeRune(m Model, r rune) Model {
	m, _ = Update(m, tuikit.KeyMsg{Type: tuikit.KeyRune, Rune: r})
	return m
}

func TestUpdate_InsertsRunesAtCursor(t *testing.T) {
	m := New()
	m = typeRune(m, 'h')
	m = typeRune(m, 'i')
	assert.Equal(t, "hi", m.Value())
}

func TestUpdate_BackspaceDeletesBeforeCursor(t *testing.T) {
	m := New()
	m.SetValue("abc")
	m.pos = 3
	m, _ = Update(m, tuikit.KeyMsg{Type: tuikit.KeyBackspace})
	assert.Equal(t, "ab", m.Value())
}

func TestUpdate_DeleteForwardAtCursor(t *testing.T) {
	m := New()
	m.SetValue("abc")
	m.pos = 0
	m, _ = Update(m, tuikit.KeyMsg{Type: tuikit.KeyDelete})
	assert.Equal(t, "bc", m.Value())
}

func TestUpdate_CharLimitBlocksExcessRunes(t *testing.T) {
	m := New()
	m.CharLimit = 2
	m = typeRune(m, 'a')
	m = typeRune(m, 'b')
	m = typeRune(m, 'c')
	assert.Equal(t, "ab", m.Value())
}

func TestUpdate_WidthBoundBlocksExcessRunes(t *testing.T) {
	m := New()
	m.Width = 2
	m = typeRune(m, 'a')
	m = typeRune(m, 'b')
	m = typeRune(m, 'c')
	assert.Equal(t, "ab", m.Value())
}

func TestUpdate_EnterSubmits(t *testing.T) {
	m := New()
	m = typeRune(m, 'x')
	m, _ = Update(m, tuikit.KeyMsg{Type: tuikit.KeyEnter})
	assert.True(t, m.Submitted)
}

func TestUpdate_EscapeCancels(t *testing.T) {
	m := New()
	m, _ = Update(m, tuikit.KeyMsg{Type: tuikit.KeyEscape})
	assert.True(t, m.Cancelled)
}

func TestSetValue_ClampsToCharLimit(t *testing.T) {
	m := New()
	m.CharLimit = 3
	m.SetValue("abcdef")
	assert.Equal(t, "abc", m.Value())
}

func TestView_PasswordMasksCharacters(t *testing.T) {
	m := New()
	m.EchoMode = EchoPassword
	m.SetValue("secret")
	out := View(m)
	assert.NotContains(t, out, "secret")
	assert.Contains(t, out, "••••••")
}

func TestView_ShowsPlaceholderWhenEmpty(t *testing.T) {
	m := New()
	m.Placeholder = "type here"
	out := View(m)
	assert.Contains(t, out, "type here")
}
