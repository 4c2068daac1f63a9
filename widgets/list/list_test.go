package list

import (
	"testing"

	"github.com/stretchr/testify/assert"

	tuikit "github.com/nodewerx/tuikit"
)

func TestUpdate_NavigationClampsAtBounds(t *testing.T) {
	m := New([]string{"a", "b", "c"})
	m, _ = Update(m, tuikit.KeyMsg{Type: tuikit.KeyUp})
	assert.Equal(t, 0, m.Cursor)

	m, _ = Update(m, tuikit.KeyMsg{Type: tuikit.KeyDown})
	m, _ = Update(m, tuikit.KeyMsg{Type: tuikit.KeyDown})
	m, _ = Update(m, tuikit.KeyMsg{Type: tuikit.KeyDown})
	assert.Equal(t, 2, m.Cursor, "cursor should clamp at the last item, never wrap")
}

func TestUpdate_VimKeysNavigate(t *testing.T) {
	m := New([]string{"a", "b"})
	m, _ = Update(m, tuikit.KeyMsg{Type: tuikit.KeyRune, Rune: 'j'})
	assert.Equal(t, 1, m.Cursor)
	m, _ = Update(m, tuikit.KeyMsg{Type: tuikit.KeyRune, Rune: 'k'})
	assert.Equal(t, 0, m.Cursor)
}

func TestUpdate_HomeEndJump(t *testing.T) {
	m := New([]string{"a", "b", "c"})
	m, _ = Update(m, tuikit.KeyMsg{Type: tuikit.KeyEnd})
	assert.Equal(t, 2, m.Cursor)
	m, _ = Update(m, tuikit.KeyMsg{Type: tuikit.KeyHome})
	assert.Equal(t, 0, m.Cursor)
}

func TestUpdate_EnterSubmitsSelected(t *testing.T) {
	m := New([]string{"a", "b"})
	m, _ = Update(m, tuikit.KeyMsg{Type: tuikit.KeyDown})
	m, _ = Update(m, tuikit.KeyMsg{Type: tuikit.KeyEnter})
	assert.True(t, m.Submitted)
	assert.Equal(t, "b", m.Selected())
}

func TestUpdate_EmptyListIgnoresKeys(t *testing.T) {
	m := New(nil)
	m, _ = Update(m, tuikit.KeyMsg{Type: tuikit.KeyDown})
	assert.Equal(t, 0, m.Cursor)
	assert.Equal(t, "", m.Selected())
}

func TestView_MarksSelectedRow(t *testing.T) {
	m := New([]string{"alpha", "beta"})
	out := View(m)
	assert.Contains(t, out, "alpha")
	assert.Contains(t, out, "beta")
}
