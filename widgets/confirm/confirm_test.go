package confirm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	tuikit "github.com/nodewerx/tuikit"
)

func TestUpdate_ShortcutYesSubmitsImmediately(t *testing.T) {
	m := New().Prompt("Continue?").model
	m, _ = Update(m, tuikit.KeyMsg{Type: tuikit.KeyRune, Rune: 'y'})
	assert.True(t, m.Value)
	assert.True(t, m.Submitted)
}

func TestUpdate_ShortcutNoSubmitsImmediately(t *testing.T) {
	m := New().model
	m, _ = Update(m, tuikit.KeyMsg{Type: tuikit.KeyRune, Rune: 'n'})
	assert.False(t, m.Value)
	assert.True(t, m.Submitted)
}

func TestUpdate_ArrowsToggleWithoutSubmitting(t *testing.T) {
	m := New().Default(false).model
	m, _ = Update(m, tuikit.KeyMsg{Type: tuikit.KeyLeft})
	assert.True(t, m.Value)
	assert.False(t, m.Submitted)

	m, _ = Update(m, tuikit.KeyMsg{Type: tuikit.KeyRight})
	assert.False(t, m.Value)
	assert.False(t, m.Submitted)
}

func TestUpdate_EnterSubmitsCurrentValue(t *testing.T) {
	m := New().Default(true).model
	m, _ = Update(m, tuikit.KeyMsg{Type: tuikit.KeyEnter})
	assert.True(t, m.Submitted)
	assert.True(t, m.Value)
}

func TestUpdate_EscapeCancels(t *testing.T) {
	m := New().model
	m, _ = Update(m, tuikit.KeyMsg{Type: tuikit.KeyEscape})
	assert.True(t, m.Cancelled)
	assert.True(t, m.ShouldQuit())
}

func TestUpdate_HLSelectsWithoutSubmitting(t *testing.T) {
	m := New().Default(false).model
	m, _ = Update(m, tuikit.KeyMsg{Type: tuikit.KeyRune, Rune: 'h'})
	assert.True(t, m.Value)
	assert.False(t, m.Submitted)
}

func TestView_RendersPromptAndLabels(t *testing.T) {
	m := New().Prompt("Proceed?").Affirmative("Yep").Negative("Nope").model
	out := View(m)
	assert.Contains(t, out, "Proceed?")
	assert.Contains(t, out, "Yep")
	assert.Contains(t, out, "Nope")
}
