package pager

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	tuikit "github.com/nodewerx/tuikit"
)

func lines(n int) string {
	rows := make([]string, n)
	for i := range rows {
		rows[i] = "row"
	}
	return strings.Join(rows, "\n")
}

func TestUpdate_QCancels(t *testing.T) {
	m := New(lines(10), 20, 5)
	m, _ = Update(m, tuikit.KeyMsg{Type: tuikit.KeyRune, Rune: 'q'})
	assert.True(t, m.Cancelled)
}

func TestUpdate_EscapeCancels(t *testing.T) {
	m := New(lines(10), 20, 5)
	m, _ = Update(m, tuikit.KeyMsg{Type: tuikit.KeyEscape})
	assert.True(t, m.Cancelled)
}

func TestUpdate_GAndShiftGJumpToEnds(t *testing.T) {
	m := New(lines(20), 20, 5)
	m, _ = Update(m, tuikit.KeyMsg{Type: tuikit.KeyRune, Rune: 'G'})
	assert.True(t, m.vp.AtBottom())
	m, _ = Update(m, tuikit.KeyMsg{Type: tuikit.KeyRune, Rune: 'g'})
	assert.True(t, m.vp.AtTop())
}

func TestView_IncludesScrollStatus(t *testing.T) {
	m := New(lines(20), 20, 5)
	out := View(m)
	assert.Contains(t, out, "%")
}
