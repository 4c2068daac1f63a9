package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nodewerx/tuikit/internal/term"
)

func TestRender_FirstRenderWritesLinesNoClear(t *testing.T) {
	var buf bytes.Buffer
	r := New(term.NewScreen(&buf), 0)
	r.Render("line one\nline two")

	out := buf.String()
	assert.Equal(t, 2, r.LinesRendered())
	assert.NotContains(t, out, "\x1b[2K", "nothing was on screen yet, so no clear should be emitted")
	assert.Contains(t, out, "line one")
	assert.Contains(t, out, "line two")
}

func TestRender_SecondRenderClearsPreviousRegion(t *testing.T) {
	var buf bytes.Buffer
	r := New(term.NewScreen(&buf), 0)
	r.Render("a\nb")
	buf.Reset()

	r.Render("c\nd\ne")

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "\x1b[2K"), "should clear exactly the two previously-rendered rows")
	assert.Equal(t, 3, r.LinesRendered())
	assert.Equal(t, "c\nd\ne", r.LastContent())
}

func TestRender_TrailingBlankLineNotCountedAsRow(t *testing.T) {
	var buf bytes.Buffer
	r := New(term.NewScreen(&buf), 0)
	r.Render("only line\n")
	assert.Equal(t, 1, r.LinesRendered())
}

func TestRender_TruncatesToWidth(t *testing.T) {
	var buf bytes.Buffer
	r := New(term.NewScreen(&buf), 5)
	r.Render("this is a long line")
	assert.NotContains(t, buf.String(), "long line")
}

func TestClear_ResetsState(t *testing.T) {
	var buf bytes.Buffer
	r := New(term.NewScreen(&buf), 0)
	r.Render("x\ny")
	buf.Reset()
	r.Clear()
	assert.Equal(t, 0, r.LinesRendered())
	assert.Equal(t, "", r.LastContent())
	assert.Contains(t, buf.String(), "\x1b[2K")
}

func TestRepaint_ForgetsStateWithoutWriting(t *testing.T) {
	var buf bytes.Buffer
	r := New(term.NewScreen(&buf), 0)
	r.Render("x\ny")
	buf.Reset()
	r.Repaint()
	assert.Equal(t, 0, r.LinesRendered())
	assert.Empty(t, buf.String())
}
