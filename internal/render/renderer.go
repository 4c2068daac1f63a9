// Package render implements the diff-free "live region" renderer: it
// clears and rewrites a rectangle of rows immediately above the cursor on
// every Render call rather than diffing line by line. Grounded directly on
// original_source/include/scan/render/renderer.hpp, the C++ original this
// module's spec was distilled from.
package render

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/nodewerx/tuikit/internal/term"
)

// Renderer owns the live region: the count of screen rows it currently
// occupies and the last content string written.
type Renderer struct {
	screen        *term.Screen
	linesRendered int
	lastContent   string
	cols          int
}

// New creates a Renderer writing through s. cols, if > 0, bounds line width:
// lines wider than cols are truncated at DisplayWidth == cols rather than
// left to wrap (see DESIGN.md's Open Question decision).
func New(s *term.Screen, cols int) *Renderer {
	return &Renderer{screen: s, cols: cols}
}

// SetWidth updates the truncation width used by subsequent renders.
func (r *Renderer) SetWidth(cols int) { r.cols = cols }

// LinesRendered returns the number of screen rows the live region
// currently occupies.
func (r *Renderer) LinesRendered() int { return r.linesRendered }

// LastContent returns the content string passed to the most recent Render.
func (r *Renderer) LastContent() string { return r.lastContent }

func splitLines(content string) []string {
	return strings.Split(content, "\n")
}

func (r *Renderer) truncate(line string) string {
	if r.cols <= 0 {
		return line
	}
	if runewidth.StringWidth(line) <= r.cols {
		return line
	}
	return runewidth.Truncate(line, r.cols, "")
}

// Render replaces the live region with content's rendered lines, leaving
// the cursor at the end of the new region. It does not diff line by line:
// it clears whatever was there and rewrites in full, matching spec §4.4's
// rationale (terminals buffer output; a full rewrite is simpler to reason
// about and avoids tracking per-cell state across wide-character
// boundaries).
func (r *Renderer) Render(content string) {
	if r.linesRendered > 0 {
		r.screen.CursorColumn(1)
		for i := 0; i < r.linesRendered; i++ {
			r.screen.ClearLine()
			if i < r.linesRendered-1 {
				r.screen.CursorUp(1)
			}
		}
		r.screen.CursorColumn(1)
	}

	lines := splitLines(content)
	for i, line := range lines {
		if i > 0 {
			r.screen.Write("\n")
		}
		r.screen.Write("\r")
		r.screen.Write(r.truncate(line))
	}

	n := len(lines)
	if n > 0 && lines[n-1] == "" {
		n-- // trailing blank line doesn't count as an occupied row
	}
	r.linesRendered = n
	r.lastContent = content
}

// Clear removes the live region entirely, leaving the cursor at column 1
// of what was its topmost row.
func (r *Renderer) Clear() {
	if r.linesRendered > 0 {
		r.screen.CursorColumn(1)
		for i := 0; i < r.linesRendered; i++ {
			r.screen.ClearLine()
			if i < r.linesRendered-1 {
				r.screen.CursorUp(1)
			}
		}
	}
	r.linesRendered = 0
	r.lastContent = ""
}

// Repaint forgets the current state so the next Render treats the region
// as empty, used when the surrounding terminal context changes (e.g.
// entering the alt screen).
func (r *Renderer) Repaint() {
	r.linesRendered = 0
	r.lastContent = ""
}
