// Package table implements both a static, printable table and an
// interactive, row-selectable one. Grounded on the teacher's
// bubbles/table/table_test.go (the Column/Row, functional-option shape)
// and original_source/examples/table_demo.cpp (the Normal/Rounded/Double/
// Simple border styles and the selectable-vs-print split). The static
// render path is built on github.com/olekukonko/tablewriter so the
// alignment and border-glyph logic doesn't have to be reinvented.
package table

import (
	"bytes"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"

	tuikit "github.com/nodewerx/tuikit"
)

// BorderStyle selects the glyph set tablewriter uses to draw borders.
type BorderStyle int

const (
	Normal BorderStyle = iota
	Rounded
	Double
	Simple
)

// Column describes one table column.
type Column struct {
	Title string
	Width int
}

// Row is one row of cell values, one per column.
type Row []string

// Model is the table's state.
type Model struct {
	Columns     []Column
	Rows        []Row
	Border      BorderStyle
	BorderColor string
	Selectable  bool
	Height      int

	Cursor    int
	Submitted bool
	Cancelled bool
}

// ShouldQuit implements tuikit.Quitter.
func (m Model) ShouldQuit() bool { return m.Submitted || m.Cancelled }

// New returns an empty table.
func New(columns []Column) Model {
	return Model{Columns: columns}
}

// FromValues parses sep-delimited rows from input, one row per line.
func (m *Model) FromValues(input, sep string) {
	m.Rows = nil
	for _, line := range strings.Split(input, "\n") {
		if line == "" {
			continue
		}
		m.Rows = append(m.Rows, Row(strings.Split(line, sep)))
	}
}

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

// Update implements spec.md's Table contract: in selectable mode, Up/Down
// navigate and Enter submits the row index.
func Update(m Model, msg tuikit.Msg) (Model, tuikit.Cmd) {
	if !m.Selectable {
		return m, nil
	}
	key, ok := msg.(tuikit.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.Type {
	case tuikit.KeyUp:
		m.Cursor = clamp(m.Cursor-1, 0, len(m.Rows)-1)
	case tuikit.KeyDown:
		m.Cursor = clamp(m.Cursor+1, 0, len(m.Rows)-1)
	case tuikit.KeyEnter:
		m.Submitted = true
	case tuikit.KeyEscape, tuikit.KeyCtrlC:
		m.Cancelled = true
	}
	return m, nil
}

func applyBorderStyle(tw *tablewriter.Table, style BorderStyle, hex string) {
	center, column, row := "+", "|", "-"
	switch style {
	case Rounded:
		center, column, row = "┼", "│", "─"
	case Double:
		center, column, row = "╬", "║", "═"
	case Simple:
		tw.SetBorder(false)
		center, column, row = "", "", "-"
	}

	if hex != "" {
		glyph := lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
		if center != "" {
			center = glyph.Render(center)
		}
		if column != "" {
			column = glyph.Render(column)
		}
		if row != "" {
			row = glyph.Render(row)
		}
	}

	tw.SetCenterSeparator(center)
	tw.SetColumnSeparator(column)
	tw.SetRowSeparator(row)
}

// Render renders the full, non-interactive table as a string via
// tablewriter. m.BorderColor, if set, colors the border glyphs
// (tablewriter has no native border-color notion, so the glyphs
// themselves are rendered through a lipgloss foreground style before
// being handed to the writer). lipgloss emits no color escapes when its
// color profile is Ascii, as it is by default when stdout is not a
// terminal.
func Render(m Model) string {
	var buf bytes.Buffer
	tw := tablewriter.NewWriter(&buf)
	var headers []string
	for _, c := range m.Columns {
		headers = append(headers, c.Title)
	}
	tw.SetHeader(headers)
	tw.SetAutoFormatHeaders(false)
	applyBorderStyle(tw, m.Border, m.BorderColor)
	for _, r := range m.Rows {
		tw.Append([]string(r))
	}
	tw.Render()
	return buf.String()
}

// View renders the table. In non-selectable mode it is Render's output. In
// selectable mode (tablewriter has no notion of row selection) the whole
// table is laid out by hand: space-separated columns padded to the widest
// cell, the current row highlighted, and no borders, so Border and
// BorderColor have no effect there.
func View(m Model) string {
	if !m.Selectable {
		return Render(m)
	}

	widths := make([]int, len(m.Columns))
	for i, c := range m.Columns {
		widths[i] = len(c.Title)
	}
	for _, r := range m.Rows {
		for i, cell := range r {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	selectedStyle := lipgloss.NewStyle().Reverse(true)

	var b strings.Builder
	b.WriteString(formatRow(headerRow(m.Columns), widths))
	height := m.Height
	if height <= 0 || height > len(m.Rows) {
		height = len(m.Rows)
	}
	for i := 0; i < height; i++ {
		line := "\n" + formatRow(m.Rows[i], widths)
		if i == m.Cursor {
			line = "\n" + selectedStyle.Render(formatRow(m.Rows[i], widths))
		}
		b.WriteString(line)
	}
	return b.String()
}

func headerRow(cols []Column) Row {
	r := make(Row, len(cols))
	for i, c := range cols {
		r[i] = c.Title
	}
	return r
}

func formatRow(r Row, widths []int) string {
	cells := make([]string, len(r))
	for i, cell := range r {
		w := 0
		if i < len(widths) {
			w = widths[i]
		}
		cells[i] = padRight(cell, w)
	}
	return strings.Join(cells, "  ")
}

func padRight(s string, w int) string {
	for len(s) < w {
		s += " "
	}
	return s
}

// Table is the fluent builder.
type Table struct {
	model Model
}

// NewTable starts building a table.
func NewTable() *Table { return &Table{} }

func (t *Table) Headers(headers ...string) *Table {
	cols := make([]Column, len(headers))
	for i, h := range headers {
		cols[i] = Column{Title: h}
	}
	t.model.Columns = cols
	return t
}

func (t *Table) Rows(rows ...Row) *Table {
	t.model.Rows = rows
	return t
}

func (t *Table) Border(style BorderStyle) *Table {
	t.model.Border = style
	return t
}

func (t *Table) BorderColor(hex string) *Table {
	t.model.BorderColor = hex
	return t
}

func (t *Table) Selectable(v bool) *Table {
	t.model.Selectable = v
	return t
}

func (t *Table) Height(h int) *Table {
	t.model.Height = h
	return t
}

// Print renders the non-interactive table to its string form.
func (t *Table) Print() string { return Render(t.model) }

// Run starts the Elm loop for a selectable table and returns the chosen
// row index, or (0, false) on cancellation.
func (t *Table) Run() (int, bool) {
	p := tuikit.NewProgram(
		func() (tuikit.Model, tuikit.Cmd) { return t.model, nil },
		func(m tuikit.Model, msg tuikit.Msg) (tuikit.Model, tuikit.Cmd) {
			return Update(m.(Model), msg)
		},
		func(m tuikit.Model) string { return View(m.(Model)) },
	)
	final, err := p.Run()
	if err != nil {
		return 0, false
	}
	fm := final.(Model)
	if fm.Cancelled || !fm.Submitted {
		return 0, false
	}
	return fm.Cursor, true
}
