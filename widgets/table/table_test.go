package table

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	tuikit "github.com/nodewerx/tuikit"
)

func TestFromValues(t *testing.T) {
	input := "foo1,bar1\nfoo2,bar2\nfoo3,bar3"
	tbl := New([]Column{{Title: "Foo"}, {Title: "Bar"}})
	tbl.FromValues(input, ",")

	assert.Equal(t, []Row{
		{"foo1", "bar1"},
		{"foo2", "bar2"},
		{"foo3", "bar3"},
	}, tbl.Rows)
}

func TestFromValuesWithTabSeparator(t *testing.T) {
	input := "foo1.\tbar1\nfoo,bar,baz\tbar,2"
	tbl := New([]Column{{Title: "Foo"}, {Title: "Bar"}})
	tbl.FromValues(input, "\t")

	assert.Equal(t, []Row{
		{"foo1.", "bar1"},
		{"foo,bar,baz", "bar,2"},
	}, tbl.Rows)
}

func TestUpdate_NavigationInSelectableMode(t *testing.T) {
	m := New([]Column{{Title: "A"}})
	m.Selectable = true
	m.Rows = []Row{{"1"}, {"2"}, {"3"}}

	m, _ = Update(m, tuikit.KeyMsg{Type: tuikit.KeyDown})
	assert.Equal(t, 1, m.Cursor)

	m, _ = Update(m, tuikit.KeyMsg{Type: tuikit.KeyUp})
	assert.Equal(t, 0, m.Cursor)
}

func TestUpdate_NonSelectableIgnoresKeys(t *testing.T) {
	m := New([]Column{{Title: "A"}})
	m.Rows = []Row{{"1"}, {"2"}}
	m, _ = Update(m, tuikit.KeyMsg{Type: tuikit.KeyDown})
	assert.Equal(t, 0, m.Cursor)
}

func TestUpdate_EnterSubmitsRowIndex(t *testing.T) {
	m := New([]Column{{Title: "A"}})
	m.Selectable = true
	m.Rows = []Row{{"1"}, {"2"}}
	m, _ = Update(m, tuikit.KeyMsg{Type: tuikit.KeyEnter})
	assert.True(t, m.Submitted)
}

func TestRender_IncludesHeadersAndRows(t *testing.T) {
	m := New([]Column{{Title: "Foo"}, {Title: "Bar"}})
	m.Rows = []Row{{"1", "2"}}
	out := Render(m)
	assert.Contains(t, out, "Foo")
	assert.Contains(t, out, "Bar")
}

func TestRender_BorderColorStylesSeparators(t *testing.T) {
	// Under `go test` stdout is not a terminal, so lipgloss would default to
	// the Ascii profile and drop all color; pin a color profile instead.
	lipgloss.SetColorProfile(termenv.TrueColor)
	m := New([]Column{{Title: "Foo"}})
	m.Rows = []Row{{"1"}}

	plain := Render(m)

	m.BorderColor = "#ff0000"
	colored := Render(m)

	assert.NotEqual(t, plain, colored)
	assert.Contains(t, colored, "\x1b[")
}

func TestTableBuilder_BorderColorAppliesToPrint(t *testing.T) {
	lipgloss.SetColorProfile(termenv.TrueColor)
	plain := NewTable().Headers("Foo").Rows(Row{"1"}).Print()
	colored := NewTable().Headers("Foo").Rows(Row{"1"}).BorderColor("#00ff00").Print()
	assert.NotEqual(t, plain, colored)
}
