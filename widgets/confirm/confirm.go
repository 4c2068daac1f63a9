// Package confirm implements a two-option yes/no prompt. Grounded on
// original_source/examples/confirm_demo.cpp: the teacher repo has no
// direct Confirm bubble, so this widget is built in the teacher's Elm
// idiom (Model/Update/View/Run) following the C++ original's feature set
// (custom affirmative/negative labels, per-state colors, a configurable
// default).
package confirm

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	tuikit "github.com/nodewerx/tuikit"
)

// Model is the confirm widget's state.
type Model struct {
	Prompt      string
	Affirmative string
	Negative    string
	Value       bool // true = affirmative currently selected
	Submitted   bool
	Cancelled   bool

	promptStyle     lipgloss.Style
	selectedStyle   lipgloss.Style
	unselectedStyle lipgloss.Style
}

// ShouldQuit implements tuikit.Quitter.
func (m Model) ShouldQuit() bool { return m.Submitted || m.Cancelled }

func newModel() Model {
	return Model{
		Affirmative:     "Yes",
		Negative:        "No",
		unselectedStyle: lipgloss.NewStyle().Faint(true),
		selectedStyle:   lipgloss.NewStyle().Bold(true).Reverse(true),
	}
}

// Update handles a key message, implementing the contract in spec.md's
// widget table: Left/Right or Tab/Shift-Tab toggle; h selects yes, l
// selects no; y/n toggle and submit; Enter submits; Esc/Ctrl-C cancels.
func Update(m Model, msg tuikit.Msg) (Model, tuikit.Cmd) {
	key, ok := msg.(tuikit.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.Type {
	case tuikit.KeyLeft, tuikit.KeyRight, tuikit.KeyTab, tuikit.KeyShiftTab:
		m.Value = !m.Value
	case tuikit.KeyEnter:
		m.Submitted = true
	case tuikit.KeyEscape, tuikit.KeyCtrlC:
		m.Cancelled = true
	case tuikit.KeyRune:
		switch key.Rune {
		case 'h':
			m.Value = true
		case 'l':
			m.Value = false
		case 'y':
			m.Value = true
			m.Submitted = true
		case 'n':
			m.Value = false
			m.Submitted = true
		}
	}
	return m, nil
}

// View renders the prompt and the two labeled buttons, the current one
// highlighted.
func View(m Model) string {
	yes, no := m.Affirmative, m.Negative
	if m.Value {
		yes = m.selectedStyle.Render(yes)
		no = m.unselectedStyle.Render(no)
	} else {
		yes = m.unselectedStyle.Render(yes)
		no = m.selectedStyle.Render(no)
	}
	return fmt.Sprintf("%s\n\n%s   %s", m.promptStyle.Render(m.Prompt), yes, no)
}

// Confirm is the fluent builder for a confirm prompt.
type Confirm struct {
	model Model
}

// New starts building a confirm prompt.
func New() *Confirm {
	return &Confirm{model: newModel()}
}

// Prompt sets the question text.
func (c *Confirm) Prompt(text string) *Confirm {
	c.model.Prompt = text
	return c
}

// Affirmative overrides the "yes" button label.
func (c *Confirm) Affirmative(label string) *Confirm {
	c.model.Affirmative = label
	return c
}

// Negative overrides the "no" button label.
func (c *Confirm) Negative(label string) *Confirm {
	c.model.Negative = label
	return c
}

// Default sets the initially-selected value.
func (c *Confirm) Default(value bool) *Confirm {
	c.model.Value = value
	return c
}

// PromptColor sets the prompt's foreground color.
func (c *Confirm) PromptColor(hex string) *Confirm {
	c.model.promptStyle = c.model.promptStyle.Foreground(lipgloss.Color(hex))
	return c
}

// SelectedColor sets the selected button's foreground/background.
func (c *Confirm) SelectedColor(fg, bg string) *Confirm {
	c.model.selectedStyle = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.Color(fg)).Background(lipgloss.Color(bg))
	return c
}

// UnselectedColor sets the unselected button's foreground.
func (c *Confirm) UnselectedColor(fg string) *Confirm {
	c.model.unselectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
	return c
}

// Run starts the Elm loop and returns the confirmed value, or (false,
// false) if the user cancelled. If raw mode can't be acquired, Run
// returns (false, false) rather than an error (spec §7).
func (c *Confirm) Run() (value bool, ok bool) {
	p := tuikit.NewProgram(
		func() (tuikit.Model, tuikit.Cmd) { return c.model, nil },
		func(m tuikit.Model, msg tuikit.Msg) (tuikit.Model, tuikit.Cmd) {
			return Update(m.(Model), msg)
		},
		func(m tuikit.Model) string { return View(m.(Model)) },
	)
	final, err := p.Run()
	if err != nil {
		return false, false
	}
	fm := final.(Model)
	if fm.Cancelled || !fm.Submitted {
		return false, false
	}
	return fm.Value, true
}
