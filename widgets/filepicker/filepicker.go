// Package filepicker implements a directory browser. Grounded on the
// teacher's bubbles/filepicker/filepicker.go: hidden-file toggling,
// extension filtering, file/dir-allowed flags, and humanize'd file sizes
// are all carried across (including the unix/windows hidden-file split).
package filepicker

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/samber/lo"

	tuikit "github.com/nodewerx/tuikit"
)

type entry struct {
	name  string
	isDir bool
	size  int64
}

// Model is the filepicker's state.
type Model struct {
	CurrentDirectory string
	AllowedTypes     []string // extensions, e.g. ".go"; empty means all
	ShowHidden       bool
	FileAllowed      bool
	DirAllowed       bool
	Height           int

	Cursor int

	SelectedPath string
	Submitted    bool
	Cancelled    bool

	entries []entry
	scroll  int

	err error
}

// ShouldQuit implements tuikit.Quitter.
func (m Model) ShouldQuit() bool { return m.Submitted || m.Cancelled }

// New returns a filepicker rooted at ".".
func New() Model {
	m := Model{
		CurrentDirectory: ".",
		FileAllowed:      true,
		Height:           15,
	}
	m.reload()
	return m
}

func (m *Model) reload() {
	infos, err := os.ReadDir(m.CurrentDirectory)
	if err != nil {
		m.err = err
		m.entries = nil
		return
	}
	m.err = nil
	visible := lo.Filter(infos, func(de os.DirEntry, _ int) bool {
		if !m.ShowHidden && isHidden(de.Name()) {
			return false
		}
		return de.IsDir() || m.extensionAllowed(de.Name())
	})
	entries := lo.Map(visible, func(de os.DirEntry, _ int) entry {
		var size int64
		if info, err := de.Info(); err == nil {
			size = info.Size()
		}
		return entry{name: de.Name(), isDir: de.IsDir(), size: size}
	})
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].isDir != entries[j].isDir {
			return entries[i].isDir
		}
		return entries[i].name < entries[j].name
	})
	m.entries = entries
	m.Cursor = 0
	m.scroll = 0
}

func (m Model) extensionAllowed(name string) bool {
	if len(m.AllowedTypes) == 0 {
		return true
	}
	ext := filepath.Ext(name)
	return lo.ContainsBy(m.AllowedTypes, func(t string) bool {
		return strings.EqualFold(t, ext)
	})
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

// Update implements spec.md's FilePicker contract: Up/Down navigate,
// Enter descends into directories or selects a file, Backspace goes up a
// directory, "." toggles hidden files.
func Update(m Model, msg tuikit.Msg) (Model, tuikit.Cmd) {
	key, ok := msg.(tuikit.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.Type {
	case tuikit.KeyUp:
		m.Cursor = clamp(m.Cursor-1, 0, len(m.entries)-1)
	case tuikit.KeyDown:
		m.Cursor = clamp(m.Cursor+1, 0, len(m.entries)-1)
	case tuikit.KeyBackspace:
		m.CurrentDirectory = filepath.Dir(m.CurrentDirectory)
		m.reload()
	case tuikit.KeyEscape, tuikit.KeyCtrlC:
		m.Cancelled = true
	case tuikit.KeyEnter:
		if m.Cursor < 0 || m.Cursor >= len(m.entries) {
			return m, nil
		}
		e := m.entries[m.Cursor]
		full := filepath.Join(m.CurrentDirectory, e.name)
		if e.isDir {
			if m.DirAllowed && key.Ctrl {
				m.SelectedPath = full
				m.Submitted = true
				return m, nil
			}
			m.CurrentDirectory = full
			m.reload()
			return m, nil
		}
		if m.FileAllowed {
			m.SelectedPath = full
			m.Submitted = true
		}
	case tuikit.KeyRune:
		if key.Rune == '.' {
			m.ShowHidden = !m.ShowHidden
			m.reload()
		}
	}
	if m.Height > 0 {
		if m.Cursor < m.scroll {
			m.scroll = m.Cursor
		} else if m.Cursor >= m.scroll+m.Height {
			m.scroll = m.Cursor - m.Height + 1
		}
	}
	return m, nil
}

// View renders the current path and a scrollable directory listing.
func View(m Model) string {
	header := lipgloss.NewStyle().Bold(true).Render(m.CurrentDirectory)
	if m.err != nil {
		return header + "\n" + m.err.Error()
	}
	height := m.Height
	if height <= 0 || height > len(m.entries) {
		height = len(m.entries)
	}
	var b strings.Builder
	b.WriteString(header)
	end := m.scroll + height
	if end > len(m.entries) {
		end = len(m.entries)
	}
	for i := m.scroll; i < end; i++ {
		e := m.entries[i]
		marker := "  "
		if i == m.Cursor {
			marker = "> "
		}
		label := e.name
		if e.isDir {
			label += "/"
		} else {
			label += "  " + humanize.Bytes(uint64(e.size))
		}
		b.WriteString("\n" + marker + label)
	}
	return b.String()
}

// FilePicker is the fluent builder.
type FilePicker struct {
	model Model
}

// NewPicker starts building a filepicker rooted at dir.
func NewPicker(dir string) *FilePicker {
	m := New()
	if dir != "" {
		m.CurrentDirectory = dir
		m.reload()
	}
	return &FilePicker{model: m}
}

func (f *FilePicker) AllowedTypes(exts ...string) *FilePicker {
	f.model.AllowedTypes = exts
	f.model.reload()
	return f
}

func (f *FilePicker) DirAllowed(v bool) *FilePicker {
	f.model.DirAllowed = v
	return f
}

func (f *FilePicker) FileAllowed(v bool) *FilePicker {
	f.model.FileAllowed = v
	return f
}

func (f *FilePicker) Height(h int) *FilePicker {
	f.model.Height = h
	return f
}

// Run starts the Elm loop and returns the selected path, or ("", false) on
// cancellation.
func (f *FilePicker) Run() (string, bool) {
	p := tuikit.NewProgram(
		func() (tuikit.Model, tuikit.Cmd) { return f.model, nil },
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
	return fm.SelectedPath, true
}
