package filepicker

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	tuikit "github.com/nodewerx/tuikit"
)

func setupDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("x"), 0o644))
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "b.go"), []byte("x"), 0o644))
	assert.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	assert.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden"), []byte("x"), 0o644))
	return dir
}

func TestReload_HidesDotfilesByDefault(t *testing.T) {
	dir := setupDir(t)
	m := NewPicker(dir)
	names := entryNames(m.model.entries)
	assert.NotContains(t, names, ".hidden")
}

func TestReload_DirsSortBeforeFiles(t *testing.T) {
	dir := setupDir(t)
	m := NewPicker(dir)
	assert.True(t, m.model.entries[0].isDir)
}

func TestAllowedTypes_FiltersExtensions(t *testing.T) {
	dir := setupDir(t)
	m := NewPicker(dir).AllowedTypes(".go")
	names := entryNames(m.model.entries)
	assert.Contains(t, names, "b.go")
	assert.NotContains(t, names, "a.txt")
	assert.Contains(t, names, "sub") // directories are never extension-filtered
}

func TestUpdate_DotToggleShowsHidden(t *testing.T) {
	dir := setupDir(t)
	model := New()
	model.CurrentDirectory = dir
	model.reload()
	model, _ = Update(model, tuikit.KeyMsg{Type: tuikit.KeyRune, Rune: '.'})
	assert.True(t, model.ShowHidden)
	assert.Contains(t, entryNames(model.entries), ".hidden")
}

func TestUpdate_EnterDescendsIntoDirectory(t *testing.T) {
	dir := setupDir(t)
	model := New()
	model.CurrentDirectory = dir
	model.reload()
	// cursor starts on the sorted-first entry, which is the directory "sub".
	model, _ = Update(model, tuikit.KeyMsg{Type: tuikit.KeyEnter})
	assert.Equal(t, filepath.Join(dir, "sub"), model.CurrentDirectory)
	assert.False(t, model.Submitted)
}

func TestUpdate_EnterOnFileSubmitsWhenFileAllowed(t *testing.T) {
	dir := setupDir(t)
	model := New()
	model.FileAllowed = true
	model.CurrentDirectory = dir
	model.reload()
	model.Cursor = len(model.entries) - 1 // last entry, sorted after dirs: a file
	model, _ = Update(model, tuikit.KeyMsg{Type: tuikit.KeyEnter})
	assert.True(t, model.Submitted)
	assert.NotEmpty(t, model.SelectedPath)
}

func TestUpdate_EscapeCancels(t *testing.T) {
	model := New()
	model, _ = Update(model, tuikit.KeyMsg{Type: tuikit.KeyEscape})
	assert.True(t, model.Cancelled)
}

func entryNames(entries []entry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names
}
