//go:build !windows

package filepicker

import "strings"

// isHidden reports whether a file is hidden on this platform. Grounded on
// the teacher's bubbles/filepicker/hidden_unix.go.
func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
