//go:build windows

package filepicker

import "syscall"

// isHidden reports whether a file is hidden on this platform. Grounded on
// the teacher's bubbles/filepicker/hidden_windows.go.
func isHidden(name string) bool {
	pointer, err := syscall.UTF16PtrFromString(name)
	if err != nil {
		return false
	}
	attrs, err := syscall.GetFileAttributes(pointer)
	if err != nil {
		return false
	}
	return attrs&syscall.FILE_ATTRIBUTE_HIDDEN != 0
}
