package term

import (
	"github.com/mattn/go-isatty"
	xterm "golang.org/x/term"
	"golang.org/x/sys/unix"
)

// Size returns the controlling TTY's (cols, rows) for fd. It never caches:
// every call re-queries the kernel, since the runtime relies on this to
// notice resizes. If fd isn't a TTY, or both lookup strategies fail, Size
// returns the conventional fallback (80, 24).
func Size(fd int) (cols, rows int) {
	if !isatty.IsTerminal(uintptr(fd)) {
		return 80, 24
	}
	if w, h, err := xterm.GetSize(fd); err == nil {
		return w, h
	}
	if ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ); err == nil {
		if ws.Col > 0 && ws.Row > 0 {
			return int(ws.Col), int(ws.Row)
		}
	}
	return 80, 24
}
