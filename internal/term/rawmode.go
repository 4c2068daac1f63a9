// Package term owns the controlling TTY: raw-mode acquisition, cursor and
// screen control sequences, the alternate screen, and size queries. It is
// the only part of the module that writes control sequences directly.
package term

import (
	"fmt"
	"os"
	"sync/atomic"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// acquired guards against two concurrent raw-mode acquisitions on the same
// process, per spec §9 ("forbid two concurrent raw-mode acquisitions").
var acquired int32

// RawMode is a scoped handle over the controlling TTY's raw-mode state.
// The zero value is inactive. Acquire fills in a RawMode; Release restores
// the prior terminal attributes exactly.
type RawMode struct {
	fd     int
	state  *term.State
	active bool
}

// Acquire captures the current terminal attributes of fd and switches it
// into raw mode with golang.org/x/term.MakeRaw (no canonical mode, no echo,
// no signal translation). MakeRaw also turns off output post-processing, so
// a bare "\n" written afterwards does not return the carriage; writers emit
// "\r" themselves. If fd is not a TTY, or a RawMode is already
// active anywhere in this process, Acquire returns an inactive RawMode and
// a non-nil error; callers must check Active before using it.
func Acquire(fd int) (*RawMode, error) {
	if !isatty.IsTerminal(uintptr(fd)) {
		return &RawMode{}, fmt.Errorf("term: fd %d is not a tty: %w", fd, ErrNotATty)
	}
	if !atomic.CompareAndSwapInt32(&acquired, 0, 1) {
		return &RawMode{}, fmt.Errorf("term: raw mode already acquired in this process")
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		atomic.StoreInt32(&acquired, 0)
		return &RawMode{}, fmt.Errorf("term: make raw: %w", err)
	}
	return &RawMode{fd: fd, state: state, active: true}, nil
}

// Active reports whether this handle currently holds raw mode. Callers must
// check Active before relying on raw-mode behavior; a failed Acquire yields
// an inactive handle rather than a panic.
func (r *RawMode) Active() bool { return r != nil && r.active }

// Release restores the terminal's prior attributes. It is safe to call on
// an inactive handle (no-op) and safe to call more than once.
func (r *RawMode) Release() error {
	if r == nil || !r.active {
		return nil
	}
	r.active = false
	atomic.StoreInt32(&acquired, 0)
	if err := term.Restore(r.fd, r.state); err != nil {
		return fmt.Errorf("term: restore: %w", err)
	}
	return nil
}

// StdinFd is a small convenience matching the teacher's os.Stdin.Fd() use.
func StdinFd() int { return int(os.Stdin.Fd()) }
