package term

import "errors"

// ErrNotATty is returned when raw-mode acquisition or a size query is
// attempted on a file descriptor that isn't a controlling TTY.
var ErrNotATty = errors.New("not a tty")
