package tuikit

import "errors"

// ErrInterrupted is returned by Run when raw-mode acquisition fails and the
// program cannot proceed; widget Run wrappers treat this as cancellation
// rather than propagating it (spec §7).
var ErrInterrupted = errors.New("tuikit: interrupted")
