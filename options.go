package tuikit

import (
	"io"
	"os"
)

// Options configures a Program. Build one with the With* functional
// options rather than constructing it directly, matching the teacher's
// options.go idiom.
type Options struct {
	input          io.Reader
	output         io.Writer
	altScreen      bool
	hiddenCursor   bool
	inputTimeoutMs int
	fps            int
	forceTTY       bool
	withoutSignals bool
}

func defaultOptions() Options {
	return Options{
		input:          os.Stdin,
		output:         os.Stdout,
		inputTimeoutMs: 50,
		fps: 60,
	}
}

// Option configures a Program at construction time.
type Option func(*Options)

// WithAltScreen starts the program in the terminal's alternate screen
// buffer. Default: false.
func WithAltScreen() Option {
	return func(o *Options) { o.altScreen = true }
}

// WithHiddenCursor hides the cursor for the program's duration. Default:
// false.
func WithHiddenCursor() Option {
	return func(o *Options) { o.hiddenCursor = true }
}

// WithInput overrides the program's input stream (default os.Stdin).
func WithInput(r io.Reader) Option {
	return func(o *Options) { o.input = r }
}

// WithOutput overrides the program's output stream (default os.Stdout).
func WithOutput(w io.Writer) Option {
	return func(o *Options) { o.output = w }
}

// WithInputTimeout overrides how long read_key waits for a byte before
// reporting "no event" and letting the loop check the command queue.
// Configuration mistakes (<= 0) are clamped to the default, per spec §7.
func WithInputTimeout(ms int) Option {
	return func(o *Options) {
		if ms <= 0 {
			ms = 50
		}
		o.inputTimeoutMs = ms
	}
}

// WithFPS bounds the renderer's redraw rate. Values below 1 fall back to
// the default of 60; values above 120 are clamped to 120.
func WithFPS(fps int) Option {
	return func(o *Options) {
		if fps < 1 {
			fps = 60
		} else if fps > 120 {
			fps = 120
		}
		o.fps = fps
	}
}

// WithInputTTY skips the raw-mode acquisition check normally required of
// Program.Run's input stream. Intended for tests that drive a Program
// against an in-memory pipe rather than a real terminal (internal/teatest);
// production callers should not need it.
func WithInputTTY() Option {
	return func(o *Options) { o.forceTTY = true }
}

// WithoutSignals disables the SIGWINCH listener that otherwise emits a
// WindowSizeMsg whenever the terminal is resized.
func WithoutSignals() Option {
	return func(o *Options) { o.withoutSignals = true }
}
