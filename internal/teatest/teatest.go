// Package teatest drives a tuikit.Program against an in-memory pipe instead
// of a real terminal, so widget and application tests never need a TTY.
package teatest

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/nodewerx/tuikit"
)

// TestModelOptions configures RunModel. Build it with the With* functional
// options below rather than constructing it directly.
type TestModelOptions struct {
	interact func(in io.Writer)
	assert   func(out []byte)
	validate func(m tuikit.Model) error
	timeout  time.Duration
}

// TestOption configures a RunModel invocation.
type TestOption func(*TestModelOptions)

// WithInteractions runs fn with the program's input pipe once the program
// has started, so the test can type text or send raw escape sequences.
func WithInteractions(fn func(in io.Writer)) TestOption {
	return func(o *TestModelOptions) { o.interact = fn }
}

// WithOutputCheck runs fn against everything the program wrote once it
// finishes.
func WithOutputCheck(fn func(out []byte)) TestOption {
	return func(o *TestModelOptions) { o.assert = fn }
}

// WithFinalModelCheck runs fn against the model Run returned.
func WithFinalModelCheck(fn func(m tuikit.Model) error) TestOption {
	return func(o *TestModelOptions) { o.validate = fn }
}

// WithTimeout bounds how long RunModel waits for the program to finish
// after its input pipe is closed. Default: 2s.
func WithTimeout(d time.Duration) TestOption {
	return func(o *TestModelOptions) { o.timeout = d }
}

// RunModel starts a Program wired to an in-memory pipe (tuikit.WithInputTTY,
// so Run never requires a real terminal), runs the given interactions, closes
// the input to end the loop, then runs the assertions against the captured
// output and final model. Grounded on the teacher's teatest.TestModel, with
// Program.Send's role played by writing raw bytes to the input pipe instead —
// this runtime has no out-of-band Send, only the same byte stream a real
// terminal would produce.
func RunModel(tb testing.TB, init tuikit.Init, update tuikit.Update, view tuikit.View, opts ...TestOption) tuikit.Model {
	tb.Helper()

	o := TestModelOptions{timeout: 2 * time.Second}
	for _, opt := range opts {
		opt(&o)
	}

	pr, pw := io.Pipe()
	var out bytes.Buffer

	p := tuikit.NewProgram(init, update, view,
		tuikit.WithInput(pr),
		tuikit.WithOutput(&out),
		tuikit.WithInputTTY(),
	)

	type result struct {
		model tuikit.Model
		err   error
	}
	done := make(chan result, 1)
	go func() {
		m, err := p.Run()
		done <- result{model: m, err: err}
	}()

	if o.interact != nil {
		o.interact(pw)
	}
	pw.Close()

	select {
	case r := <-done:
		if r.err != nil {
			tb.Fatalf("tuikit: program failed: %v", r.err)
		}

		if o.validate != nil {
			if err := o.validate(r.model); err != nil {
				tb.Fatalf("tuikit: model validation failed: %v", err)
			}
		}
		if o.assert != nil {
			o.assert(out.Bytes())
		}
		return r.model
	case <-time.After(o.timeout):
		tb.Fatal("tuikit: program did not finish within timeout")
		return nil
	}
}

// TypeText writes s's bytes one at a time onto the program's input pipe,
// each decoded as a plain rune key press. Grounded on the teacher's
// teatest.TypeText.
func TypeText(w io.Writer, s string) {
	for _, b := range []byte(s) {
		_, _ = w.Write([]byte{b})
	}
}

// PressKey writes a raw byte sequence — e.g. "\x1b[A" for Up, "\r" for
// Enter, "\x03" for Ctrl-C — onto the program's input pipe.
func PressKey(w io.Writer, seq string) {
	_, _ = io.WriteString(w, seq)
}
