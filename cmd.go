package tuikit

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

// Cmd is a deferred effect that may eventually produce a message. It may
// block (sleep, I/O); the runtime always invokes commands off the main
// loop's goroutine. A nil Cmd is a no-op.
type Cmd func() Msg

// None is the command that schedules nothing.
func None() Cmd { return nil }

// Quit returns a command that produces QuitMsg.
func Quit() Cmd {
	return func() Msg { return QuitMsg{} }
}

// Batch runs every given command concurrently and forwards the first
// message any one of them produces; every sub-command is guaranteed to run
// to completion even though only the first message reaches Update (spec
// §4.5: "the spec requires that every sub-command eventually runs").
func Batch(cmds ...Cmd) Cmd {
	var nonNil []Cmd
	for _, c := range cmds {
		if c != nil {
			nonNil = append(nonNil, c)
		}
	}
	if len(nonNil) == 0 {
		return nil
	}
	if len(nonNil) == 1 {
		return nonNil[0]
	}
	return func() Msg { return batchMsg(nonNil) }
}

// Sequence runs the given commands one after another, forwarding each
// produced message to Update in order.
func Sequence(cmds ...Cmd) Cmd {
	var nonNil []Cmd
	for _, c := range cmds {
		if c != nil {
			nonNil = append(nonNil, c)
		}
	}
	if len(nonNil) == 0 {
		return nil
	}
	return func() Msg { return sequenceMsg(nonNil) }
}

// Tick sleeps for d and then produces TickMsg{ID: id}. Intended for timers,
// spinners, and debouncing.
func Tick(d time.Duration, id int) Cmd {
	return func() Msg {
		timer := time.NewTimer(d)
		defer timer.Stop()
		now := <-timer.C
		return TickMsg{ID: id, Time: now.UnixNano()}
	}
}

// runBatchConcurrently executes every sub-command of a batchMsg on its own
// goroutine via errgroup, returning the first non-nil message produced. All
// goroutines are allowed to finish; their messages past the first are
// discarded, matching the "first message any one yields" contract.
func runBatchConcurrently(ctx context.Context, cmds []Cmd) Msg {
	type result struct {
		msg Msg
		at  int
	}
	results := make(chan result, len(cmds))
	g, _ := errgroup.WithContext(ctx)
	for i, c := range cmds {
		i, c := i, c
		g.Go(func() error {
			if c == nil {
				return nil
			}
			results <- result{msg: c(), at: i}
			return nil
		})
	}
	go func() {
		_ = g.Wait()
		close(results)
	}()
	var first Msg
	for r := range results {
		if first == nil && r.msg != nil {
			first = r.msg
		}
	}
	return first
}
