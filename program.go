package tuikit

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/nodewerx/tuikit/internal/render"
	"github.com/nodewerx/tuikit/internal/term"
)

// Init returns the initial model and an optional command to run.
type Init func() (Model, Cmd)

// Update reacts to a message, returning the new model and an optional
// command. Models are value types: Update produces a new model rather
// than mutating one in place.
type Update func(Model, Msg) (Model, Cmd)

// View renders a model to the string that will occupy the live region.
type View func(Model) string

// Model is a widget's or application's state. It carries at minimum
// whatever a widget needs; widgets that can submit or be cancelled
// additionally implement Quitter.
type Model interface{}

// Quitter lets a model signal loop termination without a QuitMsg, e.g.
// once its own `submitted`/`cancelled` flags go true. The runtime checks
// this after every Update in addition to watching for QuitMsg (spec §4.5
// step 3: "implementer's choice").
type Quitter interface {
	ShouldQuit() bool
}

// pendingFrame holds the latest View output waiting to be drawn, decoupling
// how often Update runs from how often the terminal is actually redrawn.
// Grounded on the teacher's standard_renderer.go, which ticks its own
// redraws at a fixed framerate instead of rendering on every message so a
// burst of commands never floods the terminal with partial frames.
type pendingFrame struct {
	mu      sync.Mutex
	content string
	dirty   bool
}

func (f *pendingFrame) set(content string) {
	f.mu.Lock()
	f.content = content
	f.dirty = true
	f.mu.Unlock()
}

func (f *pendingFrame) takeIfDirty() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.dirty {
		return "", false
	}
	f.dirty = false
	return f.content, true
}

// Program runs the Model/Update/View event loop against a terminal.
type Program struct {
	init   Init
	update Update
	view   View
	opts   Options
}

// NewProgram constructs a Program. Call Run to start the event loop.
func NewProgram(init Init, update Update, view View, opts ...Option) *Program {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Program{init: init, update: update, view: view, opts: o}
}

// Run acquires raw mode, runs the event loop to completion (a QuitMsg, a
// Quitter model, or input stream closure), tears the terminal back down,
// and returns the final model.
//
// If raw mode cannot be acquired, Run returns the zero Model and
// ErrInterrupted; widget Run wrappers treat that as immediate cancellation
// rather than propagating an error (spec §7).
func (p *Program) Run() (Model, error) {
	fd := term.StdinFd()
	if f, ok := p.opts.input.(*os.File); ok {
		fd = int(f.Fd())
	}

	if !p.opts.forceTTY {
		raw, rawErr := term.Acquire(fd)
		if rawErr != nil || !raw.Active() {
			return nil, fmt.Errorf("%w: %v", ErrInterrupted, rawErr)
		}
		defer raw.Release()
	}

	screen := term.NewScreen(p.opts.output)
	var alt *term.AltScreen
	if p.opts.altScreen {
		alt = term.EnterAltScreen(screen, p.opts.hiddenCursor)
	} else if p.opts.hiddenCursor {
		screen.HideCursor()
	}
	defer func() {
		if alt != nil {
			alt.Leave()
		}
		if p.opts.hiddenCursor && alt == nil {
			screen.ShowCursor()
		}
	}()

	cols, _ := term.Size(fd)
	renderer := render.New(screen, cols)

	reader, err := newCancelableByteReader(p.opts.input)
	if err != nil {
		return nil, fmt.Errorf("tuikit: input reader: %w", err)
	}
	defer reader.Close()
	decoder := NewDecoder(reader)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cmdCh := make(chan Msg, 16)
	keyCh := make(chan Msg, 1)
	errCh := make(chan error, 1)

	schedule := func(cmd Cmd) {
		if cmd == nil {
			return
		}
		go func() { dispatch(ctx, cmd(), cmdCh) }()
	}

	model, cmd0 := p.init()
	schedule(cmd0)
	schedule(func() Msg {
		w, h := term.Size(fd)
		return WindowSizeMsg{Width: w, Height: h}
	})

	if !p.opts.withoutSignals {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGWINCH)
		defer signal.Stop(sig)
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case <-sig:
					w, h := term.Size(fd)
					renderer.SetWidth(w)
					select {
					case cmdCh <- WindowSizeMsg{Width: w, Height: h}:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	frame := &pendingFrame{}
	renderDone := make(chan struct{})
	go func() {
		defer close(renderDone)
		ticker := time.NewTicker(time.Second / time.Duration(p.opts.fps))
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				if content, ok := frame.takeIfDirty(); ok {
					renderer.Render(content)
				}
				return
			case <-ticker.C:
				if content, ok := frame.takeIfDirty(); ok {
					renderer.Render(content)
				}
			}
		}
	}()

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			default:
			}
			key, ok, rerr := decoder.ReadKey(p.opts.inputTimeoutMs)
			if rerr != nil {
				select {
				case errCh <- rerr:
				case <-ctx.Done():
				}
				return
			}
			if !ok {
				continue
			}
			select {
			case keyCh <- KeyMsg(key):
			case <-ctx.Done():
				return
			}
		}
	}()

	frame.set(p.view(model))

	for {
		var msg Msg
		var recvErr error

		// Drain command-produced messages before reading new input, so a
		// non-empty command queue is never starved by the key reader
		// (spec §4.5 ordering guarantee).
		select {
		case msg = <-cmdCh:
		default:
			select {
			case msg = <-cmdCh:
			case msg = <-keyCh:
			case recvErr = <-errCh:
			}
		}

		if recvErr != nil {
			break
		}

		if _, isQuit := msg.(QuitMsg); isQuit {
			break
		}

		var cmd Cmd
		model, cmd = p.update(model, msg)
		schedule(cmd)

		frame.set(p.view(model))

		if q, ok := model.(Quitter); ok && q.ShouldQuit() {
			break
		}
	}

	cancel()
	<-renderDone
	reader.Cancel()
	return model, nil
}

// dispatch runs a command's produced message through the runtime's
// internal batch/sequence unwrapping before handing real messages to
// cmdCh. Meta-messages (batchMsg, sequenceMsg) never reach Update.
func dispatch(ctx context.Context, msg Msg, cmdCh chan<- Msg) {
	switch v := msg.(type) {
	case nil:
		return
	case batchMsg:
		result := runBatchConcurrently(ctx, v)
		dispatch(ctx, result, cmdCh)
	case sequenceMsg:
		for _, c := range v {
			if c == nil {
				continue
			}
			dispatch(ctx, c(), cmdCh)
		}
	default:
		select {
		case cmdCh <- msg:
		case <-ctx.Done():
		}
	}
}
