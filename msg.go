package tuikit

// Msg is a value delivered to an Update function, driving the state
// machine forward. The set of concrete message types is open in spirit
// (applications define their own via UserMsg-style wrapping) but closed
// in a given build.
type Msg interface{}

// KeyMsg is sent whenever a key is pressed, decoded by the input decoder
// in decode.go.
type KeyMsg Key

// String returns the friendly representation of the underlying key, e.g.
// "ctrl+c" or "enter".
func (k KeyMsg) String() string { return Key(k).String() }

// WindowSizeMsg is sent when the program learns the terminal has been
// resized, or once at startup to report the initial size.
type WindowSizeMsg struct {
	Width  int
	Height int
}

// TickMsg is produced by a Tick command once its delay elapses.
type TickMsg struct {
	ID   int
	Time int64 // unix nanos, stamped by the tick command
}

// QuitMsg tells the runtime to exit the event loop.
type QuitMsg struct{}

// batchMsg carries a set of commands that are all started concurrently;
// only the first non-nil message any of them produces is forwarded to
// Update (see runBatchConcurrently).
type batchMsg []Cmd

// sequenceMsg carries a set of commands that must run one after another.
type sequenceMsg []Cmd
