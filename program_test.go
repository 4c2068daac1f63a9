package tuikit

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

type quitterModel struct{ quit bool }

func (m quitterModel) ShouldQuit() bool { return m.quit }

func TestRun_ReturnsErrInterruptedWhenInputIsNotATTY(t *testing.T) {
	r, w, err := os.Pipe()
	assert.NoError(t, err)
	defer r.Close()
	defer w.Close()

	var out bytes.Buffer
	p := NewProgram(
		func() (Model, Cmd) { return quitterModel{}, nil },
		func(m Model, msg Msg) (Model, Cmd) { return m, nil },
		func(m Model) string { return "" },
		WithInput(r),
		WithOutput(&out),
	)

	model, err := p.Run()
	assert.Nil(t, model)
	assert.True(t, errors.Is(err, ErrInterrupted))
}

func TestDispatch_UnwrapsBatchAndSequenceMessages(t *testing.T) {
	ch := make(chan Msg, 8)
	dispatch(context.Background(), batchMsg{
		func() Msg { return QuitMsg{} },
	}, ch)
	assert.IsType(t, QuitMsg{}, <-ch)

	dispatch(context.Background(), sequenceMsg{
		func() Msg { return TickMsg{ID: 1} },
		nil,
		func() Msg { return TickMsg{ID: 2} },
	}, ch)
	assert.Equal(t, 1, (<-ch).(TickMsg).ID)
	assert.Equal(t, 2, (<-ch).(TickMsg).ID)
}

func TestDispatch_NilMessageIsDropped(t *testing.T) {
	ch := make(chan Msg, 1)
	dispatch(context.Background(), nil, ch)
	select {
	case <-ch:
		t.Fatal("expected no message to be dispatched")
	default:
	}
}

func TestPendingFrame_TakeIfDirtyClearsDirtyFlag(t *testing.T) {
	f := &pendingFrame{}

	_, ok := f.takeIfDirty()
	assert.False(t, ok)

	f.set("hello")
	content, ok := f.takeIfDirty()
	assert.True(t, ok)
	assert.Equal(t, "hello", content)

	_, ok = f.takeIfDirty()
	assert.False(t, ok)
}

func TestPendingFrame_SetOverwritesUnconsumedContent(t *testing.T) {
	f := &pendingFrame{}
	f.set("first")
	f.set("second")

	content, ok := f.takeIfDirty()
	assert.True(t, ok)
	assert.Equal(t, "second", content)
}
