package tuikit

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithoutSignals_SetsFlag(t *testing.T) {
	o := defaultOptions()
	assert.False(t, o.withoutSignals)
	WithoutSignals()(&o)
	assert.True(t, o.withoutSignals)
}

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	assert.Equal(t, 50, o.inputTimeoutMs)
	assert.Equal(t, 60, o.fps)
	assert.False(t, o.altScreen)
	assert.False(t, o.hiddenCursor)
}

func TestWithAltScreenAndHiddenCursor(t *testing.T) {
	o := defaultOptions()
	WithAltScreen()(&o)
	WithHiddenCursor()(&o)
	assert.True(t, o.altScreen)
	assert.True(t, o.hiddenCursor)
}

func TestWithInputTimeout_ClampsNonPositive(t *testing.T) {
	o := defaultOptions()
	WithInputTimeout(0)(&o)
	assert.Equal(t, 50, o.inputTimeoutMs)

	WithInputTimeout(200)(&o)
	assert.Equal(t, 200, o.inputTimeoutMs)
}

func TestWithFPS_ClampsToBounds(t *testing.T) {
	o := defaultOptions()
	WithFPS(500)(&o)
	assert.Equal(t, 120, o.fps)

	WithFPS(30)(&o)
	assert.Equal(t, 30, o.fps)
}

func TestWithOutputAndInput(t *testing.T) {
	var buf bytes.Buffer
	o := defaultOptions()
	WithOutput(&buf)(&o)
	assert.Equal(t, &buf, o.output)

	in := bytes.NewReader([]byte("x"))
	WithInput(in)(&o)
	assert.Equal(t, in, o.input)
}
