package spinner

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRun_ReturnsTaskResultVerbatim(t *testing.T) {
	var buf bytes.Buffer
	s := New().Style(Style{Frames: []string{"|"}, FPS: time.Millisecond}).Title("working")
	s.out = &buf

	result := Run(s, func() int {
		time.Sleep(5 * time.Millisecond)
		return 42
	})

	assert.Equal(t, 42, result)
}

func TestRun_AnimatesAtLeastOneFrame(t *testing.T) {
	var buf bytes.Buffer
	s := New().Style(Style{Frames: []string{"|", "/"}, FPS: time.Millisecond}).Title("loading")
	s.out = &buf

	Run(s, func() string {
		time.Sleep(10 * time.Millisecond)
		return "done"
	})

	assert.Contains(t, buf.String(), "loading")
}

func TestRampColor_InterpolatesBetweenStops(t *testing.T) {
	c := rampColor([]string{"#FF0000", "#0000FF"}, 0, 4)
	assert.Equal(t, "#ff0000", c)
	last := rampColor([]string{"#FF0000", "#0000FF"}, 3, 4)
	assert.Equal(t, "#0000ff", last)
}

func TestAllStylesHaveFrames(t *testing.T) {
	for _, s := range []Style{Line, Dots, MiniDot, Jump, Pulse, Points, Globe, Moon, Monkey, Meter, Hamburger, BouncingBar, BouncingBall, Aesthetic, Point} {
		assert.NotEmpty(t, s.Frames)
		assert.Greater(t, int(s.FPS), 0)
	}
}
