// Package spinner implements a self-driving progress spinner: unlike the
// other widgets in this module it does not run inside the Elm loop (there
// is no Model/Update/View triple to wire into a Program) but instead ticks
// its own frames on a goroutine while a caller-supplied task runs
// concurrently, grounded on original_source/include/scan/bubbles/
// spinner.hpp's Spinner::run. The frame-style table and color handling
// follow the teacher's bubbles/spinner/spinner.go.
package spinner

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"

	"github.com/nodewerx/tuikit/internal/term"
)

// Style is a named set of animation frames with a default tick interval.
type Style struct {
	Frames []string
	FPS    time.Duration
}

// The fifteen styles named in spec.md's Spinner contract.
var (
	Line = Style{
		Frames: []string{"|", "/", "-", "\\"},
		FPS:    time.Second / 10,
	}
	Dots = Style{
		Frames: []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"},
		FPS:    time.Second / 10,
	}
	MiniDot = Style{
		Frames: []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
		FPS:    time.Second / 12,
	}
	Jump = Style{
		Frames: []string{"⢄", "⢂", "⢁", "⡁", "⡈", "⡐", "⡠"},
		FPS:    time.Second / 10,
	}
	Pulse = Style{
		Frames: []string{"█", "▓", "▒", "░"},
		FPS:    time.Second / 8,
	}
	Points = Style{
		Frames: []string{"∙∙∙", "●∙∙", "∙●∙", "∙∙●"},
		FPS:    time.Second / 7,
	}
	Globe = Style{
		Frames: []string{"🌍", "🌎", "🌏"},
		FPS:    time.Second / 4,
	}
	Moon = Style{
		Frames: []string{"🌑", "🌒", "🌓", "🌔", "🌕", "🌖", "🌗", "🌘"},
		FPS:    time.Second / 8,
	}
	Monkey = Style{
		Frames: []string{"🙈", "🙉", "🙊"},
		FPS:    time.Second / 3,
	}
	Meter = Style{
		Frames: []string{"▱▱▱", "▰▱▱", "▰▰▱", "▰▰▰", "▰▰▱", "▰▱▱"},
		FPS:    time.Second / 7,
	}
	Hamburger = Style{
		Frames: []string{"☱", "☲", "☴", "☲"},
		FPS:    time.Second / 3,
	}
	BouncingBar = Style{
		Frames: []string{"[    ]", "[=   ]", "[==  ]", "[=== ]", "[ ===]", "[  ==]", "[   =]", "[    ]", "[   =]", "[  ==]", "[ ===]", "[====]", "[=== ]", "[==  ]", "[=   ]"},
		FPS:    time.Second / 10,
	}
	BouncingBall = Style{
		Frames: []string{"( ●    )", "(  ●   )", "(   ●  )", "(    ● )", "(     ●)", "(    ● )", "(   ●  )", "(  ●   )", "( ●    )", "(●     )"},
		FPS:    time.Second / 10,
	}
	Aesthetic = Style{
		Frames: []string{"▰▱▱▱▱▱▱", "▰▰▱▱▱▱▱", "▰▰▰▱▱▱▱", "▰▰▰▰▱▱▱", "▰▰▰▰▰▱▱", "▰▰▰▰▰▰▱", "▰▰▰▰▰▰▰", "▱▰▰▰▰▰▰", "▱▱▰▰▰▰▰", "▱▱▱▰▰▰▰", "▱▱▱▱▰▰▰", "▱▱▱▱▱▰▰", "▱▱▱▱▱▱▰", "▱▱▱▱▱▱▱"},
		FPS:    time.Second / 8,
	}
	Point = Style{
		Frames: []string{"∙∙∙", "●∙∙", "∙●∙", "∙∙●", "∙∙∙"},
		FPS:    time.Second / 6,
	}
)

// Spinner is the fluent builder and runner.
type Spinner struct {
	style    Style
	title    string
	color    string
	gradient []string
	out      io.Writer
}

// New returns a spinner using Style Line by default.
func New() *Spinner {
	return &Spinner{style: Line, out: os.Stdout}
}

func (s *Spinner) Title(title string) *Spinner {
	s.title = title
	return s
}

func (s *Spinner) Style(style Style) *Spinner {
	s.style = style
	return s
}

// Color sets a flat hex foreground color ("#FF5733") for every frame.
func (s *Spinner) Color(hex string) *Spinner {
	s.color = hex
	return s
}

// Gradient sets a list of hex colors interpolated across the frame
// sequence via a perceptually-even BlendLuv ramp.
func (s *Spinner) Gradient(hexColors ...string) *Spinner {
	s.gradient = hexColors
	return s
}

func (s *Spinner) frameColor(i, total int) string {
	switch {
	case len(s.gradient) >= 2:
		return rampColor(s.gradient, i, total)
	case s.color != "":
		return s.color
	default:
		return ""
	}
}

// rampColor returns the hex color at position i of total, interpolated
// across stops using BlendLuv, the perceptually-uniform blend that the
// teacher's lipgloss-adjacent color handling favors over raw RGB lerp.
func rampColor(stops []string, i, total int) string {
	if total <= 1 {
		c, _ := colorful.Hex(stops[0])
		return c.Hex()
	}
	t := float64(i) / float64(total-1)
	segment := t * float64(len(stops)-1)
	lo := int(segment)
	if lo >= len(stops)-1 {
		c, _ := colorful.Hex(stops[len(stops)-1])
		return c.Hex()
	}
	frac := segment - float64(lo)
	a, errA := colorful.Hex(stops[lo])
	b, errB := colorful.Hex(stops[lo+1])
	if errA != nil || errB != nil {
		return stops[lo]
	}
	return a.BlendLuv(b, frac).Hex()
}

func (s *Spinner) render(frame int) string {
	glyph := s.style.Frames[frame%len(s.style.Frames)]
	col := s.frameColor(frame%len(s.style.Frames), len(s.style.Frames))
	if col != "" && termenv.ColorProfile() != termenv.Ascii {
		glyph = termenv.String(glyph).Foreground(termenv.ColorProfile().Color(col)).String()
	}
	if s.title != "" {
		return glyph + " " + s.title
	}
	return glyph
}

// Run starts the spinner, runs task on its own goroutine, and ticks frames
// at the style's FPS until task returns. The task's result is returned
// verbatim; the spinner never surfaces an error of its own.
func Run[T any](s *Spinner, task func() T) T {
	scr := term.NewScreen(s.out)
	scr.HideCursor()
	defer scr.ShowCursor()

	done := make(chan T, 1)
	go func() { done <- task() }()

	ticker := time.NewTicker(s.style.FPS)
	defer ticker.Stop()

	frame := 0
	for {
		select {
		case result := <-done:
			fmt.Fprint(s.out, "\r\033[2K")
			return result
		case <-ticker.C:
			fmt.Fprintf(s.out, "\r\033[2K%s", s.render(frame))
			frame++
		}
	}
}

// RunUntilCancelled animates the spinner until stop is closed (or receives
// a value), without a companion task, for long-lived "working..."
// indicators.
func RunUntilCancelled(s *Spinner, stop <-chan struct{}) {
	scr := term.NewScreen(s.out)
	scr.HideCursor()
	defer scr.ShowCursor()

	ticker := time.NewTicker(s.style.FPS)
	defer ticker.Stop()

	frame := 0
	for {
		select {
		case <-stop:
			fmt.Fprint(s.out, "\r\033[2K")
			return
		case <-ticker.C:
			fmt.Fprintf(s.out, "\r\033[2K%s", s.render(frame))
			frame++
		}
	}
}
