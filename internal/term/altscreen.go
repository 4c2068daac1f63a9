package term

// AltScreen is a scoped handle over the terminal's alternate screen
// buffer. Entering clears the buffer and optionally hides the cursor;
// leaving restores the primary buffer and cursor visibility.
type AltScreen struct {
	screen   *Screen
	hideCur  bool
	active   bool
}

// EnterAltScreen switches out to the alternate screen buffer, clears it,
// and hides the cursor if hideCursor is set.
func EnterAltScreen(s *Screen, hideCursor bool) *AltScreen {
	a := &AltScreen{screen: s, hideCur: hideCursor}
	s.write("\x1b[?1049h")
	s.ClearToEnd()
	if hideCursor {
		s.HideCursor()
	}
	a.active = true
	return a
}

// Active reports whether the alternate screen is currently entered.
func (a *AltScreen) Active() bool { return a != nil && a.active }

// Leave restores the primary screen buffer and, if the cursor was hidden on
// entry, shows it again. Safe to call on a nil or already-inactive handle.
func (a *AltScreen) Leave() {
	if a == nil || !a.active {
		return
	}
	a.active = false
	if a.hideCur {
		a.screen.ShowCursor()
	}
	a.screen.write("\x1b[?1049l")
}
