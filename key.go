package tuikit

import "strings"

// KeyType identifies the kind of keystroke a Key represents. For KeyRune
// and KeySpace, Key.Rune carries the Unicode code point; for every other
// type Key.Rune is zero.
type KeyType int

const (
	KeyUnknown KeyType = iota
	KeyRune
	KeySpace
	KeyEnter
	KeyTab
	KeyShiftTab
	KeyBackspace
	KeyDelete
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyEscape
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	// KeyCtrlA through KeyCtrlZ are contiguous so CtrlLetter can index them.
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyCtrlH
	KeyCtrlI
	KeyCtrlJ
	KeyCtrlK
	KeyCtrlL
	KeyCtrlM
	KeyCtrlN
	KeyCtrlO
	KeyCtrlP
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlT
	KeyCtrlU
	KeyCtrlV
	KeyCtrlW
	KeyCtrlX
	KeyCtrlY
	KeyCtrlZ
)

// CtrlLetter returns the KeyType for Ctrl+<letter>, where letter is 'a'..'z'
// (case-insensitive). It panics-free: out-of-range letters return KeyUnknown.
func CtrlLetter(letter byte) KeyType {
	letter = letter | 0x20 // lowercase
	if letter < 'a' || letter > 'z' {
		return KeyUnknown
	}
	return KeyCtrlA + KeyType(letter-'a')
}

var keyNames = map[KeyType]string{
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyShiftTab:  "shift+tab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "pgup",
	KeyPageDown:  "pgdown",
	KeyEscape:    "esc",
	KeySpace:     "space",
	KeyF1:        "f1",
	KeyF2:        "f2",
	KeyF3:        "f3",
	KeyF4:        "f4",
	KeyF5:        "f5",
	KeyF6:        "f6",
	KeyF7:        "f7",
	KeyF8:        "f8",
	KeyF9:        "f9",
	KeyF10:       "f10",
	KeyF11:       "f11",
	KeyF12:       "f12",
}

func init() {
	for k := KeyCtrlA; k <= KeyCtrlZ; k++ {
		letter := byte('a' + (k - KeyCtrlA))
		keyNames[k] = "ctrl+" + string(letter)
	}
}

// Key describes a single decoded keystroke.
type Key struct {
	Type  KeyType
	Rune  rune
	Alt   bool
	Ctrl  bool
	Shift bool
}

// String returns a friendly, comparable representation of the key, e.g.
// "a", "ctrl+c", "alt+enter".
func (k Key) String() string {
	var b strings.Builder
	if k.Alt {
		b.WriteString("alt+")
	}
	if k.Ctrl && k.Type != KeyUnknown && k.Type < KeyCtrlA {
		b.WriteString("ctrl+")
	}
	switch k.Type {
	case KeyRune:
		b.WriteRune(k.Rune)
	case KeySpace:
		b.WriteString("space")
	default:
		if name, ok := keyNames[k.Type]; ok {
			b.WriteString(name)
		} else {
			b.WriteString("unknown")
		}
	}
	return b.String()
}
