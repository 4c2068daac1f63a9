package tuikit

import (
	"io"
	"time"
)

// escGraceTimeout bounds how long the decoder waits, after seeing a lone
// ESC byte, for a follow-up byte before concluding it was a standalone
// Escape keypress rather than the start of a CSI/SS3 sequence or an
// Alt-modified key. Pinned low in the xterm-standard 25-100ms range (spec
// §9 Open Questions): see DESIGN.md.
const escGraceTimeout = 25 * time.Millisecond

// byteReader is the minimal surface the decoder needs from the underlying
// input stream: a blocking or timeout-bounded single-byte read.
type byteReader interface {
	// ReadByte reads one byte, blocking up to timeout (timeout < 0 blocks
	// forever). ok is false on timeout.
	ReadByte(timeout time.Duration) (b byte, ok bool, err error)
}

// Decoder turns a byte stream into Key events, handling multi-byte CSI/SS3
// escape sequences and UTF-8 rune assembly. It keeps no buffer of its own:
// the bytes of an escape sequence or rune are pulled from the reader one at
// a time, each follow-up read bounded by escGraceTimeout.
type Decoder struct {
	r byteReader
}

// NewDecoder wraps a byteReader.
func NewDecoder(r byteReader) *Decoder { return &Decoder{r: r} }

// ReadKey returns the next decoded key event, or ok=false if timeoutMs
// elapses with nothing read. timeoutMs < 0 blocks indefinitely.
func (d *Decoder) ReadKey(timeoutMs int) (key Key, ok bool, err error) {
	timeout := time.Duration(timeoutMs) * time.Millisecond
	if timeoutMs < 0 {
		timeout = -1
	}
	b, ok, err := d.r.ReadByte(timeout)
	if err != nil {
		return Key{}, false, err
	}
	if !ok {
		return Key{}, false, nil
	}

	switch {
	case b == 0x1B:
		return d.decodeEscape()
	case b < 0x20:
		return d.decodeControl(b), true, nil
	case b == 0x20:
		return Key{Type: KeySpace, Rune: ' '}, true, nil
	case b == 0x7F:
		return Key{Type: KeyBackspace}, true, nil
	default:
		return d.decodeRune(b)
	}
}

func (d *Decoder) decodeControl(b byte) Key {
	switch b {
	case 0x09:
		return Key{Type: KeyTab}
	case 0x0A, 0x0D:
		return Key{Type: KeyEnter}
	case 0x03:
		return Key{Type: KeyCtrlC, Ctrl: true}
	default:
		t := CtrlLetter(b + 'a' - 1)
		if t == KeyUnknown {
			return Key{Type: KeyUnknown}
		}
		return Key{Type: t, Ctrl: true}
	}
}

// decodeEscape resolves the ESC-prefix ambiguity: a lone Escape, an
// Alt-modified key, or the start of a CSI/SS3 sequence, per spec §4.2 step 2.
func (d *Decoder) decodeEscape() (Key, bool, error) {
	b, ok, err := d.r.ReadByte(escGraceTimeout)
	if err != nil {
		return Key{}, false, err
	}
	if !ok {
		return Key{Type: KeyEscape}, true, nil
	}

	switch b {
	case '[':
		return d.decodeCSI()
	case 'O':
		return d.decodeSS3()
	}

	// Not CSI/SS3: the follow-up byte starts an Alt-modified key. If it's
	// itself the start of a multi-byte UTF-8 rune, assemble the rest.
	if b < 0x80 {
		key := Key{Type: KeyRune, Rune: rune(b), Alt: true}
		if b < 0x20 {
			key = d.decodeControl(b)
			key.Alt = true
		}
		return key, true, nil
	}
	key, ok2, err := d.decodeRune(b)
	key.Alt = true
	return key, ok2, err
}

var csiFinalMap = map[byte]KeyType{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
	'Z': KeyShiftTab,
}

var csiTildeMap = map[string]KeyType{
	"1": KeyHome,
	"2": KeyUnknown, // insert, not modeled
	"3": KeyDelete,
	"4": KeyEnd,
	"5": KeyPageUp,
	"6": KeyPageDown,
	"7": KeyHome,
	"8": KeyEnd,
	"15": KeyF5,
	"17": KeyF6,
	"18": KeyF7,
	"19": KeyF8,
	"20": KeyF9,
	"21": KeyF10,
	"23": KeyF11,
	"24": KeyF12,
}

// decodeCSI consumes parameter bytes (0x30-0x3F), intermediate bytes
// (0x20-0x2F), then one final byte (0x40-0x7E), per spec §4.2.
func (d *Decoder) decodeCSI() (Key, bool, error) {
	var params []byte
	for {
		b, ok, err := d.r.ReadByte(escGraceTimeout)
		if err != nil {
			return Key{}, false, err
		}
		if !ok {
			return Key{Type: KeyUnknown}, true, nil
		}
		if b >= 0x30 && b <= 0x3F {
			params = append(params, b)
			continue
		}
		if b >= 0x20 && b <= 0x2F {
			continue // intermediate byte, discarded
		}
		if b >= 0x40 && b <= 0x7E {
			return d.csiKeyFromFinal(b, string(params)), true, nil
		}
		return Key{Type: KeyUnknown}, true, nil
	}
}

func (d *Decoder) csiKeyFromFinal(final byte, params string) Key {
	if final == '~' {
		// params may carry a trailing ";<modifier>" we don't model; take
		// the leading numeric field.
		num := params
		for i, c := range params {
			if c == ';' {
				num = params[:i]
				break
			}
		}
		if t, ok := csiTildeMap[num]; ok {
			return Key{Type: t}
		}
		return Key{Type: KeyUnknown}
	}
	if t, ok := csiFinalMap[final]; ok {
		return Key{Type: t}
	}
	return Key{Type: KeyUnknown}
}

// decodeSS3 handles ESC O <byte>, mapping P/Q/R/S to F1-F4.
func (d *Decoder) decodeSS3() (Key, bool, error) {
	b, ok, err := d.r.ReadByte(escGraceTimeout)
	if err != nil {
		return Key{}, false, err
	}
	if !ok {
		return Key{Type: KeyUnknown}, true, nil
	}
	switch b {
	case 'P':
		return Key{Type: KeyF1}, true, nil
	case 'Q':
		return Key{Type: KeyF2}, true, nil
	case 'R':
		return Key{Type: KeyF3}, true, nil
	case 'S':
		return Key{Type: KeyF4}, true, nil
	default:
		return Key{Type: KeyUnknown}, true, nil
	}
}

// charLength returns the total UTF-8 byte length implied by a string's
// first byte, from its high-bit pattern: 1, 2, 3, or 4. An invalid leading
// byte (a stray continuation byte, for instance) reports 1 so callers make
// forward progress instead of looping.
func charLength(first byte) int {
	switch {
	case first&0x80 == 0x00:
		return 1
	case first&0xE0 == 0xC0:
		return 2
	case first&0xF0 == 0xE0:
		return 3
	case first&0xF8 == 0xF0:
		return 4
	default:
		return 1
	}
}

// decodeRune assembles a UTF-8 code point starting with the already-read
// lead byte b.
func (d *Decoder) decodeRune(b byte) (Key, bool, error) {
	n := charLength(b)
	buf := make([]byte, 1, n)
	buf[0] = b
	for len(buf) < n {
		cb, ok, err := d.r.ReadByte(escGraceTimeout)
		if err != nil {
			return Key{}, false, err
		}
		if !ok || cb&0xC0 != 0x80 {
			return Key{Type: KeyUnknown}, true, nil
		}
		buf = append(buf, cb)
	}
	r := decodeUTF8(buf)
	if r < 0 {
		return Key{Type: KeyUnknown}, true, nil
	}
	return Key{Type: KeyRune, Rune: r}, true, nil
}

// decodeUTF8 decodes a complete, length-correct UTF-8 byte sequence into a
// rune, returning -1 if it's malformed.
func decodeUTF8(b []byte) rune {
	switch len(b) {
	case 1:
		return rune(b[0])
	case 2:
		return rune(b[0]&0x1F)<<6 | rune(b[1]&0x3F)
	case 3:
		return rune(b[0]&0x0F)<<12 | rune(b[1]&0x3F)<<6 | rune(b[2]&0x3F)
	case 4:
		return rune(b[0]&0x07)<<18 | rune(b[1]&0x3F)<<12 | rune(b[2]&0x3F)<<6 | rune(b[3]&0x3F)
	}
	return -1
}

// This blank reference is the file's only use of the io import; read errors
// such as io.EOF are passed through to ReadKey's caller unchanged.
var _ = io.EOF
