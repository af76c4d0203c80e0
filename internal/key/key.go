// Package key decodes the raw byte stream of a terminal in raw mode into
// logical key events. The reader behind the decoder uses a bounded read
// timeout, so a read legitimately returning no bytes means "nothing yet",
// never end of input.
package key

import (
	"errors"
	"io"
	"syscall"
)

// Key identifies one logical key event. Values below 256 are the literal
// byte that was read; the virtual keys above 1000 do not correspond to any
// single byte and merely identify decoded escape sequences.
type Key int

const (
	Null  Key = 0
	CtrlQ Key = 0x11 // DC1, quit
	CtrlS Key = 0x13 // DC3, save
	Esc   Key = 0x1b
)

// Virtual keys.
const (
	Up Key = 1000 + iota
	Down
	Right
	Left
	Home
	End
	PageUp
	PageDown
)

// ErrNoInput reports that no key event arrived this tick, either because
// the read timed out or because it was interrupted (typically by a resize
// signal). It is a harmless abort of the current key, not a failure.
var ErrNoInput = errors.New("key: no input")

// Decoder turns raw bytes into key events. It keeps no state between calls:
// every event is decoded from scratch, so a half-read escape sequence never
// poisons the next key.
type Decoder struct {
	r io.Reader
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// Next reads and decodes one key event. Escape sequences are resolved by
// reading up to three more bytes without any extra blocking tolerance: if
// the follow-up bytes are not already there, the event is a bare Esc.
func (d *Decoder) Next() (Key, error) {
	var buf [1]byte
	n, err := d.r.Read(buf[:])
	if err != nil {
		if errors.Is(err, syscall.EINTR) {
			return Null, ErrNoInput
		}
		return Null, err
	}
	if n == 0 {
		return Null, ErrNoInput
	}

	c := Key(buf[0])
	if c != Esc {
		return c, nil
	}

	// Escape key was pressed, or the start of a sequence like arrows,
	// home or page keys. Read ahead; a lone Escape produces nothing more.
	var seq [3]byte
	if !d.readByte(&seq[0]) || !d.readByte(&seq[1]) {
		return Esc, nil
	}
	if seq[0] != '[' {
		return Esc, nil
	}

	if seq[1] >= '0' && seq[1] <= '9' {
		// home = ESC [ 1 ~, end = ESC [ 4 ~, pageup = ESC [ 5 ~,
		// pagedown = ESC [ 6 ~
		if !d.readByte(&seq[2]) || seq[2] != '~' {
			return Esc, nil
		}
		switch seq[1] {
		case '1':
			return Home, nil
		case '4':
			return End, nil
		case '5':
			return PageUp, nil
		case '6':
			return PageDown, nil
		}
		return Esc, nil
	}

	switch seq[1] {
	case 'A':
		return Up, nil
	case 'B':
		return Down, nil
	case 'C':
		return Right, nil
	case 'D':
		return Left, nil
	case 'H':
		return Home, nil
	case 'F':
		return End, nil
	}
	return Esc, nil
}

func (d *Decoder) readByte(p *byte) bool {
	var b [1]byte
	n, _ := d.r.Read(b[:])
	if n != 1 {
		return false
	}
	*p = b[0]
	return true
}

// IsHexDigit reports whether the key is a literal hexadecimal digit.
func IsHexDigit(k Key) bool {
	return (k >= '0' && k <= '9') ||
		(k >= 'A' && k <= 'F') ||
		(k >= 'a' && k <= 'f')
}

// HexNibble returns the value of a hex digit key. The key must satisfy
// IsHexDigit.
func HexNibble(k Key) byte {
	switch {
	case k >= '0' && k <= '9':
		return byte(k - '0')
	case k >= 'a' && k <= 'f':
		return byte(10 + k - 'a')
	default:
		return byte(10 + k - 'A')
	}
}
