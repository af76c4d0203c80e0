package editor

import "github.com/commanderHR1/hx/internal/key"

// replaceMode overwrites the byte at the cursor. A replacement takes two
// key events, each a hex digit, high nibble first; an invalid digit aborts
// the whole replacement and leaves the mode ready for the next attempt.
type replaceMode struct {
	*editorImpl

	highNibble key.Key
	hasPending bool
}

func (m *replaceMode) handle(k key.Key) error {
	if !key.IsHexDigit(k) {
		m.statusf(StatusError, "'%s' is not valid hex", keyText(k))
		return nil
	}
	if m.doc.Len() == 0 {
		m.statusf(StatusWarning, "Nothing to replace")
		return nil
	}
	m.highNibble = k
	m.hasPending = true
	return nil
}

func (m *replaceMode) consumePending(k key.Key) bool {
	if !m.hasPending {
		return false
	}
	m.hasPending = false

	if !key.IsHexDigit(k) {
		m.statusf(StatusError, "'%s' is not valid hex", keyText(k))
		return true
	}

	offset := m.offsetAtCursor()
	value := key.HexNibble(m.highNibble)<<4 | key.HexNibble(k)
	m.doc.Replace(offset, value)
	m.moveCursor(key.Right, 1)
	m.statusf(StatusInfo, "Replaced byte at offset %09x with %02x", offset, value)
	return true
}
