package editor

import "github.com/commanderHR1/hx/internal/key"

// insertMode grows the document at the cursor. Like a replacement, an
// insertion takes two hex digit key events, high nibble first; the composed
// byte is inserted at the cursor offset, shifting the tail right, and the
// cursor advances onto the shifted byte's old position.
type insertMode struct {
	*editorImpl

	highNibble key.Key
	hasPending bool
}

func (m *insertMode) handle(k key.Key) error {
	if !key.IsHexDigit(k) {
		m.statusf(StatusError, "'%s' is not valid hex", keyText(k))
		return nil
	}
	m.highNibble = k
	m.hasPending = true
	return nil
}

func (m *insertMode) consumePending(k key.Key) bool {
	if !m.hasPending {
		return false
	}
	m.hasPending = false

	if !key.IsHexDigit(k) {
		m.statusf(StatusError, "'%s' is not valid hex", keyText(k))
		return true
	}

	// For an empty document the cursor offset degenerates to 0, which is
	// exactly the append position.
	offset := m.offsetAtCursor()
	value := key.HexNibble(m.highNibble)<<4 | key.HexNibble(k)
	m.doc.Insert(offset, value)
	m.moveCursor(key.Right, 1)
	m.statusf(StatusInfo, "Inserted %02x at offset %09x", value, offset)
	return true
}
