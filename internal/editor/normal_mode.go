package editor

import "github.com/commanderHR1/hx/internal/key"

// normalMode is for navigating and single-key commands, vi style.
type normalMode struct {
	*editorImpl

	// Set after a 'g': the next key must be a second 'g' to jump to the
	// start of the file, anything else drops the sequence silently.
	pendingGoto bool
}

func (m *normalMode) handle(k key.Key) error {
	switch k {
	case 'h':
		m.moveCursor(key.Left, 1)
	case 'j':
		m.moveCursor(key.Down, 1)
	case 'k':
		m.moveCursor(key.Up, 1)
	case 'l':
		m.moveCursor(key.Right, 1)
	case 'b':
		// Move one group back.
		m.moveCursor(key.Left, m.grouping)
	case 'w':
		// Move one group further.
		m.moveCursor(key.Right, m.grouping)
	case 'x':
		m.deleteAtCursor()
	case 'i':
		m.setMode(ModeInsert)
	case 'r':
		m.setMode(ModeReplace)
	case 'G':
		// Scroll to the end, place the cursor on the last byte.
		if m.doc.Len() == 0 {
			return nil
		}
		m.scroll(m.doc.Len())
		m.cursorX, m.cursorY = m.cursorAtOffset(m.doc.Len() - 1)
	case 'g':
		m.pendingGoto = true
	case ']':
		m.incrementByte(1)
	case '[':
		m.incrementByte(-1)
	}
	return nil
}

func (m *normalMode) consumePending(k key.Key) bool {
	if !m.pendingGoto {
		return false
	}
	m.pendingGoto = false
	if k == 'g' {
		// Scroll to the start, place the cursor on the first byte.
		m.line = 0
		m.cursorX, m.cursorY = m.cursorAtOffset(0)
	}
	return true
}
