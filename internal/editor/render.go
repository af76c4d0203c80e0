package editor

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/commanderHR1/hx/internal/logger"
)

// The address gutter is nine hex digits plus a colon; together with the
// leading group separator the first hex column lands on screen column 12.
const firstHexColumn = 12

// refresh composes one complete frame and writes it in a single call:
// hide cursor, cursor home, content, status line, ruler, cursor placement,
// show cursor.
func (e *editorImpl) refresh() {
	var frame bytes.Buffer

	frame.WriteString("\x1b[?25l")
	frame.WriteString("\x1b[H")

	e.renderContents(&frame)
	e.renderStatus(&frame)
	e.renderRuler(&frame)
	e.placeCursor(&frame)

	frame.WriteString("\x1b[?25h")

	if err := e.term.WriteFrame(frame.Bytes()); err != nil {
		logger.Error("frame write failed", "err", err)
	}
}

// renderContents emits the visible window of the document: per row an
// address label, the hex representation of each byte with a separator at
// every group boundary, and the ASCII equivalents of the row.
func (e *editorImpl) renderContents(frame *bytes.Buffer) {
	if e.doc.Len() == 0 {
		frame.WriteString("\x1b[2J")
		frame.WriteString(styleEmpty.Render("empty"))
		frame.WriteString("\r\n")
		return
	}

	start := e.line * e.octetsPerLine
	if start >= e.doc.Len() {
		start = e.doc.Len() - e.octetsPerLine
	}
	if start < 0 {
		start = 0
	}

	// Only one screen's worth of bytes is ever read, the last row being
	// the status line.
	end := start + (e.screenRows-1)*e.octetsPerLine
	if end > e.doc.Len() {
		end = e.doc.Len()
	}

	ascii := make([]byte, 0, e.octetsPerLine)
	row := 0
	rowCharCount := 0

	offset := start
	for ; offset < end; offset++ {
		if offset%e.octetsPerLine == 0 {
			// Start of a new row, beginning with the offset address.
			frame.WriteString(styleAddress.Render(fmt.Sprintf("%09x", offset)))
			frame.WriteByte(':')
			ascii = ascii[:0]
			rowCharCount = 0
			row++
		}

		b := e.doc.Byte(offset)
		if b >= 0x20 && b <= 0x7e {
			ascii = append(ascii, b)
		} else {
			// Non-printable bytes are represented by a dot.
			ascii = append(ascii, '.')
		}

		if offset%e.grouping == 0 {
			frame.WriteByte(' ')
			rowCharCount++
		}

		fmt.Fprintf(frame, "%02x", b)
		rowCharCount += 2

		if (offset+1)%e.octetsPerLine == 0 {
			frame.WriteString("  ")
			e.renderASCII(frame, row, ascii)
			frame.WriteString("\r\n")
		}
	}

	// A partial final row still has its ASCII to write; pad the hex area
	// to the width of a full row first so the ASCII column stays aligned.
	if offset%e.octetsPerLine > 0 {
		padding := e.octetsPerLine*2 + e.octetsPerLine/e.grouping - rowCharCount
		frame.WriteString(strings.Repeat(" ", padding))
		frame.WriteString("\x1b[0m  ")
		e.renderASCII(frame, row, ascii)
	}

	// Clear everything up until the end of the screen.
	frame.WriteString("\x1b[0J")
}

// renderASCII writes the ASCII equivalents of one row. On the cursor's row
// the character matching the cursor column is highlighted so the selected
// byte is easy to identify.
func (e *editorImpl) renderASCII(frame *bytes.Buffer, rownum int, ascii []byte) {
	if rownum != e.cursorY {
		frame.WriteString(styleASCII.Render(string(ascii)))
		return
	}
	for i, c := range ascii {
		if i+1 == e.cursorX {
			frame.WriteString(styleCursorCell.Render(string(c)))
		} else {
			frame.WriteString(styleCursorRow.Render(string(c)))
		}
	}
}

// renderStatus writes the status line on the bottom row, styled by
// severity.
func (e *editorImpl) renderStatus(frame *bytes.Buffer) {
	fmt.Fprintf(frame, "\x1b[%d;1H", e.screenRows)
	frame.WriteString(statusStyle(e.statusSeverity).Render(e.statusMessage))
	frame.WriteString("\x1b[0m")
}

// renderRuler writes the right-aligned readout on the bottom row: cursor
// offset in hex and base 10, the byte under the cursor and how far into the
// file the cursor is. An empty document has nothing to report.
func (e *editorImpl) renderRuler(frame *bytes.Buffer) {
	if e.doc.Len() == 0 {
		return
	}

	offset := e.offsetAtCursor()
	value := e.doc.Byte(offset)
	percentage := int(float64(offset+1) / float64(e.doc.Len()) * 100)

	ruler := fmt.Sprintf("0x%09x,%d (%02x)  %d%%", offset, offset, value, percentage)
	fmt.Fprintf(frame, "\x1b[0m\x1b[%d;%dH", e.screenRows, e.screenCols-len(ruler))
	frame.WriteString(ruler)
}

// placeCursor positions the terminal cursor on the hex digit pair the
// logical cursor addresses. The arithmetic must match renderContents
// exactly, or the visible cursor drifts from the highlighted byte.
func (e *editorImpl) placeCursor(frame *bytes.Buffer) {
	hexChars := (e.cursorX - 1) * 2
	separators := hexChars / (e.grouping * 2)
	fmt.Fprintf(frame, "\x1b[%d;%dH", e.cursorY, hexChars+separators+firstHexColumn)
}
