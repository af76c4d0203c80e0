package editor

import (
	"fmt"
	"io"
	"sync"

	"github.com/dustin/go-humanize"

	"github.com/commanderHR1/hx"
	"github.com/commanderHR1/hx/internal/buffer"
	"github.com/commanderHR1/hx/internal/coords"
	"github.com/commanderHR1/hx/internal/key"
	"github.com/commanderHR1/hx/internal/logger"
)

// Terminal is the slice of the terminal collaborator the editor needs: the
// screen dimensions on demand, and a sink for complete frames.
type Terminal interface {
	Size() (rows, cols int, err error)
	WriteFrame(frame []byte) error
}

// New builds an editor around an already-loaded document. The terminal must
// be able to report its size, or startup fails.
func New(doc *buffer.Document, term Terminal, octetsPerLine, grouping int) (hx.Editor, error) {
	rows, cols, err := term.Size()
	if err != nil {
		return nil, err
	}

	e := &editorImpl{
		term:          term,
		doc:           doc,
		octetsPerLine: octetsPerLine,
		grouping:      grouping,
		cursorX:       1,
		cursorY:       1,
		screenRows:    rows,
		screenCols:    cols,
	}

	// Initialize in normal mode.
	e.setMode(ModeNormal)

	if doc.ReadOnly() {
		e.statusf(StatusWarning, "%q (%s) [readonly]", doc.Filename(), humanize.Bytes(uint64(doc.Len())))
	} else {
		e.statusf(StatusInfo, "%q (%s)", doc.Filename(), humanize.Bytes(uint64(doc.Len())))
	}
	logger.Info("file opened",
		"file", doc.Filename(), "bytes", doc.Len(), "readonly", doc.ReadOnly())

	return e, nil
}

type editorImpl struct {
	// mu serializes the key loop against the asynchronous resize
	// notification; nothing else ever touches the editor.
	mu sync.Mutex

	term Terminal
	doc  *buffer.Document

	octetsPerLine int // amount of octets (bytes) per line
	grouping      int // amount of bytes per group

	line                   int // the scrolled-to row, in octetsPerLine units
	cursorX, cursorY       int // 1-based cursor position on the screen
	screenRows, screenCols int

	mode       Mode
	activeMode editorMode

	statusMessage  string
	statusSeverity Severity
}

var _ hx.Editor = (*editorImpl)(nil)

func (e *editorImpl) Handle(k key.Key) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.dispatch(k); err != nil {
		return err
	}
	e.refresh()
	return nil
}

func (e *editorImpl) dispatch(k key.Key) error {
	// A bare escape always returns to normal mode. Rebuilding the mode
	// value drops any pending two-key sequence with it.
	if k == key.Esc {
		e.setMode(ModeNormal)
		return nil
	}

	// A mode waiting on the second key of a sequence consumes the event
	// wholesale, before the global bindings see it.
	if e.activeMode.consumePending(k) {
		return nil
	}

	// Keys honored in every mode.
	switch k {
	case key.CtrlQ:
		logger.Info("quit", "file", e.doc.Filename(), "dirty", e.doc.Dirty())
		return io.EOF
	case key.CtrlS:
		e.save()
		return nil
	case key.Up, key.Down, key.Left, key.Right:
		e.moveCursor(k, 1)
		return nil
	case key.Home:
		e.cursorX = 1
		return nil
	case key.End:
		e.cursorX = e.octetsPerLine
		return nil
	case key.PageUp:
		e.scroll(-e.screenRows + 2)
		return nil
	case key.PageDown:
		e.scroll(e.screenRows - 2)
		return nil
	}

	return e.activeMode.handle(k)
}

func (e *editorImpl) Refresh() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.refresh()
}

// Resize re-reads the screen dimensions, restores the viewport invariants
// under the new size and redraws. It runs on the signal goroutine while
// Handle may be blocked waiting for input; it never touches the document.
func (e *editorImpl) Resize() {
	e.mu.Lock()
	defer e.mu.Unlock()

	// Failing to query the new size is not fatal: the old geometry stays
	// in effect until the next resize.
	rows, cols, err := e.term.Size()
	if err != nil {
		logger.Warn("resize failed, keeping previous size", "err", err)
		return
	}
	e.screenRows, e.screenCols = rows, cols
	e.line = coords.ClampScroll(e.line, 0, e.doc.Len(), e.octetsPerLine, e.screenRows)
	if e.cursorY > e.screenRows-1 {
		e.cursorY = e.screenRows - 1
	}
	if e.cursorY < 1 {
		e.cursorY = 1
	}
	logger.Debug("terminal resized", "rows", rows, "cols", cols)
	e.refresh()
}

func (e *editorImpl) Close() {
	logger.Info("editor closed", "file", e.doc.Filename(), "dirty", e.doc.Dirty())
}

func (e *editorImpl) setMode(m Mode) {
	if m != e.mode {
		logger.Debug("mode changed", "from", e.mode.String(), "to", m.String())
	}
	e.mode = m
	switch m {
	case ModeNormal:
		e.statusf(StatusInfo, "")
		e.activeMode = &normalMode{editorImpl: e}
	case ModeInsert:
		e.statusf(StatusInfo, "-- INSERT --")
		e.activeMode = &insertMode{editorImpl: e}
	case ModeReplace:
		e.statusf(StatusInfo, "-- REPLACE --")
		e.activeMode = &replaceMode{editorImpl: e}
	case ModeCommand:
		e.activeMode = &commandMode{editorImpl: e}
	}
}

// moveCursor moves the cursor over the hex grid. Cursor positions are
// 1-based. Moving past the left or right edge wraps to the adjacent row
// like a text editor; moving past the top or bottom of the screen scrolls
// instead, and the end of the document halts the cursor on its last byte.
func (e *editorImpl) moveCursor(dir key.Key, amount int) {
	switch dir {
	case key.Up:
		e.cursorY -= amount
	case key.Down:
		e.cursorY += amount
	case key.Left:
		e.cursorX -= amount
	case key.Right:
		e.cursorX += amount
	}

	// Hitting the start of the file stops all movement at the top left.
	if e.cursorX <= 1 && e.cursorY <= 1 && e.line <= 0 {
		e.cursorX = 1
		e.cursorY = 1
		return
	}

	if e.cursorX < 1 {
		// Moving left over the leftmost boundary goes up a row, cursor
		// to the rightmost column.
		if e.cursorY >= 1 {
			e.cursorY--
			e.cursorX = e.octetsPerLine
		}
	} else if e.cursorX > e.octetsPerLine {
		// Moving right over the rightmost boundary goes down a row,
		// cursor to the first column.
		e.cursorY++
		e.cursorX = 1
	}

	// Moving up when the first row is already showing goes nowhere.
	if e.cursorY <= 1 && e.line <= 0 {
		e.cursorY = 1
	}

	// Past the visible rows the viewport scrolls instead of the cursor.
	if e.cursorY > e.screenRows-1 {
		e.cursorY = e.screenRows - 1
		e.scroll(1)
	} else if e.cursorY < 1 && e.line > 0 {
		e.cursorY = 1
		e.scroll(-1)
	}

	// The end of the file halts the cursor on the last valid offset.
	if offset := e.offsetAtCursor(); offset >= e.doc.Len()-1 {
		e.cursorX, e.cursorY = e.cursorAtOffset(offset)
	}
}

func (e *editorImpl) scroll(units int) {
	e.line = coords.ClampScroll(e.line, units, e.doc.Len(), e.octetsPerLine, e.screenRows)
}

func (e *editorImpl) offsetAtCursor() int {
	return coords.OffsetAt(e.cursorX, e.cursorY, e.line, e.octetsPerLine, e.doc.Len())
}

func (e *editorImpl) cursorAtOffset(offset int) (x, y int) {
	return coords.PositionAt(offset, e.line, e.octetsPerLine)
}

// deleteAtCursor removes the byte under the cursor. When the removed byte
// was the last valid offset the cursor moves one step left so it never
// points past the end.
func (e *editorImpl) deleteAtCursor() {
	if e.doc.Len() == 0 {
		e.statusf(StatusWarning, "Nothing to delete")
		return
	}

	offset := e.offsetAtCursor()
	oldLength := e.doc.Len()
	e.doc.Delete(offset)

	if e.doc.Len() == 0 {
		e.line = 0
		e.cursorX, e.cursorY = 1, 1
		return
	}
	if offset >= oldLength-1 {
		e.moveCursor(key.Left, 1)
	}
}

func (e *editorImpl) incrementByte(amount int) {
	if e.doc.Len() == 0 {
		e.statusf(StatusWarning, "Nothing to increment")
		return
	}
	e.doc.Increment(e.offsetAtCursor(), amount)
}

func (e *editorImpl) save() {
	n, err := e.doc.Save()
	if err != nil {
		logger.Error("save failed", "file", e.doc.Filename(), "err", err)
		e.statusf(StatusError, "Unable to write %q: %v", e.doc.Filename(), err)
		return
	}
	logger.Info("buffer written", "file", e.doc.Filename(), "bytes", n)
	e.statusf(StatusInfo, "%q, %d bytes written", e.doc.Filename(), n)
}

// statusf sets the status message shown on the status line, replacing the
// previous one. Only this layer, which knows user intent, decides severity
// and wording; buffer and coordinate operations never do.
func (e *editorImpl) statusf(sev Severity, format string, args ...any) {
	e.statusSeverity = sev
	e.statusMessage = fmt.Sprintf(format, args...)
}

// keyText renders a key for a status message.
func keyText(k key.Key) string {
	if k >= 0x20 && k <= 0x7e {
		return string(rune(k))
	}
	return fmt.Sprintf("\\x%02x", int(k))
}
