// Package coords relates the one dimensional byte offset of a document to
// the two dimensional cursor position on screen, given the line the viewport
// is scrolled to. Cursor positions are 1-based because terminal cursor
// positions are; offsets and viewport lines are 0-based.
package coords

// OffsetAt computes the byte offset the cursor is on. The cursor x and y are
// bound between (1 .. octets per line) and (1 .. screen rows), and the
// scrolled line is taken into account. The result is clamped so that it can
// always be used to index the document; for an empty document it is 0.
func OffsetAt(cursorX, cursorY, line, octetsPerLine, contentLength int) int {
	// An empty document has exactly one addressable position, no matter
	// where the cursor sits on screen.
	if contentLength == 0 {
		return 0
	}
	offset := (cursorY-1+line)*octetsPerLine + (cursorX - 1)
	if offset <= 0 {
		return 0
	}
	if offset >= contentLength {
		return contentLength - 1
	}
	return offset
}

// PositionAt finds the cursor position for the given offset, taking the
// scrolled line into account. It does not scroll: the caller must make sure
// the resulting y is visible, by clamping the line first (see ClampScroll).
func PositionAt(offset, line, octetsPerLine int) (x, y int) {
	x = offset%octetsPerLine + 1
	y = offset/octetsPerLine - line + 1
	return x, y
}

// ClampScroll adds units to the viewport line and clamps the result to the
// legal scroll range. The upper bound keeps screenRows-2 rows of content on
// screen (one row is the status line) so the final screen is never empty;
// the lower bound is line 0. Every scroll-causing action routes through
// here.
func ClampScroll(line, units, contentLength, octetsPerLine, screenRows int) int {
	line += units

	upper := contentLength/octetsPerLine - (screenRows - 2)
	if line >= upper {
		line = upper
	}

	// When the whole document fits on one screen the upper bound goes
	// negative; cap at the first line in that case too.
	if line <= 0 {
		line = 0
	}
	return line
}
