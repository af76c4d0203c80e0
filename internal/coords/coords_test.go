package coords

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOffsetAt(t *testing.T) {
	tests := []struct {
		name                   string
		cursorX, cursorY, line int
		octetsPerLine          int
		contentLength          int
		expected               int
	}{
		{
			name:    "top left of unscrolled screen is offset zero",
			cursorX: 1, cursorY: 1, line: 0,
			octetsPerLine: 16,
			contentLength: 256,
			expected:      0,
		},
		{
			name:    "second row first column",
			cursorX: 1, cursorY: 2, line: 0,
			octetsPerLine: 16,
			contentLength: 256,
			expected:      16,
		},
		{
			name:    "scrolled viewport shifts the offset",
			cursorX: 5, cursorY: 3, line: 2,
			octetsPerLine: 16,
			contentLength: 256,
			expected:      (3-1+2)*16 + 4,
		},
		{
			name:    "clamped to the last valid offset",
			cursorX: 16, cursorY: 10, line: 0,
			octetsPerLine: 16,
			contentLength: 100,
			expected:      99,
		},
		{
			name:    "empty document degenerates to zero",
			cursorX: 1, cursorY: 1, line: 0,
			octetsPerLine: 16,
			contentLength: 0,
			expected:      0,
		},
		{
			name:    "empty document is zero from any cursor position",
			cursorX: 16, cursorY: 1, line: 0,
			octetsPerLine: 16,
			contentLength: 0,
			expected:      0,
		},
		{
			name:    "empty document is zero even when scrolled",
			cursorX: 3, cursorY: 5, line: 2,
			octetsPerLine: 16,
			contentLength: 0,
			expected:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OffsetAt(tt.cursorX, tt.cursorY, tt.line, tt.octetsPerLine, tt.contentLength)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestPositionAt(t *testing.T) {
	x, y := PositionAt(0, 0, 16)
	assert.Equal(t, 1, x)
	assert.Equal(t, 1, y)

	x, y = PositionAt(20, 0, 16)
	assert.Equal(t, 5, x)
	assert.Equal(t, 2, y)

	// A scrolled viewport shifts y but never x.
	x, y = PositionAt(20, 1, 16)
	assert.Equal(t, 5, x)
	assert.Equal(t, 1, y)
}

// Whenever OffsetAt does not clamp, PositionAt must reconstruct the cursor
// position it was derived from.
func TestOffsetPositionRoundTrip(t *testing.T) {
	const (
		octetsPerLine = 16
		contentLength = 4096
	)
	for line := 0; line < 4; line++ {
		for cy := 1; cy <= 8; cy++ {
			for cx := 1; cx <= octetsPerLine; cx++ {
				offset := OffsetAt(cx, cy, line, octetsPerLine, contentLength)
				if offset != (cy-1+line)*octetsPerLine+(cx-1) {
					continue // clamped, round trip not defined
				}
				x, y := PositionAt(offset, line, octetsPerLine)
				assert.Equal(t, cx, x, "x for cursor (%d,%d) line %d", cx, cy, line)
				assert.Equal(t, cy, y, "y for cursor (%d,%d) line %d", cx, cy, line)
			}
		}
	}
}

func TestClampScroll(t *testing.T) {
	tests := []struct {
		name          string
		line, units   int
		contentLength int
		octetsPerLine int
		screenRows    int
		expected      int
	}{
		{
			name: "small file always clamps to zero",
			line: 0, units: 5,
			contentLength: 100,
			octetsPerLine: 16,
			screenRows:    24,
			expected:      0, // 100/16 - 22 < 0
		},
		{
			name: "scrolling up beyond the first line stops at zero",
			line: 2, units: -10,
			contentLength: 4096,
			octetsPerLine: 16,
			screenRows:    24,
			expected:      0,
		},
		{
			name: "scrolling down is capped by the row count",
			line: 0, units: 1000,
			contentLength: 4096,
			octetsPerLine: 16,
			screenRows:    24,
			expected:      4096/16 - 22,
		},
		{
			name: "scroll within range is untouched",
			line: 10, units: 5,
			contentLength: 65536,
			octetsPerLine: 16,
			screenRows:    24,
			expected:      15,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClampScroll(tt.line, tt.units, tt.contentLength, tt.octetsPerLine, tt.screenRows)
			assert.Equal(t, tt.expected, got)
			assert.GreaterOrEqual(t, got, 0, "line must never go negative")
		})
	}
}

func TestClampScrollIdempotent(t *testing.T) {
	for _, line := range []int{0, 1, 7, 100, 10000} {
		once := ClampScroll(line, 0, 4096, 16, 24)
		twice := ClampScroll(once, 0, 4096, 16, 24)
		assert.Equal(t, once, twice, "line %d", line)
	}
}
