package key

import (
	"bytes"
	"io"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextDecodesEscapeSequences(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected Key
	}{
		{"plain byte", []byte{'a'}, Key('a')},
		{"control byte", []byte{0x11}, CtrlQ},
		{"arrow up", []byte{0x1b, '[', 'A'}, Up},
		{"arrow down", []byte{0x1b, '[', 'B'}, Down},
		{"arrow right", []byte{0x1b, '[', 'C'}, Right},
		{"arrow left", []byte{0x1b, '[', 'D'}, Left},
		{"home letter form", []byte{0x1b, '[', 'H'}, Home},
		{"end letter form", []byte{0x1b, '[', 'F'}, End},
		{"home tilde form", []byte{0x1b, '[', '1', '~'}, Home},
		{"end tilde form", []byte{0x1b, '[', '4', '~'}, End},
		{"page up", []byte{0x1b, '[', '5', '~'}, PageUp},
		{"page down", []byte{0x1b, '[', '6', '~'}, PageDown},
		{"unknown tilde sequence falls back to esc", []byte{0x1b, '[', '3', '~'}, Esc},
		{"unknown letter falls back to esc", []byte{0x1b, '[', 'Z'}, Esc},
		{"non-bracket follow-up falls back to esc", []byte{0x1b, 'O', 'H'}, Esc},
		{"bare esc", []byte{0x1b}, Esc},
		{"esc with single follow-up", []byte{0x1b, '['}, Esc},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDecoder(bytes.NewReader(tt.input))
			k, err := d.Next()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, k)
		})
	}
}

func TestNextIsReentrant(t *testing.T) {
	d := NewDecoder(bytes.NewReader([]byte{0x1b, '[', 'A', 'x', 0x1b, '[', '6', '~'}))

	k, err := d.Next()
	require.NoError(t, err)
	assert.Equal(t, Up, k)

	k, err = d.Next()
	require.NoError(t, err)
	assert.Equal(t, Key('x'), k)

	k, err = d.Next()
	require.NoError(t, err)
	assert.Equal(t, PageDown, k)
}

// stubReader replays scripted (n, err) results the way a raw terminal with
// VTIME-style read timeouts would.
type stubReader struct {
	results []stubResult
}

type stubResult struct {
	b   byte
	n   int
	err error
}

func (s *stubReader) Read(p []byte) (int, error) {
	if len(s.results) == 0 {
		return 0, io.EOF
	}
	r := s.results[0]
	s.results = s.results[1:]
	if r.n == 1 {
		p[0] = r.b
	}
	return r.n, r.err
}

func TestNextTimeoutYieldsNoInput(t *testing.T) {
	d := NewDecoder(&stubReader{results: []stubResult{
		{n: 0}, // read timed out, nothing arrived
		{b: 'q', n: 1},
	}})

	_, err := d.Next()
	assert.ErrorIs(t, err, ErrNoInput)

	k, err := d.Next()
	require.NoError(t, err)
	assert.Equal(t, Key('q'), k)
}

func TestNextInterruptedReadYieldsNoInput(t *testing.T) {
	d := NewDecoder(&stubReader{results: []stubResult{
		{err: syscall.EINTR}, // resize signal interrupted the read
	}})

	_, err := d.Next()
	assert.ErrorIs(t, err, ErrNoInput)
}

func TestNextEscapeWithTimedOutFollowUp(t *testing.T) {
	// The follow-up bytes of an escape sequence get no extra blocking
	// tolerance: an empty read means the key was a lone Escape.
	d := NewDecoder(&stubReader{results: []stubResult{
		{b: 0x1b, n: 1},
		{n: 0},
	}})

	k, err := d.Next()
	require.NoError(t, err)
	assert.Equal(t, Esc, k)
}

func TestNextPropagatesReadErrors(t *testing.T) {
	d := NewDecoder(&stubReader{})
	_, err := d.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestIsHexDigit(t *testing.T) {
	for _, k := range []Key{'0', '9', 'a', 'f', 'A', 'F'} {
		assert.True(t, IsHexDigit(k), "%c", rune(k))
	}
	for _, k := range []Key{'g', 'G', ' ', 'z', Up, Esc} {
		assert.False(t, IsHexDigit(k), "%v", k)
	}
}

func TestHexNibble(t *testing.T) {
	assert.Equal(t, byte(0x0), HexNibble('0'))
	assert.Equal(t, byte(0x9), HexNibble('9'))
	assert.Equal(t, byte(0xa), HexNibble('a'))
	assert.Equal(t, byte(0xf), HexNibble('F'))
}
