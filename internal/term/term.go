// Package term is the terminal collaborator of the editor: it owns raw
// mode, supplies the timed byte stream the key decoder consumes, reports
// the screen dimensions and writes one opaque frame at a time.
package term

import (
	"fmt"
	"os"
	"time"

	pkgterm "github.com/pkg/term"
	xterm "golang.org/x/term"
)

// readTimeout bounds every read on the raw tty. Do not set this to zero:
// a zero timeout turns the key loop into a busy spin.
const readTimeout = 100 * time.Millisecond

// Terminal couples the raw input stream with frame output on stdout.
type Terminal struct {
	tty *pkgterm.Term
	out *os.File
}

// Open puts the controlling terminal in raw mode with a bounded read
// timeout. It fails when stdin is not a tty or the screen size cannot be
// determined, since the editor cannot run without either.
func Open() (*Terminal, error) {
	if !xterm.IsTerminal(int(os.Stdin.Fd())) {
		return nil, fmt.Errorf("term: input is not a tty")
	}

	tty, err := pkgterm.Open("/dev/tty", pkgterm.RawMode, pkgterm.ReadTimeout(readTimeout))
	if err != nil {
		return nil, fmt.Errorf("term: unable to enter raw mode: %w", err)
	}

	t := &Terminal{tty: tty, out: os.Stdout}
	if _, _, err := t.Size(); err != nil {
		tty.Restore()
		tty.Close()
		return nil, err
	}
	return t, nil
}

// Read hands out raw bytes from the tty. A read may return (0, nil) when
// the timeout elapses with no input, and syscall.EINTR when a signal
// arrives; the key decoder treats both as "no event this tick".
func (t *Terminal) Read(p []byte) (int, error) {
	return t.tty.Read(p)
}

// Size returns the current screen dimensions.
func (t *Terminal) Size() (rows, cols int, err error) {
	w, h, err := xterm.GetSize(int(t.out.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("term: failed to query terminal size: %w", err)
	}
	return h, w, nil
}

// WriteFrame draws one complete frame in a single write.
func (t *Terminal) WriteFrame(frame []byte) error {
	_, err := t.out.Write(frame)
	return err
}

// Restore resets colors, clears the screen and leaves raw mode. Call it
// before the process exits to prevent terminal garbling.
func (t *Terminal) Restore() error {
	t.out.WriteString("\x1b[0m\x1b[H\x1b[2J\x1b[?25h")
	return t.tty.Restore()
}

func (t *Terminal) Close() error {
	return t.tty.Close()
}
