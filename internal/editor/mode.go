package editor

import "github.com/commanderHR1/hx/internal/key"

// Mode the editor can be in. Exactly one is active at a time and it gates
// which key events are meaningful.
type Mode int

const (
	ModeNormal  Mode = iota // navigating, commands
	ModeInsert              // insert bytes at the cursor position
	ModeReplace             // replace bytes at the cursor position
	ModeCommand             // command input
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeInsert:
		return "INSERT"
	case ModeReplace:
		return "REPLACE"
	case ModeCommand:
		return "COMMAND"
	}
	return "UNKNOWN"
}

// Severity of the current status message.
type Severity int

const (
	StatusInfo    Severity = iota // lightgray bg, black fg
	StatusWarning                 // yellow bg, black fg
	StatusError                   // red bg, white fg
)

// Each mode implements its own slice of the key dispatch.
type editorMode interface {
	// handle processes a key event that neither the global bindings nor a
	// pending sequence claimed.
	handle(k key.Key) error

	// consumePending gives a mode waiting on the second key of a two-key
	// sequence first claim on the event. It reports whether the key was
	// consumed. Pending state lives on the mode value, never in a nested
	// blocking read, so the key decoder stays re-entrant.
	consumePending(k key.Key) bool
}
