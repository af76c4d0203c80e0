package hx

import "github.com/commanderHR1/hx/internal/key"

// Editor - The main interface that represents the program. At any point there
// will be just one instantiation of Editor, owning the open document, the
// cursor and the viewport. The program feeds it decoded key events and the
// editor publishes its state by composing full frames for the terminal.
type Editor interface {
	// Handle dispatches a single key event. A returned io.EOF means the
	// user asked to quit; any other error is fatal.
	Handle(k key.Key) error

	// Refresh composes and writes a complete frame from the current state.
	Refresh()

	// Resize re-reads the terminal dimensions and redraws. It is the one
	// entry point that may be called from outside the main key loop.
	Resize()

	Close()
}
