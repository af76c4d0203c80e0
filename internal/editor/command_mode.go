package editor

import "github.com/commanderHR1/hx/internal/key"

// commandMode is reserved for typed commands. No key binding enters it yet
// and command execution is out of scope; escape returns to normal mode like
// everywhere else.
type commandMode struct {
	*editorImpl
}

func (m *commandMode) handle(key.Key) error {
	return nil
}

func (m *commandMode) consumePending(key.Key) bool {
	return false
}
