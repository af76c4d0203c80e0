package editor

import "github.com/charmbracelet/lipgloss"

// Styling for the composed frame. The hex grid itself stays unstyled; color
// marks the address gutter, the ASCII column, the cursor cell and the
// status line.
var (
	styleAddress = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

	// The ASCII column: the cursor cell inverts, the rest of the cursor's
	// row renders green, other rows bright white.
	styleCursorCell = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("7"))
	styleCursorRow = lipgloss.NewStyle().
			Foreground(lipgloss.Color("2")).
			Bold(true)
	styleASCII = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7")).
			Bold(true)

	styleEmpty = lipgloss.NewStyle().Faint(true)

	// Status line, one style per severity.
	styleStatusInfo = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("7"))
	styleStatusWarning = lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("3"))
	styleStatusError = lipgloss.NewStyle().
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("1")).
				Bold(true)
)

func statusStyle(sev Severity) lipgloss.Style {
	switch sev {
	case StatusWarning:
		return styleStatusWarning
	case StatusError:
		return styleStatusError
	default:
		return styleStatusInfo
	}
}
