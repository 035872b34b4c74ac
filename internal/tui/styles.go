package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/next-issue/internal/domain"
)

// Colors defines the color palette shared by the prompt and console output.
var Colors = struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color

	// Issue status colors
	Open     lipgloss.Color
	Closed   lipgloss.Color
	NotFound lipgloss.Color
	Draft    lipgloss.Color
}{
	Primary:   lipgloss.Color("#6C5CE7"), // Purple
	Secondary: lipgloss.Color("#A29BFE"), // Lavender
	Muted:     lipgloss.Color("#636E72"), // Gray
	Error:     lipgloss.Color("#D63031"), // Red
	Success:   lipgloss.Color("#00B894"), // Green
	Warning:   lipgloss.Color("#FDCB6E"), // Yellow

	Open:     lipgloss.Color("#00B894"), // Green
	Closed:   lipgloss.Color("#B2BEC3"), // Light gray
	NotFound: lipgloss.Color("#D63031"), // Red
	Draft:    lipgloss.Color("#74B9FF"), // Light blue
}

// StatusColor returns the color used for an issue status.
func StatusColor(status domain.IssueStatus) lipgloss.Color {
	switch status {
	case domain.StatusOpen:
		return Colors.Open
	case domain.StatusClosed:
		return Colors.Closed
	case domain.StatusNotFound:
		return Colors.NotFound
	case domain.StatusNotCreated:
		return Colors.Draft
	default:
		return Colors.Muted
	}
}

// Styles contains the lipgloss styles for the confirm prompt.
type Styles struct {
	Question lipgloss.Style
	Hint     lipgloss.Style
	Yes      lipgloss.Style
	No       lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		Question: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),

		Hint: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Yes: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Success),

		No: lipgloss.NewStyle().
			Foreground(Colors.Error),
	}
}
