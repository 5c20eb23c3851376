// Package style holds the lipgloss styles for safecracker's terminal
// output. Styles are only applied when the output format allows it; the
// plain text content is identical either way.
package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Color definitions using AdaptiveColor for automatic light/dark mode switching
var (
	HeadingColor = lipgloss.AdaptiveColor{
		Light: "#212529", // Almost black
		Dark:  "#F8F9FA", // Almost white
	}

	SuccessColor = lipgloss.AdaptiveColor{
		Light: "#28A745", // Green
		Dark:  "#4CDD76",
	}

	WarningColor = lipgloss.AdaptiveColor{
		Light: "#FFC107", // Amber
		Dark:  "#FFD54F",
	}
)

var (
	// LabelStyle renders the "Password:" label.
	LabelStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	// PasswordStyle renders the password value itself.
	PasswordStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	// WarningStyle renders non-fatal notices.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)
)
