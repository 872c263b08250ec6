package main

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette
	successColor = lipgloss.Color("#04B575")
	warningColor = lipgloss.Color("#FFA500")
	errorColor   = lipgloss.Color("#FF4B4B")
	accentColor  = lipgloss.Color("#00D7FF")
	mutedColor   = lipgloss.Color("#666666")
	perfectColor = lipgloss.Color("#5FFF87")

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1)

	healthyStyle = lipgloss.NewStyle().Foreground(successColor)
	faintedStyle = lipgloss.NewStyle().Foreground(errorColor)
	mutedStyle   = lipgloss.NewStyle().Foreground(mutedColor)
	boldStyle    = lipgloss.NewStyle().Bold(true)
)

// styled applies st unless --no-color is set.
func styled(st lipgloss.Style, s string) string {
	if noColor {
		return s
	}
	return st.Render(s)
}

// ivStyle grades an individual value (31 is perfect).
func ivStyle(iv uint8) lipgloss.Style {
	switch {
	case iv == 31:
		return lipgloss.NewStyle().Foreground(perfectColor)
	case iv >= 25:
		return lipgloss.NewStyle().Foreground(successColor)
	case iv >= 15:
		return lipgloss.NewStyle().Foreground(warningColor)
	default:
		return lipgloss.NewStyle().Foreground(errorColor)
	}
}

// evStyle colors the EV total against the legal 510 cap.
func evStyle(total int) lipgloss.Style {
	if total <= 510 {
		return lipgloss.NewStyle().Foreground(successColor)
	}
	return lipgloss.NewStyle().Foreground(errorColor)
}

// hpBar renders a fixed-width bar of filled/empty cells.
func hpBar(current, max uint16, width int) string {
	filled := 0
	if max > 0 {
		filled = int(float64(width) * float64(current) / float64(max))
		if filled > width {
			filled = width
		}
	}
	bar := ""
	for i := 0; i < width; i++ {
		if i < filled {
			bar += "█"
		} else {
			bar += "░"
		}
	}
	return bar
}
