package formatter

import (
	"fmt"
	"strings"

	"github.com/avikram/semtrack/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// UrgencyColor returns the lipgloss style corresponding to an urgency level.
func UrgencyColor(u domain.Urgency) lipgloss.Style {
	switch u {
	case domain.UrgencyCritical:
		return StyleRed
	case domain.UrgencyWarning:
		return StyleYellow
	case domain.UrgencyNormal:
		return StyleGreen
	default:
		return StyleDim
	}
}

// UrgencyDot returns a colored indicator dot for an urgency level.
func UrgencyDot(u domain.Urgency) string {
	if u == domain.UrgencyExpired {
		return StyleDim.Render("○")
	}
	return UrgencyColor(u).Render("●")
}

// UrgencyLabel returns a colored indicator string such as "● DUE TODAY".
func UrgencyLabel(u domain.Urgency) string {
	switch u {
	case domain.UrgencyCritical:
		return StyleRed.Render("● DUE TODAY")
	case domain.UrgencyWarning:
		return StyleYellow.Render("● DUE SOON")
	case domain.UrgencyNormal:
		return StyleGreen.Render("● UPCOMING")
	case domain.UrgencyExpired:
		return StyleDim.Render("○ PAST DUE")
	default:
		return StyleDim.Render("○ UNKNOWN")
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
