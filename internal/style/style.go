package style

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Grid cells
	Santa     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))  // Bright red
	RoboSanta = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")) // Bright cyan
	Both      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")) // Bright magenta
	Visited   = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))          // Bright yellow
	Origin    = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))           // Green
	Empty     = lipgloss.NewStyle().Foreground(lipgloss.Color("236"))          // Dark grey

	PlayHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82")) // Green
	Paused     = lipgloss.NewStyle().Foreground(lipgloss.Color("204"))           // Pinkish-reddish purple
	Extent     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))           // Grey
	// Page styles
	TopPattern = lipgloss.NewStyle().Foreground(lipgloss.Color("204"))            // Pinkish-reddish purple
	Title      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("228")) // Bright yellow
	Footer     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type RGB struct {
	R int
	G int
	B int
}

var RGBColor = map[string]RGB{
	"red":   {255, 0, 0},
	"green": {0, 255, 0},
}

// GenerateHexColor generates hexadcimal string for a given RGB values. r, g, b sould be in the range 0-255
// Format: #RRGGBB
func GenerateHexColor(r, g, b int) string {
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

// ProgressColors returns the gradient ends for the replay progress bar.
func ProgressColors() (string, string) {
	from, to := RGBColor["red"], RGBColor["green"]
	return GenerateHexColor(from.R, from.G, from.B), GenerateHexColor(to.R, to.G, to.B)
}
