package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Preview chrome.
	Slide  = lipgloss.NewStyle().Padding(1, 2)
	Title  = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true).Padding(0, 1)
	Page   = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Padding(0, 1)
	Status = lipgloss.NewStyle().Faint(true)

	// CLI output.
	Success = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	Hint    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// JoinHorizontal lays out left and right on one line, padding the gap so
// right ends at the given width.
func JoinHorizontal(left, right string, width int) string {
	length := lipgloss.Width(left) + lipgloss.Width(right)
	if width < length {
		return left + " " + right
	}
	padding := strings.Repeat(" ", width-length)
	return left + padding + right
}
