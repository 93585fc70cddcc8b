package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan  = lipgloss.Color("36")  // teal - headings
	colorGreen = lipgloss.Color("35")  // green - answers
	colorGray  = lipgloss.Color("245") // gray - secondary text
	colorDim   = lipgloss.Color("240") // dim gray - muted text
)

var (
	styleTitle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleLabel  = lipgloss.NewStyle().Foreground(colorGray)
	styleAnswer = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	styleDim    = lipgloss.NewStyle().Foreground(colorDim)
)

// renderAnswer formats the result banner for one solver run.
func renderAnswer(day, part int, name, answer string) string {
	var b strings.Builder
	b.WriteString(styleTitle.Render(fmt.Sprintf("day %d part %d", day, part)))
	b.WriteString(styleDim.Render(fmt.Sprintf(" (%s)", name)))
	b.WriteString(styleLabel.Render(" → "))
	b.WriteString(styleAnswer.Render(answer))
	return b.String()
}

// renderListing formats one solver-table row for the list command.
func renderListing(day, part int, name string) string {
	return fmt.Sprintf("%s  %s",
		styleLabel.Render(fmt.Sprintf("day %2d part %d", day, part)),
		styleAnswer.Render(name))
}
