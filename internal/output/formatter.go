package output

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// ColorGeneration styles text with the palette color for the given depth
func ColorGeneration(text string, depth int) string {
	if len(GenerationColors) == 0 {
		return text
	}

	color := GenerationColors[depth%len(GenerationColors)]
	hexColor := lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", color[0], color[1], color[2]))

	return lipgloss.NewStyle().
		Foreground(hexColor).
		Render(text)
}

// ColorName colors a person's name, bold when highlighted
func ColorName(name string, highlighted bool) string {
	if highlighted {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true).
			Render(name)
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("12")).
		Render(name)
}

// ColorDim makes text dim/gray
func ColorDim(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Render(text)
}
