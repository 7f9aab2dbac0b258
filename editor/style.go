package editor

import "github.com/charmbracelet/lipgloss"

// Style holds the lipgloss styles used to paint rows.
//
// Gutter pads the line-number column; LineNum and LineNumActive render the
// numbers of other rows and of the cursor row. Text, Selection and Cursor
// paint the cells of a row by kind.
type Style struct {
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text      lipgloss.Style
	Selection lipgloss.Style
	Cursor    lipgloss.Style
}

var (
	dimColor       = lipgloss.AdaptiveColor{Light: "250", Dark: "240"}
	activeNumColor = lipgloss.AdaptiveColor{Light: "236", Dark: "250"}
	selectionColor = lipgloss.AdaptiveColor{Light: "253", Dark: "237"}
)

// DefaultStyle adapts its colors to the terminal background.
func DefaultStyle() Style {
	num := lipgloss.NewStyle().Foreground(dimColor)
	return Style{
		Gutter:        num,
		LineNum:       num,
		LineNumActive: lipgloss.NewStyle().Foreground(activeNumColor).Bold(true),
		Text:          lipgloss.NewStyle(),
		Selection:     lipgloss.NewStyle().Background(selectionColor),
		Cursor:        lipgloss.NewStyle().Reverse(true),
	}
}
