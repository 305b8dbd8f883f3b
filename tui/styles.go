package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Primary colors
	ColorPrimary = lipgloss.Color("#7C3AED") // Purple
	ColorAccent  = lipgloss.Color("#10B981") // Green

	// Status colors
	ColorSuccess = lipgloss.Color("#10B981") // Green
	ColorError   = lipgloss.Color("#EF4444") // Red

	// UI colors
	ColorBackground = lipgloss.Color("#1F2937") // Dark gray
	ColorText       = lipgloss.Color("#F9FAFB") // Almost white
	ColorTextMuted  = lipgloss.Color("#9CA3AF") // Gray
	ColorHighlight  = lipgloss.Color("#8B5CF6") // Light purple
)

type Theme struct {
	QuestionStyle   lipgloss.Style
	AnswerStyle     lipgloss.Style
	NormalTextStyle lipgloss.Style
	MutedTextStyle  lipgloss.Style
	HighlightStyle  lipgloss.Style

	SelectedItemStyle lipgloss.Style
	CheckedStyle      lipgloss.Style
	ErrorStyle        lipgloss.Style
	SuccessStyle      lipgloss.Style
}

func DefaultTheme() *Theme {
	return &Theme{
		QuestionStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText),

		AnswerStyle: lipgloss.NewStyle().
			Foreground(ColorAccent),

		NormalTextStyle: lipgloss.NewStyle().
			Foreground(ColorText),

		MutedTextStyle: lipgloss.NewStyle().
			Foreground(ColorTextMuted),

		HighlightStyle: lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true),

		SelectedItemStyle: lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true),

		CheckedStyle: lipgloss.NewStyle().
			Foreground(ColorSuccess),

		ErrorStyle: lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true),

		SuccessStyle: lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true),
	}
}

const (
	IconQuestion   = "?"
	IconCheck      = "✓"
	IconCross      = "✗"
	IconArrowRight = "▶"
	IconBoxOn      = "[✓]"
	IconBoxOff     = "[ ]"
)

func KeyHelp(key, description string, theme *Theme) string {
	keyStyle := lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		Padding(0, 1).
		Background(ColorBackground)

	return keyStyle.Render(key) + " " + theme.MutedTextStyle.Render(description)
}

func HelpLine(theme *Theme, pairs ...string) string {
	var hints []string
	for i := 0; i+1 < len(pairs); i += 2 {
		hints = append(hints, KeyHelp(pairs[i], pairs[i+1], theme))
	}
	return strings.Join(hints, theme.MutedTextStyle.Render(" │ "))
}

func question(theme *Theme, message string) string {
	return theme.HighlightStyle.Render(IconQuestion) + " " + theme.QuestionStyle.Render(message)
}

func answered(theme *Theme, message, answer string) string {
	return theme.SuccessStyle.Render(IconCheck) + " " + theme.QuestionStyle.Render(message) + " " + theme.AnswerStyle.Render(answer) + "\n"
}

// pageWindow returns the [start, end) slice of a list of n items that keeps
// cursor visible within size rows.
func pageWindow(n, cursor, size int) (int, int) {
	if size <= 0 || size >= n {
		return 0, n
	}
	start := 0
	if cursor >= size {
		start = cursor - size + 1
	}
	return start, start + size
}
