package ui

import "github.com/charmbracelet/lipgloss"

const (
	colorAccent = lipgloss.Color("#FFD93D")
	colorText   = lipgloss.Color("#E0E0F0")
	colorMuted  = lipgloss.Color("#555570")
	colorFaint  = lipgloss.Color("#333348")
	colorActive = lipgloss.Color("#4ECDC4")
	colorDone   = lipgloss.Color("#95E1A3")
	colorDanger = lipgloss.Color("#FF6B6B")
	colorInput  = lipgloss.Color("#2A2A3E")
)

// Theme groups the Lip Gloss styles used by the view.
type Theme struct {
	Date      lipgloss.Style
	Title     lipgloss.Style
	RingOn    lipgloss.Style
	RingOff   lipgloss.Style
	RingLabel lipgloss.Style

	StatTotal  lipgloss.Style
	StatActive lipgloss.Style
	StatDone   lipgloss.Style
	StatDot    lipgloss.Style

	Input       lipgloss.Style
	InputFocus  lipgloss.Style
	InputReject lipgloss.Style

	Tab         lipgloss.Style
	TabSelected lipgloss.Style
	Clear       lipgloss.Style

	Row       lipgloss.Style
	RowCursor lipgloss.Style
	Check     lipgloss.Style
	CheckDone lipgloss.Style
	Text      lipgloss.Style
	TextDone  lipgloss.Style
	EditInput lipgloss.Style
	Empty     lipgloss.Style

	Hint   lipgloss.Style
	Status lipgloss.Style
}

func DefaultTheme() Theme {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorInput).
		Padding(0, 1)
	tab := lipgloss.NewStyle().
		Foreground(colorMuted).
		Bold(true).
		Padding(0, 2)

	return Theme{
		Date:      lipgloss.NewStyle().Foreground(colorMuted),
		Title:     lipgloss.NewStyle().Foreground(colorText).Bold(true),
		RingOn:    lipgloss.NewStyle().Foreground(colorAccent),
		RingOff:   lipgloss.NewStyle().Foreground(colorFaint),
		RingLabel: lipgloss.NewStyle().Foreground(colorAccent).Bold(true),

		StatTotal:  lipgloss.NewStyle().Foreground(lipgloss.Color("#888899")),
		StatActive: lipgloss.NewStyle().Foreground(colorActive),
		StatDone:   lipgloss.NewStyle().Foreground(colorDone),
		StatDot:    lipgloss.NewStyle().Foreground(colorFaint),

		Input:       box,
		InputFocus:  box.BorderForeground(colorAccent),
		InputReject: box.BorderForeground(colorDanger).MarginLeft(2),

		Tab:         tab,
		TabSelected: tab.Foreground(colorAccent).Underline(true),
		Clear:       lipgloss.NewStyle().Foreground(colorDanger).Bold(true).MarginLeft(2),

		Row:       lipgloss.NewStyle().PaddingLeft(2),
		RowCursor: lipgloss.NewStyle().Foreground(colorAccent).SetString("› "),
		Check:     lipgloss.NewStyle().Foreground(lipgloss.Color("#444460")),
		CheckDone: lipgloss.NewStyle().Foreground(colorAccent),
		Text:      lipgloss.NewStyle().Foreground(colorText),
		TextDone:  lipgloss.NewStyle().Foreground(colorMuted).Strikethrough(true),
		EditInput: lipgloss.NewStyle().Foreground(colorText).Underline(true),
		Empty:     lipgloss.NewStyle().Foreground(colorMuted).Padding(1, 4),

		Hint:   lipgloss.NewStyle().Foreground(colorFaint),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	}
}
