package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme represents a color scheme for the application
type Theme struct {
	Name string

	Background    lipgloss.Color
	Foreground    lipgloss.Color
	ForegroundDim lipgloss.Color

	Primary   lipgloss.Color
	Secondary lipgloss.Color

	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color

	Border      lipgloss.Color
	BorderFocus lipgloss.Color
	Selection   lipgloss.Color
}

// Workspace mirrors the blue-and-white look of the desktop app.
var Workspace = Theme{
	Name: "Workspace",

	Background:    lipgloss.Color("#1a1b26"),
	Foreground:    lipgloss.Color("#c0caf5"),
	ForegroundDim: lipgloss.Color("#565f89"),

	Primary:   lipgloss.Color("#7aa2f7"),
	Secondary: lipgloss.Color("#9ece6a"),

	Success: lipgloss.Color("#43a047"),
	Warning: lipgloss.Color("#ffb300"),
	Error:   lipgloss.Color("#e53935"),

	Border:      lipgloss.Color("#3b4261"),
	BorderFocus: lipgloss.Color("#7aa2f7"),
	Selection:   lipgloss.Color("#33467c"),
}

var Current = Workspace

// MaxWidth caps forms and lists. The board table may use the full terminal.
const MaxWidth = 80

func ContentWidth(terminalWidth int) int {
	if terminalWidth > MaxWidth {
		return MaxWidth
	}
	return terminalWidth
}

// CenterView centers content horizontally when the terminal is wider than
// MaxWidth.
func CenterView(content string, terminalWidth, terminalHeight int) string {
	if terminalWidth <= MaxWidth {
		return content
	}
	return lipgloss.Place(terminalWidth, terminalHeight,
		lipgloss.Center, lipgloss.Top,
		content,
	)
}

// StatusColor returns the pill color of a status value.
func StatusColor(status string) lipgloss.Color {
	switch status {
	case "Done":
		return Current.Success
	case "Working On It":
		return Current.Warning
	case "Stuck":
		return Current.Error
	}
	return Current.ForegroundDim
}

type Styles struct {
	Title      lipgloss.Style
	TitleMuted lipgloss.Style
	Header     lipgloss.Style

	ListItem     lipgloss.Style
	ListSelected lipgloss.Style

	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
	ButtonPrimary lipgloss.Style

	Input        lipgloss.Style
	InputFocused lipgloss.Style

	TableHeader lipgloss.Style
	TableCell   lipgloss.Style
	TableCursor lipgloss.Style
	Placeholder lipgloss.Style
	Status      lipgloss.Style

	Help     lipgloss.Style
	HelpKey  lipgloss.Style
	Box      lipgloss.Style
	SnackOK  lipgloss.Style
	SnackErr lipgloss.Style
}

func NewStyles() *Styles {
	t := Current

	return &Styles{
		Title: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),

		TitleMuted: lipgloss.NewStyle().
			Foreground(t.ForegroundDim),

		Header: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Background(t.Selection).
			Padding(0, 1).
			Bold(true),

		ListItem: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Padding(0, 2),

		ListSelected: lipgloss.NewStyle().
			Foreground(t.Primary).
			Background(t.Selection).
			Padding(0, 2).
			Bold(true),

		Button: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 2),

		ButtonFocused: lipgloss.NewStyle().
			Foreground(t.Primary).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocus).
			Padding(0, 2).
			Bold(true),

		ButtonPrimary: lipgloss.NewStyle().
			Foreground(t.Background).
			Background(t.Primary).
			Padding(0, 2).
			Bold(true),

		Input: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),

		InputFocused: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocus).
			Padding(0, 1),

		TableHeader: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true).
			Padding(0, 1),

		TableCell: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Padding(0, 1),

		TableCursor: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Background(t.Selection).
			Bold(true).
			Padding(0, 1),

		Placeholder: lipgloss.NewStyle().
			Foreground(t.ForegroundDim).
			Italic(true),

		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Bold(true).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(t.ForegroundDim).
			Padding(1, 2),

		HelpKey: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),

		Box: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border),

		SnackOK: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(t.Success).
			Padding(0, 1),

		SnackErr: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(t.Error).
			Padding(0, 1),
	}
}
