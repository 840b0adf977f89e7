// Package styles provides shared lipgloss styles for CLI and TUI components.
package styles

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Palette defines a minimal semantic theme palette.
type Palette struct {
	Primary    lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Surface    lipgloss.Color
	Success    lipgloss.Color
	Error      lipgloss.Color
}

// DefaultTheme is the name of the default theme.
const DefaultTheme = "tokyo-night"

// themes holds the built-in named palettes.
var themes = map[string]Palette{
	"tokyo-night": {
		Primary:    lipgloss.Color("#7aa2f7"),
		Foreground: lipgloss.Color("#c0caf5"),
		Muted:      lipgloss.Color("#565f89"),
		Surface:    lipgloss.Color("#3b4261"),
		Success:    lipgloss.Color("#9ece6a"),
		Error:      lipgloss.Color("#f7768e"),
	},
	"gruvbox": {
		Primary:    lipgloss.Color("#83a598"),
		Foreground: lipgloss.Color("#ebdbb2"),
		Muted:      lipgloss.Color("#665c54"),
		Surface:    lipgloss.Color("#3c3836"),
		Success:    lipgloss.Color("#b8bb26"),
		Error:      lipgloss.Color("#fb4934"),
	},
	"catppuccin-mocha": {
		Primary:    lipgloss.Color("#89b4fa"),
		Foreground: lipgloss.Color("#cdd6f4"),
		Muted:      lipgloss.Color("#6c7086"),
		Surface:    lipgloss.Color("#313244"),
		Success:    lipgloss.Color("#a6e3a1"),
		Error:      lipgloss.Color("#f38ba8"),
	},
}

// ThemeNames returns sorted names of all built-in themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetPalette returns the palette for the given theme name.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Style exports.
var (
	CardStyle  lipgloss.Style
	TitleStyle lipgloss.Style

	InputStyle        lipgloss.Style
	InputFocusedStyle lipgloss.Style

	TaskStyle          lipgloss.Style
	TaskCompletedStyle lipgloss.Style
	CheckboxStyle      lipgloss.Style
	CheckboxDoneStyle  lipgloss.Style
	CursorStyle        lipgloss.Style

	TextMutedStyle lipgloss.Style
	SummaryStyle   lipgloss.Style
	StatusStyle    lipgloss.Style
	ErrorStyle     lipgloss.Style
	SuccessStyle   lipgloss.Style

	JSONKeyStyle     lipgloss.Style
	JSONStringStyle  lipgloss.Style
	JSONNumberStyle  lipgloss.Style
	JSONLiteralStyle lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Surface).
		Padding(1, 2)
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Foreground)

	InputStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(p.Muted).
		Padding(0, 1)
	InputFocusedStyle = InputStyle.
		BorderForeground(p.Primary)

	TaskStyle = lipgloss.NewStyle().
		Foreground(p.Foreground)
	TaskCompletedStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Strikethrough(true)
	CheckboxStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
	CheckboxDoneStyle = lipgloss.NewStyle().
		Foreground(p.Success)
	CursorStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)

	TextMutedStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
	SummaryStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		MarginTop(1)
	StatusStyle = lipgloss.NewStyle().
		Foreground(p.Primary)
	ErrorStyle = lipgloss.NewStyle().
		Foreground(p.Error)
	SuccessStyle = lipgloss.NewStyle().
		Foreground(p.Success)

	JSONKeyStyle = lipgloss.NewStyle().
		Foreground(p.Primary)
	JSONStringStyle = lipgloss.NewStyle().
		Foreground(p.Success)
	JSONNumberStyle = lipgloss.NewStyle().
		Foreground(p.Foreground)
	JSONLiteralStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Italic(true)
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}
