package medcard

import "github.com/charmbracelet/lipgloss"

// ThemeName is the persisted two-valued theme preference.
type ThemeName string

const (
	ThemeLightName ThemeName = "light"
	ThemeDarkName  ThemeName = "dark"
)

// Theme provides the set of styles for one visual appearance.
// Every rendered element pulls from a named slot so the whole card
// restyles from a single value.
type Theme struct {
	Name   ThemeName
	Base   lipgloss.Style // default text
	Muted  lipgloss.Style // de-emphasized text, hints, key help
	Accent lipgloss.Style // highlighted/important text
	Error  lipgloss.Style // save failures, invalid input
	Border lipgloss.Style // table borders and dividers
	Header lipgloss.Style // card header block
	Label  lipgloss.Style // field labels
	Focus  lipgloss.Style // the focused field indicator
}

// ThemeLight is dark text for light terminals.
var ThemeLight = Theme{
	Name:   ThemeLightName,
	Base:   lipgloss.NewStyle().Foreground(lipgloss.Color("0")),
	Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	Accent: lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	Border: lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	Header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")),
	Label:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")),
	Focus:  lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
}

// ThemeDark is light text for dark terminals.
var ThemeDark = Theme{
	Name:   ThemeDarkName,
	Base:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	Accent: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	Border: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	Header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
	Label:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
	Focus:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
}

// ThemeByName maps a stored preference to its theme, defaulting to light.
func ThemeByName(n ThemeName) Theme {
	if n == ThemeDarkName {
		return ThemeDark
	}
	return ThemeLight
}

// Toggle returns the other theme name.
func (n ThemeName) Toggle() ThemeName {
	if n == ThemeDarkName {
		return ThemeLightName
	}
	return ThemeDarkName
}
