package style

import "github.com/charmbracelet/lipgloss"

// Theme defines a complete color palette for the TUI.
type Theme struct {
	Name                                        string
	Primary, Secondary, Success, Warning, Error lipgloss.TerminalColor
	Muted, Dim, Border                          lipgloss.TerminalColor
	MsgBorderUser, MsgBorderAssistant           lipgloss.TerminalColor
}

var (
	darkTheme = Theme{
		Name:               "dark",
		Primary:            lipgloss.Color("#2DD4BF"), // teal-400
		Secondary:          lipgloss.Color("#06B6D4"), // cyan-500
		Success:            lipgloss.Color("#22C55E"), // green-500
		Warning:            lipgloss.Color("#F59E0B"), // amber-500
		Error:              lipgloss.Color("#EF4444"), // red-500
		Muted:              lipgloss.Color("#6B7280"), // gray-500
		Dim:                lipgloss.Color("#374151"), // gray-700
		Border:             lipgloss.Color("#4B5563"), // gray-600
		MsgBorderUser:      lipgloss.Color("#06B6D4"),
		MsgBorderAssistant: lipgloss.Color("#14B8A6"),
	}

	lightTheme = Theme{
		Name:               "light",
		Primary:            lipgloss.Color("#0F766E"), // teal-700
		Secondary:          lipgloss.Color("#0891B2"), // cyan-600
		Success:            lipgloss.Color("#16A34A"), // green-600
		Warning:            lipgloss.Color("#D97706"), // amber-600
		Error:              lipgloss.Color("#DC2626"), // red-600
		Muted:              lipgloss.Color("#6B7280"), // gray-500
		Dim:                lipgloss.Color("#D1D5DB"), // gray-300
		Border:             lipgloss.Color("#9CA3AF"), // gray-400
		MsgBorderUser:      lipgloss.Color("#0891B2"),
		MsgBorderAssistant: lipgloss.Color("#0F766E"),
	}
)

// Themes maps theme names to their definitions.
var Themes = map[string]Theme{
	"dark":  darkTheme,
	"light": lightTheme,
}

// SetTheme switches the palette and rebuilds every style. Unknown names
// are ignored and false is returned.
func SetTheme(name string) bool {
	t, ok := Themes[name]
	if !ok {
		return false
	}
	Primary, Secondary = t.Primary, t.Secondary
	Success, Warning, Error = t.Success, t.Warning, t.Error
	Muted, Dim, Border = t.Muted, t.Dim, t.Border
	MsgBorderUser, MsgBorderAssistant = t.MsgBorderUser, t.MsgBorderAssistant
	build()
	return true
}
