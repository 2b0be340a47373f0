package style

import "github.com/charmbracelet/lipgloss"

// Colors. Reassigned by SetTheme.
var (
	Primary   lipgloss.TerminalColor = lipgloss.Color("#0F766E") // teal-700
	Secondary lipgloss.TerminalColor = lipgloss.Color("#06B6D4") // cyan-500
	Success   lipgloss.TerminalColor = lipgloss.Color("#22C55E") // green-500
	Warning   lipgloss.TerminalColor = lipgloss.Color("#F59E0B") // amber-500
	Error     lipgloss.TerminalColor = lipgloss.Color("#EF4444") // red-500
	Muted     lipgloss.TerminalColor = lipgloss.Color("#6B7280") // gray-500
	Dim       lipgloss.TerminalColor = lipgloss.Color("#374151") // gray-700
	Border    lipgloss.TerminalColor = lipgloss.Color("#4B5563") // gray-600

	MsgBorderUser      lipgloss.TerminalColor = lipgloss.Color("#06B6D4")
	MsgBorderAssistant lipgloss.TerminalColor = lipgloss.Color("#14B8A6")
)

// Styles derived from the colors above. Rebuilt by SetTheme.
var (
	Faint lipgloss.Style

	// One-line CLI notices.
	ErrorText   lipgloss.Style
	WarningText lipgloss.Style
	SuccessText lipgloss.Style

	HeaderTitle  lipgloss.Style
	HeaderDetail lipgloss.Style

	PromptChar lipgloss.Style

	UserLabel      lipgloss.Style
	AssistantLabel lipgloss.Style
	AssistantIcon  lipgloss.Style
	UserBlock      lipgloss.Style
	AssistantBlock lipgloss.Style

	SpinnerStyle lipgloss.Style
	StatusBar    lipgloss.Style
	HintKey      lipgloss.Style
	Hint         lipgloss.Style
	HintDisabled lipgloss.Style
	Separator    lipgloss.Style
)

func init() {
	build()
}

func build() {
	Faint = lipgloss.NewStyle().Foreground(Muted)

	ErrorText = lipgloss.NewStyle().Foreground(Error)
	WarningText = lipgloss.NewStyle().Foreground(Warning)
	SuccessText = lipgloss.NewStyle().Foreground(Success)

	HeaderTitle = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)
	HeaderDetail = lipgloss.NewStyle().
		Foreground(Muted)

	PromptChar = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	UserLabel = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)
	AssistantLabel = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)
	AssistantIcon = lipgloss.NewStyle().
		Foreground(Primary)

	// Left border per role, OpenCode style.
	UserBlock = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(MsgBorderUser).
		PaddingLeft(1)
	AssistantBlock = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(MsgBorderAssistant).
		PaddingLeft(1)

	SpinnerStyle = lipgloss.NewStyle().
		Foreground(Primary)
	StatusBar = lipgloss.NewStyle().
		Foreground(Muted).
		PaddingLeft(1)
	HintKey = lipgloss.NewStyle().
		Foreground(Secondary)
	Hint = lipgloss.NewStyle().
		Foreground(Muted)
	HintDisabled = lipgloss.NewStyle().
		Foreground(Dim).
		Strikethrough(true)
	Separator = lipgloss.NewStyle().
		Foreground(Border)
}
