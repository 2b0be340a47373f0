package model

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kouper/carechat/style"
)

const (
	charLimit    = 4000
	maxInputRows = 6
	inputPrompt  = "❯ "
)

// InputModel is the multi-line draft editor.
//
// Bare Enter is left to the parent so it can decide whether a submit is
// allowed; shift+enter (where the terminal reports it), alt+enter and ctrl+j
// insert a newline. The textarea grows with its content up to maxInputRows.
type InputModel struct {
	ta    textarea.Model
	width int
}

// NewInput returns a ready-to-use InputModel.
func NewInput() InputModel {
	ta := textarea.New()
	ta.Prompt = inputPrompt
	ta.Placeholder = "I need to book an appointment for..."
	ta.CharLimit = charLimit
	ta.ShowLineNumbers = false
	ta.MaxHeight = 0 // a non-zero MaxHeight also caps the number of lines; autosize clamps instead
	ta.SetWidth(80)
	ta.SetHeight(1)

	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.FocusedStyle.Prompt = style.PromptChar
	ta.BlurredStyle.CursorLine = lipgloss.NewStyle()
	ta.BlurredStyle.Prompt = style.Faint

	ta.KeyMap.InsertNewline = key.NewBinding(
		key.WithKeys("shift+enter", "alt+enter", "ctrl+j"),
		key.WithHelp("shift+enter", "newline"),
	)

	return InputModel{ta: ta, width: 80}
}

// SetWidth constrains the input to the terminal width.
func (m *InputModel) SetWidth(w int) {
	m.width = w
	m.ta.SetWidth(w)
	m.autosize()
}

// Focus gives keyboard focus to the input.
func (m *InputModel) Focus() tea.Cmd {
	return m.ta.Focus()
}

// Blur removes keyboard focus; a blurred input ignores key presses.
func (m *InputModel) Blur() {
	m.ta.Blur()
}

// Focused reports whether the input accepts key presses.
func (m InputModel) Focused() bool {
	return m.ta.Focused()
}

// Value returns the raw draft text.
func (m InputModel) Value() string {
	return m.ta.Value()
}

// SetValue replaces the draft text.
func (m *InputModel) SetValue(s string) {
	m.ta.SetValue(s)
	m.autosize()
}

// Reset clears the draft and shrinks the input back to one row.
func (m *InputModel) Reset() {
	m.ta.Reset()
	m.autosize()
}

// CanSubmit reports whether the submit control is enabled.
func (m InputModel) CanSubmit(loading bool) bool {
	return !loading && strings.TrimSpace(m.ta.Value()) != ""
}

// Height is the number of terminal rows View occupies.
func (m InputModel) Height() int {
	return m.ta.Height() + 1 // separator
}

// Init satisfies tea.Model.
func (m InputModel) Init() tea.Cmd {
	return textarea.Blink
}

// Update forwards msg to the textarea and re-fits its height.
func (m InputModel) Update(msg tea.Msg) (InputModel, tea.Cmd) {
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	m.autosize()
	return m, cmd
}

// View renders a separator line followed by the textarea.
func (m InputModel) View() string {
	w := m.width
	if w < 10 {
		w = 80
	}
	sep := style.Separator.Render(strings.Repeat("─", w))
	return sep + "\n" + m.ta.View()
}

func (m *InputModel) autosize() {
	m.ta.SetHeight(FitHeight(m.ta.Value(), m.ta.Width(), maxInputRows))
}
