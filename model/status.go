package model

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kouper/carechat/style"
)

// StatusModel renders the line between the chat and the input. It has two
// visual states:
//
//   - active (request in flight): spinner + "Thinking..."
//   - idle: key hints, with "send" struck through while submit is disabled
type StatusModel struct {
	spin      spinner.Model
	active    bool
	canSubmit bool
}

// NewStatus returns an idle StatusModel.
func NewStatus() StatusModel {
	return StatusModel{
		spin: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(style.SpinnerStyle),
		),
	}
}

// Start switches to the active state and returns the first spinner tick.
func (m *StatusModel) Start() tea.Cmd {
	m.active = true
	return m.spin.Tick
}

// Stop switches back to the idle state. Pending ticks die out on their own.
func (m *StatusModel) Stop() {
	m.active = false
}

// Active reports whether the spinner is shown.
func (m StatusModel) Active() bool {
	return m.active
}

// SetCanSubmit toggles the enabled look of the send hint.
func (m *StatusModel) SetCanSubmit(ok bool) {
	m.canSubmit = ok
}

// Height is the number of terminal rows View occupies.
func (m StatusModel) Height() int {
	return 1
}

// Update advances the spinner while active.
func (m StatusModel) Update(msg tea.Msg) (StatusModel, tea.Cmd) {
	if !m.active {
		return m, nil
	}
	var cmd tea.Cmd
	m.spin, cmd = m.spin.Update(msg)
	return m, cmd
}

// View renders the status line.
func (m StatusModel) View() string {
	if m.active {
		return style.StatusBar.Render(m.spin.View() + " Thinking...")
	}
	send := style.Hint.Render("send")
	if !m.canSubmit {
		send = style.HintDisabled.Render("send")
	}
	hints := []string{
		style.HintKey.Render("enter") + " " + send,
		style.HintKey.Render("shift+enter") + " " + style.Hint.Render("newline"),
		style.HintKey.Render("ctrl+n") + " " + style.Hint.Render("new conversation"),
		style.HintKey.Render("ctrl+c") + " " + style.Hint.Render("quit"),
	}
	return style.StatusBar.Render(strings.Join(hints, style.Faint.Render(" · ")))
}
