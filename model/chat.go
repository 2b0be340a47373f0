package model

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kouper/carechat/client"
	"github.com/kouper/carechat/markdown"
	"github.com/kouper/carechat/style"
)

const (
	assistantIcon = "✺"
	minBodyWidth  = 20
)

// ChatModel is a scrollable viewport that displays conversation history.
type ChatModel struct {
	vp       viewport.Model
	messages []client.Message
	width    int
	height   int
}

// NewChat constructs a ChatModel sized to width x height.
func NewChat(width, height int) ChatModel {
	m := ChatModel{
		vp:     viewport.New(width, height),
		width:  width,
		height: height,
	}
	m.refresh()
	return m
}

// SetMessages replaces the displayed history and scrolls to the newest entry.
func (m *ChatModel) SetMessages(msgs []client.Message) {
	m.messages = msgs
	m.refresh()
}

// Len returns the number of displayed messages.
func (m ChatModel) Len() int {
	return len(m.messages)
}

// SetSize resizes the viewport and re-wraps every message.
func (m *ChatModel) SetSize(width, height int) {
	if width == m.width && height == m.height {
		return
	}
	m.width = width
	m.height = height
	m.vp.Width = width
	m.vp.Height = height
	m.refresh()
}

// Init satisfies tea.Model.
func (m ChatModel) Init() tea.Cmd {
	return nil
}

// Update forwards scroll keys and mouse wheel events to the viewport.
func (m ChatModel) Update(msg tea.Msg) (ChatModel, tea.Cmd) {
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

// View returns the rendered viewport content.
func (m ChatModel) View() string {
	return m.vp.View()
}

func (m *ChatModel) refresh() {
	m.vp.SetContent(m.renderAll())
	m.vp.GotoBottom()
}

func (m ChatModel) renderAll() string {
	if len(m.messages) == 0 {
		return style.Faint.Render("  No messages yet. Ask about a patient or an appointment.")
	}
	parts := make([]string, len(m.messages))
	for i, msg := range m.messages {
		parts[i] = RenderMessage(msg, m.width)
	}
	return strings.Join(parts, "\n\n")
}

// RenderMessage converts a single message to a display block at width columns.
// Both roles are rendered as markdown; assistant blocks carry a leading icon.
func RenderMessage(msg client.Message, width int) string {
	body := width - 2 // left border + padding
	if body < minBodyWidth {
		body = minBodyWidth
	}
	content := markdown.RenderWidth(msg.Content, body)

	switch msg.Role {
	case client.RoleUser:
		label := style.UserLabel.Render("You")
		return style.UserBlock.Render(label + "\n" + content)
	case client.RoleAssistant:
		label := style.AssistantIcon.Render(assistantIcon) + " " + style.AssistantLabel.Render("Assistant")
		return style.AssistantBlock.Render(label + "\n" + content)
	default:
		return style.Faint.Render(msg.Content)
	}
}
