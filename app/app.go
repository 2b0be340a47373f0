package app

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kouper/carechat/client"
	"github.com/kouper/carechat/conversation"
	"github.com/kouper/carechat/logger"
	"github.com/kouper/carechat/model"
	"github.com/kouper/carechat/msg"
)

const minChatHeight = 3

// Model is the root Bubble Tea model. Conversation state lives in the
// controller; the sub-models only render it.
type Model struct {
	conv   *conversation.Controller
	ctx    context.Context
	header model.HeaderModel
	chat   model.ChatModel
	input  model.InputModel
	status model.StatusModel
	keys   KeyMap
	width  int
	height int
}

// New builds the root model around conv. backend is shown in the header.
func New(ctx context.Context, conv *conversation.Controller, backend string) Model {
	m := Model{
		conv:   conv,
		ctx:    ctx,
		header: model.NewHeader(backend),
		chat:   model.NewChat(80, 20),
		input:  model.NewInput(),
		status: model.NewStatus(),
		keys:   DefaultKeyMap(),
		width:  80,
		height: 24,
	}
	m.input.Focus()
	m.chat.SetMessages(conv.History())
	m.layout()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.input.Init(), tea.WindowSize())
}

func (m Model) Update(rawMsg tea.Msg) (tea.Model, tea.Cmd) {
	switch v := rawMsg.(type) {
	case tea.WindowSizeMsg:
		m.width = v.Width
		m.height = v.Height
		m.header.SetWidth(v.Width)
		m.input.SetWidth(v.Width)
		m.layout()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(v)
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.chat, cmd = m.chat.Update(v)
		return m, cmd
	case msg.ChatResult:
		return m.handleChatResult(v)
	case msg.ResetResult:
		return m.handleReset(v)
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.status, cmd = m.status.Update(v)
		return m, cmd
	}
	// Cursor blink and anything else the textarea cares about.
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(rawMsg)
	return m, cmd
}

func (m Model) View() string {
	sections := []string{
		m.header.View(),
		m.chat.View(),
		m.status.View(),
		m.input.View(),
	}
	return strings.Join(sections, "\n")
}

func (m Model) handleKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(k, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(k, m.keys.QuitEOF):
		if m.input.Value() == "" {
			return m, tea.Quit
		}
		return m, nil
	case key.Matches(k, m.keys.NewConversation):
		return m, m.reset()
	case key.Matches(k, m.keys.PageUp), key.Matches(k, m.keys.PageDown):
		var cmd tea.Cmd
		m.chat, cmd = m.chat.Update(k)
		return m, cmd
	case key.Matches(k, m.keys.Submit):
		if m.conv.Loading() {
			return m, nil
		}
		return m.submit()
	}

	if m.conv.Loading() {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(k)
	m.conv.SetDraft(m.input.Value())
	m.syncStatus()
	m.layout()
	return m, cmd
}

// submit starts a turn from the current draft. The user entry is displayed
// before the network call is issued.
func (m Model) submit() (Model, tea.Cmd) {
	if !m.input.CanSubmit(m.conv.Loading()) {
		return m, nil
	}
	turn, ok := m.conv.Begin(m.ctx, m.input.Value())
	if !ok {
		return m, nil
	}
	m.input.Reset()
	m.input.Blur()
	m.chat.SetMessages(m.conv.History())
	tick := m.status.Start()
	m.syncStatus()
	m.layout()
	return m, tea.Batch(m.exchange(turn), tick)
}

func (m Model) handleChatResult(r msg.ChatResult) (Model, tea.Cmd) {
	reply := client.Message{Role: client.Role(r.Role), Content: r.Content}
	if !m.conv.Settle(r.Generation, reply) {
		logger.Debug("reply dropped after reset", "turn", r.TurnID)
		return m, nil
	}
	logger.Debug("reply shown", "turn", r.TurnID)
	return m.idle()
}

func (m Model) handleReset(r msg.ResetResult) (Model, tea.Cmd) {
	if r.Err != nil {
		// Already logged by the controller; nothing is shown.
		return m, nil
	}
	return m.idle()
}

// idle re-renders history and hands the keyboard back to the input.
func (m Model) idle() (Model, tea.Cmd) {
	m.chat.SetMessages(m.conv.History())
	m.status.Stop()
	focus := m.input.Focus()
	m.syncStatus()
	m.layout()
	return m, focus
}

func (m Model) exchange(turn conversation.Turn) tea.Cmd {
	c := m.conv
	return func() tea.Msg {
		reply := c.Exchange(turn)
		return msg.ChatResult{
			TurnID:     turn.ID,
			Generation: turn.Generation,
			Role:       string(reply.Role),
			Content:    reply.Content,
		}
	}
}

func (m Model) reset() tea.Cmd {
	c := m.conv
	ctx := m.ctx
	return func() tea.Msg {
		return msg.ResetResult{Err: c.Reset(ctx)}
	}
}

func (m *Model) syncStatus() {
	m.status.SetCanSubmit(m.input.CanSubmit(m.conv.Loading()))
}

// layout gives the chat viewport whatever rows the other sections leave.
func (m *Model) layout() {
	h := m.height - m.header.Height() - m.status.Height() - m.input.Height()
	if h < minChatHeight {
		h = minChatHeight
	}
	m.chat.SetSize(m.width, h)
}
