package app

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"
	. "github.com/onsi/gomega"

	"github.com/kouper/carechat/client"
	"github.com/kouper/carechat/conversation"
	"github.com/kouper/carechat/logger"
	"github.com/kouper/carechat/markdown"
	"github.com/kouper/carechat/msg"
)

func init() {
	markdown.SetStyle("notty")
}

type stubBackend struct {
	mu       sync.Mutex
	reply    client.Message
	chatErr  error
	resetErr error
	prompts  []string
}

func (s *stubBackend) Chat(ctx context.Context, prompt string) (*client.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prompts = append(s.prompts, prompt)
	if s.chatErr != nil {
		return nil, s.chatErr
	}
	r := s.reply
	return &r, nil
}

func (s *stubBackend) Reset(ctx context.Context) error {
	return s.resetErr
}

func newTestModel(b *stubBackend) (Model, *conversation.Controller) {
	conv := conversation.New(b)
	m := New(context.Background(), conv, "http://test")
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	return updated.(Model), conv
}

func send(m Model, in tea.Msg) (Model, tea.Cmd) {
	updated, cmd := m.Update(in)
	return updated.(Model), cmd
}

func typeDraft(m Model, s string) Model {
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func enter(m Model) (Model, tea.Cmd) {
	return send(m, tea.KeyMsg{Type: tea.KeyEnter})
}

// collect runs cmd (expanding batches) and returns the messages of type T.
func collect[T any](cmd tea.Cmd) []T {
	if cmd == nil {
		return nil
	}
	var out []T
	switch v := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range v {
			out = append(out, collect[T](c)...)
		}
	case T:
		out = append(out, v)
	}
	return out
}

func TestSubmit_BookAppointmentScenario(t *testing.T) {
	g := NewWithT(t)
	m, conv := newTestModel(&stubBackend{reply: client.Message{Role: client.RoleAssistant, Content: "Sure, what day?"}})

	m = typeDraft(m, "book an appointment")
	g.Expect(conv.Draft()).To(Equal("book an appointment"))

	m, cmd := enter(m)
	g.Expect(conv.History()).To(Equal([]client.Message{{Role: client.RoleUser, Content: "book an appointment"}}))
	g.Expect(m.input.Value()).To(BeEmpty())
	g.Expect(conv.Draft()).To(BeEmpty())
	g.Expect(conv.Loading()).To(BeTrue())
	g.Expect(m.input.Focused()).To(BeFalse())
	g.Expect(m.status.Active()).To(BeTrue())
	g.Expect(m.View()).To(ContainSubstring("book an appointment"))

	results := collect[msg.ChatResult](cmd)
	g.Expect(results).To(HaveLen(1))

	m, _ = send(m, results[0])
	g.Expect(conv.History()).To(Equal([]client.Message{
		{Role: client.RoleUser, Content: "book an appointment"},
		{Role: client.RoleAssistant, Content: "Sure, what day?"},
	}))
	g.Expect(conv.Loading()).To(BeFalse())
	g.Expect(m.input.Focused()).To(BeTrue())
	g.Expect(m.status.Active()).To(BeFalse())
	g.Expect(m.View()).To(ContainSubstring("Sure, what day?"))
}

func TestSubmit_EmptyDraftIsIgnored(t *testing.T) {
	g := NewWithT(t)
	m, conv := newTestModel(&stubBackend{})

	m, cmd := enter(m)
	g.Expect(cmd).To(BeNil())

	m = typeDraft(m, "   ")
	m, cmd = enter(m)
	g.Expect(cmd).To(BeNil())
	g.Expect(conv.Len()).To(BeZero())
	g.Expect(m.input.Value()).To(Equal("   "))
}

func TestSubmit_WhileLoadingIsDropped(t *testing.T) {
	g := NewWithT(t)
	b := &stubBackend{reply: client.Message{Role: client.RoleAssistant, Content: "first"}}
	m, conv := newTestModel(b)

	m = typeDraft(m, "first question")
	m, first := enter(m)

	// Input is disabled: typing and a second enter change nothing.
	m = typeDraft(m, "second question")
	g.Expect(m.input.Value()).To(BeEmpty())
	m, second := enter(m)
	g.Expect(second).To(BeNil())
	g.Expect(conv.Len()).To(Equal(1))

	results := collect[msg.ChatResult](first)
	m, _ = send(m, results[0])
	g.Expect(conv.Len()).To(Equal(2))
	g.Expect(b.prompts).To(Equal([]string{"first question"}))
}

func TestSubmit_FailureShowsFallback(t *testing.T) {
	g := NewWithT(t)
	m, conv := newTestModel(&stubBackend{chatErr: errors.New("dial tcp: connection refused")})

	m = typeDraft(m, "hello")
	m, cmd := enter(m)
	m, _ = send(m, collect[msg.ChatResult](cmd)[0])

	h := conv.History()
	g.Expect(h).To(HaveLen(2))
	g.Expect(h[1]).To(Equal(client.Message{Role: client.RoleAssistant, Content: "Sorry, an error occurred."}))
	g.Expect(conv.Loading()).To(BeFalse())
	g.Expect(m.input.Focused()).To(BeTrue())
}

func TestNewConversation_ClearsHistory(t *testing.T) {
	g := NewWithT(t)
	m, conv := newTestModel(&stubBackend{reply: client.Message{Role: client.RoleAssistant, Content: "hi"}})

	m = typeDraft(m, "hello")
	m, cmd := enter(m)
	m, _ = send(m, collect[msg.ChatResult](cmd)[0])
	g.Expect(conv.Len()).To(Equal(2))

	m, cmd = send(m, tea.KeyMsg{Type: tea.KeyCtrlN})
	resets := collect[msg.ResetResult](cmd)
	g.Expect(resets).To(HaveLen(1))
	g.Expect(resets[0].Err).NotTo(HaveOccurred())

	m, _ = send(m, resets[0])
	g.Expect(conv.Len()).To(BeZero())
	g.Expect(m.chat.Len()).To(BeZero())
	g.Expect(m.View()).To(ContainSubstring("No messages yet"))
}

func TestNewConversation_FailureKeepsHistory(t *testing.T) {
	g := NewWithT(t)
	b := &stubBackend{reply: client.Message{Role: client.RoleAssistant, Content: "hi"}, resetErr: errors.New("down")}
	m, conv := newTestModel(b)

	m = typeDraft(m, "hello")
	m, cmd := enter(m)
	m, _ = send(m, collect[msg.ChatResult](cmd)[0])

	m, cmd = send(m, tea.KeyMsg{Type: tea.KeyCtrlN})
	resets := collect[msg.ResetResult](cmd)
	m, _ = send(m, resets[0])

	g.Expect(resets[0].Err).To(HaveOccurred())
	g.Expect(conv.Len()).To(Equal(2))
	g.Expect(m.chat.Len()).To(Equal(2))
	g.Expect(m.View()).NotTo(ContainSubstring("down"))
}

func TestNewConversation_DuringRequestDropsLateReply(t *testing.T) {
	g := NewWithT(t)
	m, conv := newTestModel(&stubBackend{reply: client.Message{Role: client.RoleAssistant, Content: "late"}})

	m = typeDraft(m, "slow question")
	m, chatCmd := enter(m)

	m, resetCmd := send(m, tea.KeyMsg{Type: tea.KeyCtrlN})
	m, _ = send(m, collect[msg.ResetResult](resetCmd)[0])
	g.Expect(conv.Loading()).To(BeFalse())
	g.Expect(m.input.Focused()).To(BeTrue())

	var logs bytes.Buffer
	logger.SetOutput(&logs, "debug")
	defer logger.Close()

	late := collect[msg.ChatResult](chatCmd)[0]
	g.Expect(late.TurnID).NotTo(BeEmpty())
	m, _ = send(m, late)
	g.Expect(conv.Len()).To(BeZero())
	g.Expect(m.View()).NotTo(ContainSubstring("late"))
	g.Expect(logs.String()).To(ContainSubstring("reply dropped after reset"))
	g.Expect(logs.String()).To(ContainSubstring("turn=" + late.TurnID))
}

func TestQuitKeys(t *testing.T) {
	g := NewWithT(t)
	m, _ := newTestModel(&stubBackend{})

	_, cmd := send(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	g.Expect(cmd).NotTo(BeNil())
	g.Expect(cmd()).To(Equal(tea.QuitMsg{}))

	_, cmd = send(m, tea.KeyMsg{Type: tea.KeyCtrlD})
	g.Expect(cmd()).To(Equal(tea.QuitMsg{}))

	m = typeDraft(m, "draft")
	_, cmd = send(m, tea.KeyMsg{Type: tea.KeyCtrlD})
	g.Expect(cmd).To(BeNil())
}

func TestLayout_InputGrowthShrinksChat(t *testing.T) {
	g := NewWithT(t)
	m, _ := newTestModel(&stubBackend{})
	before := strings.Count(m.View(), "\n")

	m = typeDraft(m, "one")
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEnter, Alt: true})
	m = typeDraft(m, "two")

	g.Expect(m.input.Value()).To(Equal("one\ntwo"))
	g.Expect(m.input.Height()).To(Equal(3))
	g.Expect(strings.Count(m.View(), "\n")).To(Equal(before))
}
