package model

import (
	"strings"
	"testing"

	"github.com/kouper/carechat/client"
	"github.com/kouper/carechat/markdown"
)

func init() {
	markdown.SetStyle("notty")
}

func TestRenderMessage_AssistantHasIcon(t *testing.T) {
	out := RenderMessage(client.Message{Role: client.RoleAssistant, Content: "Sure, what day?"}, 60)
	if !strings.Contains(out, assistantIcon) {
		t.Errorf("assistant block missing icon: %q", out)
	}
	if !strings.Contains(out, "Sure, what day?") {
		t.Errorf("assistant block missing content: %q", out)
	}
}

func TestRenderMessage_UserHasNoIcon(t *testing.T) {
	out := RenderMessage(client.Message{Role: client.RoleUser, Content: "book an appointment"}, 60)
	if strings.Contains(out, assistantIcon) {
		t.Errorf("user block must not carry the assistant icon: %q", out)
	}
	if !strings.Contains(out, "You") || !strings.Contains(out, "book an appointment") {
		t.Errorf("user block missing label or content: %q", out)
	}
}

func TestChat_EmptyShowsHint(t *testing.T) {
	m := NewChat(60, 10)
	if !strings.Contains(m.View(), "No messages yet") {
		t.Errorf("empty chat should show hint, got %q", m.View())
	}
}

func TestChat_SetMessagesKeepsOrderAndScrollsToBottom(t *testing.T) {
	m := NewChat(60, 4)
	var msgs []client.Message
	for i := 0; i < 10; i++ {
		msgs = append(msgs,
			client.Message{Role: client.RoleUser, Content: "question"},
			client.Message{Role: client.RoleAssistant, Content: "answer"})
	}
	msgs = append(msgs, client.Message{Role: client.RoleUser, Content: "latest entry"})
	m.SetMessages(msgs)

	if m.Len() != len(msgs) {
		t.Fatalf("want %d messages, got %d", len(msgs), m.Len())
	}
	if !strings.Contains(m.View(), "latest entry") {
		t.Errorf("viewport should be scrolled to the newest entry, got %q", m.View())
	}

	all := m.renderAll()
	if strings.Index(all, "question") > strings.Index(all, "answer") {
		t.Error("history must render in insertion order")
	}
}

func TestChat_ResetToEmpty(t *testing.T) {
	m := NewChat(60, 10)
	m.SetMessages([]client.Message{{Role: client.RoleUser, Content: "hello"}})
	m.SetMessages(nil)
	if m.Len() != 0 || !strings.Contains(m.View(), "No messages yet") {
		t.Errorf("cleared chat should show the empty hint, got %q", m.View())
	}
}
