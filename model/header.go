package model

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/kouper/carechat/style"
)

// Title is shown in the header line.
const Title = "Kouper Health Assistant"

// HeaderModel renders the one-line header:
//
//	Kouper Health Assistant · http://localhost:8000
//
// It is static once constructed.
type HeaderModel struct {
	backend string
	width   int
}

// NewHeader returns a header for the given backend origin.
func NewHeader(backend string) HeaderModel {
	return HeaderModel{backend: backend}
}

// SetWidth sets the width used for the trailing rule.
func (m *HeaderModel) SetWidth(w int) {
	m.width = w
}

// Height is the number of terminal rows View occupies.
func (m HeaderModel) Height() int {
	return 1
}

// View renders the header line.
func (m HeaderModel) View() string {
	line := style.HeaderTitle.Render(Title)
	if m.backend != "" {
		line += style.Faint.Render(" · ") + style.HeaderDetail.Render(m.backend)
	}
	if m.width > 0 {
		line = lipgloss.NewStyle().MaxWidth(m.width).Render(line)
	}
	return line
}
