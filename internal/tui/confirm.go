// Package tui provides the interactive terminal widgets of next-issue.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmModel is a single-question y/N prompt.
type ConfirmModel struct {
	keys      KeyMap
	help      help.Model
	styles    Styles
	question  string
	answered  bool
	confirmed bool
}

// NewConfirmModel creates a prompt for question.
func NewConfirmModel(question string) *ConfirmModel {
	return &ConfirmModel{
		keys:     DefaultKeyMap(),
		help:     help.New(),
		styles:   DefaultStyles(),
		question: question,
	}
}

// Init implements tea.Model.
func (m *ConfirmModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.answered {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Confirm):
		m.answered = true
		m.confirmed = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Decline), key.Matches(keyMsg, m.keys.Quit):
		m.answered = true
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model.
func (m *ConfirmModel) View() string {
	question := m.styles.Question.Render(m.question)
	if m.answered {
		answer := m.styles.No.Render("no")
		if m.confirmed {
			answer = m.styles.Yes.Render("yes")
		}
		return question + " " + answer + "\n"
	}
	return question + " " + m.styles.Hint.Render("[y/N]") + "  " + m.help.View(m.keys)
}

// Answered reports whether a key settled the prompt.
func (m *ConfirmModel) Answered() bool {
	return m.answered
}

// Confirmed reports whether the user answered yes.
func (m *ConfirmModel) Confirmed() bool {
	return m.confirmed
}
