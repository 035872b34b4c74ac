package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/next-issue/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestConfirmModel_Update(t *testing.T) {
	tests := []struct {
		name      string
		msg       tea.KeyMsg
		confirmed bool
	}{
		{"y confirms", runeKey('y'), true},
		{"Y confirms", runeKey('Y'), true},
		{"n declines", runeKey('n'), false},
		{"N declines", runeKey('N'), false},
		{"enter declines", tea.KeyMsg{Type: tea.KeyEnter}, false},
		{"esc declines", tea.KeyMsg{Type: tea.KeyEsc}, false},
		{"ctrl+c declines", tea.KeyMsg{Type: tea.KeyCtrlC}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewConfirmModel("Switch to milestone/m1?")

			_, cmd := m.Update(tt.msg)

			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
			assert.True(t, m.Answered())
			assert.Equal(t, tt.confirmed, m.Confirmed())
		})
	}
}

func TestConfirmModel_IgnoresOtherKeys(t *testing.T) {
	m := NewConfirmModel("Create and switch to feat/m1-1-01_a?")

	_, cmd := m.Update(runeKey('x'))
	assert.Nil(t, cmd)
	assert.False(t, m.Answered())

	_, cmd = m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Nil(t, cmd)
	assert.False(t, m.Answered())
}

func TestConfirmModel_FirstAnswerWins(t *testing.T) {
	m := NewConfirmModel("Proceed?")

	m.Update(runeKey('n'))
	_, cmd := m.Update(runeKey('y'))

	assert.Nil(t, cmd)
	assert.False(t, m.Confirmed())
}

func TestConfirmModel_View(t *testing.T) {
	m := NewConfirmModel("Switch to milestone/m2?")

	view := m.View()
	assert.Contains(t, view, "Switch to milestone/m2?")
	assert.Contains(t, view, "[y/N]")
	assert.Contains(t, view, "yes")

	m.Update(runeKey('y'))
	view = m.View()
	assert.Contains(t, view, "Switch to milestone/m2?")
	assert.NotContains(t, view, "[y/N]")
}

func TestStatusColor(t *testing.T) {
	for _, status := range domain.AllStatuses() {
		t.Run(string(status), func(t *testing.T) {
			assert.NotEqual(t, Colors.Muted, StatusColor(status))
		})
	}
	assert.Equal(t, Colors.Muted, StatusColor(domain.IssueStatus("unknown")))
}
