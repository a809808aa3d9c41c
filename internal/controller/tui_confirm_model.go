package controller

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// confirmModel reads a single y/n key. Anything but y is a no.
type confirmModel struct {
	prompt string
	answer bool
	done   bool
}

func newConfirmModel(prompt string) confirmModel {
	return confirmModel{prompt: prompt}
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "y", "Y":
		m.answer = true
	case "n", "N", "enter", "esc", "q", "ctrl+c":
		m.answer = false
	default:
		return m, nil
	}

	m.done = true

	return m, tea.Quit
}

func (m confirmModel) View() string {
	hint := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render("[y/N]")

	if !m.done {
		return m.prompt + " " + hint + " "
	}

	answer := "no"
	if m.answer {
		answer = "yes"
	}

	return m.prompt + " " + hint + " " + accentStyle.Render(answer) + "\n"
}
