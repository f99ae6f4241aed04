package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// confirmModel asks a yes/no question; enter takes the default.
type confirmModel struct {
	keys       KeyMap
	styles     Styles
	question   string
	defaultYes bool
	value      bool
	done       bool
	aborted    bool
}

func newConfirmModel(question string, defaultYes bool, styles Styles) *confirmModel {
	return &confirmModel{
		keys:       DefaultKeyMap(),
		styles:     styles,
		question:   question,
		defaultYes: defaultYes,
	}
}

func (m *confirmModel) Init() tea.Cmd {
	return nil
}

func (m *confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Cancel):
		m.aborted = true
	case key.Matches(keyMsg, m.keys.Yes):
		m.value, m.done = true, true
	case key.Matches(keyMsg, m.keys.No):
		m.value, m.done = false, true
	case key.Matches(keyMsg, m.keys.Enter):
		m.value, m.done = m.defaultYes, true
	default:
		return m, nil
	}
	return m, tea.Quit
}

func (m *confirmModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Question.Render(m.question))
	b.WriteString(" ")
	if m.done {
		answer := "no"
		if m.value {
			answer = "yes"
		}
		b.WriteString(m.styles.Answer.Render(answer))
		b.WriteString("\n")
		return b.String()
	}
	hint := "(y/N)"
	if m.defaultYes {
		hint = "(Y/n)"
	}
	b.WriteString(m.styles.Default.Render(hint))
	b.WriteString("\n")
	return b.String()
}
