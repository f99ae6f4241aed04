package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// choiceModel picks one entry from a list with a moving cursor.
// Fields are ordered to minimize memory padding.
type choiceModel struct {
	keys     KeyMap
	styles   Styles
	question string
	choices  []string
	cursor   int
	done     bool
	aborted  bool
}

func newChoiceModel(question string, choices []string, defaultIndex int, styles Styles) *choiceModel {
	cursor := 0
	if defaultIndex >= 0 && defaultIndex < len(choices) {
		cursor = defaultIndex
	}
	return &choiceModel{
		keys:     DefaultKeyMap(),
		styles:   styles,
		question: question,
		choices:  choices,
		cursor:   cursor,
	}
}

func (m *choiceModel) Init() tea.Cmd {
	return nil
}

func (m *choiceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Cancel):
		m.aborted = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.choices)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Enter):
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *choiceModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Question.Render(m.question))
	if m.done {
		b.WriteString(" ")
		b.WriteString(m.styles.Answer.Render(m.value()))
		b.WriteString("\n")
		return b.String()
	}
	if m.aborted {
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString("\n")
	for i, choice := range m.choices {
		if i == m.cursor {
			b.WriteString(m.styles.Cursor.Render("> "))
			b.WriteString(m.styles.Selected.Render(choice))
		} else {
			b.WriteString("  ")
			b.WriteString(m.styles.Item.Render(choice))
		}
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Help.Render("↑/↓ move • enter select • esc cancel"))
	b.WriteString("\n")
	return b.String()
}

func (m *choiceModel) value() string {
	if m.cursor < 0 || m.cursor >= len(m.choices) {
		return ""
	}
	return m.choices[m.cursor]
}
