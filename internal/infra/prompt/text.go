package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/robopackage/drupalctl/internal/domain"
)

// textModel reads a line of free text. A validator error keeps the prompt
// open and is shown below the input.
// Fields are ordered to minimize memory padding.
type textModel struct {
	err      error
	question domain.Question
	keys     KeyMap
	styles   Styles
	input    textinput.Model
	value    string
	done     bool
	aborted  bool
}

func newTextModel(q domain.Question, styles Styles) *textModel {
	ti := textinput.New()
	ti.Placeholder = q.Default
	ti.CharLimit = 1000
	ti.Prompt = "> "
	ti.Focus()
	return &textModel{
		question: q,
		keys:     DefaultKeyMap(),
		styles:   styles,
		input:    ti,
	}
}

func (m *textModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *textModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Cancel):
			m.aborted = true
			return m, tea.Quit
		case key.Matches(keyMsg, m.keys.Enter):
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *textModel) submit() tea.Cmd {
	value := strings.TrimSpace(m.input.Value())
	if value == "" {
		value = m.question.Default
	}
	if m.question.Validate != nil {
		normalized, err := m.question.Validate(value)
		if err != nil {
			m.err = err
			return nil
		}
		value = normalized
	}
	m.err = nil
	m.value = value
	m.done = true
	return tea.Quit
}

func (m *textModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Question.Render(m.question.Prompt))
	if m.done {
		b.WriteString(" ")
		b.WriteString(m.styles.Answer.Render(m.value))
		b.WriteString("\n")
		return b.String()
	}
	if m.question.Default != "" {
		b.WriteString(" ")
		b.WriteString(m.styles.Default.Render("[" + m.question.Default + "]"))
	}
	b.WriteString("\n")
	if m.aborted {
		return b.String()
	}
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(m.styles.Error.Render(m.err.Error()))
		b.WriteString("\n")
	}
	return b.String()
}
