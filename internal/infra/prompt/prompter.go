// Package prompt implements interactive terminal prompts with bubbletea.
package prompt

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/robopackage/drupalctl/internal/domain"
)

// Prompter asks questions on a terminal.
type Prompter struct {
	in     io.Reader
	out    io.Writer
	styles Styles
}

// Ensure Prompter implements domain.Prompter interface.
var _ domain.Prompter = (*Prompter)(nil)

// New creates a Prompter reading from in and rendering to out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: in, out: out, styles: DefaultStyles()}
}

func (p *Prompter) run(m tea.Model) (tea.Model, error) {
	prog := tea.NewProgram(m, tea.WithInput(p.in), tea.WithOutput(p.out))
	final, err := prog.Run()
	if err != nil {
		return nil, fmt.Errorf("run prompt: %w", err)
	}
	return final, nil
}

// Ask prompts for free text, asking again until the validator accepts it.
func (p *Prompter) Ask(q domain.Question) (string, error) {
	final, err := p.run(newTextModel(q, p.styles))
	if err != nil {
		return "", err
	}
	m := final.(*textModel)
	if m.aborted || !m.done {
		return "", domain.ErrAborted
	}
	return m.value, nil
}

// Choice prompts for one of choices.
func (p *Prompter) Choice(question string, choices []string, defaultIndex int) (string, error) {
	if len(choices) == 0 {
		return "", domain.ErrNoChoices
	}
	final, err := p.run(newChoiceModel(question, choices, defaultIndex, p.styles))
	if err != nil {
		return "", err
	}
	m := final.(*choiceModel)
	if m.aborted || !m.done {
		return "", domain.ErrAborted
	}
	return m.value(), nil
}

// Confirm prompts for yes/no.
func (p *Prompter) Confirm(question string, defaultYes bool) (bool, error) {
	final, err := p.run(newConfirmModel(question, defaultYes, p.styles))
	if err != nil {
		return false, err
	}
	m := final.(*confirmModel)
	if m.aborted || !m.done {
		return false, domain.ErrAborted
	}
	return m.value, nil
}
