package prompt

import "github.com/charmbracelet/lipgloss"

// Colors defines the prompt palette.
var Colors = struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Text      lipgloss.Color
	Selected  lipgloss.Color
}{
	Primary:   lipgloss.Color("#0678BE"), // Drupal blue
	Secondary: lipgloss.Color("#53B0EB"), // Light blue
	Muted:     lipgloss.Color("#636E72"), // Gray
	Error:     lipgloss.Color("#D63031"), // Red
	Success:   lipgloss.Color("#00B894"), // Green
	Warning:   lipgloss.Color("#FDCB6E"), // Yellow
	Text:      lipgloss.Color("#DFE6E9"), // Light gray
	Selected:  lipgloss.Color("#FFEAA7"), // Yellow (selected)
}

// Styles contains the lipgloss styles used by the prompt models.
type Styles struct {
	Question lipgloss.Style
	Default  lipgloss.Style
	Answer   lipgloss.Style
	Cursor   lipgloss.Style
	Item     lipgloss.Style
	Selected lipgloss.Style
	Error    lipgloss.Style
	Help     lipgloss.Style
}

// DefaultStyles returns the default prompt styles.
func DefaultStyles() Styles {
	return Styles{
		Question: lipgloss.NewStyle().Foreground(Colors.Primary).Bold(true),
		Default:  lipgloss.NewStyle().Foreground(Colors.Muted),
		Answer:   lipgloss.NewStyle().Foreground(Colors.Secondary),
		Cursor:   lipgloss.NewStyle().Foreground(Colors.Selected).Bold(true),
		Item:     lipgloss.NewStyle().Foreground(Colors.Text),
		Selected: lipgloss.NewStyle().Foreground(Colors.Selected).Bold(true),
		Error:    lipgloss.NewStyle().Foreground(Colors.Error),
		Help:     lipgloss.NewStyle().Foreground(Colors.Muted).Italic(true),
	}
}
