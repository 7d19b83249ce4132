package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles for the renderer. Kept as a struct so a no-color renderer can
// swap in unstyled variants.
type Styles struct {
	Success  lipgloss.Style
	Error    lipgloss.Style
	Path     lipgloss.Style
	Dim      lipgloss.Style
	Modified lipgloss.Style
}

// DefaultStyles returns the styled palette used on capable terminals.
func DefaultStyles() Styles {
	return Styles{
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Path:     lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		Modified: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	}
}

// PlainStyles returns unstyled equivalents for non-terminal output.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Success:  plain,
		Error:    plain,
		Path:     plain,
		Dim:      plain,
		Modified: plain,
	}
}

// colorCapable reports whether the environment supports colored output.
func colorCapable() bool {
	return termenv.EnvColorProfile() != termenv.Ascii
}
