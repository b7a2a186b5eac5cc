package cli

// ABOUTME: Terminal styling for the prompt, success line and error prefix.
// ABOUTME: Color is used only when the stream is a terminal and not disabled.

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// colorEnabled reports whether output written to w should be styled.
// --no-color and a non-empty NO_COLOR environment variable both disable it,
// as does any writer that is not a terminal.
func colorEnabled(cmd *cobra.Command, w io.Writer) bool {
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // fd conversion is safe on all supported platforms
}

// styles renders text for one output stream.
type styles struct {
	color bool

	promptStyle  lipgloss.Style
	successStyle lipgloss.Style
	errorStyle   lipgloss.Style
}

func newStyles(w io.Writer, color bool) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		color:        color,
		promptStyle:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		successStyle: r.NewStyle().Foreground(lipgloss.Color("10")),
		errorStyle:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	}
}

func (s styles) render(st lipgloss.Style, text string) string {
	if !s.color {
		return text
	}
	return st.Render(text)
}

func (s styles) prompt(text string) string      { return s.render(s.promptStyle, text) }
func (s styles) success(text string) string     { return s.render(s.successStyle, text) }
func (s styles) errorPrefix(text string) string { return s.render(s.errorStyle, text) }
