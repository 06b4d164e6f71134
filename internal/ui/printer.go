package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Out is where the printers below write. Tests replace it.
var Out io.Writer = os.Stdout

// render applies style unless color output is disabled.
func render(style lipgloss.Style, s string) string {
	if !ColorEnabled() {
		return s
	}
	return style.Render(s)
}

func status(style lipgloss.Style, icon, format string, a []any) {
	fmt.Fprintf(Out, "%s %s\n", render(style, icon), fmt.Sprintf(format, a...))
}

// Warning prints a message prefixed with a yellow triangle.
func Warning(format string, a ...any) { status(WarningStyle, "⚠", format, a) }

// Info prints a message prefixed with an info sign.
func Info(format string, a ...any) { status(InfoStyle, "ℹ", format, a) }

// Section prints a blank line followed by a title.
func Section(title string) {
	fmt.Fprintf(Out, "\n%s\n", render(TitleStyle, title))
}
