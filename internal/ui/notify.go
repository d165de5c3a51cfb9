// Package ui holds the shared terminal surface: transient notifications,
// confirmation prompts and amount formatting.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
)

// Notifier writes categorized one-line messages, the CLI equivalent of the
// web client's toast notifications.
type Notifier struct {
	out io.Writer
}

// NewNotifier creates a Notifier writing to out (typically stderr).
func NewNotifier(out io.Writer) *Notifier {
	return &Notifier{out: out}
}

func (n *Notifier) Success(format string, args ...any) {
	fmt.Fprintf(n.out, "%s %s\n", successStyle.Render("✔"), fmt.Sprintf(format, args...))
}

func (n *Notifier) Error(format string, args ...any) {
	fmt.Fprintf(n.out, "%s %s\n", errorStyle.Render("✖"), fmt.Sprintf(format, args...))
}

func (n *Notifier) Warning(format string, args ...any) {
	fmt.Fprintf(n.out, "%s %s\n", warningStyle.Render("▲"), fmt.Sprintf(format, args...))
}

func (n *Notifier) Info(format string, args ...any) {
	fmt.Fprintf(n.out, "%s %s\n", infoStyle.Render("ℹ"), fmt.Sprintf(format, args...))
}
