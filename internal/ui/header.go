package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/stackyter/stackyter/internal/util"
)

// HeaderWidth is the default width of the header divider
const HeaderWidth = 50

// SessionInfo describes the session about to start.
type SessionInfo struct {
	Target      string // ssh destination, user@host or alias
	Description string // what ~/.ssh/config says about the alias, if anything
	Profile     string // configuration name, empty when none was used
	Jupyter     string // notebook or lab
	JupyterPort int    // remote Jupyter port
	TBPort      int    // remote TensorBoard port, 0 when TensorBoard is off
}

// RenderSession renders a short summary of the session.
func RenderSession(info SessionInfo) string {
	titleStyle := lipgloss.NewStyle().Foreground(ColorInfo).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(ColorMuted)
	dividerStyle := lipgloss.NewStyle().Foreground(ColorMuted)

	var b strings.Builder

	b.WriteString(titleStyle.Render("stackyter"))
	b.WriteString(" ")
	b.WriteString(info.Target)
	if info.Description != "" && info.Description != info.Target {
		b.WriteString(labelStyle.Render(" (" + info.Description + ")"))
	}
	b.WriteString("\n")

	row := func(label, value string) {
		b.WriteString(labelStyle.Render(fmt.Sprintf("  %-12s", label)))
		b.WriteString(value)
		b.WriteString("\n")
	}

	if info.Profile != "" {
		row("profile", info.Profile)
	}
	row("jupyter", fmt.Sprintf("%s on remote port %d", info.Jupyter, info.JupyterPort))
	if info.TBPort != 0 {
		row("tensorboard", fmt.Sprintf("remote port %d", info.TBPort))
	}

	b.WriteString(dividerStyle.Render(strings.Repeat("━", HeaderWidth)))
	b.WriteString("\n")

	return b.String()
}

// RenderConfigListing renders the show-config header for a file.
func RenderConfigListing(path string, names []string, def string) string {
	titleStyle := lipgloss.NewStyle().Foreground(ColorInfo).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(ColorMuted)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Your default configuration file contains the following configuration(s)."))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(path))
	b.WriteString("\n")

	if len(names) > 0 {
		var marked []string
		for _, n := range names {
			if n == def {
				n += " (default)"
			}
			marked = append(marked, n)
		}
		label := util.Pluralize(len(marked), "configuration", "configurations")
		b.WriteString(mutedStyle.Render(label + ": " + util.JoinOrNone(marked)))
		b.WriteString("\n")
	}

	b.WriteString(mutedStyle.Render(strings.Repeat("━", HeaderWidth)))
	b.WriteString("\n")

	return b.String()
}
