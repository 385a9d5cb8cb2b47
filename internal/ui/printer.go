package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/stackyter/stackyter/internal/logger"
)

// Printer writes styled status lines. It satisfies logger.Logger, so the
// same lines can come from packages that only know about logging.
type Printer struct {
	w     io.Writer
	quiet bool
}

// NewPrinter creates a printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// SetQuiet suppresses everything except warnings and errors.
func (p *Printer) SetQuiet(quiet bool) {
	p.quiet = quiet
}

// Debug prints a muted detail line when debug logging is on.
func (p *Printer) Debug(format string, args ...any) {
	if !logger.DebugEnabled() {
		return
	}
	p.Detail(format, args...)
}

// Info prints: ● message
func (p *Printer) Info(format string, args ...any) {
	if p.quiet {
		return
	}
	p.line(ColorInfo, SymbolComplete, format, args...)
}

// Success prints: ✓ message
func (p *Printer) Success(format string, args ...any) {
	if p.quiet {
		return
	}
	p.line(ColorSuccess, SymbolSuccess, format, args...)
}

// Progress prints: ◐ message
func (p *Printer) Progress(format string, args ...any) {
	if p.quiet {
		return
	}
	p.line(ColorSecondary, SymbolProgress, format, args...)
}

// Warn prints: ! message
func (p *Printer) Warn(format string, args ...any) {
	p.line(ColorWarning, SymbolWarning, format, args...)
}

// Error prints: ✗ message
func (p *Printer) Error(format string, args ...any) {
	p.line(ColorError, SymbolFail, format, args...)
}

// Detail prints an indented, muted line under the previous status line.
func (p *Printer) Detail(format string, args ...any) {
	if p.quiet {
		return
	}
	style := lipgloss.NewStyle().Foreground(ColorMuted)
	fmt.Fprintf(p.w, "  %s\n", style.Render(fmt.Sprintf(format, args...)))
}

func (p *Printer) line(color lipgloss.Color, symbol, format string, args ...any) {
	style := lipgloss.NewStyle().Foreground(color)
	fmt.Fprintf(p.w, "%s %s\n", style.Render(symbol), fmt.Sprintf(format, args...))
}

var _ logger.Logger = (*Printer)(nil)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
