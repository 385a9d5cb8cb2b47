// Package ui renders stackyter's terminal output with Lip Gloss.
//
// Printer writes one status line per call, prefixed with a colored symbol:
//
//	p := ui.NewPrinter(os.Stderr)
//	p.Info("Loading configuration from %s", path)
//	p.Warn("stdin is not a terminal")
//
// RenderSession and RenderConfigListing build the multi-line blocks shown
// before a session starts and by --showconfig.
//
// Colors are ANSI codes for broad terminal support. DisableColors switches
// every style to plain text (for --no-color and NO_COLOR).
package ui
