// Package util provides common utility functions used across the codebase.
package util

import "strings"

// ShellQuote wraps a string in single quotes, escaping any existing single quotes.
// This is safe for use in shell commands where the string should be treated literally.
func ShellQuote(s string) string {
	// Replace ' with '\'' (end quote, escaped quote, start quote)
	escaped := strings.ReplaceAll(s, "'", "'\\''")
	return "'" + escaped + "'"
}

// QuoteIfNeeded returns s unchanged when it is a plain shell word and
// double-quotes it otherwise. Double quotes keep $VAR expansion working, and
// a leading ~/ is left outside the quotes so the tilde still expands.
//
// Use it for paths handed to a remote shell, where the user may rely on the
// remote $HOME or other remote variables.
func QuoteIfNeeded(s string) string {
	if s == "" {
		return `""`
	}
	if isPlainWord(s) {
		return s
	}
	if strings.HasPrefix(s, "~/") {
		return "~/" + QuoteIfNeeded(s[2:])
	}
	return `"` + doubleQuoteEscaper.Replace(s) + `"`
}

var doubleQuoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func isPlainWord(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case strings.ContainsRune("_@%+=:,./~$-{}", r):
		default:
			return false
		}
	}
	return true
}
