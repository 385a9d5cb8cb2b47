package util

import "testing"

func TestShellQuote(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"simple", "'simple'"},
		{"alice@gpu.example.org", "'alice@gpu.example.org'"},
		{"with space", "'with space'"},
		{"with'quote", "'with'\\''quote'"},
		{"", "''"},
		{"$variable", "'$variable'"},
		{"`backtick`", "'`backtick`'"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ShellQuote(tt.input)
			if got != tt.expected {
				t.Errorf("ShellQuote(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestQuoteIfNeeded(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"/sps/lsst/users/alice", "/sps/lsst/users/alice"},
		{"~/setup.sh", "~/setup.sh"},
		{"$HOME/work", "$HOME/work"},
		{"${WORK}/logs", "${WORK}/logs"},
		{"/data/my runs", `"/data/my runs"`},
		{"~/my runs", `~/"my runs"`},
		{`say "hi"`, `"say \"hi\""`},
		{`back\slash dir`, `"back\\slash dir"`},
		{"", `""`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := QuoteIfNeeded(tt.input)
			if got != tt.expected {
				t.Errorf("QuoteIfNeeded(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
