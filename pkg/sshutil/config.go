// Package sshutil reads the user's OpenSSH client configuration.
package sshutil

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/kevinburke/ssh_config"
	"github.com/spf13/afero"
)

// HostEntry represents a parsed host entry from SSH config.
type HostEntry struct {
	Alias        string // The Host pattern (alias)
	Hostname     string // The HostName value (actual host to connect to)
	User         string // The User value
	Port         string // The Port value
	IdentityFile string // The IdentityFile value
}

// Description returns a user-friendly description of the host.
func (h HostEntry) Description() string {
	parts := []string{}

	if h.Hostname != "" && h.Hostname != h.Alias {
		parts = append(parts, h.Hostname)
	}

	if h.User != "" {
		parts = append(parts, "user: "+h.User)
	}

	if h.Port != "" && h.Port != "22" {
		parts = append(parts, "port: "+h.Port)
	}

	if len(parts) == 0 {
		return h.Alias
	}

	return strings.Join(parts, ", ")
}

// DefaultConfigPath returns ~/.ssh/config for the given home directory.
func DefaultConfigPath(home string) string {
	return filepath.Join(home, ".ssh", "config")
}

// LookupHost finds alias among the concrete Host entries of the SSH config at
// configPath. Wildcard patterns are never reported. Returns nil when the
// config doesn't exist or doesn't mention alias.
func LookupHost(fs afero.Fs, configPath, alias string) (*HostEntry, error) {
	content, err := readConfig(fs, configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // No SSH config is fine
		}
		return nil, err
	}

	cfg, err := ssh_config.Decode(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}

	if !hasAlias(cfg, alias) {
		return nil, nil
	}

	entry := &HostEntry{Alias: alias}

	if hostname, _ := cfg.Get(alias, "HostName"); hostname != "" {
		entry.Hostname = hostname
	}
	if user, _ := cfg.Get(alias, "User"); user != "" {
		entry.User = user
	}
	if port, _ := cfg.Get(alias, "Port"); port != "" {
		entry.Port = port
	}
	if identity, _ := cfg.Get(alias, "IdentityFile"); identity != "" {
		entry.IdentityFile = identity
	}

	return entry, nil
}

func hasAlias(cfg *ssh_config.Config, alias string) bool {
	for _, host := range cfg.Hosts {
		for _, pattern := range host.Patterns {
			p := pattern.String()
			if strings.ContainsAny(p, "*?") {
				continue
			}
			if p == alias {
				return true
			}
		}
	}
	return false
}

// readConfig returns the config content up to the first Match directive,
// which ssh_config can't decode.
func readConfig(fs afero.Fs, configPath string) ([]byte, error) {
	content, err := afero.ReadFile(fs, configPath)
	if err != nil {
		return nil, err
	}

	lines := strings.Split(string(content), "\n")
	var result []string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(strings.ToLower(trimmed), "match ") {
			break
		}
		result = append(result, line)
	}

	return []byte(strings.Join(result, "\n")), nil
}
