package config

import (
	"fmt"
	"strings"

	"github.com/stackyter/stackyter/internal/errors"
)

// SelectReason says how a profile got picked.
type SelectReason int

const (
	// ByName means the profile was requested with --config.
	ByName SelectReason = iota
	// ByDefaultKey means the file's default_config key named it.
	ByDefaultKey
	// SoleEntry means it was the only entry in the file.
	SoleEntry
)

// Selection is the profile chosen for this run.
type Selection struct {
	Path   string
	Name   string
	Reason SelectReason
	Values Values
}

// Select picks the active profile from f.
//
// An explicit name must exist. Without one, a file holding a single entry
// uses that entry; otherwise default_config must name an existing profile.
func Select(f *File, name string) (*Selection, error) {
	if name != "" {
		return pick(f, name, ByName,
			fmt.Sprintf("Configuration '%s' does not exist", name),
			availableHint(f))
	}

	switch {
	case len(f.Keys) == 0:
		return nil, errors.New(errors.ErrConfig,
			"Configuration file "+f.Path+" is empty",
			"Add at least one named configuration to it.")
	case len(f.Keys) == 1:
		return pick(f, f.Keys[0], SoleEntry,
			fmt.Sprintf("The only entry in %s is not a configuration", f.Path),
			"Each top-level key should map option names to values.")
	case f.DefaultConfig != "":
		return pick(f, f.DefaultConfig, ByDefaultKey,
			fmt.Sprintf("default_config points at '%s', which does not exist", f.DefaultConfig),
			availableHint(f))
	default:
		return nil, errors.New(errors.ErrConfig,
			"You must define a 'default_config' in your configuration file",
			fmt.Sprintf("%s holds several configurations. Add 'default_config: <name>' or pick one with --config. %s",
				f.Path, availableHint(f)))
	}
}

func pick(f *File, name string, reason SelectReason, message, suggestion string) (*Selection, error) {
	values, ok := f.Profile(name)
	if !ok {
		return nil, errors.New(errors.ErrConfig, message, suggestion)
	}
	return &Selection{
		Path:   f.Path,
		Name:   name,
		Reason: reason,
		Values: values,
	}, nil
}

func availableHint(f *File) string {
	names := f.ProfileNames()
	if len(names) == 0 {
		return "Check your default file."
	}
	return "Available configurations: " + strings.Join(names, ", ")
}
