package config

import (
	"github.com/spf13/afero"

	"github.com/stackyter/stackyter/internal/errors"
	"github.com/stackyter/stackyter/internal/logger"
)

// ResolveInput carries everything Resolve reads from the outside world.
type ResolveInput struct {
	Fs  afero.Fs
	Env LookupEnv

	// ConfigFile is the --configfile value, empty when not given.
	ConfigFile string

	// Profile is the --config value, empty when not given.
	Profile string

	// CLI holds only the options explicitly set on the command line.
	CLI Values

	Log logger.Logger
}

// Resolve locates and loads the configuration file, selects a profile and
// merges it with the defaults and the command line.
func Resolve(in ResolveInput) (*Resolved, error) {
	log := in.Log
	if log == nil {
		log = logger.Noop()
	}

	path, err := Locate(in.Fs, in.Env, in.ConfigFile)
	if err != nil {
		return nil, err
	}

	if path == "" {
		if in.Profile != "" {
			return nil, errors.New(errors.ErrConfig,
				"No (default) configuration file found or given",
				"Create ~/"+ConfigFileName+", set $"+ConfigEnv+", or pass --configfile.")
		}
		log.Debug("no configuration file found, using command line and defaults")
		return Merge(DefaultValues(), nil, in.CLI), nil
	}

	log.Info("Loading configuration from %s", path)
	f, err := LoadFile(in.Fs, path)
	if err != nil {
		return nil, err
	}

	sel, err := Select(f, in.Profile)
	if err != nil {
		return nil, err
	}

	switch sel.Reason {
	case ByName:
		log.Info("Using the '%s' configuration", sel.Name)
	case ByDefaultKey:
		log.Info("Using default configuration '%s'", sel.Name)
	default:
		log.Debug("using '%s', the only configuration in the file", sel.Name)
	}

	r := Merge(DefaultValues(), sel.Values, in.CLI)
	r.Selection = sel
	for _, key := range r.Ignored {
		log.Warn("ignoring unknown option '%s' in configuration '%s'", key, sel.Name)
	}
	for _, key := range r.Values.Keys() {
		log.Debug("%s = %v (%s)", key, r.Values[key], r.Sources[key])
	}

	return r, nil
}
