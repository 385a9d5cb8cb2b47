package config

import (
	"github.com/go-viper/mapstructure/v2"

	"github.com/stackyter/stackyter/internal/errors"
)

// Resolved is the outcome of merging defaults, a profile and the command line.
type Resolved struct {
	// Values holds the effective value of every known option.
	Values Values

	// Sources records where each effective value came from.
	Sources map[string]Source

	// Ignored lists profile keys that aren't options, sorted.
	Ignored []string

	// Selection is the profile that was applied, nil when no file was used.
	Selection *Selection
}

// Merge layers profile over defaults and cli over both.
// Only keys present in defaults are considered. A key counts as set on the
// command line when it is present in cli, whatever its value.
func Merge(defaults, profile, cli Values) *Resolved {
	r := &Resolved{
		Values:  make(Values, len(defaults)),
		Sources: make(map[string]Source, len(defaults)),
	}

	for key, def := range defaults {
		val, src := def, SourceDefault
		if pv, ok := profile[key]; ok {
			val, src = pv, SourceProfile
		}
		if cv, ok := cli[key]; ok {
			val, src = cv, SourceCLI
		}
		r.Values[key] = val
		r.Sources[key] = src
	}

	for _, key := range profile.Keys() {
		if _, ok := defaults[key]; !ok {
			r.Ignored = append(r.Ignored, key)
		}
	}

	return r
}

// Source returns where key's value came from.
func (r *Resolved) Source(key string) Source {
	return r.Sources[key]
}

// Options decodes the merged values. A comma-separated string for a list
// option is split into separate entries; a list is used as is.
func (r *Resolved) Options() (Options, error) {
	var opts Options

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		WeaklyTypedInput: true,
		Result:           &opts,
	})
	if err != nil {
		return Options{}, errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't set up the option decoder",
			"This shouldn't happen - please report this bug!")
	}

	if err := dec.Decode(map[string]any(r.Values)); err != nil {
		return Options{}, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid option value",
			"Check the types of the values in your configuration file.")
	}

	return opts, nil
}
