package config

import (
	"slices"
	"strings"

	"github.com/stackyter/stackyter/internal/errors"
)

// Validate checks that opts describe a session that can be started.
// It runs before anything touches the remote host.
func Validate(opts Options) error {
	if strings.TrimSpace(opts.Host) == "" {
		return errors.New(errors.ErrConfig,
			"You must give a valid host name (--host)",
			"Pass --host, or set 'host' in your configuration file.")
	}

	if strings.ContainsAny(opts.Host, " \t\n") {
		return errors.Newf(errors.ErrConfig,
			"Use a hostname or an alias from ~/.ssh/config.",
			"Host '%s' contains whitespace", opts.Host)
	}

	if strings.Contains(opts.Username, "@") {
		return errors.Newf(errors.ErrConfig,
			"Give the user and the host separately with --username and --host.",
			"Username '%s' contains '@'", opts.Username)
	}

	if !slices.Contains(JupyterModes, opts.Jupyter) {
		return errors.Newf(errors.ErrConfig,
			"Use one of: "+strings.Join(JupyterModes, ", "),
			"'%s' isn't a Jupyter mode", opts.Jupyter)
	}

	if opts.TensorBoard && opts.LogDir == "" {
		return errors.New(errors.ErrConfig,
			"You must provide a logdir path to TensorBoard (--logdir)",
			"Pass --logdir with the TensorBoard log directory on the remote host.")
	}

	return nil
}
