package cli

import (
	"fmt"

	"github.com/spf13/afero"

	"github.com/stackyter/stackyter/internal/config"
	"github.com/stackyter/stackyter/internal/ui"
)

// showConfig prints the configuration file that would be used, or says that
// there is none. It never starts a session.
func showConfig(env *environment, p *ui.Printer, explicit string) error {
	path, err := config.Locate(env.fs, env.lookupEnv, explicit)
	if err != nil {
		return err
	}

	if path == "" {
		fmt.Fprintln(env.stdout, "No default configuration file found.")
		return nil
	}

	f, err := config.LoadFile(env.fs, path)
	if err != nil {
		p.Warn("%s doesn't parse as a configuration file", path)
		raw, readErr := afero.ReadFile(env.fs, path)
		if readErr != nil {
			return err
		}
		fmt.Fprint(env.stdout, string(raw))
		return nil
	}

	fmt.Fprint(env.stdout, ui.RenderConfigListing(path, f.ProfileNames(), f.DefaultConfig))
	fmt.Fprint(env.stdout, string(f.Raw))
	return nil
}
