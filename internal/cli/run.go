package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stackyter/stackyter/internal/config"
	"github.com/stackyter/stackyter/internal/exec"
	"github.com/stackyter/stackyter/internal/script"
	"github.com/stackyter/stackyter/internal/ui"
	"github.com/stackyter/stackyter/pkg/sshutil"
)

// runSession resolves the options, builds the session script and runs it.
// With --dry-run the script is printed instead.
func runSession(cmd *cobra.Command, env *environment, p *ui.Printer, flags *rootFlags) error {
	resolved, err := config.Resolve(config.ResolveInput{
		Fs:         env.fs,
		Env:        env.lookupEnv,
		ConfigFile: flags.configFile,
		Profile:    flags.profile,
		CLI:        collectOptionFlags(cmd.Flags()),
		Log:        p,
	})
	if err != nil {
		return err
	}

	opts, err := resolved.Options()
	if err != nil {
		return err
	}

	s, err := script.Build(opts, script.PickPorts(env.intn))
	if err != nil {
		return err
	}
	text := script.Text(script.Bash{}, s)

	if flags.dryRun {
		fmt.Fprintln(env.stdout, text)
		return nil
	}

	sshPath, err := exec.RequireTool(env.lookPath, exec.SSHBinary)
	if err != nil {
		return err
	}
	p.Debug("using %s", sshPath)

	info := ui.SessionInfo{
		Target:      opts.Target(),
		Description: describeHost(env, p, opts.Host),
		Jupyter:     opts.Jupyter,
		JupyterPort: s.Ports().Jupyter,
	}
	if opts.TensorBoard {
		info.TBPort = s.Ports().TensorBoard
	}
	if resolved.Selection != nil {
		info.Profile = resolved.Selection.Name
	}
	fmt.Fprint(env.stderr, ui.RenderSession(info))

	if !env.interactive() {
		p.Warn("stdin is not a terminal, the remote session may not behave")
	}

	code, err := env.session(cmd.Context(), text)
	if err != nil {
		return err
	}

	if code != 0 {
		p.Error("Session ended with exit code %d", code)
		if hint := exec.ExitHint(code); hint != "" {
			p.Detail("%s", hint)
		}
	}
	env.exitCode = code
	return nil
}

// describeHost summarises what ~/.ssh/config says about host, if anything.
func describeHost(env *environment, p *ui.Printer, host string) string {
	home, ok := env.lookupEnv("HOME")
	if !ok || home == "" {
		return ""
	}

	entry, err := sshutil.LookupHost(env.fs, sshutil.DefaultConfigPath(home), host)
	if err != nil {
		p.Debug("couldn't read ssh config: %v", err)
		return ""
	}
	if entry == nil {
		return ""
	}

	p.Debug("'%s' is an ssh config alias: %s", host, entry.Description())
	return entry.Description()
}
