package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	osexec "os/exec"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/stackyter/stackyter/internal/config"
	"github.com/stackyter/stackyter/internal/errors"
	"github.com/stackyter/stackyter/internal/exec"
	"github.com/stackyter/stackyter/internal/logger"
	"github.com/stackyter/stackyter/internal/ui"
)

// environment is everything the root command reads from or writes to the
// outside world. Tests swap in an in-memory filesystem and a fake session.
type environment struct {
	fs        afero.Fs
	lookupEnv config.LookupEnv
	stdout    io.Writer
	stderr    io.Writer

	// lookPath finds the local ssh client.
	lookPath exec.LookPath

	// intn draws the remote Jupyter port.
	intn func(n int) int

	// interactive reports whether stdin is a terminal.
	interactive func() bool

	// session runs the generated script and returns its exit code.
	session func(ctx context.Context, script string) (int, error)

	// exitCode is the exit code of the last session.
	exitCode int
}

func osEnvironment() *environment {
	return &environment{
		fs:          afero.NewOsFs(),
		lookupEnv:   os.LookupEnv,
		stdout:      os.Stdout,
		stderr:      os.Stderr,
		lookPath:    osexec.LookPath,
		intn:        rand.IntN,
		interactive: func() bool { return ui.IsTerminal(os.Stdin) },
		session: func(ctx context.Context, script string) (int, error) {
			s := &exec.Session{
				Streams: exec.Streams{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr},
				Log:     logger.Default(),
			}
			return s.Run(ctx, script)
		},
	}
}

var (
	defaultEnv = osEnvironment()
	rootCmd    = newRootCmd(defaultEnv)
)

// newRootCmd builds the stackyter command tree around env.
func newRootCmd(env *environment) *cobra.Command {
	flags := &rootFlags{jupyter: jupyterFlag(config.DefaultJupyterMode)}

	cmd := &cobra.Command{
		Use:   "stackyter",
		Short: "Run Jupyter on a remote host and use it from your local browser",
		Long: `Start a Jupyter notebook or lab server on a remote host over SSH, tunnel
its port back to localhost:20001, and print the URL (with its token) to open
in your local browser. TensorBoard can be started alongside and tunnelled to
localhost:20002.

Options come from the command line, then from a named configuration in
~/.stackyter-config.yaml (or $STACKYTERCONFIG, or --configfile), then from
the built-in defaults.

Examples:
  stackyter --host gpu.example.org --username alice
  stackyter -c gpu --jupyter lab
  stackyter -H gpu -T --logdir runs/
  stackyter --showconfig`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Usage only helps for flag errors, which never reach RunE.
			cmd.SilenceUsage = true
			return rootCommand(cmd, env, flags)
		},
	}

	addRootFlags(cmd, flags)
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command and exits with the session's exit code.
func Execute() {
	os.Exit(execute(context.Background(), rootCmd, defaultEnv))
}

// execute runs cmd and maps the outcome to a process exit code.
func execute(ctx context.Context, cmd *cobra.Command, env *environment) int {
	if err := cmd.ExecuteContext(ctx); err != nil {
		var stErr *errors.Error
		if stderrors.As(err, &stErr) {
			fmt.Fprint(env.stderr, stErr.Error())
		} else {
			fmt.Fprintf(env.stderr, "Error: %v\n", err)
		}
		return 1
	}
	return env.exitCode
}

// rootCommand applies the global flags, then either lists the configuration
// file or starts a session.
func rootCommand(cmd *cobra.Command, env *environment, flags *rootFlags) error {
	if flags.noColor {
		ui.DisableColors()
	} else if _, ok := env.lookupEnv("NO_COLOR"); ok {
		ui.DisableColors()
	}
	if flags.verbose {
		logger.SetDebug(true)
	}

	p := ui.NewPrinter(env.stderr)
	logger.SetDefault(p)

	if flags.showConfig {
		return showConfig(env, p, flags.configFile)
	}

	return runSession(cmd, env, p, flags)
}
