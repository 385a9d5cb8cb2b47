// Package exec runs the generated session script through the local shell.
package exec

import (
	"context"
	"io"
	"os/exec"

	"github.com/stackyter/stackyter/internal/errors"
)

// DefaultShell runs the session script. The script relies on a POSIX heredoc,
// so $SHELL (which may be fish or similar) is not used.
const DefaultShell = "/bin/sh"

// Streams are the standard streams handed to the child process.
type Streams struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// ExecuteLocal runs script with shell -c, wiring the child to streams.
// Returns the exit code of the shell. A non-zero exit is not an error; err is
// only set when the shell could not be run at all.
func ExecuteLocal(ctx context.Context, shell, script string, streams Streams) (exitCode int, err error) {
	if shell == "" {
		shell = DefaultShell
	}

	command := exec.CommandContext(ctx, shell, "-c", script)
	command.Stdin = streams.Stdin
	command.Stdout = streams.Stdout
	command.Stderr = streams.Stderr

	runErr := command.Run()
	if runErr != nil {
		if exitErr, ok := runErr.(*exec.ExitError); ok {
			return exitErr.ExitCode(), nil
		}
		return -1, errors.WrapWithCode(runErr, errors.ErrExec,
			"Couldn't start the local shell",
			"Make sure "+shell+" exists and is executable.")
	}

	return 0, nil
}
