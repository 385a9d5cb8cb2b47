package exec

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/stackyter/stackyter/internal/logger"
)

// Exit codes with a known meaning for an ssh session run through sh.
const (
	exitCommandNotFound = 127
	exitInterrupted     = 130
	exitSSHFailure      = 255
)

// Session runs one generated script.
type Session struct {
	// Shell defaults to DefaultShell.
	Shell   string
	Streams Streams
	Log     logger.Logger

	// Signals are swallowed while the child runs, so an interrupt reaches
	// ssh and the remote cleanup instead of killing this process first.
	// Defaults to SIGINT and SIGTERM.
	Signals []os.Signal
}

// Run executes script and returns the shell's exit code.
func (s *Session) Run(ctx context.Context, script string) (int, error) {
	log := s.Log
	if log == nil {
		log = logger.Noop()
	}

	sigs := s.Signals
	if sigs == nil {
		sigs = []os.Signal{syscall.SIGINT, syscall.SIGTERM}
	}
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, sigs...)
	defer signal.Stop(sigChan)

	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			select {
			case sig := <-sigChan:
				log.Debug("received %s, waiting for the ssh session to wind down", sig)
			case <-done:
				return
			}
		}
	}()

	log.Debug("running session script with %s", shellOrDefault(s.Shell))
	code, err := ExecuteLocal(ctx, s.Shell, script, s.Streams)
	if err != nil {
		return code, err
	}

	if hint := ExitHint(code); hint != "" {
		log.Debug("session exited with %d: %s", code, hint)
	}
	return code, nil
}

// ExitHint explains well-known exit codes of the ssh session.
func ExitHint(code int) string {
	switch code {
	case exitCommandNotFound:
		return "a command was not found; check that ssh is installed locally"
	case exitInterrupted:
		return "the session was interrupted"
	case exitSSHFailure:
		return "ssh could not connect or authenticate; try plain 'ssh <host>' first"
	default:
		return ""
	}
}

func shellOrDefault(shell string) string {
	if shell == "" {
		return DefaultShell
	}
	return shell
}
