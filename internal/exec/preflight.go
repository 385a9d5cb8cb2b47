package exec

import (
	"os/exec"

	"github.com/stackyter/stackyter/internal/errors"
)

// SSHBinary is the client the session script invokes.
const SSHBinary = "ssh"

// LookPath finds an executable. os/exec.LookPath satisfies it.
type LookPath func(file string) (string, error)

// RequireTool returns an ErrSSH error when name isn't on the local PATH.
func RequireTool(lookPath LookPath, name string) (string, error) {
	if lookPath == nil {
		lookPath = exec.LookPath
	}

	path, err := lookPath(name)
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrSSH,
			name+" not found locally",
			"Install an OpenSSH client: brew install openssh (macOS) or apt install openssh-client (Linux)")
	}
	return path, nil
}
