package gateway

import (
	"bytes"
	"os/exec"
	"strings"
)

// ExecGateway invokes the CLI binary directly on the local machine.
type ExecGateway struct {
	path string
}

// NewExec creates a gateway that runs the CLI binary at path, typically
// "bitcoin-cli".
func NewExec(path string) *ExecGateway {
	return &ExecGateway{path: path}
}

// Invoke runs the CLI with the given command and arguments.
func (g *ExecGateway) Invoke(command string, args ...string) (string, error) {
	return run(g.path, append([]string{command}, args...))
}

// run executes one subprocess and blocks until it exits. Stdout and stderr
// are captured separately; stderr is only surfaced on failure.
func run(path string, args []string) (string, error) {
	log.Debugf("exec: %s %s", path, strings.Join(args, " "))

	cmd := exec.Command(path, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", &Error{
			Command: path,
			Output:  strings.TrimSpace(stderr.String()),
			Err:     err,
		}
	}

	return strings.TrimSpace(stdout.String()), nil
}
