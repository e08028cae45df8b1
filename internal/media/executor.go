package media

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// Runner executes one external command and returns its captured stderr.
type Runner interface {
	Run(ctx context.Context, argv []string) (stderr string, err error)
}

// ExecRunner runs commands with os/exec, capturing both output streams.
type ExecRunner struct{}

// Run starts argv[0] with the remaining arguments and waits for it to exit.
func (ExecRunner) Run(ctx context.Context, argv []string) (string, error) {
	if len(argv) == 0 {
		return "", errors.New("empty command")
	}
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stderr.String(), err
}
