package compiler

import (
	"context"
	"os/exec"
	"strings"
)

// Runner abstracts command execution to enable testing without real
// subprocesses.
type Runner interface {
	Run(ctx context.Context, dir string, env []string, name string, args ...string) (log string, err error)
}

// ExecRunner implements Runner using os/exec. The returned log is combined
// stdout and stderr.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, dir string, env []string, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Env = env

	var out strings.Builder
	cmd.Stdout = &out
	cmd.Stderr = &out

	err := cmd.Run()
	return out.String(), err
}
