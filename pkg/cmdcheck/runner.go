package cmdcheck

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"
)

// DefaultTimeout bounds a single version query.
const DefaultTimeout = 30 * time.Second

// Runner abstracts command lookup and execution for testability.
type Runner interface {
	LookPath(file string) (string, error)
	RunCommandContext(ctx context.Context, name string, args ...string) (stdout, stderr string, err error)
}

// RealRunner implements Runner using actual OS commands.
type RealRunner struct{}

// LookPath locates an executable with the platform lookup command
// (which on unix, where on windows). Only the exit status decides.
func (r *RealRunner) LookPath(file string) (string, error) {
	cmd := exec.Command(lookupCommand, file) // #nosec G204 -- file is a fixed tool name
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	path := strings.TrimSpace(string(out))
	if i := strings.IndexAny(path, "\r\n"); i >= 0 {
		path = path[:i]
	}
	return path, nil
}

// RunCommandContext executes a command and returns its output.
func (r *RealRunner) RunCommandContext(ctx context.Context, name string, args ...string) (stdout, stderr string, err error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf
	err = cmd.Run()
	return outBuf.String(), errBuf.String(), err
}
