// Package runner runs shell-style commands with the caller's stdio attached.
package runner

import (
	"context"
	"io"
	"os"
	"os/exec"

	"github.com/cockroachdb/errors"
	"github.com/mattn/go-shellwords"
	"go.uber.org/zap"
)

// ErrEmptyCommand is returned when a command line has no words.
var ErrEmptyCommand = errors.New("empty command")

// CommandRunner runs a command line to completion in a working directory
// and reports the child's exit code. A non-nil error means the child could
// not be started at all; the exit code is then -1.
type CommandRunner interface {
	Run(ctx context.Context, command, dir string) (int, error)
}

// Succeeded maps a Run outcome to the only signal callers act on.
func Succeeded(code int, err error) bool {
	return err == nil && code == 0
}

// ShellRunner is the production CommandRunner. Stdio defaults to the
// process's own streams so child output stays visible to the user.
type ShellRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *zap.Logger
}

// New returns a ShellRunner bound to the process stdio.
func New(logger *zap.Logger) *ShellRunner {
	return &ShellRunner{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Logger: logger,
	}
}

// Split parses a command line into words with shell quoting rules.
func Split(command string) ([]string, error) {
	words, err := shellwords.Parse(command)
	if err != nil {
		return nil, errors.Wrapf(err, "parse command %q", command)
	}
	if len(words) == 0 {
		return nil, ErrEmptyCommand
	}
	return words, nil
}

// Run executes command in dir and blocks until it exits.
func (r *ShellRunner) Run(ctx context.Context, command, dir string) (int, error) {
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	words, err := Split(command)
	if err != nil {
		return -1, err
	}

	cmd := exec.CommandContext(ctx, words[0], words[1:]...) // #nosec G204 -- commands come from the tool's own settings
	cmd.Dir = dir
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	logger.Debug("running command", zap.String("command", command), zap.String("dir", dir))

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			logger.Debug("command exited non-zero",
				zap.String("command", command),
				zap.Int("exit_code", exitError.ExitCode()))
			return exitError.ExitCode(), nil
		}
		return -1, errors.Wrapf(err, "failed to execute command %q", command)
	}

	logger.Debug("command finished", zap.String("command", command))
	return 0, nil
}
