package main

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/vertti/devsetup/pkg/cmdcheck"
	"github.com/vertti/devsetup/pkg/dircheck"
	"github.com/vertti/devsetup/pkg/logging"
	"github.com/vertti/devsetup/pkg/mongocheck"
	"github.com/vertti/devsetup/pkg/runner"
	"github.com/vertti/devsetup/pkg/settings"
)

// ErrCheckFailed is returned when a check fails.
// The returned error causes main to exit with code 1.
var ErrCheckFailed = errors.New("check failed")

// Collaborators, swapped out in tests.
var (
	newToolRunner = func() cmdcheck.Runner { return &cmdcheck.RealRunner{} }
	newFileSystem = func() dircheck.FileSystem { return &dircheck.RealFileSystem{} }
	newConnector  = func() mongocheck.Connector { return mongocheck.RealConnector{} }
	newCmdRunner  = func(logger *zap.Logger) runner.CommandRunner { return runner.New(logger) }
)

func newLogger(w io.Writer) *zap.Logger {
	return logging.New(w, logging.DefaultLevel)
}

// loadSettings reads settings from the project root above the working
// directory, or from the working directory itself when no root is marked.
func loadSettings() (settings.Settings, error) {
	wd, err := os.Getwd()
	if err != nil {
		return settings.Settings{}, errors.Wrap(err, "failed to get working directory")
	}
	root, err := settings.FindRoot(wd)
	if err != nil {
		if !errors.Is(err, settings.ErrRootNotFound) {
			return settings.Settings{}, err
		}
		root = wd
	}
	return settings.Load(root)
}
