package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vertti/devsetup/pkg/depcheck"
	"github.com/vertti/devsetup/pkg/output"
)

var depsCmd = &cobra.Command{
	Use:   "deps",
	Short: "Check that Node.js, npm, MongoDB and node_modules are installed",
	Args:  cobra.NoArgs,
	RunE:  runDepsCheck,
}

func init() {
	rootCmd.AddCommand(depsCmd)
}

func runDepsCheck(cmd *cobra.Command, _ []string) error {
	logger := newLogger(cmd.ErrOrStderr())
	defer func() { _ = logger.Sync() }()

	s, err := loadSettings()
	if err != nil {
		logger.Error("An unexpected error occurred", zap.Error(err))
		return err
	}

	p := &depcheck.Prober{
		Root:           s.ProjectRoot,
		ModuleDirs:     s.ModuleDirs,
		InstallCommand: s.InstallCommand,
		Runner:         newToolRunner(),
		FS:             newFileSystem(),
	}

	report := p.Probe()
	p.Print(output.New(cmd.OutOrStdout()), report)

	if !report.OK() {
		return ErrCheckFailed
	}
	return nil
}
