package main

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vertti/devsetup/pkg/mongocheck"
	"github.com/vertti/devsetup/pkg/output"
	"github.com/vertti/devsetup/pkg/prompt"
	"github.com/vertti/devsetup/pkg/setup"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactively install dependencies, write backend/.env and import sample data",
	Args:  cobra.NoArgs,
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, _ []string) error {
	logger := newLogger(cmd.ErrOrStderr())
	defer func() { _ = logger.Sync() }()

	s, err := loadSettings()
	if err != nil {
		logger.Error("An error occurred during setup", zap.Error(err))
		return err
	}

	if cmd.InOrStdin() == os.Stdin && !prompt.IsInteractive(os.Stdin) {
		logger.Warn("stdin is not a terminal; answers are read line by line")
	}

	orch := &setup.Orchestrator{
		Session:  prompt.NewSession(cmd.InOrStdin(), cmd.OutOrStdout()),
		Runner:   newCmdRunner(logger),
		DB:       &mongocheck.Check{URI: s.MongoURI, Timeout: s.MongoTimeout, Connector: newConnector()},
		Settings: s,
		Out:      output.New(cmd.OutOrStdout()),
		Logger:   logger,
	}

	err = orch.Run(cmd.Context())
	if errors.Is(err, setup.ErrAborted) {
		return nil
	}
	return err
}
