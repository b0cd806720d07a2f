package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vertti/devsetup/pkg/mongocheck"
	"github.com/vertti/devsetup/pkg/output"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Check that the local MongoDB server is running and accessible",
	Args:  cobra.NoArgs,
	RunE:  runDBCheck,
}

func init() {
	rootCmd.AddCommand(dbCmd)
}

func runDBCheck(cmd *cobra.Command, _ []string) error {
	logger := newLogger(cmd.ErrOrStderr())
	defer func() { _ = logger.Sync() }()

	s, err := loadSettings()
	if err != nil {
		logger.Error("An unexpected error occurred", zap.Error(err))
		return err
	}

	out := output.New(cmd.OutOrStdout())
	out.Line("Checking MongoDB connection...")

	c := &mongocheck.Check{
		URI:       s.MongoURI,
		Timeout:   s.MongoTimeout,
		Connector: newConnector(),
	}
	result := c.Run(cmd.Context())
	out.PrintResult(result)

	if !result.OK() {
		return ErrCheckFailed
	}
	return nil
}
