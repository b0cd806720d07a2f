// Package setup drives the interactive first-time setup: database check,
// dependency install, .env generation, sample data import and optional
// application start.
package setup

import (
	"context"
	"os"
	"path/filepath"
	"runtime"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/vertti/devsetup/pkg/check"
	"github.com/vertti/devsetup/pkg/envfile"
	"github.com/vertti/devsetup/pkg/output"
	"github.com/vertti/devsetup/pkg/prompt"
	"github.com/vertti/devsetup/pkg/runner"
	"github.com/vertti/devsetup/pkg/settings"
)

// ErrAborted marks a run the user (or an unrecoverable stage) stopped.
var ErrAborted = errors.New("setup aborted")

// DatabaseChecker is the connectivity probe the wizard starts with.
type DatabaseChecker interface {
	Run(ctx context.Context) check.Result
}

// Orchestrator runs the setup stages in order against one prompt session.
type Orchestrator struct {
	Session  *prompt.Session
	Runner   runner.CommandRunner
	DB       DatabaseChecker
	Settings settings.Settings
	Out      *output.Printer
	Logger   *zap.Logger
	GOOS     string // platform for install hints (default: runtime.GOOS)
}

// Run executes every stage until one aborts. The session is closed
// exactly once before Run returns, whatever the path.
func (o *Orchestrator) Run(ctx context.Context) (err error) {
	logger := o.logger()

	defer func() {
		if p := recover(); p != nil {
			err = errors.Newf("setup panicked: %v", p)
			logger.Error("An error occurred during setup", zap.Error(err))
		}
	}()
	defer o.Session.Close()

	o.Out.Blank()
	o.Out.Line("=== Career Pathway AI Assistant Setup ===")
	o.Out.Blank()
	o.Out.Line("This script will help you set up the Career Pathway AI Assistant application.")
	o.Out.Line("It will install dependencies, set up the database, and start the application.")

	for _, stage := range o.Stages() {
		o.Out.Heading(stage.Icon, stage.Banner)
		logger.Debug("stage started", zap.String("stage", stage.Name))

		res, err := stage.Run(ctx)
		if err != nil {
			err = errors.Wrapf(err, "stage %s", stage.Name)
			logger.Error("An error occurred during setup", zap.Error(err))
			return err
		}
		logger.Debug("stage finished",
			zap.String("stage", stage.Name),
			zap.Stringer("outcome", res.Outcome))

		switch res.Outcome {
		case Abort:
			o.Out.Line("%s", res.Message)
			return errors.Wrap(ErrAborted, res.Message)
		case ContinueWithWarning:
			o.Out.Warning("%s", res.Message)
		default:
			if res.Message != "" {
				o.Out.Line("%s", res.Message)
			}
		}
	}
	return nil
}

// Stages returns the ordered stage list.
func (o *Orchestrator) Stages() []Stage {
	return []Stage{
		{Name: "connectivity", Icon: "🔍", Banner: "Checking MongoDB connection...", Run: o.checkConnectivity},
		{Name: "install", Icon: "📦", Banner: "Installing dependencies...", Run: o.installDependencies},
		{Name: "configure", Icon: "🔧", Banner: "Setting up environment file...", Run: o.writeEnvFile},
		{Name: "import", Icon: "📊", Banner: "Importing sample data...", Run: o.importData},
		{Name: "complete", Icon: "🎉", Banner: "Setup completed successfully!", Run: o.complete},
	}
}

func (o *Orchestrator) checkConnectivity(ctx context.Context) (StageResult, error) {
	result := o.DB.Run(ctx)
	o.Out.PrintResult(result)
	if result.OK() {
		return proceed("")
	}

	o.Out.Blank()
	o.Out.Warning("MongoDB connection failed.")
	o.Out.Line("Please make sure MongoDB is installed and running before continuing:")
	for _, hint := range InstallHints(o.goos()) {
		o.Out.Line("- %s", hint)
	}
	o.Out.Blank()

	ok, err := o.Session.Confirm("Do you want to proceed anyway?")
	if err != nil {
		return StageResult{}, err
	}
	if !ok {
		return abort("Setup aborted. Please install and start MongoDB, then try again.")
	}
	return warn("Continuing without a verified MongoDB connection.")
}

func (o *Orchestrator) installDependencies(ctx context.Context) (StageResult, error) {
	if !o.runCommand(ctx, o.Settings.InstallCommand) {
		return abort("Failed to install dependencies. Please try again.")
	}
	o.Out.Success("Dependencies installed successfully.")
	return proceed("")
}

func (o *Orchestrator) writeEnvFile(_ context.Context) (StageResult, error) {
	path := o.Settings.EnvPath()

	if envfile.Exists(path) {
		if values, err := envfile.Read(path); err == nil {
			if keys := envfile.KnownKeys(values); len(keys) > 0 {
				o.Out.Line("Existing .env defines: %v", keys)
			}
		} else {
			o.logger().Debug("existing .env not parseable", zap.Error(err))
		}

		overwrite, err := o.Session.Confirm("An .env file already exists. Do you want to overwrite it?")
		if err != nil {
			return StageResult{}, err
		}
		if !overwrite {
			return proceed("Skipping .env file setup.")
		}
	}

	record := envfile.NewRecord()
	for _, f := range envfile.Fields {
		answer, err := o.Session.AskDefault(f.Prompt, f.Default)
		if err != nil {
			return StageResult{}, err
		}
		if err := record.Set(f.Key, answer); err != nil {
			return StageResult{}, err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil { //nolint:gosec // project directory
		return StageResult{}, errors.Wrap(err, "create .env directory")
	}
	if err := envfile.Write(path, record); err != nil {
		return StageResult{}, err
	}
	o.Out.Success("Environment file (.env) created successfully.")
	return proceed("")
}

func (o *Orchestrator) importData(ctx context.Context) (StageResult, error) {
	if o.runCommand(ctx, o.Settings.ImportCommand) {
		o.Out.Success("Sample data imported successfully.")
		return proceed("")
	}

	o.Out.Failure("Failed to import sample data. Please check your MongoDB connection.")
	ok, err := o.Session.Confirm("Do you want to proceed anyway?")
	if err != nil {
		return StageResult{}, err
	}
	if !ok {
		return abort("Setup aborted.")
	}
	return warn("Continuing without sample data.")
}

func (o *Orchestrator) complete(ctx context.Context) (StageResult, error) {
	start := o.Settings.StartCommand

	o.Out.Blank()
	o.Out.Line("To start the application, run:")
	o.Out.Line("%s", start)
	o.Out.Blank()
	o.Out.Line("This will start both the backend server and the frontend development server.")
	o.Out.Line("- Backend: %s", o.Settings.BackendURL)
	o.Out.Line("- Frontend: %s", o.Settings.FrontendURL)
	o.Out.Blank()

	startNow, err := o.Session.Confirm("Do you want to start the application now?")
	if err != nil {
		return StageResult{}, err
	}
	if !startNow {
		return proceed("You can start the application later by running: " + start)
	}

	o.Out.Heading("🚀", "Starting the application...")
	o.runCommand(ctx, start)
	return proceed("")
}

// runCommand runs command in the project root; only the exit status counts.
func (o *Orchestrator) runCommand(ctx context.Context, command string) bool {
	code, err := o.Runner.Run(ctx, command, o.Settings.ProjectRoot)
	if runner.Succeeded(code, err) {
		return true
	}
	o.Out.Failure("Error executing command: %s", command)
	if err != nil {
		o.Out.Line("%s", err.Error())
	} else {
		o.Out.Line("Command exited with status %d", code)
	}
	return false
}

func (o *Orchestrator) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

func (o *Orchestrator) goos() string {
	if o.GOOS == "" {
		return runtime.GOOS
	}
	return o.GOOS
}

// InstallHints lists how to get MongoDB, current platform first.
func InstallHints(goos string) []string {
	windows := "Windows: https://www.mongodb.com/try/download/community"
	macos := "macOS: brew install mongodb-community"
	linux := "Linux: Follow instructions at https://docs.mongodb.com/manual/administration/install-on-linux/"

	switch goos {
	case "windows":
		return []string{windows, macos, linux}
	case "darwin":
		return []string{macos, windows, linux}
	default:
		return []string{linux, windows, macos}
	}
}
