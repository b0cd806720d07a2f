package cmdcheck

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/vertti/devsetup/pkg/check"
	"github.com/vertti/devsetup/pkg/version"
)

// Check verifies that a tool is installed and reports its version.
type Check struct {
	Name        string        // command name to check
	Label       string        // display name, e.g. "Node.js" (default: Name)
	VersionArgs []string      // args to get version (default: --version)
	Locate      bool          // find the binary with the lookup command before querying the version
	FirstLine   bool          // keep only the first line of the version output
	InstallHint string        // remediation shown when the tool is missing
	Timeout     time.Duration // timeout for version command (default: 30s)
	Runner      Runner        // injected for testing
}

// Run executes the command check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: fmt.Sprintf("cmd: %s", c.Name),
	}

	label := c.Label
	if label == "" {
		label = c.Name
	}

	if c.Locate {
		path, err := c.Runner.LookPath(c.Name)
		if err != nil {
			return c.missing(&result, label)
		}
		if path != "" {
			result.AddDetailf("path: %s", path)
		}
	}

	args := c.VersionArgs
	if len(args) == 0 {
		args = []string{"--version"}
	}

	timeout := c.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	stdout, stderr, err := c.Runner.RunCommandContext(ctx, c.Name, args...)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return result.Failf("version command timed out after %s", timeout)
		}
		if c.Locate {
			// Located but unusable is reported differently from absent.
			result.AddDetailf("version command failed: %v", err)
			return result.Failf("%s is installed but there was an error checking the version", label)
		}
		return c.missing(&result, label)
	}

	output := stdout
	if strings.TrimSpace(output) == "" {
		output = stderr
	}
	if c.FirstLine {
		output = version.FirstLine(output)
	} else {
		output = strings.TrimSpace(output)
	}

	result.AddDetailf("%s is installed", label)
	if output != "" {
		result.AddDetailf("version: %s", output)
		if v, err := version.Extract(output); err == nil && strings.TrimPrefix(output, "v") != v.String() {
			result.AddDetailf("semver: %s", v)
		}
	}
	return result.Pass()
}

func (c *Check) missing(result *check.Result, label string) check.Result {
	detail := fmt.Sprintf("%s is not installed or not in PATH", label)
	if c.InstallHint == "" {
		return result.Fail(detail, errors.New(detail))
	}
	return result.FailWithHint(detail, c.InstallHint)
}
