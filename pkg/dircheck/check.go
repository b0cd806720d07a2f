// Package dircheck verifies that installed-package directories exist.
package dircheck

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vertti/devsetup/pkg/check"
)

// Check verifies that a directory exists.
type Check struct {
	Root  string     // project root the path is relative to
	Path  string     // relative path, e.g. "backend/node_modules"
	Label string     // display name, e.g. "Backend node_modules"
	FS    FileSystem // injected for testing
}

// Run executes the directory check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: fmt.Sprintf("dir: %s", filepath.ToSlash(c.Path)),
	}

	label := c.Label
	if label == "" {
		label = c.Path
	}

	info, err := c.FS.Stat(filepath.Join(c.Root, c.Path))
	if err != nil {
		if os.IsNotExist(err) {
			return result.Fail(label+" is missing", err)
		}
		return result.Failf("%s could not be checked: %v", label, err)
	}
	if !info.IsDir() {
		return result.Failf("%s is not a directory", label)
	}

	result.AddDetailf("%s exists", label)
	return result.Pass()
}
