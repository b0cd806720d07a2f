package settings

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// ErrRootNotFound is returned when no project marker is found.
var ErrRootNotFound = errors.New("project root not found")

const packageMarker = "package.json"

// FindRoot walks up from startDir looking for the project root. The nearest
// directory holding a devsetup.yaml wins; otherwise the outermost directory
// holding a package.json does, so running from a sub-project such as
// backend/ still resolves to the top-level project. The walk stops at the
// user's home directory, at a repository root (.git) or at the filesystem
// root.
func FindRoot(startDir string) (string, error) {
	homeDir, _ := os.UserHomeDir()

	currentDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", errors.Wrap(err, "failed to get absolute path")
	}

	outermost := ""
	for {
		if exists(filepath.Join(currentDir, FileName+".yaml")) {
			return currentDir, nil
		}
		if exists(filepath.Join(currentDir, packageMarker)) {
			outermost = currentDir
		}

		if currentDir == homeDir || exists(filepath.Join(currentDir, ".git")) {
			break
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached filesystem root
			break
		}
		currentDir = parentDir
	}

	if outermost == "" {
		return "", ErrRootNotFound
	}
	return outermost, nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
