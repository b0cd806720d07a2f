package settings

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFindRoot_TraverseUp(t *testing.T) {
	tmpDir := t.TempDir()

	subdir := filepath.Join(tmpDir, "backend", "src")
	if err := os.MkdirAll(subdir, 0o700); err != nil {
		t.Fatalf("failed to create directories: %v", err)
	}
	if err := os.WriteFile(filepath.Join(tmpDir, "package.json"), []byte("{}"), 0o600); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}
	if err := os.Mkdir(filepath.Join(tmpDir, ".git"), 0o700); err != nil {
		t.Fatalf("failed to create .git: %v", err)
	}

	found, err := FindRoot(subdir)
	if err != nil {
		t.Fatalf("FindRoot failed: %v", err)
	}
	if found != tmpDir {
		t.Errorf("expected %q, got %q", tmpDir, found)
	}
}

func TestFindRoot_OutermostPackageWins(t *testing.T) {
	tmpDir := t.TempDir()

	backend := filepath.Join(tmpDir, "backend")
	if err := os.MkdirAll(backend, 0o700); err != nil {
		t.Fatalf("failed to create directories: %v", err)
	}
	for _, dir := range []string{tmpDir, backend} {
		if err := os.WriteFile(filepath.Join(dir, "package.json"), []byte("{}"), 0o600); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}
	}
	if err := os.Mkdir(filepath.Join(tmpDir, ".git"), 0o700); err != nil {
		t.Fatalf("failed to create .git: %v", err)
	}

	found, err := FindRoot(backend)
	if err != nil {
		t.Fatalf("FindRoot failed: %v", err)
	}
	if found != tmpDir {
		t.Errorf("expected %q, got %q", tmpDir, found)
	}
}

func TestFindRoot_ConfigFileBeatsOuterPackage(t *testing.T) {
	tmpDir := t.TempDir()

	app := filepath.Join(tmpDir, "app")
	backend := filepath.Join(app, "backend")
	if err := os.MkdirAll(backend, 0o700); err != nil {
		t.Fatalf("failed to create directories: %v", err)
	}
	for _, dir := range []string{tmpDir, app, backend} {
		if err := os.WriteFile(filepath.Join(dir, "package.json"), []byte("{}"), 0o600); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}
	}
	if err := os.WriteFile(filepath.Join(app, "devsetup.yaml"), []byte("{}\n"), 0o600); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	found, err := FindRoot(backend)
	if err != nil {
		t.Fatalf("FindRoot failed: %v", err)
	}
	if found != app {
		t.Errorf("expected %q, got %q", app, found)
	}
}

func TestFindRoot_ConfigFileMarker(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, "devsetup.yaml"), []byte("start_command: npm run dev\n"), 0o600); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	found, err := FindRoot(tmpDir)
	if err != nil {
		t.Fatalf("FindRoot failed: %v", err)
	}
	if found != tmpDir {
		t.Errorf("expected %q, got %q", tmpDir, found)
	}
}

func TestFindRoot_StopAtGit(t *testing.T) {
	tmpDir := t.TempDir()

	projectDir := filepath.Join(tmpDir, "project")
	if err := os.MkdirAll(filepath.Join(projectDir, ".git"), 0o700); err != nil {
		t.Fatalf("failed to create directories: %v", err)
	}
	if err := os.WriteFile(filepath.Join(tmpDir, "package.json"), []byte("{}"), 0o600); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	_, err := FindRoot(projectDir)
	if !errors.Is(err, ErrRootNotFound) {
		t.Errorf("expected ErrRootNotFound, got %v", err)
	}
}
