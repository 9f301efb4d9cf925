package main

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

const subprocessEnv = "TEST_APPICON_MAIN_SUBPROCESS"

// runMain re-runs the test binary so main can call os.Exit.
func runMain(t *testing.T, projectDir string) (string, int) {
	t.Helper()
	cmd := exec.Command(os.Args[0], "-test.run=^TestMainSubprocess$")
	cmd.Env = append(os.Environ(),
		subprocessEnv+"=1",
		"APPICON_PROJECT_DIR="+projectDir,
		"APPICON_LOCALE=en-US",
		"APPICON_OTEL_ENDPOINT=",
	)
	out, err := cmd.CombinedOutput()
	if err == nil {
		return string(out), 0
	}
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected *exec.ExitError, got %T: %v", err, err)
	}
	return string(out), exitErr.ExitCode()
}

func TestMainSubprocess(t *testing.T) {
	if os.Getenv(subprocessEnv) != "1" {
		t.Skip("only runs as a subprocess")
	}
	main()
}

func TestMainMissingResDirExitsWithStatusOne(t *testing.T) {
	projectDir := t.TempDir()

	out, code := runMain(t, projectDir)
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d: %s", code, out)
	}
	if !strings.Contains(out, "Android resource directory does not exist") {
		t.Fatalf("expected diagnostic, got %q", out)
	}
	matches, err := filepath.Glob(filepath.Join(projectDir, "android", "app", "src", "main", "res", "mipmap-*"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(matches) != 0 {
		t.Fatalf("expected no mipmap dirs, got %v", matches)
	}
}

func TestMainGeneratesIcons(t *testing.T) {
	projectDir := t.TempDir()
	resDir := filepath.Join(projectDir, "android", "app", "src", "main", "res")
	if err := os.MkdirAll(resDir, 0o755); err != nil {
		t.Fatalf("create res dir: %v", err)
	}

	out, code := runMain(t, projectDir)
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", code, out)
	}
	matches, err := filepath.Glob(filepath.Join(resDir, "mipmap-*", "*.png"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(matches) != 10 {
		t.Fatalf("expected 10 icons, got %d", len(matches))
	}
}

func TestProjectDirIsRepositoryRoot(t *testing.T) {
	dir := projectDir()
	if _, err := os.Stat(filepath.Join(dir, "go.mod")); err != nil {
		t.Fatalf("expected go.mod under %s: %v", dir, err)
	}
}
