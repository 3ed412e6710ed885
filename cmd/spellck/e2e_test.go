package main_test

import (
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build binary once for all tests
	tmpDir, err := os.MkdirTemp("", "spellck-e2e-*")
	if err != nil {
		panic(err)
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	binaryPath = filepath.Join(tmpDir, "spellck")
	cmd := exec.Command("go", "build", "-o", binaryPath, ".")
	cmd.Dir = filepath.Join(getModuleRoot(), "cmd", "spellck")
	if out, err := cmd.CombinedOutput(); err != nil {
		panic(string(out) + ": " + err.Error())
	}

	os.Exit(m.Run())
}

func getModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			// Make sure it's the main module, not a testdata module
			if _, err := os.Stat(filepath.Join(dir, "analyzer.go")); err == nil {
				return dir
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			panic("module root not found")
		}
		dir = parent
	}
}

func getE2ETestdata() string {
	return filepath.Join(getModuleRoot(), "cmd", "spellck", "testdata")
}

// runBinary runs spellck in dir and returns its output and exit code.
func runBinary(t *testing.T, dir string, args ...string) (string, string, int) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Dir = dir

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return stdout.String(), stderr.String(), 0
	case errors.As(err, &exitErr):
		return stdout.String(), stderr.String(), exitErr.ExitCode()
	default:
		t.Fatalf("failed to run spellck: %v", err)
		return "", "", -1
	}
}

func TestE2E_NoIssuesExitZero(t *testing.T) {
	testdata := getE2ETestdata()

	stdout, stderr, code := runBinary(t, filepath.Join(testdata, "clean"), "-n", "-d", "../words.txt", ".")

	if code != 0 {
		t.Fatalf("expected exit code 0, got %d\nstdout:\n%s\nstderr:\n%s", code, stdout, stderr)
	}

	if stdout != "" {
		t.Errorf("expected no diagnostics, got:\n%s", stdout)
	}

	if !strings.Contains(stderr, "no misspelled words") {
		t.Errorf("expected pass status, got:\n%s", stderr)
	}
}

func TestE2E_Misspelled(t *testing.T) {
	testdata := getE2ETestdata()

	stdout, stderr, code := runBinary(t, filepath.Join(testdata, "misspelled"),
		"--no-def-dict", "--dict", "../words.txt", "--color", "never", "misspelled.go")

	if code != 1 {
		t.Fatalf("expected exit code 1, got %d\nstderr:\n%s", code, stderr)
	}

	for _, want := range []string{
		"misspelled.go:4:1: warning: misspelled word: clinet",
		"    // Server serves the clinet.",
		"misspelled.go:8:6: warning: misspelled word: sevrer",
		"    func Sevrer() {}",
		"         ^^^^^^",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("expected %q in output, got:\n%s", want, stdout)
		}
	}

	// Sorted by position
	if strings.Index(stdout, "clinet") > strings.Index(stdout, "sevrer") {
		t.Errorf("expected diagnostics in source order, got:\n%s", stdout)
	}

	if !strings.Contains(stderr, "0 errors, 2 warnings") {
		t.Errorf("expected summary, got:\n%s", stderr)
	}
}

func TestE2E_JSONFormat(t *testing.T) {
	testdata := getE2ETestdata()

	stdout, stderr, code := runBinary(t, filepath.Join(testdata, "misspelled"),
		"-n", "-d", "../words.txt", "--format", "json", "--severity", "error", ".")

	if code != 1 {
		t.Fatalf("expected exit code 1, got %d\nstderr:\n%s", code, stderr)
	}

	var out struct {
		Count       int `json:"count"`
		Diagnostics []struct {
			Severity string   `json:"severity"`
			Words    []string `json:"words"`
		} `json:"diagnostics"`
	}
	if err := json.Unmarshal([]byte(stdout), &out); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, stdout)
	}

	if out.Count != 2 || len(out.Diagnostics) != 2 {
		t.Fatalf("expected 2 diagnostics, got %+v", out)
	}

	if out.Diagnostics[0].Severity != "error" || out.Diagnostics[0].Words[0] != "clinet" {
		t.Errorf("unexpected first diagnostic: %+v", out.Diagnostics[0])
	}
}

func TestE2E_ConfigFile(t *testing.T) {
	testdata := getE2ETestdata()

	stdout, stderr, code := runBinary(t, filepath.Join(testdata, "config"), "--color", "never", ".")

	if code != 1 {
		t.Fatalf("expected exit code 1, got %d\nstderr:\n%s", code, stderr)
	}

	if !strings.Contains(stdout, "config.go:8:6: error: misspelled word: wrold") {
		t.Errorf("expected error from config severity, got:\n%s", stdout)
	}

	if strings.Contains(stdout, "frobnicate") {
		t.Errorf("expected config words to be accepted, got:\n%s", stdout)
	}
}

func TestE2E_MissingDictionary(t *testing.T) {
	testdata := getE2ETestdata()

	_, stderr, code := runBinary(t, filepath.Join(testdata, "clean"), "-d", "missing.txt", ".")

	if code != 10 {
		t.Fatalf("expected exit code 10, got %d\nstderr:\n%s", code, stderr)
	}

	if !strings.Contains(stderr, "error reading missing.txt") {
		t.Errorf("expected IO error, got:\n%s", stderr)
	}
}

func TestE2E_NoDictionary(t *testing.T) {
	testdata := getE2ETestdata()

	_, stderr, code := runBinary(t, filepath.Join(testdata, "clean"), "-n", ".")

	if code != 10 {
		t.Fatalf("expected exit code 10, got %d\nstderr:\n%s", code, stderr)
	}

	if !strings.Contains(stderr, "configuration error") {
		t.Errorf("expected configuration error, got:\n%s", stderr)
	}
}

func TestE2E_UsageErrors(t *testing.T) {
	testdata := getE2ETestdata()

	tests := []struct {
		name string
		args []string
	}{
		{name: "no files", args: nil},
		{name: "unknown flag", args: []string{"--bogus", "."}},
		{name: "unknown format", args: []string{"--format", "xml", "."}},
		{name: "unknown severity", args: []string{"--severity", "fatal", "."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, stderr, code := runBinary(t, filepath.Join(testdata, "clean"), tt.args...)

			if code != 2 {
				t.Errorf("expected exit code 2, got %d\nstderr:\n%s", code, stderr)
			}
		})
	}
}

func TestE2E_HelpFlag(t *testing.T) {
	stdout, _, code := runBinary(t, getE2ETestdata(), "--help")

	if code != 0 {
		t.Fatalf("expected exit code 0 for --help, got %d", code)
	}

	if !strings.Contains(stdout, "--no-def-dict") {
		t.Errorf("expected help output with flags, got:\n%s", stdout)
	}
}
