package bootstrap

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func assertDir(t *testing.T, path string) os.FileInfo {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat %s: %v", path, err)
	}
	if !info.IsDir() {
		t.Fatalf("%s is not a directory", path)
	}
	return info
}

func TestEnsureDirectories_CreatesTree(t *testing.T) {
	root := t.TempDir()
	reports := filepath.Join(root, "reports")
	logs := filepath.Join(reports, "logs")

	if err := EnsureDirectories(reports, logs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertDir(t, reports)
	assertDir(t, logs)
}

func TestEnsureDirectories_MissingParents(t *testing.T) {
	root := t.TempDir()
	logs := filepath.Join(root, "a", "b", "reports", "logs")

	if err := EnsureDirectories(logs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertDir(t, logs)
}

func TestEnsureDirectories_Idempotent(t *testing.T) {
	root := t.TempDir()
	reports := filepath.Join(root, "reports")
	logs := filepath.Join(reports, "logs")

	if err := EnsureDirectories(reports, logs); err != nil {
		t.Fatalf("first call: %v", err)
	}
	marker := filepath.Join(logs, "run.log")
	if err := os.WriteFile(marker, []byte("keep"), 0644); err != nil {
		t.Fatal(err)
	}
	before := assertDir(t, reports)

	if err := EnsureDirectories(reports, logs); err != nil {
		t.Fatalf("second call: %v", err)
	}

	after := assertDir(t, reports)
	if !after.ModTime().Equal(before.ModTime()) {
		t.Errorf("reports modified: %v -> %v", before.ModTime(), after.ModTime())
	}
	data, err := os.ReadFile(marker)
	if err != nil || string(data) != "keep" {
		t.Errorf("existing content changed: %q, %v", data, err)
	}
}

func TestEnsureDirectories_ExistingReportsOnly(t *testing.T) {
	root := t.TempDir()
	reports := filepath.Join(root, "reports")
	logs := filepath.Join(reports, "logs")
	if err := os.Mkdir(reports, 0755); err != nil {
		t.Fatal(err)
	}
	before := assertDir(t, reports)

	if err := EnsureDirectories(reports); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	after := assertDir(t, reports)
	if !after.ModTime().Equal(before.ModTime()) {
		t.Errorf("existing reports dir was modified")
	}

	if err := EnsureDirectories(reports, logs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertDir(t, logs)
}

func TestEnsureDirectories_FileInTheWay(t *testing.T) {
	root := t.TempDir()
	reports := filepath.Join(root, "reports")
	if err := os.WriteFile(reports, []byte("not a dir"), 0644); err != nil {
		t.Fatal(err)
	}

	err := EnsureDirectories(reports, filepath.Join(reports, "logs"))
	if err == nil {
		t.Fatal("expected error when a file occupies the reports path")
	}
	var pathErr *os.PathError
	if !errors.As(err, &pathErr) {
		t.Errorf("expected a filesystem error, got %T: %v", err, err)
	}

	data, readErr := os.ReadFile(reports)
	if readErr != nil || string(data) != "not a dir" {
		t.Errorf("existing file was modified: %q, %v", data, readErr)
	}
}

func TestEnsureDirectories_FileAtLogs(t *testing.T) {
	root := t.TempDir()
	reports := filepath.Join(root, "reports")
	logs := filepath.Join(reports, "logs")
	if err := os.Mkdir(reports, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(logs, nil, 0644); err != nil {
		t.Fatal(err)
	}

	if err := EnsureDirectories(reports, logs); err == nil {
		t.Fatal("expected error when a file occupies the logs path")
	}
	// No rollback: the reports root stays.
	assertDir(t, reports)
}

func TestEnsureDirectories_EmptyPath(t *testing.T) {
	if err := EnsureDirectories(""); !errors.Is(err, ErrEmptyPath) {
		t.Errorf("expected ErrEmptyPath, got %v", err)
	}
}

func TestEnsureDirectories_NoPaths(t *testing.T) {
	if err := EnsureDirectories(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
