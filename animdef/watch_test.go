package animdef

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestIsDefFile(t *testing.T) {
	cases := []struct {
		path string
		want bool
	}{
		{"defs/machine.yaml", true},
		{"defs/machine.yml", true},
		{"defs/player.tengo", true},
		{"defs/MACHINE.YAML", true},
		{"defs/sheet.png", false},
		{"defs/notes.txt", false},
		{"defs/machine.yaml.bak", false},
	}

	for _, c := range cases {
		if got := isDefFile(c.path); got != c.want {
			t.Fatalf("isDefFile(%q) = %v, want %v", c.path, got, c.want)
		}
	}
}

func TestWatcherReportsDefChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	path := filepath.Join(dir, "machine.yaml")
	if err := os.WriteFile(path, []byte("initial: idle\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case got := <-w.Events:
		if got != path {
			t.Fatalf("event for %q, want %q", got, path)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(3 * time.Second):
		t.Fatalf("timed out waiting for event")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "sheet.png"), []byte{0}, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case got := <-w.Events:
		t.Fatalf("unexpected event for %q", got)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}

	if _, ok := <-w.Events; ok {
		t.Fatalf("Events should be closed")
	}
}

func TestNewWatcherMissingDir(t *testing.T) {
	if _, err := NewWatcher(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}
