package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestRunStops(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.toml")
	if err := os.WriteFile(path, []byte("hp = 60\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w := New([]string{path}, 50*time.Millisecond, func() {})

	done := make(chan error, 1)
	go func() { done <- w.Run() }()

	w.Stop()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Stop")
	}
}

func TestRunMissingPath(t *testing.T) {
	w := New([]string{filepath.Join(t.TempDir(), "absent")}, 0, func() {})
	if err := w.Run(); err == nil {
		t.Error("expected error for missing watch path")
	}
}

func TestFiresOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.toml")
	if err := os.WriteFile(path, []byte("hp = 60\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	fired := make(chan struct{}, 1)
	w := New([]string{path}, 20*time.Millisecond, func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	})

	go func() { _ = w.Run() }()
	defer w.Stop()

	// Give the watcher a moment to register before writing.
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(path, []byte("hp = 30\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-fired:
	case <-time.After(3 * time.Second):
		t.Fatal("onChange did not fire after write")
	}
}
