package file

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"pixelcycle/journal"
)

func newDriver(t *testing.T, path string) journal.Adapter {
	t.Helper()
	d := &driver{}
	if err := d.Configure(Config{Path: path}); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	return d
}

func entryAt(sec int, msg string) journal.Entry {
	return journal.Entry{Time: time.Date(2025, 1, 2, 3, 4, sec, 0, time.Local), Message: msg}
}

func TestDriver_CreatesFileAndAppendsLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cycle.log")
	d := newDriver(t, path)
	defer d.Close()

	if err := d.Append(entryAt(5, "cycle started")); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := d.Append(entryAt(6, "applying transform shift_x=1 shift_y=1")); err != nil {
		t.Fatalf("Append: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	want := "2025-01-02 03:04:05 - cycle started\n" +
		"2025-01-02 03:04:06 - applying transform shift_x=1 shift_y=1\n"
	if string(raw) != want {
		t.Fatalf("log content = %q, want %q", raw, want)
	}
}

func TestDriver_AppendOnlyAcrossRestarts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cycle.log")

	d := newDriver(t, path)
	if err := d.Append(entryAt(1, "first run")); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := d.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// A second process lifetime must not truncate or reorder prior entries.
	d = newDriver(t, path)
	defer d.Close()
	if err := d.Append(entryAt(2, "second run")); err != nil {
		t.Fatalf("Append: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), raw)
	}
	if !strings.HasSuffix(lines[0], "first run") || !strings.HasSuffix(lines[1], "second run") {
		t.Fatalf("entries reordered or lost: %q", lines)
	}
	if !strings.HasSuffix(string(raw), "\n") {
		t.Fatal("last line must be newline-terminated")
	}
}

func TestDriver_RequiresPath(t *testing.T) {
	d := &driver{}
	if err := d.Configure(Config{}); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestDriver_RejectsForeignConfig(t *testing.T) {
	d := &driver{}
	if err := d.Configure(42); err == nil {
		t.Fatal("expected error for non-Config value")
	}
}
