package xrandr

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"pixelcycle/display"
	"pixelcycle/internal/transform"
)

const listing = `Screen 0: minimum 320 x 200, current 1920 x 1080, maximum 16384 x 16384
DP-1 connected primary 1920x1080+0+0 (normal left inverted right x axis y axis) 600mm x 340mm
   1920x1080     60.00*+  50.00
   1280x720      60.00
HDMI-1 disconnected (normal left inverted right x axis y axis)
DP-2 connected (normal left inverted right x axis y axis)
   2560x1440     59.95*
   1920x1080     60.00
`

func TestParseOutputs(t *testing.T) {
	got := parseOutputs(listing)
	want := []display.Output{
		{Name: "DP-1", Width: 1920, Height: 1080},
		{Name: "DP-2", Width: 2560, Height: 1440},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("parseOutputs = %+v, want %+v", got, want)
	}
}

func TestParseGeometry(t *testing.T) {
	w, h, ok := parseGeometry("1920x1080+0+0")
	if !ok || w != 1920 || h != 1080 {
		t.Fatalf("parseGeometry = %d,%d,%v", w, h, ok)
	}
	if _, _, ok := parseGeometry("primary"); ok {
		t.Fatal("non-geometry token must not parse")
	}
	if _, _, ok := parseGeometry("x axis"); ok {
		t.Fatal("rotation axis token must not parse")
	}
}

type fakeRun struct {
	argv   [][]string
	stdout string
}

func (f *fakeRun) run(_ context.Context, args ...string) ([]byte, error) {
	f.argv = append(f.argv, args)
	return []byte(f.stdout), nil
}

func newTestDriver(t *testing.T, cfg Config, f *fakeRun) *Driver {
	t.Helper()
	d := &Driver{run: f.run}
	if err := d.Configure(cfg); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	return d
}

func TestSetTransform_Argv(t *testing.T) {
	f := &fakeRun{}
	d := newTestDriver(t, Config{}, f)

	if err := d.SetTransform(context.Background(), "DP-1", transform.Shift(1, 1)); err != nil {
		t.Fatalf("SetTransform: %v", err)
	}
	want := []string{"--output", "DP-1", "--transform", "1,0,1,0,1,1,0,0,1"}
	if len(f.argv) != 1 || !reflect.DeepEqual(f.argv[0], want) {
		t.Fatalf("argv = %v, want %v", f.argv, want)
	}
}

func TestSetTransform_PinnedFramebuffer(t *testing.T) {
	f := &fakeRun{stdout: listing}
	d := newTestDriver(t, Config{PinFramebuffer: true}, f)

	if err := d.SetTransform(context.Background(), "DP-1", transform.Identity()); err != nil {
		t.Fatalf("SetTransform: %v", err)
	}
	// first invocation lists outputs for geometry, second applies
	if len(f.argv) != 2 {
		t.Fatalf("expected 2 invocations, got %d", len(f.argv))
	}
	want := []string{
		"--output", "DP-1",
		"--mode", "1920x1080",
		"--fb", "1922x1082",
		"--transform", "1,0,0,0,1,0,0,0,1",
	}
	if !reflect.DeepEqual(f.argv[1], want) {
		t.Fatalf("argv = %v, want %v", f.argv[1], want)
	}
}

func TestRestore_Argv(t *testing.T) {
	f := &fakeRun{}
	d := newTestDriver(t, Config{}, f)

	if err := d.Restore(context.Background(), "DP-1"); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	want := []string{"--output", "DP-1", "--auto"}
	if !reflect.DeepEqual(f.argv[0], want) {
		t.Fatalf("argv = %v, want %v", f.argv[0], want)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Binary != "xrandr" {
		t.Fatalf("default binary = %q", cfg.Binary)
	}
	if cfg.Timeout != 10*time.Second {
		t.Fatalf("default timeout = %v", cfg.Timeout)
	}
	if cfg.FBMargin != 2 {
		t.Fatalf("default fb margin = %d", cfg.FBMargin)
	}
}

func TestLoadConfig_YAML(t *testing.T) {
	dir := t.TempDir()
	raw := []byte("schema_version: v1\nbinary: /usr/local/bin/xrandr\ntimeout: 3s\npin_framebuffer: true\n")
	path := filepath.Join(dir, "xrandr.yml")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Binary != "/usr/local/bin/xrandr" || cfg.Timeout != 3*time.Second || !cfg.PinFramebuffer {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadConfig_InvalidSchema(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "xrandr.yml")
	if err := os.WriteFile(path, []byte("schema_version: v99\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for unsupported schema_version")
	}
}
