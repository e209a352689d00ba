package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"pixelcycle/internal/spec"
)

const SupportedSchema = "v1"

// LoadCycleSpec parses a cycle YAML, validates schema_version, applies
// defaults, and returns the parsed spec plus an absolute path to the display
// driver config (if set).
func LoadCycleSpec(path string) (spec.File, string, error) {
	var cfg spec.File
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, "", err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, "", err
	}
	if cfg.SchemaVersion == "" {
		cfg.SchemaVersion = SupportedSchema
	}
	if cfg.SchemaVersion != SupportedSchema {
		return cfg, "", fmt.Errorf("cycle schema_version %q not supported (want %q)", cfg.SchemaVersion, SupportedSchema)
	}
	applyDefaults(&cfg)
	if err := validate(cfg); err != nil {
		return cfg, "", err
	}
	confPath := cfg.Display.Config
	if confPath != "" && !filepath.IsAbs(confPath) {
		confPath = filepath.Join(filepath.Dir(path), confPath)
	}
	return cfg, confPath, nil
}

// Defaults reproduce the fixed constants of the classic single-script setup:
// 1px shift on each axis, 20s per phase, one append-only log file.
func applyDefaults(c *spec.File) {
	if c.Display.Driver == "" {
		c.Display.Driver = "xrandr"
	}
	if c.Transform.ShiftX == 0 && c.Transform.ShiftY == 0 {
		c.Transform.ShiftX, c.Transform.ShiftY = 1, 1
	}
	if c.Transform.Units == "" {
		c.Transform.Units = "pixels"
	}
	if c.Cycle.PhaseDurationMS == 0 {
		c.Cycle.PhaseDurationMS = 20_000
	}
	if c.Cycle.RestoreOnExit == nil {
		t := true
		c.Cycle.RestoreOnExit = &t
	}
	if len(c.Journal.Sinks) == 0 {
		c.Journal.Sinks = []string{"file"}
	}
	if c.Journal.SinkConfigs.File.Path == "" {
		c.Journal.SinkConfigs.File.Path = "pixelcycle.log"
	}
	if c.Telemetry.MetricsPort == 0 {
		c.Telemetry.MetricsPort = 9100
	}
	if c.Control.GRPCPort == 0 {
		c.Control.GRPCPort = 7070
	}
}

func validate(c spec.File) error {
	switch c.Transform.Units {
	case "pixels", "normalized":
	default:
		return fmt.Errorf("transform units %q not supported (want pixels or normalized)", c.Transform.Units)
	}
	if c.Cycle.PhaseDurationMS < 0 {
		return fmt.Errorf("phase_duration_ms must be positive, got %d", c.Cycle.PhaseDurationMS)
	}
	return nil
}
