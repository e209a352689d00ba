package xrandr

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Binary  string        `koanf:"binary"`  // xrandr executable, resolved via PATH
	Timeout time.Duration `koanf:"timeout"` // per-invocation deadline

	// PinFramebuffer keeps the physical signal stable while the transform
	// moves the picture: the active mode is re-asserted and the framebuffer
	// grown by FBMargin pixels on each axis.
	PinFramebuffer bool `koanf:"pin_framebuffer"`
	FBMargin       int  `koanf:"fb_margin"`
}

// ---------------------------------------------------------------------------
// Loader
// ---------------------------------------------------------------------------

// LoadConfig merges YAML (if present) with env-vars
// (prefix `PIXELCYCLE_XRANDR__`, delimiter `__`).
func LoadConfig(path string) (Config, error) {
	k := koanf.New(".")
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil &&
			!errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}
	// schema version check (only when YAML is present)
	sv := k.String("schema_version")
	if sv != "" && sv != "v1" {
		return Config{}, fmt.Errorf("xrandr schema_version %q not supported (want v1)", sv)
	}

	_ = k.Load(env.Provider("PIXELCYCLE_XRANDR__", "__", nil), nil)

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, err
	}
	applyDefaults(&cfg)
	return cfg, nil
}

// ---------------------------------------------------------------------------
// defaults
// ---------------------------------------------------------------------------

func applyDefaults(c *Config) {
	if c.Binary == "" {
		c.Binary = "xrandr"
	}
	if c.Timeout == 0 {
		c.Timeout = 10 * time.Second
	}
	if c.FBMargin == 0 {
		c.FBMargin = 2
	}
}
