package config

import (
	xcfg "pixelcycle/display/xrandr"
)

// LoadXrandrConfig delegates to the xrandr driver loader while centralizing
// loader entrypoints under internal/config.
func LoadXrandrConfig(path string) (xcfg.Config, error) {
	return xcfg.LoadConfig(path)
}
