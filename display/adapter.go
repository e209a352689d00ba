// Package display abstracts the external display-configuration tool. Drivers
// mutate display-server state; callers treat every call as fire-and-forget
// unless they opted into strict handling.
package display

import (
	"context"
	"fmt"

	"pixelcycle/internal/transform"
)

// Output is one display connector as reported by the tool.
type Output struct {
	Name   string
	Width  int // active mode width, 0 when unknown
	Height int // active mode height, 0 when unknown
}

type Adapter interface {
	Configure(any) error

	// Outputs lists the connected outputs with their active geometry.
	Outputs(context.Context) ([]Output, error)

	// SetTransform asks the tool to install m on the named output.
	SetTransform(ctx context.Context, output string, m transform.Matrix) error

	// Restore reverts the named output to the driver's default state,
	// clearing transforms and framebuffer overrides.
	Restore(ctx context.Context, output string) error

	Close() error
}

// Factory builds an Adapter (e.g., xrandr, null).
type Factory func() Adapter

var registry = map[string]Factory{}

// Register is called from each driver's init().
func Register(name string, f Factory) {
	registry[name] = f
}

// NewAdapter returns a driver by name ("xrandr", "null", …).
func NewAdapter(name string) (Adapter, error) {
	if f, ok := registry[name]; ok {
		return f(), nil
	}
	return nil, fmt.Errorf("display: unsupported driver %q", name)
}
