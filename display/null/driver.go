// pixelcycle/display/null/driver.go
package null

import (
	"context"
	"fmt"
	"sync"

	"pixelcycle/display"
	"pixelcycle/internal/logging"
	"pixelcycle/internal/transform"
)

/* ────────── public config ────────── */
type Config struct {
	// Outputs reported by the fake tool; defaults to a single 1920x1080 DP-1.
	Outputs []display.Output
	// Echo prints each would-be invocation, for dry runs.
	Echo bool
}

// Driver records every invocation without touching any display server.
// It backs --dry-run and the cycler tests.
type Driver struct {
	cfg Config

	mu    sync.Mutex
	calls []Call
}

// Call is one recorded invocation.
type Call struct {
	Output  string
	Matrix  transform.Matrix
	Restore bool
}

func (d *Driver) Configure(raw any) error {
	cfg, ok := raw.(Config)
	if !ok {
		return fmt.Errorf("null-display: expected Config, got %T", raw)
	}
	if len(cfg.Outputs) == 0 {
		cfg.Outputs = []display.Output{{Name: "DP-1", Width: 1920, Height: 1080}}
	}
	d.cfg = cfg
	return nil
}

func (d *Driver) Outputs(context.Context) ([]display.Output, error) {
	return append([]display.Output{}, d.cfg.Outputs...), nil
}

func (d *Driver) SetTransform(_ context.Context, output string, m transform.Matrix) error {
	d.record(Call{Output: output, Matrix: m})
	if d.cfg.Echo {
		fmt.Printf("dry-run: xrandr --output %s --transform %s\n", output, m.Arg())
	}
	logging.L().Debug("null-display set-transform", "output", output, "matrix", m.Arg())
	return nil
}

func (d *Driver) Restore(_ context.Context, output string) error {
	d.record(Call{Output: output, Restore: true})
	if d.cfg.Echo {
		fmt.Printf("dry-run: xrandr --output %s --auto\n", output)
	}
	return nil
}

func (d *Driver) Close() error { return nil }

func (d *Driver) record(c Call) {
	d.mu.Lock()
	d.calls = append(d.calls, c)
	d.mu.Unlock()
}

// Calls returns a copy of everything recorded so far.
func (d *Driver) Calls() []Call {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]Call{}, d.calls...)
}

func init() {
	display.Register("null", func() display.Adapter { return &Driver{} })
}
