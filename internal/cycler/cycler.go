// Package cycler drives the unending two-phase display cycle: hold the shift
// transform for one phase, hold identity for the next, journal every
// transition. External failures never change the schedule; the journal
// records what the cycler set out to do, not what the tool made of it.
package cycler

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"pixelcycle/display"
	"pixelcycle/internal/logging"
	"pixelcycle/internal/telemetry"
	"pixelcycle/internal/transform"
	"pixelcycle/journal"
)

// Phase is one of the two alternating cycle states.
type Phase int32

const (
	PhaseReset Phase = iota // identity installed (also the initial state)
	PhaseApplied
)

func (p Phase) String() string {
	if p == PhaseApplied {
		return "applied"
	}
	return "reset"
}

// Config is fixed at construction; the cycle never re-reads it.
type Config struct {
	Output string // empty ⇒ first connected output at startup

	ShiftX, ShiftY float64
	Units          string // "pixels" (raw offsets) or "normalized" (offset/resolution)

	PhaseDuration time.Duration
	Strict        bool // surface external failures as warnings
	RestoreOnExit bool // issue a full restore when the cycle stops
}

const restoreTimeout = 5 * time.Second

type Cycler struct {
	cfg  Config
	disp display.Adapter
	jrnl journal.Adapter

	output string
	shift  transform.Matrix
	phase  atomic.Int32
}

func New(cfg Config, disp display.Adapter, jrnl journal.Adapter) *Cycler {
	if cfg.PhaseDuration <= 0 {
		cfg.PhaseDuration = 20 * time.Second
	}
	return &Cycler{cfg: cfg, disp: disp, jrnl: jrnl}
}

// Phase reports the current cycle state.
func (c *Cycler) Phase() Phase { return Phase(c.phase.Load()) }

// Output reports the resolved output name; empty before Run or Once.
func (c *Cycler) Output() string { return c.output }

// Run loops until ctx is cancelled, then restores the output if configured.
// The returned error is ctx.Err() on cancellation; only startup resolution
// can fail for any other reason.
func (c *Cycler) Run(ctx context.Context) error {
	if err := c.resolve(ctx); err != nil {
		return err
	}
	c.record(fmt.Sprintf("cycle started on %s (shift_x=%v shift_y=%v, phase %v)",
		c.output, c.cfg.ShiftX, c.cfg.ShiftY, c.cfg.PhaseDuration))

	for {
		c.apply(ctx)
		if !c.sleep(ctx) {
			break
		}
		c.reset(ctx)
		if !c.sleep(ctx) {
			break
		}
	}

	c.shutdown()
	return ctx.Err()
}

// Once applies the transform for a single phase, then resets. It is the
// one-shot variant of the cycle and shares its fire-and-forget contract.
func (c *Cycler) Once(ctx context.Context) error {
	if err := c.resolve(ctx); err != nil {
		return err
	}
	c.apply(ctx)
	c.sleep(ctx)
	c.reset(ctx)
	return ctx.Err()
}

/*──────── phases ───────*/

func (c *Cycler) apply(ctx context.Context) {
	// Journal before invoking: the entry states intent, not outcome.
	c.record(fmt.Sprintf("applying transform shift_x=%v shift_y=%v", c.cfg.ShiftX, c.cfg.ShiftY))
	c.observe(c.disp.SetTransform(ctx, c.output, c.shift))
	c.phase.Store(int32(PhaseApplied))
	telemetry.PhaseTransitions.WithLabelValues(PhaseApplied.String()).Inc()
	telemetry.PhaseApplied.Set(1)
}

func (c *Cycler) reset(ctx context.Context) {
	c.record("resetting transform to identity")
	c.observe(c.disp.SetTransform(ctx, c.output, transform.Identity()))
	c.phase.Store(int32(PhaseReset))
	telemetry.PhaseTransitions.WithLabelValues(PhaseReset.String()).Inc()
	telemetry.PhaseApplied.Set(0)
}

func (c *Cycler) shutdown() {
	if !c.cfg.RestoreOnExit {
		c.record("cycle stopped")
		return
	}
	// The loop context is already done; the restore gets its own deadline.
	rctx, cancel := context.WithTimeout(context.Background(), restoreTimeout)
	defer cancel()
	c.observe(c.disp.Restore(rctx, c.output))
	c.phase.Store(int32(PhaseReset))
	telemetry.PhaseApplied.Set(0)
	c.record("cycle stopped, output restored")
}

// sleep holds the current phase for one duration. Returns false when ctx was
// cancelled so the loop can unwind without finishing the phase.
func (c *Cycler) sleep(ctx context.Context) bool {
	t := time.NewTimer(c.cfg.PhaseDuration)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

/*──────── startup resolution ───────*/

// resolve pins the output name and shift matrix for the process lifetime.
// Auto-detection and normalized units consult the tool once, here; the loop
// itself never inspects display state.
func (c *Cycler) resolve(ctx context.Context) error {
	c.output = c.cfg.Output
	needGeometry := c.cfg.Units == "normalized"

	if c.output == "" || needGeometry {
		outs, err := c.disp.Outputs(ctx)
		if err != nil {
			return fmt.Errorf("cycler: list outputs: %w", err)
		}
		if c.output == "" {
			if len(outs) == 0 {
				return fmt.Errorf("cycler: no connected outputs")
			}
			c.output = outs[0].Name
			logging.L().Info("auto-detected output", "output", c.output)
		}
		if needGeometry {
			m, err := normalizedFor(outs, c.output, c.cfg.ShiftX, c.cfg.ShiftY)
			if err != nil {
				return err
			}
			c.shift = m
			return nil
		}
	}

	c.shift = transform.Shift(c.cfg.ShiftX, c.cfg.ShiftY)
	return nil
}

func normalizedFor(outs []display.Output, name string, sx, sy float64) (transform.Matrix, error) {
	for _, o := range outs {
		if o.Name == name {
			m, err := transform.Normalized(sx, sy, o.Width, o.Height)
			if err != nil {
				return transform.Matrix{}, fmt.Errorf("cycler: %s: %w", name, err)
			}
			return m, nil
		}
	}
	return transform.Matrix{}, fmt.Errorf("cycler: output %q not connected", name)
}

/*──────── failure accounting ───────*/

func (c *Cycler) observe(err error) {
	if err == nil {
		return
	}
	telemetry.DisplayErrors.Inc()
	if c.cfg.Strict {
		logging.L().Warn("display tool failed", "err", err)
	}
}

func (c *Cycler) record(msg string) {
	if err := c.jrnl.Append(journal.Now(msg)); err != nil {
		telemetry.JournalErrors.Inc()
		if c.cfg.Strict {
			logging.L().Warn("journal append failed", "err", err)
		}
	}
}
