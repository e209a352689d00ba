// Package xrandr drives the X11 RandR command-line tool. Transform and
// restore calls shell out once per invocation; nothing is cached between
// calls because outputs can be replugged at any time.
package xrandr

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"pixelcycle/display"
	"pixelcycle/internal/logging"
	"pixelcycle/internal/transform"
)

type Driver struct {
	cfg Config

	// run is swapped in tests; production path is execRun.
	run func(ctx context.Context, args ...string) ([]byte, error)
}

func (d *Driver) Configure(raw any) error {
	cfg, ok := raw.(Config)
	if !ok {
		return fmt.Errorf("xrandr: expected Config, got %T", raw)
	}
	applyDefaults(&cfg)
	d.cfg = cfg
	if d.run == nil {
		d.run = d.execRun
	}
	return nil
}

func (d *Driver) execRun(ctx context.Context, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, d.cfg.Timeout)
	defer cancel()
	out, err := exec.CommandContext(ctx, d.cfg.Binary, args...).Output()
	if err != nil {
		return out, fmt.Errorf("xrandr %s: %w", strings.Join(args, " "), err)
	}
	return out, nil
}

func (d *Driver) Outputs(ctx context.Context) ([]display.Output, error) {
	raw, err := d.run(ctx)
	if err != nil {
		return nil, err
	}
	return parseOutputs(string(raw)), nil
}

func (d *Driver) SetTransform(ctx context.Context, output string, m transform.Matrix) error {
	args, err := d.transformArgs(ctx, output, m)
	if err != nil {
		return err
	}
	logging.L().Debug("xrandr set-transform", "output", output, "matrix", m.Arg())
	_, err = d.run(ctx, args...)
	return err
}

func (d *Driver) Restore(ctx context.Context, output string) error {
	logging.L().Debug("xrandr restore", "output", output)
	_, err := d.run(ctx, "--output", output, "--auto")
	return err
}

func (d *Driver) Close() error { return nil }

// transformArgs builds the argv tail for a transform invocation. With
// framebuffer pinning the active mode is re-asserted and the framebuffer
// padded, so the physical signal never renegotiates while the picture moves.
func (d *Driver) transformArgs(ctx context.Context, output string, m transform.Matrix) ([]string, error) {
	args := []string{"--output", output}
	if d.cfg.PinFramebuffer {
		w, h, err := d.geometry(ctx, output)
		if err != nil {
			return nil, err
		}
		args = append(args,
			"--mode", fmt.Sprintf("%dx%d", w, h),
			"--fb", fmt.Sprintf("%dx%d", w+d.cfg.FBMargin, h+d.cfg.FBMargin),
		)
	}
	return append(args, "--transform", m.Arg()), nil
}

func (d *Driver) geometry(ctx context.Context, output string) (int, int, error) {
	outs, err := d.Outputs(ctx)
	if err != nil {
		return 0, 0, err
	}
	for _, o := range outs {
		if o.Name == output {
			if o.Width == 0 || o.Height == 0 {
				break
			}
			return o.Width, o.Height, nil
		}
	}
	return 0, 0, fmt.Errorf("xrandr: no active geometry for output %q", output)
}

/*──────── output parsing ───────*/

// parseOutputs walks xrandr's plain listing. A connected output's active
// geometry usually sits on the connector line as WxH+X+Y; when the connector
// line carries none (output connected but idle), the `*`-marked mode line
// below it is the fallback.
func parseOutputs(text string) []display.Output {
	var outs []display.Output
	cur := -1

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		indented := line[0] == ' ' || line[0] == '\t'
		if !indented {
			cur = -1
			if !strings.Contains(trimmed, " connected") {
				continue
			}
			fields := strings.Fields(trimmed)
			o := display.Output{Name: fields[0]}
			for _, f := range fields {
				if w, h, ok := parseGeometry(f); ok {
					o.Width, o.Height = w, h
					break
				}
			}
			outs = append(outs, o)
			cur = len(outs) - 1
			continue
		}

		// mode line fallback for the current connector
		if cur < 0 || outs[cur].Width != 0 || !strings.Contains(trimmed, "*") {
			continue
		}
		if w, h, ok := parseMode(strings.Fields(trimmed)[0]); ok {
			outs[cur].Width, outs[cur].Height = w, h
		}
	}
	return outs
}

// parseGeometry extracts W,H from "WxH+X+Y".
func parseGeometry(s string) (int, int, bool) {
	if !strings.Contains(s, "x") || !strings.Contains(s, "+") {
		return 0, 0, false
	}
	res, _, found := strings.Cut(s, "+")
	if !found {
		return 0, 0, false
	}
	return parseMode(res)
}

// parseMode extracts W,H from "WxH" (tolerating trailing junk like "1080i").
func parseMode(s string) (int, int, bool) {
	var clean strings.Builder
	for _, c := range s {
		if (c < '0' || c > '9') && c != 'x' {
			break
		}
		clean.WriteRune(c)
	}
	wStr, hStr, found := strings.Cut(clean.String(), "x")
	if !found {
		return 0, 0, false
	}
	w, err1 := strconv.Atoi(wStr)
	h, err2 := strconv.Atoi(hStr)
	if err1 != nil || err2 != nil || w <= 0 || h <= 0 {
		return 0, 0, false
	}
	return w, h, true
}

func init() {
	display.Register("xrandr", func() display.Adapter { return &Driver{} })
}
