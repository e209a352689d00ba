// pixelcycle/journal/file/driver.go
package file

import (
	"fmt"
	"os"

	"pixelcycle/journal"
)

/* ────────── public config ────────── */
type Config struct {
	Path string `yaml:"path"`
}

/* ────────── driver ────────── */

// driver appends one line per entry to a single log file. The file is opened
// O_APPEND once and held for the process lifetime; each entry is a single
// Write call, so an interrupt never leaves a torn line behind it.
type driver struct {
	cfg Config
	f   *os.File
}

func (d *driver) Configure(raw any) error {
	c, ok := raw.(Config)
	if !ok {
		return fmt.Errorf("file-journal: expected Config, got %T", raw)
	}
	if c.Path == "" {
		return fmt.Errorf("file-journal: path is required")
	}
	d.cfg = c

	f, err := os.OpenFile(c.Path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("file-journal: open %s: %w", c.Path, err)
	}
	d.f = f
	return nil
}

func (d *driver) Append(e journal.Entry) error {
	if d.f == nil {
		return fmt.Errorf("file-journal: not configured")
	}
	_, err := d.f.Write([]byte(e.Line() + "\n"))
	return err
}

func (d *driver) Close() error {
	if d.f == nil {
		return nil
	}
	err := d.f.Close()
	d.f = nil
	return err
}

/* ────────── auto-register ────────── */
func init() {
	journal.Register("file", func() journal.Adapter { return &driver{} })
}
