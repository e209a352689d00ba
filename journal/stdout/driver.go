// pixelcycle/journal/stdout/driver.go
package stdout

import (
	"fmt"
	"sync/atomic"

	"pixelcycle/journal"
)

/* ────────── public config ────────── */
type Config struct {
	PrintCounter bool `yaml:"print_counter"` // prepend seq#
}

/* ────────── driver ────────── */
type driver struct {
	cfg Config
}

var seq uint64

func (d *driver) Configure(raw any) error {
	c, ok := raw.(Config)
	if !ok {
		return fmt.Errorf("stdout-journal: expected Config, got %T", raw)
	}
	d.cfg = c
	return nil
}

func (d *driver) Append(e journal.Entry) error {
	if d.cfg.PrintCounter {
		fmt.Printf("[journal %06d] %s\n", atomic.AddUint64(&seq, 1), e.Line())
		return nil
	}
	fmt.Println(e.Line())
	return nil
}

func (d *driver) Close() error { return nil }

/* ────────── auto-register ────────── */
func init() {
	journal.Register("stdout", func() journal.Adapter { return &driver{} })
}
