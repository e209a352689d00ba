package engine

import (
	"context"

	"pixelcycle/display"
	"pixelcycle/internal/cycler"
	"pixelcycle/internal/transport"
	"pixelcycle/journal"
)

type Engine struct {
	transport *transport.Server
	cycler    *cycler.Cycler
	jrnl      *journal.Multi
	disp      display.Adapter
}

// Run drives the cycle until ctx is cancelled. The control server is stopped
// and the journal and display adapter closed only after the cycler has
// journaled its final entries.
func (e *Engine) Run(ctx context.Context) error {
	go func() { _ = e.transport.Serve() }()
	go func() {
		<-ctx.Done()
		e.transport.Stop()
	}()

	err := e.cycler.Run(ctx)
	_ = e.jrnl.Close()
	_ = e.disp.Close()
	return err
}

// Cycler exposes the running cycler, mainly for the one-shot command path.
func (e *Engine) Cycler() *cycler.Cycler { return e.cycler }
