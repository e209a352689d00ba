package engine

import (
	"fmt"
	"time"

	"pixelcycle/display"
	"pixelcycle/display/null"
	"pixelcycle/internal/config"
	"pixelcycle/internal/cycler"
	"pixelcycle/internal/spec"
	"pixelcycle/internal/telemetry"
	"pixelcycle/internal/transport"
	"pixelcycle/journal"
	filejournal "pixelcycle/journal/file"
	kafkajournal "pixelcycle/journal/kafka"
	stdoutjournal "pixelcycle/journal/stdout"
)

func Bootstrap(cfg spec.File, displayConf string) (*Engine, error) {
	// 1. control server
	srv, err := transport.StartServer(cfg.Control.GRPCPort)
	if err != nil {
		return nil, fmt.Errorf("transport: %w", err)
	}

	// 2. display driver
	disp, err := BuildDisplay(cfg, displayConf)
	if err != nil {
		return nil, fmt.Errorf("display: %w", err)
	}

	// 3. journal sinks
	jrnl, err := BuildJournal(cfg)
	if err != nil {
		return nil, fmt.Errorf("journal: %w", err)
	}

	// 4. cycler
	cyc := cycler.New(cyclerConfig(cfg), disp, jrnl)

	// 5. metrics
	telemetry.Expose(cfg.Telemetry.MetricsPort)

	return &Engine{
		transport: srv,
		cycler:    cyc,
		jrnl:      jrnl,
		disp:      disp,
	}, nil
}

// BuildDisplay constructs and configures the display driver named in cfg.
// The once/outputs command paths use it without the rest of the engine.
func BuildDisplay(cfg spec.File, confPath string) (display.Adapter, error) {
	drv, err := display.NewAdapter(cfg.Display.Driver)
	if err != nil {
		return nil, err
	}
	switch cfg.Display.Driver {
	case "xrandr":
		xc, err := config.LoadXrandrConfig(confPath)
		if err != nil {
			return nil, err
		}
		if err := drv.Configure(xc); err != nil {
			return nil, err
		}
	case "null":
		if err := drv.Configure(null.Config{Echo: true}); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("no config mapping for display driver %q", cfg.Display.Driver)
	}
	return drv, nil
}

// BuildJournal constructs the configured sinks and wraps them in a fan-out.
func BuildJournal(cfg spec.File) (*journal.Multi, error) {
	var sinks []journal.Adapter
	for _, name := range cfg.Journal.Sinks {
		s, err := journal.NewAdapter(name)
		if err != nil {
			return nil, err
		}
		switch name {
		case "file":
			err = s.Configure(filejournal.Config{Path: cfg.Journal.SinkConfigs.File.Path})
		case "stdout":
			err = s.Configure(stdoutjournal.Config{PrintCounter: cfg.Journal.SinkConfigs.Stdout.PrintCounter})
		case "kafka":
			kc := cfg.Journal.SinkConfigs.Kafka
			err = s.Configure(kafkajournal.Config{Brokers: kc.Brokers, Topic: kc.Topic, Acks: kc.Acks})
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		sinks = append(sinks, s)
	}
	return journal.NewMulti(sinks...), nil
}

func cyclerConfig(cfg spec.File) cycler.Config {
	return cycler.Config{
		Output:        cfg.Display.Output,
		ShiftX:        cfg.Transform.ShiftX,
		ShiftY:        cfg.Transform.ShiftY,
		Units:         cfg.Transform.Units,
		PhaseDuration: time.Duration(cfg.Cycle.PhaseDurationMS) * time.Millisecond,
		Strict:        cfg.Cycle.Strict,
		RestoreOnExit: cfg.Cycle.RestoreOnExit != nil && *cfg.Cycle.RestoreOnExit,
	}
}
