package telemetry

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// PhaseTransitions counts entries into each phase ("applied", "reset").
	PhaseTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pixelcycle_phase_transitions_total",
		Help: "Number of phase transitions, by target phase.",
	}, []string{"phase"})

	// DisplayErrors counts failed display-tool invocations. The cycle keeps
	// its schedule regardless; outside strict mode this counter is the only
	// trace of a failure.
	DisplayErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pixelcycle_display_errors_total",
		Help: "Number of display tool invocations that returned an error.",
	})

	// JournalErrors counts failed journal appends.
	JournalErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pixelcycle_journal_errors_total",
		Help: "Number of journal appends that returned an error.",
	})

	// PhaseApplied is 1 while the shift transform is installed, 0 otherwise.
	PhaseApplied = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "pixelcycle_phase_applied",
		Help: "Whether the shift transform is currently applied.",
	})
)

func Expose(port int) {
	go func() {
		http.Handle("/metrics", promhttp.Handler())
		_ = http.ListenAndServe(fmt.Sprintf(":%d", port), nil)
	}()
}
