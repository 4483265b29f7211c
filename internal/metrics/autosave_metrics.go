package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// AutosaveMetrics tracks the autosave scheduler and the composition sessions
// it serves.
type AutosaveMetrics struct {
	scheduled prometheus.Counter
	coalesced prometheus.Counter
	writes    *prometheus.CounterVec

	activeCompositions prometheus.Gauge
}

// NewAutosaveMetrics registers the metrics on the default registerer.
func NewAutosaveMetrics() *AutosaveMetrics {
	return NewAutosaveMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

// NewAutosaveMetricsWithRegisterer allows tests to use an isolated registry.
func NewAutosaveMetricsWithRegisterer(registerer prometheus.Registerer) *AutosaveMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &AutosaveMetrics{
		scheduled: registerCounter(registerer, prometheus.CounterOpts{
			Name: "taller_autosave_scheduled_total",
			Help: "Total number of autosave schedules triggered by mutations",
		}),
		coalesced: registerCounter(registerer, prometheus.CounterOpts{
			Name: "taller_autosave_coalesced_total",
			Help: "Total number of pending autosaves replaced by a newer mutation",
		}),
		writes: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "taller_autosave_writes_total",
			Help: "Total number of autosave write attempts grouped by target and result",
		}, []string{"target", "result"}),
		activeCompositions: registerGauge(registerer, prometheus.GaugeOpts{
			Name: "taller_active_compositions",
			Help: "Number of repair order compositions currently open",
		}),
	}
}

func (m *AutosaveMetrics) RecordScheduled() {
	if m != nil {
		m.scheduled.Inc()
	}
}

func (m *AutosaveMetrics) RecordCoalesced() {
	if m != nil {
		m.coalesced.Inc()
	}
}

// RecordWrite records one write attempt; target is "local" or "remote",
// result is "ok", "error" or "offline".
func (m *AutosaveMetrics) RecordWrite(target, result string) {
	if m != nil {
		m.writes.WithLabelValues(target, result).Inc()
	}
}

func (m *AutosaveMetrics) CompositionOpened() {
	if m != nil {
		m.activeCompositions.Inc()
	}
}

func (m *AutosaveMetrics) CompositionClosed() {
	if m != nil {
		m.activeCompositions.Dec()
	}
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	collector := prometheus.NewCounter(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Counter)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter %q: %v", opts.Name, err))
	}
	return collector
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	collector := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter vec %q: %v", opts.Name, err))
	}
	return collector
}

func registerGauge(registerer prometheus.Registerer, opts prometheus.GaugeOpts) prometheus.Gauge {
	collector := prometheus.NewGauge(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Gauge)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register gauge %q: %v", opts.Name, err))
	}
	return collector
}
