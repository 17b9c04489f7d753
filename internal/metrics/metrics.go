// Package metrics exposes simulation counters as prometheus metrics.
package metrics

import (
	"io"

	"github.com/db47h/pulsesim"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Collector collects pulse and press metrics in its own registry. Metrics
// are labelled by mode so that several simulations can share a Collector.
type Collector struct {
	reg     *prometheus.Registry
	pulses  *prometheus.CounterVec
	presses *prometheus.CounterVec
	events  *prometheus.HistogramVec
}

// New creates a Collector and registers its metrics.
func New() *Collector {
	c := &Collector{
		reg: prometheus.NewRegistry(),
		pulses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pulsesim_pulses_total",
				Help: "Total number of pulses sent, by level",
			},
			[]string{"mode", "level"},
		),
		presses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pulsesim_presses_total",
				Help: "Total number of button presses",
			},
			[]string{"mode"},
		),
		events: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pulsesim_press_events",
				Help:    "Number of events processed per button press",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
			[]string{"mode"},
		),
	}
	c.reg.MustRegister(c.pulses, c.presses, c.events)
	return c
}

// Observer returns a scheduler observer counting pulses for mode.
func (c *Collector) Observer(mode string) pulsesim.Observer {
	high := c.pulses.WithLabelValues(mode, pulsesim.High.String())
	low := c.pulses.WithLabelValues(mode, pulsesim.Low.String())
	return func(e pulsesim.Event) {
		if e.Pulse == pulsesim.High {
			high.Inc()
		} else {
			low.Inc()
		}
	}
}

// PressHook returns a driver press hook recording presses for mode.
// See pulsesim.WithPressHook.
func (c *Collector) PressHook(mode string) func(press, events int) {
	presses, events := c.presses.WithLabelValues(mode), c.events.WithLabelValues(mode)
	return func(_, n int) {
		presses.Inc()
		events.Observe(float64(n))
	}
}

// DriverOptions returns the options wiring a driver's scheduler and presses
// to the Collector under mode.
func (c *Collector) DriverOptions(mode string) []pulsesim.DriverOption {
	return []pulsesim.DriverOption{
		pulsesim.WithScheduler(pulsesim.NewScheduler(pulsesim.WithObserver(c.Observer(mode)))),
		pulsesim.WithPressHook(c.PressHook(mode)),
	}
}

// Registry returns the underlying registry.
func (c *Collector) Registry() *prometheus.Registry { return c.reg }

// WriteText writes all metrics to w in the prometheus text format.
func (c *Collector) WriteText(w io.Writer) error {
	mfs, err := c.reg.Gather()
	if err != nil {
		return errors.Wrap(err, "gather metrics")
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return errors.Wrap(err, "write metrics")
		}
	}
	return nil
}
