// Package metrics exports engine engagement counters to Prometheus.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector registers and updates the engine's Prometheus counters on a
// private registry.
type Collector struct {
	registry *prometheus.Registry

	taps            *prometheus.CounterVec
	plansGenerated  prometheus.Counter
	itemsRegistered *prometheus.CounterVec
	weightEntries   prometheus.Counter
}

// NewCollector creates a collector with all engine counters registered.
func NewCollector() *Collector {
	taps := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "engagement_taps_total",
			Help: "Engagement taps by kind",
		},
		[]string{"kind"},
	)

	plansGenerated := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "plans_generated_total",
			Help: "Day plans generated",
		},
	)

	itemsRegistered := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "custom_items_registered_total",
			Help: "Custom catalog items registered, by kind and durability",
		},
		[]string{"kind", "durable"},
	)

	weightEntries := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "weight_entries_total",
			Help: "Body-weight entries logged",
		},
	)

	registry := prometheus.NewRegistry()
	registry.MustRegister(taps, plansGenerated, itemsRegistered, weightEntries)

	return &Collector{
		registry:        registry,
		taps:            taps,
		plansGenerated:  plansGenerated,
		itemsRegistered: itemsRegistered,
		weightEntries:   weightEntries,
	}
}

// Handler serves the collector's registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// RecordTap counts one engagement tap.
func (c *Collector) RecordTap(kind string) {
	c.taps.WithLabelValues(kind).Inc()
}

// RecordPlanGenerated counts one plan generation.
func (c *Collector) RecordPlanGenerated() {
	c.plansGenerated.Inc()
}

// RecordItemRegistered counts one custom item registration.
func (c *Collector) RecordItemRegistered(kind string, durable bool) {
	c.itemsRegistered.WithLabelValues(kind, strconv.FormatBool(durable)).Inc()
}

// RecordWeightEntry counts one logged weight entry.
func (c *Collector) RecordWeightEntry() {
	c.weightEntries.Inc()
}
