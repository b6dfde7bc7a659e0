// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/flate

package flate

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds Prometheus metrics for codec operations.
type Metrics struct {
	operationsTotal  *prometheus.CounterVec
	inputBytesTotal  *prometheus.CounterVec
	outputBytesTotal *prometheus.CounterVec
	faultsTotal      *prometheus.CounterVec

	// Registration tracking
	registered bool
	mu         sync.Mutex
}

// MetricsConfig holds configuration for codec metrics.
type MetricsConfig struct {
	// Namespace is the prometheus namespace for metrics.
	Namespace string
	// Subsystem is the prometheus subsystem for metrics.
	// If empty, defaults to "flate".
	Subsystem string
	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels
}

// NewMetrics creates a new Metrics instance.
func NewMetrics(cfg MetricsConfig) *Metrics {
	if cfg.Subsystem == "" {
		cfg.Subsystem = "flate"
	}

	counter := func(name, help string, labels ...string) *prometheus.CounterVec {
		return prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        name,
			Help:        help,
			ConstLabels: cfg.ConstLabels,
		}, labels)
	}

	return &Metrics{
		operationsTotal:  counter("operations_total", "Total number of completed codec operations", "operation"),
		inputBytesTotal:  counter("input_bytes_total", "Total bytes handed to the codec", "operation"),
		outputBytesTotal: counter("output_bytes_total", "Total bytes produced by the codec", "operation"),
		faultsTotal:      counter("faults_total", "Total number of codec faults", "operation", "kind"),
	}
}

func (m *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.operationsTotal,
		m.inputBytesTotal,
		m.outputBytesTotal,
		m.faultsTotal,
	}
}

// Register registers the metrics with the provided registerer.
// If registerer is nil, the default prometheus registerer is used.
func (m *Metrics) Register(registerer prometheus.Registerer) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.registered {
		return nil
	}

	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	collectors := m.collectors()
	for i, c := range collectors {
		if err := registerer.Register(c); err != nil {
			// Unregister only what this call registered; Unregister matches by
			// descriptor and would otherwise remove a colliding instance.
			for _, r := range collectors[:i] {
				registerer.Unregister(r)
			}

			return err
		}
	}

	m.registered = true

	return nil
}

// Unregister unregisters the metrics from the provided registerer.
func (m *Metrics) Unregister(registerer prometheus.Registerer) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.registered {
		return
	}

	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	for _, c := range m.collectors() {
		registerer.Unregister(c)
	}

	m.registered = false
}

// observe records one successful operation.
func (m *Metrics) observe(op string, in, out int) {
	m.operationsTotal.WithLabelValues(op).Inc()
	m.inputBytesTotal.WithLabelValues(op).Add(float64(in))
	m.outputBytesTotal.WithLabelValues(op).Add(float64(out))
}

// observeFault records one failed operation.
func (m *Metrics) observeFault(op string, kind FaultKind) {
	m.faultsTotal.WithLabelValues(op, kind.String()).Inc()
}
