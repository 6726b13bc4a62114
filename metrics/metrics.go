// Package metrics exposes Prometheus collectors for root-finding runs.
//
// Metrics is designed to be plugged into the engine as an observer:
//
//	m := metrics.New(reg)
//	roots.RefineAll(r, f, df, ivs, cfg, roots.WithObserver(m.Observe))
//
// Batch tools have no scrape endpoint, so WriteTextfile dumps the registry in
// the node-exporter textfile format.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/lvroot/roots"
)

// Namespace prefixes every metric name.
const Namespace = "lvroot"

// Metrics holds the collectors for one registry.
type Metrics struct {
	refinements *prometheus.CounterVec
	iterations  *prometheus.HistogramVec
	candidates  prometheus.Counter
	runs        *prometheus.CounterVec
}

// New registers the collectors on reg; nil means prometheus.DefaultRegisterer.
// Registering twice on the same registry panics (promauto semantics).
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		refinements: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "refinements_total",
				Help:      "Refined candidate intervals by method and outcome status.",
			},
			[]string{"method", "status"},
		),
		iterations: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "refinement_iterations",
				Help:      "Iterations consumed per refined interval.",
				Buckets:   prometheus.ExponentialBuckets(1, 2, 11), // 1 to 1024
			},
			[]string{"method"},
		),
		candidates: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "candidates_total",
				Help:      "Candidate intervals emitted by the scanner.",
			},
		),
		runs: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "runs_total",
				Help:      "Completed solve runs by result (ok or error).",
			},
			[]string{"result"},
		),
	}
}

// Observe records one refinement result. Safe for concurrent use, so it can
// be passed to roots.WithObserver together with roots.WithWorkers.
func (m *Metrics) Observe(r roots.Result) {
	method := r.Method.String()
	m.refinements.WithLabelValues(method, r.Status.String()).Inc()
	m.iterations.WithLabelValues(method).Observe(float64(r.Iterations))
}

// AddCandidates records n intervals emitted by a scan.
func (m *Metrics) AddCandidates(n int) {
	m.candidates.Add(float64(n))
}

// RecordRun records the end of a solve run.
func (m *Metrics) RecordRun(err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.runs.WithLabelValues(result).Inc()
}

// WriteTextfile atomically writes every metric gathered from g to path in the
// Prometheus text exposition format.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("write metrics textfile %q: %w", path, err)
	}

	return nil
}
