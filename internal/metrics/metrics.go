package metrics

import (
	"errors"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Package-level Prometheus collectors. They are registered via Register.
var (
	regOK atomic.Bool

	simulationRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "scheduler",
			Subsystem: "simulation",
			Name:      "runs_total",
			Help:      "Number of completed scheduler simulations.",
		}, []string{"algorithm"},
	)
	preemptions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "scheduler",
			Subsystem: "simulation",
			Name:      "preemptions_total",
			Help:      "Number of preemptions performed during simulations.",
		}, []string{"algorithm"},
	)
	averageTurnaround = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "scheduler",
			Subsystem: "simulation",
			Name:      "average_turnaround_time",
			Help:      "Mean turnaround time of the last simulation, in simulated time units.",
		}, []string{"algorithm"},
	)
	makespan = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "scheduler",
			Subsystem: "simulation",
			Name:      "makespan_time_units",
			Help:      "Simulated time at which the last process completed.",
			Buckets:   prometheus.ExponentialBuckets(8, 2, 10),
		}, []string{"algorithm"},
	)
	cpuUtilization = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "scheduler",
			Subsystem: "cpu",
			Name:      "utilization_ratio",
			Help:      "Busy time over total time of the last simulation.",
		}, []string{"algorithm"},
	)
)

// Register registers all metrics with the provided registerer.
// It is safe to call multiple times; subsequent calls after success are no-ops.
func Register(r prometheus.Registerer) error {
	if regOK.Load() {
		return nil
	}
	cs := []prometheus.Collector{simulationRuns, preemptions, averageTurnaround, makespan, cpuUtilization}
	for _, c := range cs {
		if err := r.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				continue
			}
			return err
		}
	}
	regOK.Store(true)
	return nil
}

// Handler returns an http.Handler that serves Prometheus metrics for the DefaultGatherer.
func Handler() http.Handler { return promhttp.Handler() }

// NewServer returns an http.Server exposing /metrics on addr.
func NewServer(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler())
	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

// Serve registers the collectors with the default registry and serves them on addr.
func Serve(addr string) error {
	if err := Register(prometheus.DefaultRegisterer); err != nil {
		return err
	}
	return NewServer(addr).ListenAndServe()
}

// ObserveRun records the outcome of one simulation. It no-ops if Register hasn't been called.
func ObserveRun(algorithm string, avgTurnaround float64, preempted, totalTime int, utilization float64) {
	if !regOK.Load() {
		return
	}
	simulationRuns.WithLabelValues(algorithm).Inc()
	preemptions.WithLabelValues(algorithm).Add(float64(preempted))
	averageTurnaround.WithLabelValues(algorithm).Set(avgTurnaround)
	makespan.WithLabelValues(algorithm).Observe(float64(totalTime))
	cpuUtilization.WithLabelValues(algorithm).Set(utilization)
}
