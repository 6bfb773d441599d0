// file: internals/metrics/metrics.go
// Package metrics exposes Prometheus collectors for simulation activity.
package metrics

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	simulationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "accreditation_simulations_total",
		Help: "Number of simulations run, by mode and predicted level.",
	}, []string{"mode", "level"})

	simulationDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "accreditation_simulation_duration_seconds",
		Help:    "Wall time of fetch+compute per simulation.",
		Buckets: prometheus.DefBuckets,
	}, []string{"mode"})

	snapshotsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "accreditation_snapshots_total",
		Help: "Simulation snapshots persisted, by trigger and status.",
	}, []string{"trigger", "status"})
)

func init() {
	prometheus.MustRegister(simulationsTotal, simulationDuration, snapshotsTotal)
}

func ObserveSimulation(mode, level string, d time.Duration) {
	simulationsTotal.WithLabelValues(mode, level).Inc()
	simulationDuration.WithLabelValues(mode).Observe(d.Seconds())
}

func ObserveSnapshot(trigger string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	snapshotsTotal.WithLabelValues(trigger, status).Inc()
}

// Handler serves the default registry in exposition format.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
