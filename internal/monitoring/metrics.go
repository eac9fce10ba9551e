package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the prometheus collectors exposed on the metrics server
type Metrics struct {
	SubmissionsTotal   *prometheus.CounterVec
	SweepScoredTotal   prometheus.Counter
	SweepSkippedTotal  prometheus.Counter
	SweepFailedTotal   prometheus.Counter
	GenerationFailures prometheus.Counter
}

// NewMetrics creates and registers the campaign workflow collectors
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		SubmissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "promoboard_submissions_total",
			Help: "Campaign submissions by outcome (accepted, infeasible, duplicate, failed).",
		}, []string{"outcome"}),
		SweepScoredTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "promoboard_sweep_scored_total",
			Help: "Campaigns scored by scoring sweeps.",
		}),
		SweepSkippedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "promoboard_sweep_skipped_total",
			Help: "Campaigns skipped by scoring sweeps because they were already scored.",
		}),
		SweepFailedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "promoboard_sweep_failed_total",
			Help: "Campaigns whose scoring attempt failed and was left for a later sweep.",
		}),
		GenerationFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "promoboard_generation_failures_total",
			Help: "Failed calls to the text generation model.",
		}),
	}

	reg.MustRegister(
		m.SubmissionsTotal,
		m.SweepScoredTotal,
		m.SweepSkippedTotal,
		m.SweepFailedTotal,
		m.GenerationFailures,
	)
	return m
}
