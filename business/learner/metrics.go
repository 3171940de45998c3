package learner

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dispatch_learner_runs_total",
			Help: "Count of learner runs by outcome.",
		},
		[]string{"outcome"},
	)

	RunDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "dispatch_learner_run_duration_seconds",
		Help:    "Duration of committed learner runs",
		Buckets: prometheus.DefBuckets,
	})
)

func init() {
	prometheus.MustRegister(RunsTotal, RunDuration)
}
