package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the ranking HTTP handler
	RankLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "dispatch_rank_latency_seconds",
		Help:    "Latency of the driver ranking handler",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of ranking requests served
	RankRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dispatch_rank_requests_total",
		Help: "Total number of ranking requests",
	})

	// Candidates returned per ranking request
	RankCandidates = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "dispatch_rank_candidates",
		Help:    "Number of candidates returned per ranking request",
		Buckets: []float64{0, 1, 2, 5, 10, 25, 50},
	})
)

func Init() {
	prometheus.MustRegister(
		RankLatency,
		RankRequests,
		RankCandidates,
	)
}
