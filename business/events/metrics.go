package events

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	EventsRecordedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dispatch_feedback_events_total",
			Help: "Count of accepted feedback events by event_type.",
		},
		[]string{"event_type"},
	)
)

func init() {
	prometheus.MustRegister(EventsRecordedTotal)
}
