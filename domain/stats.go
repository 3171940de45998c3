package domain

// DriverStat is the learner's per-driver working aggregate, recomputed
// wholesale on every run. It is not authoritative state; the redis copy exists
// only for inspection and as the scorer's feature source.
type DriverStat struct {
	DriverID       string         `json:"driver_id"`
	AcceptanceRate float64        `json:"acceptance_rate"`
	OnTimeRate     float64        `json:"on_time_rate"`
	DetentionRate  float64        `json:"detention_rate"`
	Sentiment      float64        `json:"sentiment"`
	SampleCount    int            `json:"sample_count"`
	Deliveries     int            `json:"deliveries"`
	LaneDeliveries map[string]int `json:"lane_deliveries,omitempty"`
}

// Candidate is a scored driver for one ranking request. It never outlives the
// request that produced it.
type Candidate struct {
	DriverID string  `json:"driver_id"`
	FullName string  `json:"full_name"`
	Score    float64 `json:"score"`
	Reason   string  `json:"reason"`
}
