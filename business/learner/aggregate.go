package learner

import (
	"fleetDispatch/domain"
)

// offerKey identifies one shown offer so unanswered ones can be counted.
type offerKey struct {
	driverID string
	loadID   string
}

// driverAccumulator collects raw counts for one driver before rates are derived.
type driverAccumulator struct {
	accepted   int
	declined   int
	delivered  int
	late       int
	detention  int
	thumbsUp   int
	thumbsDown int
	samples    int

	shownOffers    map[string]int // loadID -> times shown
	laneDeliveries map[string]int
}

func newDriverAccumulator() *driverAccumulator {
	return &driverAccumulator{
		shownOffers:    make(map[string]int),
		laneDeliveries: make(map[string]int),
	}
}

// AggregateDriverStats recomputes per-driver aggregates from the full event
// history. An offer counts against acceptance when it was accepted, declined,
// or shown and never answered for that load.
func AggregateDriverStats(events []domain.FeedbackEvent) map[string]domain.DriverStat {
	accs := make(map[string]*driverAccumulator)
	answered := make(map[offerKey]bool)

	acc := func(driverID string) *driverAccumulator {
		a, ok := accs[driverID]
		if !ok {
			a = newDriverAccumulator()
			accs[driverID] = a
		}
		return a
	}

	for _, ev := range events {
		a := acc(ev.DriverID)
		a.samples++

		switch ev.EventType {
		case domain.EventOfferShown:
			a.shownOffers[ev.LoadID]++
		case domain.EventOfferAccepted:
			a.accepted++
			answered[offerKey{ev.DriverID, ev.LoadID}] = true
		case domain.EventOfferDeclined:
			a.declined++
			answered[offerKey{ev.DriverID, ev.LoadID}] = true
		case domain.EventDelivered:
			a.delivered++
			if lane := ev.Lane(); lane != "" {
				a.laneDeliveries[lane]++
			}
		case domain.EventLate:
			a.late++
		case domain.EventDetention:
			a.detention++
		case domain.EventThumbUp:
			a.thumbsUp++
		case domain.EventThumbDown:
			a.thumbsDown++
		}
	}

	stats := make(map[string]domain.DriverStat, len(accs))
	for driverID, a := range accs {
		timedOut := 0
		for loadID, shown := range a.shownOffers {
			if !answered[offerKey{driverID, loadID}] {
				timedOut += shown
			}
		}

		stats[driverID] = a.toStat(driverID, timedOut)
	}

	return stats
}

func (a *driverAccumulator) toStat(driverID string, timedOutShown int) domain.DriverStat {
	stat := domain.DriverStat{
		DriverID:    driverID,
		SampleCount: a.samples,
		Deliveries:  a.delivered,
	}

	if denom := a.accepted + a.declined + timedOutShown; denom > 0 {
		stat.AcceptanceRate = float64(a.accepted) / float64(denom)
	}

	if a.delivered > 0 {
		onTime := a.delivered - a.late
		if onTime < 0 {
			onTime = 0
		}
		stat.OnTimeRate = float64(onTime) / float64(a.delivered)

		stat.DetentionRate = float64(a.detention) / float64(a.delivered)
		if stat.DetentionRate > 1 {
			stat.DetentionRate = 1
		}
	}

	stat.Sentiment = float64(a.thumbsUp-a.thumbsDown) / max(1, float64(a.thumbsUp+a.thumbsDown))

	if len(a.laneDeliveries) > 0 {
		stat.LaneDeliveries = a.laneDeliveries
	}

	return stat
}

// FleetRates are the pooled aggregates the weight mapping is driven by.
type FleetRates struct {
	Acceptance float64
	OnTime     float64
	Detention  float64
	Sentiment  float64 // [-1, 1]
	RepeatLane float64 // share of deliveries on a lane the driver had run before
	InRange    float64 // share of distance-annotated events within max_distance
	Equipped   float64 // share of accepted offers carrying an equipment class
}

// AggregateFleet pools the event history into the fleet-wide rates. Weights
// are derived from these rather than from any single driver, so a driver's
// own history moves its features, not the coefficients.
func AggregateFleet(events []domain.FeedbackEvent, stats map[string]domain.DriverStat) FleetRates {
	var rates FleetRates

	var accepted, declined, timedOut int
	var delivered, late, detention int
	var up, down int
	var acceptedWithEquipment int
	var distAnnotated, inRange int
	var repeatDeliveries, totalDeliveries int

	for _, stat := range stats {
		totalDeliveries += stat.Deliveries
		for _, n := range stat.LaneDeliveries {
			if n > 1 {
				repeatDeliveries += n - 1
			}
		}
	}

	answered := make(map[offerKey]bool)
	shown := make(map[offerKey]int)

	for _, ev := range events {
		switch ev.EventType {
		case domain.EventOfferShown:
			shown[offerKey{ev.DriverID, ev.LoadID}]++
		case domain.EventOfferAccepted:
			accepted++
			answered[offerKey{ev.DriverID, ev.LoadID}] = true
			if ev.Equipment != "" {
				acceptedWithEquipment++
			}
		case domain.EventOfferDeclined:
			declined++
			answered[offerKey{ev.DriverID, ev.LoadID}] = true
		case domain.EventDelivered:
			delivered++
		case domain.EventLate:
			late++
		case domain.EventDetention:
			detention++
		case domain.EventThumbUp:
			up++
		case domain.EventThumbDown:
			down++
		}

		if ev.Miles != nil && ev.MaxDistance != nil {
			distAnnotated++
			if *ev.Miles <= *ev.MaxDistance {
				inRange++
			}
		}
	}

	for key, n := range shown {
		if !answered[key] {
			timedOut += n
		}
	}

	if denom := accepted + declined + timedOut; denom > 0 {
		rates.Acceptance = float64(accepted) / float64(denom)
	}
	if delivered > 0 {
		onTime := delivered - late
		if onTime < 0 {
			onTime = 0
		}
		rates.OnTime = float64(onTime) / float64(delivered)
		rates.Detention = float64(detention) / float64(delivered)
		if rates.Detention > 1 {
			rates.Detention = 1
		}
	}
	rates.Sentiment = float64(up-down) / max(1, float64(up+down))
	if totalDeliveries > 0 {
		rates.RepeatLane = float64(repeatDeliveries) / float64(totalDeliveries)
	}
	if distAnnotated > 0 {
		rates.InRange = float64(inRange) / float64(distAnnotated)
	}
	if accepted > 0 {
		rates.Equipped = float64(acceptedWithEquipment) / float64(accepted)
	}

	return rates
}
