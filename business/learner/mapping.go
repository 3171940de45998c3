package learner

import (
	"sort"

	"fleetDispatch/domain"
)

// Config bounds the rate->weight mapping. Values stay human-inspectable:
// every positive weight lands in [WeightFloor, WeightCeil] and the detention
// weight in [-WeightCeil, -WeightFloor].
type Config struct {
	WeightFloor float64
	WeightCeil  float64
}

func DefaultConfig() Config {
	return Config{
		WeightFloor: 0.5,
		WeightCeil:  10,
	}
}

// clampedLinear rescales a rate in [0,1] into [floor, ceil]. Monotonic and
// bounded; out-of-range inputs clamp rather than extrapolate.
func clampedLinear(rate, floor, ceil float64) float64 {
	if rate < 0 {
		rate = 0
	}
	if rate > 1 {
		rate = 1
	}
	return floor + rate*(ceil-floor)
}

// DeriveWeights turns the fleet rates into the named weight vector, sorted by
// name. Detention is the one penalty weight: the more detention the fleet
// accumulates per delivery, the harder a driver's own detention feature drags
// its score down.
func DeriveWeights(rates FleetRates, cfg Config) []domain.Weight {
	floor, ceil := cfg.WeightFloor, cfg.WeightCeil

	weights := []domain.Weight{
		{Name: domain.WeightAcceptance, Value: clampedLinear(rates.Acceptance, floor, ceil)},
		{Name: domain.WeightOnTime, Value: clampedLinear(rates.OnTime, floor, ceil)},
		{Name: domain.WeightDetention, Value: -clampedLinear(rates.Detention, floor, ceil)},
		{Name: domain.WeightSentiment, Value: clampedLinear((rates.Sentiment+1)/2, floor, ceil)},
		{Name: domain.WeightLaneFamiliarity, Value: clampedLinear(rates.RepeatLane, floor, ceil)},
		{Name: domain.WeightProximity, Value: clampedLinear(rates.InRange, floor, ceil)},
		{Name: domain.WeightEquipmentMatch, Value: clampedLinear(rates.Equipped, floor, ceil)},
	}

	sort.Slice(weights, func(i, j int) bool {
		return weights[i].Name < weights[j].Name
	})

	return weights
}
