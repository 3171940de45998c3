package scoring

import (
	"strings"

	"fleetDispatch/domain"
)

// buildFeatures computes the per-(driver, load) feature map the weight vector
// is applied to. A feature that cannot be computed is left out of the map
// entirely, so its term contributes zero without excluding the driver.
func buildFeatures(driver domain.Driver, load domain.Load, stat domain.DriverStat) map[string]float64 {
	features := map[string]float64{
		domain.WeightAcceptance: stat.AcceptanceRate,
		domain.WeightOnTime:     stat.OnTimeRate,
		domain.WeightDetention:  stat.DetentionRate,
		domain.WeightSentiment:  stat.Sentiment,
	}

	if lane := load.Lane(); lane != "" && stat.Deliveries > 0 {
		features[domain.WeightLaneFamiliarity] = float64(stat.LaneDeliveries[lane]) / float64(stat.Deliveries)
	}

	if load.Miles > 0 && driver.MaxDistance > 0 {
		features[domain.WeightProximity] = proximity(load.Miles, driver.MaxDistance)
	}

	if driver.Equipment != "" && load.Equipment != "" {
		if strings.EqualFold(driver.Equipment, load.Equipment) {
			features[domain.WeightEquipmentMatch] = 1
		} else {
			features[domain.WeightEquipmentMatch] = 0
		}
	}

	return features
}

// proximity maps distance fit into [0, 1]: 1 for a zero-mile load, 0 at or
// beyond the driver's maximum acceptable distance.
func proximity(miles, maxDistance float64) float64 {
	v := 1 - miles/maxDistance
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
