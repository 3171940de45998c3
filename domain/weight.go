package domain

// Weight is a named scalar coefficient. The full set of rows is the weight
// vector read as a whole by the scorer; names are stable identifiers shared
// between learner and scorer.
type Weight struct {
	Name  string  `gorm:"primaryKey;column:name" json:"name"`
	Value float64 `gorm:"column:value;not null" json:"value"`
}

func (Weight) TableName() string {
	return "scoring_weights"
}

// Canonical weight names produced by the learner. The scorer skips any name it
// has no feature for, so new names can ship before the scorer learns them.
const (
	WeightAcceptance      = "acceptance"
	WeightOnTime          = "on_time"
	WeightDetention       = "detention"
	WeightSentiment       = "sentiment"
	WeightLaneFamiliarity = "lane_familiarity"
	WeightProximity       = "proximity"
	WeightEquipmentMatch  = "equipment_match"
)
