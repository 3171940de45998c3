package domain

import (
	"time"

	"gorm.io/gorm"
)

type Load struct {
	ID          string  `gorm:"primaryKey;column:id" json:"id"`
	LaneOrigin  string  `gorm:"column:lane_origin" json:"lane_origin"`
	LaneDest    string  `gorm:"column:lane_dest" json:"lane_dest"`
	Region      string  `gorm:"column:region" json:"region,omitempty"`
	Equipment   string  `gorm:"column:equipment" json:"equipment,omitempty"`
	Miles       float64 `gorm:"column:miles" json:"miles"`
	PayTotalUSD float64 `gorm:"column:pay_total_usd" json:"pay_total_usd"`
	Status      string  `gorm:"column:status;default:open" json:"status"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Load) TableName() string {
	return "loads"
}

// Lane returns the origin|dest aggregation key for this load.
func (l Load) Lane() string {
	if l.LaneOrigin == "" && l.LaneDest == "" {
		return ""
	}
	return l.LaneOrigin + "|" + l.LaneDest
}
