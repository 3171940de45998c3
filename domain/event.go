package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Feedback event types accepted by the recorder.
const (
	EventOfferShown    = "offer_shown"
	EventOfferAccepted = "offer_accepted"
	EventOfferDeclined = "offer_declined"
	EventAssigned      = "assigned"
	EventUnassigned    = "unassigned"
	EventPickupScanned = "pickup_scanned"
	EventDelivered     = "delivered"
	EventDetention     = "detention"
	EventLate          = "late"
	EventThumbUp       = "thumb_up"
	EventThumbDown     = "thumb_down"
)

var ValidEventTypes = map[string]bool{
	EventOfferShown:    true,
	EventOfferAccepted: true,
	EventOfferDeclined: true,
	EventAssigned:      true,
	EventUnassigned:    true,
	EventPickupScanned: true,
	EventDelivered:     true,
	EventDetention:     true,
	EventLate:          true,
	EventThumbUp:       true,
	EventThumbDown:     true,
}

// FeedbackEvent is an immutable operational fact about a driver/load interaction.
// Rows are append-only: once accepted they are never updated or deleted, and the
// event log is the sole input to weight learning.
type FeedbackEvent struct {
	ID         string    `gorm:"primaryKey;column:id" json:"id"`
	EventType  string    `gorm:"column:event_type;not null;index" json:"event_type"`
	DriverID   string    `gorm:"column:driver_id;not null;index" json:"driver_id"`
	LoadID     string    `gorm:"column:load_id" json:"load_id,omitempty"`
	OccurredAt time.Time `gorm:"column:occurred_at;not null" json:"occurred_at"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	LaneOrigin string `gorm:"column:lane_origin" json:"lane_origin,omitempty"`
	LaneDest   string `gorm:"column:lane_dest" json:"lane_dest,omitempty"`
	Region     string `gorm:"column:region" json:"region,omitempty"`
	Equipment  string `gorm:"column:equipment" json:"equipment,omitempty"`

	Miles       *float64 `gorm:"column:miles" json:"miles,omitempty"`
	PayTotalUSD *float64 `gorm:"column:pay_total_usd" json:"pay_total_usd,omitempty"`
	MaxDistance *float64 `gorm:"column:max_distance" json:"max_distance,omitempty"`

	Payload datatypes.JSONMap `gorm:"column:payload;type:jsonb" json:"payload,omitempty"`
}

func (FeedbackEvent) TableName() string {
	return "feedback_events"
}

// Lane returns the origin|dest key used for per-lane aggregation, or "" when
// the event carries no lane information.
func (e FeedbackEvent) Lane() string {
	if e.LaneOrigin == "" && e.LaneDest == "" {
		return ""
	}
	return e.LaneOrigin + "|" + e.LaneDest
}
