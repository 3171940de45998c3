package domain

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type Driver struct {
	ID         string  `gorm:"primaryKey;column:id" json:"id"`
	FullName   string  `gorm:"column:full_name;not null" json:"full_name"`
	Phone      string  `gorm:"column:phone" json:"phone,omitempty"`
	Equipment  string  `gorm:"column:equipment" json:"equipment,omitempty"`
	HomeRegion string  `gorm:"column:home_region" json:"home_region,omitempty"`
	MaxDistance float64 `gorm:"column:max_distance" json:"max_distance,omitempty"`

	// Activity signal. Upstream fleet systems disagree on schema: some sync a
	// boolean, some only a free-form status string, some neither. Both columns
	// are kept and resolved through ActivitySignal.
	Active *bool  `gorm:"column:active" json:"active,omitempty"`
	Status string `gorm:"column:status" json:"status,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Driver) TableName() string {
	return "drivers"
}

// ActivityKind tags which activity schema a driver record actually exposes.
type ActivityKind int

const (
	ActivityBool ActivityKind = iota
	ActivityStatus
	ActivityUnknown
)

// ActivitySignal is the typed resolution of a driver's activity schema. The
// precedence is fixed: explicit boolean, then recognized status string, then
// eligible by default.
type ActivitySignal struct {
	Kind   ActivityKind
	Bool   bool
	Status string
}

var activeStatuses = map[string]bool{
	"active":    true,
	"available": true,
	"on_duty":   true,
	"ready":     true,
}

var inactiveStatuses = map[string]bool{
	"inactive":  true,
	"suspended": true,
	"offline":   true,
	"on_leave":  true,
}

// ActivitySignal classifies the record into exactly one schema variant.
func (d Driver) ActivitySignal() ActivitySignal {
	if d.Active != nil {
		return ActivitySignal{Kind: ActivityBool, Bool: *d.Active}
	}
	if d.Status != "" {
		return ActivitySignal{Kind: ActivityStatus, Status: d.Status}
	}
	return ActivitySignal{Kind: ActivityUnknown}
}

// Eligible resolves the signal to a ranking-eligibility decision.
func (s ActivitySignal) Eligible() bool {
	switch s.Kind {
	case ActivityBool:
		return s.Bool
	case ActivityStatus:
		st := strings.ToLower(strings.TrimSpace(s.Status))
		if activeStatuses[st] {
			return true
		}
		if inactiveStatuses[st] {
			return false
		}
		// unrecognized status strings never exclude a driver
		return true
	default:
		return true
	}
}
