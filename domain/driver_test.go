//go:build !integration

package domain

import "testing"

func boolPtr(b bool) *bool { return &b }

func TestActivitySignal_Precedence(t *testing.T) {
	tests := []struct {
		name     string
		driver   Driver
		wantKind ActivityKind
		eligible bool
	}{
		{"bool true", Driver{Active: boolPtr(true)}, ActivityBool, true},
		{"bool false", Driver{Active: boolPtr(false)}, ActivityBool, false},
		{"bool false beats active status", Driver{Active: boolPtr(false), Status: "active"}, ActivityBool, false},
		{"bool true beats inactive status", Driver{Active: boolPtr(true), Status: "suspended"}, ActivityBool, true},
		{"status active", Driver{Status: "active"}, ActivityStatus, true},
		{"status available", Driver{Status: "available"}, ActivityStatus, true},
		{"status on_duty", Driver{Status: "on_duty"}, ActivityStatus, true},
		{"status ready", Driver{Status: "ready"}, ActivityStatus, true},
		{"status inactive", Driver{Status: "inactive"}, ActivityStatus, false},
		{"status suspended", Driver{Status: "suspended"}, ActivityStatus, false},
		{"status offline", Driver{Status: "offline"}, ActivityStatus, false},
		{"status on_leave", Driver{Status: "on_leave"}, ActivityStatus, false},
		{"status mixed case", Driver{Status: "  Suspended "}, ActivityStatus, false},
		{"status unrecognized", Driver{Status: "probably_fine"}, ActivityStatus, true},
		{"no signal", Driver{}, ActivityUnknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signal := tt.driver.ActivitySignal()
			if signal.Kind != tt.wantKind {
				t.Errorf("kind = %v, want %v", signal.Kind, tt.wantKind)
			}
			if got := signal.Eligible(); got != tt.eligible {
				t.Errorf("eligible = %v, want %v", got, tt.eligible)
			}
		})
	}
}

func TestLoad_Lane(t *testing.T) {
	if got := (Load{LaneOrigin: "DAL", LaneDest: "HOU"}).Lane(); got != "DAL|HOU" {
		t.Errorf("lane = %q, want DAL|HOU", got)
	}
	if got := (Load{}).Lane(); got != "" {
		t.Errorf("empty load should have empty lane, got %q", got)
	}
}
