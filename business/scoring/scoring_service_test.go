//go:build !integration

package scoring

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"fleetDispatch/domain"
)

type fakeLoadRepo struct {
	loads map[string]domain.Load
}

func (f *fakeLoadRepo) FindByID(ctx context.Context, id string) (domain.Load, error) {
	load, ok := f.loads[id]
	if !ok {
		return domain.Load{}, errors.New("load not found")
	}
	return load, nil
}

type fakeDriverRepo struct {
	drivers []domain.Driver
	err     error
}

func (f *fakeDriverRepo) FindAll(ctx context.Context) ([]domain.Driver, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.drivers, nil
}

type fakeWeightSource struct {
	weights []domain.Weight
}

func (f *fakeWeightSource) FindAll(ctx context.Context) ([]domain.Weight, error) {
	return f.weights, nil
}

type fakeStatProvider struct {
	stats map[string]domain.DriverStat
	err   error
}

func (f *fakeStatProvider) GetStats(ctx context.Context, driverID string) (domain.DriverStat, error) {
	if f.err != nil {
		return domain.DriverStat{}, f.err
	}
	stat, ok := f.stats[driverID]
	if !ok {
		return domain.DriverStat{}, fmt.Errorf("%w: %s", ErrStatsMiss, driverID)
	}
	return stat, nil
}

func boolPtr(b bool) *bool { return &b }

func testService(drivers []domain.Driver, weights []domain.Weight, stats map[string]domain.DriverStat) *scoringService {
	return NewScoringService(
		&fakeLoadRepo{loads: map[string]domain.Load{
			"l1": {ID: "l1", LaneOrigin: "DAL", LaneDest: "HOU", Miles: 250, Equipment: "reefer"},
		}},
		&fakeDriverRepo{drivers: drivers},
		&fakeWeightSource{weights: weights},
		&fakeStatProvider{stats: stats},
	)
}

func TestRank_LimitCoercedAndRespected(t *testing.T) {
	drivers := []domain.Driver{
		{ID: "d1", FullName: "Ann"},
		{ID: "d2", FullName: "Bob"},
		{ID: "d3", FullName: "Cyd"},
	}
	svc := testService(drivers, nil, nil)

	got, err := svc.Rank(context.Background(), "l1", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("limit 0 must coerce to 1, got %d candidates", len(got))
	}

	got, err = svc.Rank(context.Background(), "l1", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(got))
	}
}

func TestRank_EmptyCandidateSet(t *testing.T) {
	svc := testService(nil, nil, nil)

	got, err := svc.Rank(context.Background(), "l1", 5)
	if err != nil {
		t.Fatalf("empty candidate set must not error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %d", len(got))
	}
}

func TestRank_ScoresNonIncreasing(t *testing.T) {
	drivers := []domain.Driver{
		{ID: "d1", FullName: "Ann"},
		{ID: "d2", FullName: "Bob"},
		{ID: "d3", FullName: "Cyd"},
	}
	weights := []domain.Weight{
		{Name: domain.WeightAcceptance, Value: 5},
		{Name: domain.WeightOnTime, Value: 3},
	}
	stats := map[string]domain.DriverStat{
		"d1": {DriverID: "d1", AcceptanceRate: 0.2, OnTimeRate: 0.9},
		"d2": {DriverID: "d2", AcceptanceRate: 0.9, OnTimeRate: 0.5},
		"d3": {DriverID: "d3", AcceptanceRate: 0.5, OnTimeRate: 0.5},
	}

	svc := testService(drivers, weights, stats)

	got, err := svc.Rank(context.Background(), "l1", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Score > got[i-1].Score {
			t.Fatalf("scores must be non-increasing: %v then %v", got[i-1].Score, got[i].Score)
		}
	}
}

func TestRank_TieBreakDeterministic(t *testing.T) {
	drivers := []domain.Driver{
		{ID: "d3", FullName: "Zed"},
		{ID: "d1", FullName: "Ann"},
		{ID: "d2", FullName: "Meg"},
	}
	svc := testService(drivers, nil, nil)

	first, err := svc.Rank(context.Background(), "l1", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < 5; i++ {
		again, err := svc.Rank(context.Background(), "l1", 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("repeated calls on unchanged input must be identical:\nfirst: %+v\nagain: %+v", first, again)
		}
	}
}

func TestRank_EmptyVectorBaselineOrderedByName(t *testing.T) {
	drivers := []domain.Driver{
		{ID: "d2", FullName: "Meg"},
		{ID: "d1", FullName: "Ann"},
		{ID: "d3", FullName: "Zed"},
	}
	svc := testService(drivers, nil, nil)

	got, err := svc.Rank(context.Background(), "l1", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("expected all 3 candidates, got %d", len(got))
	}
	for _, c := range got {
		if c.Score != baselineScore {
			t.Errorf("empty vector must yield the neutral baseline, got %v for %s", c.Score, c.DriverID)
		}
		if c.Reason != baselineReason {
			t.Errorf("baseline reason expected, got %q", c.Reason)
		}
	}

	names := []string{got[0].FullName, got[1].FullName, got[2].FullName}
	want := []string{"Ann", "Meg", "Zed"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("equal scores must order by name ascending: got %v", names)
	}
}

func TestRank_UnknownWeightNameIgnored(t *testing.T) {
	drivers := []domain.Driver{{ID: "d1", FullName: "Ann"}}
	weights := []domain.Weight{
		{Name: domain.WeightAcceptance, Value: 5},
		{Name: "charisma", Value: 100},
	}
	stats := map[string]domain.DriverStat{
		"d1": {DriverID: "d1", AcceptanceRate: 0.5},
	}

	svc := testService(drivers, weights, stats)

	got, err := svc.Rank(context.Background(), "l1", 1)
	if err != nil {
		t.Fatalf("unknown weight name must not fail ranking: %v", err)
	}
	if got[0].Score != 2.5 {
		t.Fatalf("unknown name must contribute nothing: score = %v, want 2.5", got[0].Score)
	}
}

func TestRank_EligibilityPrecedence(t *testing.T) {
	drivers := []domain.Driver{
		// boolean wins over a recognized-active status
		{ID: "d1", FullName: "Ann", Active: boolPtr(false), Status: "active"},
		// recognized inactive status
		{ID: "d2", FullName: "Bob", Status: "suspended"},
		// unrecognized status defaults to eligible
		{ID: "d3", FullName: "Cyd", Status: "vacationing_maybe"},
		// neither field: eligible
		{ID: "d4", FullName: "Dee"},
	}
	svc := testService(drivers, nil, nil)

	got, err := svc.Rank(context.Background(), "l1", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ids := make(map[string]bool)
	for _, c := range got {
		ids[c.DriverID] = true
	}

	if ids["d1"] {
		t.Error("explicit active=false must exclude the driver even with status=active")
	}
	if ids["d2"] {
		t.Error("recognized inactive status must exclude the driver")
	}
	if !ids["d3"] {
		t.Error("unrecognized status must default to eligible")
	}
	if !ids["d4"] {
		t.Error("driver with no activity schema must default to eligible")
	}
}

func TestRank_StatProviderDownDegrades(t *testing.T) {
	drivers := []domain.Driver{
		{ID: "d1", FullName: "Ann", Equipment: "reefer"},
		{ID: "d2", FullName: "Bob"},
	}
	weights := []domain.Weight{
		{Name: domain.WeightAcceptance, Value: 5},
		{Name: domain.WeightEquipmentMatch, Value: 2},
	}

	svc := NewScoringService(
		&fakeLoadRepo{loads: map[string]domain.Load{
			"l1": {ID: "l1", Miles: 250, Equipment: "reefer"},
		}},
		&fakeDriverRepo{drivers: drivers},
		&fakeWeightSource{weights: weights},
		&fakeStatProvider{err: errors.New("redis: connection refused")},
	)

	got, err := svc.Rank(context.Background(), "l1", 10)
	if err != nil {
		t.Fatalf("stat provider failure must degrade, not fail: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected both candidates, got %d", len(got))
	}

	// behavior features are zero, but load/driver record features still apply
	if got[0].DriverID != "d1" || got[0].Score != 2 {
		t.Fatalf("equipment match should still score: got %+v", got[0])
	}
}

func TestRank_UnknownLoad(t *testing.T) {
	svc := testService(nil, nil, nil)

	if _, err := svc.Rank(context.Background(), "nope", 5); err == nil {
		t.Fatal("expected error for unknown load")
	}
}

func TestListWeights_OrderedByName(t *testing.T) {
	svc := testService(nil, []domain.Weight{
		{Name: "on_time", Value: 2},
		{Name: "acceptance", Value: 1},
		{Name: "sentiment", Value: 3},
	}, nil)

	weights, err := svc.ListWeights(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 1; i < len(weights); i++ {
		if weights[i-1].Name >= weights[i].Name {
			t.Fatalf("weights must be ordered by name: %v", weights)
		}
	}
}
