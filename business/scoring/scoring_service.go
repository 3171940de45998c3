package scoring

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"fleetDispatch/domain"
	"fleetDispatch/pkg/logger"
)

// Score assigned to every candidate when no weights have been learned yet:
// ranking degrades to "no preference" instead of failing.
const baselineScore = 1.0

const baselineReason = "no learned weights yet; neutral baseline"

// ---- Repository interfaces ----

type LoadRepository interface {
	FindByID(ctx context.Context, id string) (domain.Load, error)
}

type DriverRepository interface {
	FindAll(ctx context.Context) ([]domain.Driver, error)
}

type WeightSource interface {
	FindAll(ctx context.Context) ([]domain.Weight, error)
}

// StatProvider supplies the learner's cached per-driver aggregates. It may be
// down or cold; both degrade to zero features rather than failing the request.
type StatProvider interface {
	GetStats(ctx context.Context, driverID string) (domain.DriverStat, error)
}

// ErrStatsMiss distinguishes "no cached stats for this driver" from provider
// failure. Implementations return it (or wrap it) on a clean miss.
var ErrStatsMiss = errors.New("no stats for driver")

// ---- Usecase / Service ----

type scoringService struct {
	loadRepo     LoadRepository
	driverRepo   DriverRepository
	weightSource WeightSource
	statProvider StatProvider
}

func NewScoringService(
	loadRepo LoadRepository,
	driverRepo DriverRepository,
	weightSource WeightSource,
	statProvider StatProvider,
) *scoringService {
	return &scoringService{
		loadRepo:     loadRepo,
		driverRepo:   driverRepo,
		weightSource: weightSource,
		statProvider: statProvider,
	}
}

// ListWeights returns the current vector ordered by name.
func (s *scoringService) ListWeights(ctx context.Context) ([]domain.Weight, error) {
	weights, err := s.weightSource.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	sort.Slice(weights, func(i, j int) bool {
		return weights[i].Name < weights[j].Name
	})

	return weights, nil
}

// Rank scores every eligible driver against the load and returns the top
// candidates, best first. Pure read: nothing is reserved or locked, and the
// weight vector is read exactly once per call so two learner commits can never
// interleave within one ranking.
func (s *scoringService) Rank(ctx context.Context, loadID string, limit int) ([]domain.Candidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if limit < 1 {
		limit = 1
	}

	load, err := s.loadRepo.FindByID(ctx, loadID)
	if err != nil {
		return nil, err
	}

	drivers, err := s.driverRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	weights, err := s.weightSource.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	candidates := make([]domain.Candidate, 0, len(drivers))
	statsDegraded := false

	for _, driver := range drivers {
		if !driver.ActivitySignal().Eligible() {
			continue
		}

		stat := domain.DriverStat{DriverID: driver.ID}
		if s.statProvider != nil && !statsDegraded {
			got, err := s.statProvider.GetStats(ctx, driver.ID)
			switch {
			case err == nil:
				stat = got
			case errors.Is(err, ErrStatsMiss):
				// cold driver, zero features
			default:
				// provider down: degrade the whole request to neutral
				// features instead of failing it
				statsDegraded = true
				logger.Warn("stat provider unavailable, ranking degraded", "error", err)
			}
		}

		score, reason := scoreDriver(driver, load, stat, weights)

		candidates = append(candidates, domain.Candidate{
			DriverID: driver.ID,
			FullName: driver.FullName,
			Score:    score,
			Reason:   reason,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		if candidates[i].FullName != candidates[j].FullName {
			return candidates[i].FullName < candidates[j].FullName
		}
		return candidates[i].DriverID < candidates[j].DriverID
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	return candidates, nil
}

type contribution struct {
	name  string
	value float64
}

// scoreDriver applies the weight vector to the feature map. Weight names with
// no matching feature are skipped, which is also what keeps unknown future
// names harmless.
func scoreDriver(driver domain.Driver, load domain.Load, stat domain.DriverStat, weights []domain.Weight) (float64, string) {
	if len(weights) == 0 {
		return baselineScore, baselineReason
	}

	features := buildFeatures(driver, load, stat)

	score := 0.0
	contribs := make([]contribution, 0, len(weights))

	for _, w := range weights {
		feature, ok := features[w.Name]
		if !ok {
			continue
		}
		term := w.Value * feature
		score += term
		if term != 0 {
			contribs = append(contribs, contribution{name: w.Name, value: term})
		}
	}

	return score, formatReason(contribs)
}

// formatReason names the strongest terms, by absolute impact.
func formatReason(contribs []contribution) string {
	if len(contribs) == 0 {
		return "no contributing signals"
	}

	sort.SliceStable(contribs, func(i, j int) bool {
		return abs(contribs[i].value) > abs(contribs[j].value)
	})

	if len(contribs) > 3 {
		contribs = contribs[:3]
	}

	parts := make([]string, 0, len(contribs))
	for _, c := range contribs {
		parts = append(parts, fmt.Sprintf("%s %+.2f", c.name, c.value))
	}

	return strings.Join(parts, ", ")
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
