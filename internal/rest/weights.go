package rest

import (
	"context"
	"net/http"
	"time"

	"fleetDispatch/domain"
	"fleetDispatch/pkg/logger"

	"github.com/labstack/echo/v4"
)

type (
	WeightService interface {
		ListWeights(ctx context.Context) ([]domain.Weight, error)
	}

	LearnerService interface {
		Run(ctx context.Context) ([]domain.Weight, error)
	}

	WeightsHandler struct {
		weightService  WeightService
		learnerService LearnerService
		timeout        time.Duration
	}
)

func NewWeightsHandler(weightService WeightService, learnerService LearnerService) *WeightsHandler {
	return &WeightsHandler{
		weightService:  weightService,
		learnerService: learnerService,
		timeout:        10 * time.Second,
	}
}

// GET /api/v1/weights
func (h *WeightsHandler) GetWeights(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	weights, err := h.weightService.ListWeights(ctx)
	if err != nil {
		logger.Error("failed to read weight vector", "error", err)
		return c.JSON(statusFor(err), ResponseError{Message: err.Error()})
	}

	if weights == nil {
		weights = []domain.Weight{}
	}

	return c.JSON(http.StatusOK, weights)
}

// POST /api/v1/learner/run — runs the learner synchronously. A learner run has
// no intrinsic timeout; the request context bounds it, and cancellation leaves
// the previous vector untouched.
func (h *WeightsHandler) RunLearner(c echo.Context) error {
	weights, err := h.learnerService.Run(c.Request().Context())
	if err != nil {
		logger.Error("learner run failed", "error", err)
		return c.JSON(statusFor(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"ok":      true,
		"weights": weights,
	})
}
