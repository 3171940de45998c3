package rest

import (
	"context"
	"net/http"
	"time"

	"fleetDispatch/domain"
	"fleetDispatch/pkg/logger"
	"fleetDispatch/pkg/metrics"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	RankingService interface {
		Rank(ctx context.Context, loadID string, limit int) ([]domain.Candidate, error)
	}

	RankingHandler struct {
		validate       *validator.Validate
		rankingService RankingService
		timeout        time.Duration
	}

	RankQuery struct {
		LoadID string `query:"load_id" validate:"required"`
		Limit  int    `query:"limit"`
	}
)

func NewRankingHandler(rankingService RankingService) *RankingHandler {
	return &RankingHandler{
		validate:       validator.New(),
		rankingService: rankingService,
		timeout:        10 * time.Second,
	}
}

// GET /api/v1/rankings?load_id=...&limit=5
func (h *RankingHandler) Rank(c echo.Context) error {
	started := time.Now()

	var q RankQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if q.Limit <= 0 {
		q.Limit = 5
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	candidates, err := h.rankingService.Rank(ctx, q.LoadID, q.Limit)
	if err != nil {
		if err.Error() == "load not found" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		logger.Error("failed to rank candidates", "load_id", q.LoadID, "error", err)
		return c.JSON(statusFor(err), ResponseError{Message: err.Error()})
	}

	metrics.RankRequests.Inc()
	metrics.RankLatency.Observe(time.Since(started).Seconds())
	metrics.RankCandidates.Observe(float64(len(candidates)))

	if candidates == nil {
		candidates = []domain.Candidate{}
	}

	return c.JSON(http.StatusOK, candidates)
}
