package rest

import (
	"context"
	"net/http"
	"time"

	"fleetDispatch/domain"
	"fleetDispatch/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	EventsService interface {
		Record(ctx context.Context, event domain.FeedbackEvent) (string, error)
		ListRecent(ctx context.Context, driverID string, limit int) ([]domain.FeedbackEvent, error)
	}

	// DriverStatProvider is optional; when present, the ingestion response
	// carries the driver's cached aggregates for the emitting UI.
	DriverStatProvider interface {
		GetStats(ctx context.Context, driverID string) (domain.DriverStat, error)
	}

	EventsHandler struct {
		validate      *validator.Validate
		eventsService EventsService
		statProvider  DriverStatProvider
		timeout       time.Duration
	}

	RecordEventRequest struct {
		EventType  string `json:"event_type" validate:"required,oneof=offer_shown offer_accepted offer_declined assigned unassigned pickup_scanned delivered detention late thumb_up thumb_down"`
		DriverID   string `json:"driver_id" validate:"required"`
		LoadID     string `json:"load_id"`
		OccurredAt string `json:"occurred_at"`

		LaneOrigin string `json:"lane_origin"`
		LaneDest   string `json:"lane_dest"`
		Region     string `json:"region"`
		Equipment  string `json:"equipment"`

		Miles       *float64 `json:"miles" validate:"omitempty,gte=0"`
		PayTotalUSD *float64 `json:"pay_total_usd" validate:"omitempty,gte=0"`
		MaxDistance *float64 `json:"max_distance" validate:"omitempty,gte=0"`

		Payload map[string]any `json:"payload"`
	}

	RecordEventResponse struct {
		Ok          bool               `json:"ok"`
		EventID     string             `json:"event_id"`
		DriverStats *domain.DriverStat `json:"driver_stats,omitempty"`
	}

	ListEventsQuery struct {
		DriverID string `query:"driver_id"`
		Limit    int    `query:"limit"`
	}
)

func NewEventsHandler(eventsService EventsService, statProvider DriverStatProvider) *EventsHandler {
	return &EventsHandler{
		validate:      validator.New(),
		eventsService: eventsService,
		statProvider:  statProvider,
		timeout:       10 * time.Second,
	}
}

func (h *EventsHandler) Record(c echo.Context) error {
	var req RecordEventRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	event := domain.FeedbackEvent{
		EventType:   req.EventType,
		DriverID:    req.DriverID,
		LoadID:      req.LoadID,
		LaneOrigin:  req.LaneOrigin,
		LaneDest:    req.LaneDest,
		Region:      req.Region,
		Equipment:   req.Equipment,
		Miles:       req.Miles,
		PayTotalUSD: req.PayTotalUSD,
		MaxDistance: req.MaxDistance,
		Payload:     req.Payload,
	}

	if req.OccurredAt != "" {
		occurredAt, err := time.Parse(time.RFC3339, req.OccurredAt)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "occurred_at must be RFC 3339"})
		}
		event.OccurredAt = occurredAt
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	eventID, err := h.eventsService.Record(ctx, event)
	if err != nil {
		logger.Error("failed to record feedback event", "error", err)
		return c.JSON(statusFor(err), ResponseError{Message: err.Error()})
	}

	resp := RecordEventResponse{Ok: true, EventID: eventID}

	// best-effort enrichment; a cold or down cache never fails ingestion
	if h.statProvider != nil {
		if stat, err := h.statProvider.GetStats(ctx, req.DriverID); err == nil {
			resp.DriverStats = &stat
		}
	}

	return c.JSON(http.StatusCreated, resp)
}

func (h *EventsHandler) List(c echo.Context) error {
	var q ListEventsQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	events, err := h.eventsService.ListRecent(ctx, q.DriverID, q.Limit)
	if err != nil {
		logger.Error("failed to list feedback events", "error", err)
		return c.JSON(statusFor(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, events)
}
