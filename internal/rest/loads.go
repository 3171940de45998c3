package rest

import (
	"context"
	"net/http"
	"time"

	"fleetDispatch/domain"
	"fleetDispatch/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type LoadsService interface {
	CreateLoad(ctx context.Context, load *domain.Load) (*domain.Load, error)
	GetLoadByID(ctx context.Context, id string) (domain.Load, error)
	GetAllLoads(ctx context.Context) ([]domain.Load, error)
	UpdateLoad(ctx context.Context, load *domain.Load) (*domain.Load, error)
	DeleteLoad(ctx context.Context, id string) error
}

type LoadsHandler struct {
	loadsService LoadsService
	validator    *validator.Validate
	timeout      time.Duration
}

func NewLoadsHandler(loadsService LoadsService) *LoadsHandler {
	return &LoadsHandler{
		loadsService: loadsService,
		validator:    validator.New(),
		timeout:      10 * time.Second,
	}
}

type UpsertLoadRequest struct {
	LaneOrigin  string  `json:"lane_origin" validate:"required"`
	LaneDest    string  `json:"lane_dest" validate:"required"`
	Region      string  `json:"region"`
	Equipment   string  `json:"equipment"`
	Miles       float64 `json:"miles" validate:"gte=0"`
	PayTotalUSD float64 `json:"pay_total_usd" validate:"gte=0"`
	Status      string  `json:"status"`
}

func (h *LoadsHandler) GetAllLoads(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	loadList, err := h.loadsService.GetAllLoads(ctx)
	if err != nil {
		logger.Error("failed to list loads", "error", err)
		return c.JSON(statusFor(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(loadList))
}

func (h *LoadsHandler) GetLoadByID(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	load, err := h.loadsService.GetLoadByID(ctx, c.Param("id"))
	if err != nil {
		if err.Error() == "load not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(statusFor(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(load))
}

func (h *LoadsHandler) CreateLoad(c echo.Context) error {
	var req UpsertLoadRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	load := domain.Load{
		LaneOrigin:  req.LaneOrigin,
		LaneDest:    req.LaneDest,
		Region:      req.Region,
		Equipment:   req.Equipment,
		Miles:       req.Miles,
		PayTotalUSD: req.PayTotalUSD,
		Status:      req.Status,
	}

	created, err := h.loadsService.CreateLoad(ctx, &load)
	if err != nil {
		logger.Error("failed to create load", "error", err)
		return c.JSON(statusFor(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(created))
}

func (h *LoadsHandler) UpdateLoad(c echo.Context) error {
	var req UpsertLoadRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	load := domain.Load{
		ID:          c.Param("id"),
		LaneOrigin:  req.LaneOrigin,
		LaneDest:    req.LaneDest,
		Region:      req.Region,
		Equipment:   req.Equipment,
		Miles:       req.Miles,
		PayTotalUSD: req.PayTotalUSD,
		Status:      req.Status,
	}

	updated, err := h.loadsService.UpdateLoad(ctx, &load)
	if err != nil {
		if err.Error() == "load not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		logger.Error("failed to update load", "error", err)
		return c.JSON(statusFor(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(updated))
}

func (h *LoadsHandler) DeleteLoad(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.loadsService.DeleteLoad(ctx, c.Param("id")); err != nil {
		if err.Error() == "load not found or already deleted" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		logger.Error("failed to delete load", "error", err)
		return c.JSON(statusFor(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK("load deleted"))
}
