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

type DriversService interface {
	CreateDriver(ctx context.Context, driver *domain.Driver) (*domain.Driver, error)
	GetDriverByID(ctx context.Context, id string) (domain.Driver, error)
	GetAllDrivers(ctx context.Context) ([]domain.Driver, error)
	UpdateDriver(ctx context.Context, driver *domain.Driver) (*domain.Driver, error)
	DeleteDriver(ctx context.Context, id string) error
}

type DriversHandler struct {
	driversService DriversService
	validator      *validator.Validate
	timeout        time.Duration
}

func NewDriversHandler(driversService DriversService) *DriversHandler {
	return &DriversHandler{
		driversService: driversService,
		validator:      validator.New(),
		timeout:        10 * time.Second,
	}
}

type UpsertDriverRequest struct {
	FullName    string  `json:"full_name" validate:"required"`
	Phone       string  `json:"phone"`
	Equipment   string  `json:"equipment"`
	HomeRegion  string  `json:"home_region"`
	MaxDistance float64 `json:"max_distance" validate:"gte=0"`
	Active      *bool   `json:"active"`
	Status      string  `json:"status"`
}

func (h *DriversHandler) GetAllDrivers(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	driverList, err := h.driversService.GetAllDrivers(ctx)
	if err != nil {
		logger.Error("failed to list drivers", "error", err)
		return c.JSON(statusFor(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(driverList))
}

func (h *DriversHandler) GetDriverByID(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	driver, err := h.driversService.GetDriverByID(ctx, c.Param("id"))
	if err != nil {
		if err.Error() == "driver not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(statusFor(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(driver))
}

func (h *DriversHandler) CreateDriver(c echo.Context) error {
	var req UpsertDriverRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	driver := domain.Driver{
		FullName:    req.FullName,
		Phone:       req.Phone,
		Equipment:   req.Equipment,
		HomeRegion:  req.HomeRegion,
		MaxDistance: req.MaxDistance,
		Active:      req.Active,
		Status:      req.Status,
	}

	created, err := h.driversService.CreateDriver(ctx, &driver)
	if err != nil {
		logger.Error("failed to create driver", "error", err)
		return c.JSON(statusFor(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(created))
}

func (h *DriversHandler) UpdateDriver(c echo.Context) error {
	var req UpsertDriverRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	driver := domain.Driver{
		ID:          c.Param("id"),
		FullName:    req.FullName,
		Phone:       req.Phone,
		Equipment:   req.Equipment,
		HomeRegion:  req.HomeRegion,
		MaxDistance: req.MaxDistance,
		Active:      req.Active,
		Status:      req.Status,
	}

	updated, err := h.driversService.UpdateDriver(ctx, &driver)
	if err != nil {
		if err.Error() == "driver not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		logger.Error("failed to update driver", "error", err)
		return c.JSON(statusFor(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(updated))
}

func (h *DriversHandler) DeleteDriver(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.driversService.DeleteDriver(ctx, c.Param("id")); err != nil {
		if err.Error() == "driver not found or already deleted" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		logger.Error("failed to delete driver", "error", err)
		return c.JSON(statusFor(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK("driver deleted"))
}
