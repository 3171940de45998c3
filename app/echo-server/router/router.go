package router

import (
	"fleetDispatch/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupEventRoutes(api *echo.Group, handler *rest.EventsHandler, authRequired echo.MiddlewareFunc) {
	events := api.Group("/events")

	// ingestion is open to the emitting UI/API layer; listing is not
	events.POST("", handler.Record)
	events.GET("", handler.List, authRequired)
}

func SetupWeightRoutes(api *echo.Group, handler *rest.WeightsHandler, authRequired echo.MiddlewareFunc, dispatcherOnly echo.MiddlewareFunc) {
	api.GET("/weights", handler.GetWeights)
	api.POST("/learner/run", handler.RunLearner, authRequired, dispatcherOnly)
}

func SetupRankingRoutes(api *echo.Group, handler *rest.RankingHandler, authRequired echo.MiddlewareFunc) {
	api.GET("/rankings", handler.Rank, authRequired)
}

func SetupDriverRoutes(api *echo.Group, handler *rest.DriversHandler, authRequired echo.MiddlewareFunc, dispatcherOnly echo.MiddlewareFunc) {
	driverGroup := api.Group("/drivers", authRequired)

	driverGroup.GET("", handler.GetAllDrivers)
	driverGroup.GET("/:id", handler.GetDriverByID)
	driverGroup.POST("", handler.CreateDriver, dispatcherOnly)
	driverGroup.PUT("/:id", handler.UpdateDriver, dispatcherOnly)
	driverGroup.DELETE("/:id", handler.DeleteDriver, dispatcherOnly)
}

func SetupLoadRoutes(api *echo.Group, handler *rest.LoadsHandler, authRequired echo.MiddlewareFunc, dispatcherOnly echo.MiddlewareFunc) {
	loadGroup := api.Group("/loads", authRequired)

	loadGroup.GET("", handler.GetAllLoads)
	loadGroup.GET("/:id", handler.GetLoadByID)
	loadGroup.POST("", handler.CreateLoad, dispatcherOnly)
	loadGroup.PUT("/:id", handler.UpdateLoad, dispatcherOnly)
	loadGroup.DELETE("/:id", handler.DeleteLoad, dispatcherOnly)
}
