package server

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// RouteRegistrar is what every handler exposes to hook into the router.
type RouteRegistrar interface {
	RegisterRoutes(e *echo.Echo)
}

// New builds the Echo instance with the shared middleware stack and all
// routes registered.
func New(handlers ...RouteRegistrar) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogMethod: true,
		LogStatus: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			zap.S().Infow("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"error", v.Error,
			)
			return nil
		},
	}))

	for _, h := range handlers {
		h.RegisterRoutes(e)
	}

	return e
}

// Start runs the server on addr, blocking until it exits.
func Start(addr string, handlers ...RouteRegistrar) error {
	return New(handlers...).Start(addr)
}
