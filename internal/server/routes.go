package server

import (
	"app/internal/config"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, cfg config.Config, hs Handlers) {
	hs.Health.RegisterRoutes(e)
	hs.Product.RegisterRoutes(e)
	hs.AdminProduct.RegisterRoutes(e, cfg)
	hs.Order.RegisterRoutes(e)
	hs.AdminOrder.RegisterRoutes(e, cfg)
}
