package main

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hyerinam29-hash/my-face-landing/internal/middleware"
	"github.com/hyerinam29-hash/my-face-landing/internal/services"
)

func registerOrderRoutes(g *echo.Group, os *services.OrderService, secret []byte) {
	p := g.Group("/orders")
	p.Use(middleware.JWTMiddleware(secret))

	// Order history, newest first
	p.GET("", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		orders, err := os.History(c.Request().Context(), claims.UserID())
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"orders": orders})
	})
}
