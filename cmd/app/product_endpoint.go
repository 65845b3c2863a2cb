package main

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hyerinam29-hash/my-face-landing/internal/services"
)

// Public: recommendation catalog, optionally filtered by ?q=
func registerProductRoutes(g *echo.Group, ps *services.ProductService) {
	g.GET("/products", func(c echo.Context) error {
		q := c.QueryParam("q")
		if q != "" {
			return c.JSON(http.StatusOK, echo.Map{"categories": ps.Search(q)})
		}
		return c.JSON(http.StatusOK, echo.Map{"categories": ps.Catalog()})
	})
}
