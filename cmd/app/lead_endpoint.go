package main

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hyerinam29-hash/my-face-landing/internal/services"
)

type leadRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Public: signup form on the landing page.
func registerLeadRoutes(g *echo.Group, ls *services.LeadService) {
	g.POST("/leads", func(c echo.Context) error {
		req := new(leadRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}

		lead, err := ls.Submit(c.Request().Context(), req.Name, req.Email, req.Phone)
		if err != nil {
			return respondError(c, err)
		}

		return c.JSON(http.StatusCreated, lead)
	})
}
