package main

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hyerinam29-hash/my-face-landing/internal/middleware"
	"github.com/hyerinam29-hash/my-face-landing/internal/model"
	"github.com/hyerinam29-hash/my-face-landing/internal/services"
)

type addCartRequest struct {
	Name   string `json:"name"`
	Image  string `json:"image"`
	Price  string `json:"price"`
	Volume string `json:"volume"`
}

func registerCartRoutes(g *echo.Group, cs *services.CartService, secret []byte) {
	p := g.Group("/cart")
	p.Use(middleware.JWTMiddleware(secret))

	// GET cart
	p.GET("", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		cart, err := cs.Get(c.Request().Context(), claims.UserID())
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, cart)
	})

	// ADD item
	p.POST("", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		req := new(addCartRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		item := model.CartItem{
			Name:   req.Name,
			Image:  req.Image,
			Price:  req.Price,
			Volume: req.Volume,
		}
		added, err := cs.Add(c.Request().Context(), claims.UserID(), item)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusCreated, added)
	})

	// REMOVE item
	p.DELETE("/:cartId", func(c echo.Context) error {
		if err := cs.Remove(c.Request().Context(), c.Param("cartId")); err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "removed"})
	})
}
