package main

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hyerinam29-hash/my-face-landing/internal/middleware"
	"github.com/hyerinam29-hash/my-face-landing/internal/services"
)

func registerPaymentRoutes(g *echo.Group, cs *services.CheckoutService, secret []byte) {
	p := g.Group("/payments")
	p.Use(middleware.JWTMiddleware(secret))

	// ============================
	// CHECKOUT INITIATION
	// ============================
	g.POST("/checkout", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		result, err := cs.Begin(c.Request().Context(), claims.UserID())
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, result)
	}, middleware.JWTMiddleware(secret))

	// ============================
	// GATEWAY SUCCESS REDIRECT
	// paymentKey / orderId / amount arrive on the query string and are
	// trusted only after the amount check against the pending order.
	// ============================
	p.GET("/confirm", func(c echo.Context) error {
		claims := middleware.GetClaims(c)

		order, err := cs.Finalize(
			c.Request().Context(),
			claims.UserID(),
			c.QueryParam("paymentKey"),
			c.QueryParam("orderId"),
			c.QueryParam("amount"),
		)
		if err != nil {
			return respondError(c, err)
		}

		return c.JSON(http.StatusOK, echo.Map{
			"status": "DONE",
			"order":  order,
		})
	})

	// ============================
	// GATEWAY FAIL REDIRECT
	// ============================
	p.GET("/fail", func(c echo.Context) error {
		code := c.QueryParam("code")
		message := c.QueryParam("message")
		orderID := c.QueryParam("orderId")

		log.Printf("[payment] gateway fail redirect orderId=%s code=%s", orderID, code)

		if message == "" {
			message = "결제가 완료되지 않았습니다."
		}

		return c.JSON(http.StatusOK, echo.Map{
			"status":  "FAILED",
			"code":    code,
			"message": message,
			"orderId": orderID,
		})
	})
}
