package main

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hyerinam29-hash/my-face-landing/internal/apperr"
)

// respondError maps the error taxonomy to readable JSON. No stack
// traces reach the client.
func respondError(c echo.Context, err error) error {
	status := http.StatusInternalServerError

	var (
		validation *apperr.ValidationError
		mismatch   *apperr.AmountMismatchError
		unknown    *apperr.UnknownOrderError
		gateway    *apperr.GatewayError
		network    *apperr.NetworkError
		storage    *apperr.StorageError
	)

	switch {
	case errors.As(err, &validation), errors.As(err, &mismatch):
		status = http.StatusBadRequest
	case errors.As(err, &unknown), errors.Is(err, apperr.ErrNotFound):
		status = http.StatusNotFound
	case errors.As(err, &gateway):
		status = http.StatusPaymentRequired
	case errors.As(err, &network), errors.As(err, &storage):
		status = http.StatusBadGateway
	}

	return c.JSON(status, echo.Map{"error": err.Error()})
}
