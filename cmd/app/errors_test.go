package main

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyerinam29-hash/my-face-landing/internal/apperr"
)

func TestRespondError_StatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", apperr.Validation("bad input"), http.StatusBadRequest},
		{"amount mismatch", &apperr.AmountMismatchError{Expected: 50000, Received: 40000}, http.StatusBadRequest},
		{"unknown order", &apperr.UnknownOrderError{OrderID: "o1"}, http.StatusNotFound},
		{"not found", apperr.ErrNotFound, http.StatusNotFound},
		{"gateway", &apperr.GatewayError{Code: "REJECT_CARD_COMPANY", Message: "거절"}, http.StatusPaymentRequired},
		{"network", &apperr.NetworkError{Op: "x", Err: errors.New("dial")}, http.StatusBadGateway},
		{"storage", &apperr.StorageError{Op: "x", Status: 500}, http.StatusBadGateway},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError},
	}

	e := echo.New()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			require.NoError(t, respondError(c, tc.err))
			assert.Equal(t, tc.status, rec.Code)
			assert.Contains(t, rec.Body.String(), "error")
		})
	}
}
