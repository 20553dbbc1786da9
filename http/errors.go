package http

import (
	"errors"
	"net/http"

	"github.com/NishadiGunasinghe/cinema-tickets/purchase"
	"github.com/labstack/echo/v4"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func statusForKind(kind purchase.Kind) int {
	if kind == purchase.KindInvalidAccountID {
		return http.StatusBadRequest
	}
	return http.StatusUnprocessableEntity
}

func writeRejection(c echo.Context, err *purchase.PurchaseError) error {
	return c.JSON(statusForKind(err.Kind), errorResponse{
		Error: err.Error(),
		Code:  err.Kind.String(),
	})
}

// purchaseError turns a failed purchase into a response. Rejections are
// reported to the client, anything else is an internal error.
func purchaseError(c echo.Context, err error) error {
	var rejection *purchase.PurchaseError
	if errors.As(err, &rejection) {
		return writeRejection(c, rejection)
	}

	return &echo.HTTPError{
		Code:     http.StatusInternalServerError,
		Message:  http.StatusText(http.StatusInternalServerError),
		Internal: err,
	}
}
