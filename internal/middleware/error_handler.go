package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"aidat_app/internal/services"
)

// JSONErrorHandler maps service errors onto HTTP status codes and renders
// every failure as an {"error": ...} envelope for the GUI frontend.
func JSONErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := "internal server error"

	var he *echo.HTTPError
	switch {
	case errors.As(err, &he):
		code = he.Code
		if m, ok := he.Message.(string); ok && m != "" {
			msg = m
		}
	case errors.Is(err, services.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		code = http.StatusNotFound
		msg = err.Error()
	case errors.Is(err, services.ErrInvalidInput):
		code = http.StatusBadRequest
		msg = err.Error()
	case errors.Is(err, services.ErrDuplicatePeriod):
		code = http.StatusConflict
		msg = err.Error()
	default:
		c.Logger().Error(err)
	}

	if jsonErr := c.JSON(code, map[string]string{"error": msg}); jsonErr != nil {
		c.Logger().Error(jsonErr)
	}
}
