package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/joblane/careers-api/internal/core/domain"
)

// respondError maps known domain errors to their status codes and renders
// the standard error envelope. Unclassified errors are returned as-is so the
// central HTTP error handler can log them and answer 500.
func respondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrMustBeAdmin),
		errors.Is(err, domain.ErrMustBeSelfOrAdmin),
		errors.Is(err, domain.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrAlreadyApplied):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrJobNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrUserExists):
		return c.JSON(http.StatusConflict, errorResponse{Error: err.Error()})
	default:
		return err
	}
}
