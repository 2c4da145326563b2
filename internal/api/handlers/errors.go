package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"cinehub/internal/domain"
	"cinehub/internal/services"
	"cinehub/internal/storage"
)

// writeError maps service errors onto JSON error responses.
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	case errors.Is(err, domain.ErrForbidden):
		return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
	case errors.Is(err, domain.ErrUsernameTaken),
		errors.Is(err, domain.ErrSelfFollow),
		errors.Is(err, services.ErrInvalidRating),
		errors.Is(err, storage.ErrInvalidImageExtension):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"error": message})
}
