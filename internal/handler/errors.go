package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jaev1996/atria-fitness/internal/engine"
)

// writeError translates engine sentinels into HTTP responses.  Unknown
// errors become an opaque 500 so internal detail never leaks to clients.
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, engine.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, engine.ErrAlreadyEnrolled),
		errors.Is(err, engine.ErrCapacityExceeded),
		errors.Is(err, engine.ErrScheduleCollision),
		errors.Is(err, engine.ErrConflict):
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	case errors.Is(err, engine.ErrNoEligiblePlan):
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error()})
	case errors.Is(err, engine.ErrValidation):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	default:
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
}
