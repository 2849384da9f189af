package http

import (
	"errors"
	"net/http"

	"trading-habit-engine/internal/habit/dto"

	"github.com/labstack/echo/v4"
)

func validationFailed(c echo.Context, err error) error {
	var verr *dto.ValidationError
	if errors.As(err, &verr) {
		return c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
			Error:   "Validation failed",
			Details: verr.Fields,
		})
	}
	return c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error()})
}
