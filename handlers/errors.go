package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"RealtyAPI/models"
	"RealtyAPI/store"
	"RealtyAPI/utils"
)

// ErrorHandler is the echo HTTPErrorHandler. Validation failures are client
// errors, missing records are 404 and everything else is a 500 carrying the
// error text. The failure itself is logged by middleware.RequestLogger.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, body := classifyError(err)

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, body)
	}
	if err != nil {
		utils.Logger.WithError(err).Error("failed to write error response")
	}
}

func classifyError(err error) (int, models.ErrorResponse) {
	var validationErr *models.ValidationError
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, models.ErrorResponse{Detail: validationErr.Error(), Fields: validationErr.Fields}
	case errors.As(err, &httpErr):
		return httpErr.Code, models.ErrorResponse{Detail: fmt.Sprint(httpErr.Message)}
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound, models.ErrorResponse{Detail: "Not found"}
	default:
		return http.StatusInternalServerError, models.ErrorResponse{Detail: err.Error()}
	}
}

func invalidLimit() error {
	return &models.ValidationError{
		Entity: "query",
		Fields: []models.FieldError{{Field: "limit", Message: "must be a non-negative integer"}},
	}
}
