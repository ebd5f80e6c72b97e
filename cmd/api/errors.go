package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cosmicmatch/internal/ephemeris"
	"cosmicmatch/internal/location"
	"cosmicmatch/internal/reading"
	"cosmicmatch/internal/types"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error" example:"invalid reading request: birth_date is required"`
}

// respondError maps business errors to HTTP status codes. Client errors echo
// the error text; server errors are logged and replaced by message.
func (app *App) respondError(c *gin.Context, err error, message string, attrs ...any) {
	switch {
	case errors.Is(err, reading.ErrInvalidRequest),
		errors.Is(err, ephemeris.ErrInvalidTimestamp),
		errors.Is(err, types.ErrInvalidLatitude),
		errors.Is(err, types.ErrInvalidLongitude),
		errors.Is(err, location.ErrPlaceNotFound):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, reading.ErrReportNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "report not found"})
	case errors.Is(err, reading.ErrGenerationFailed):
		app.logger.Error(message, append(attrs, "error", err)...)
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: message})
	default:
		app.logger.Error(message, append(attrs, "error", err)...)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: message})
	}
}
