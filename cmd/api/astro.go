package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cosmicmatch/internal/ephemeris"
	"cosmicmatch/internal/types"
)

// ComputeChartInput defines the body of the chart endpoint. Either
// birth_place or both coordinates are required.
type ComputeChartInput struct {
	Name      string   `json:"name" example:"Ada"`
	BirthDate string   `json:"birth_date" binding:"required" example:"1990-06-15"`            // Local date, YYYY-MM-DD
	BirthTime string   `json:"birth_time" binding:"required" example:"14:30"`                 // Local time, HH:MM or HH:MM:SS
	Place     string   `json:"birth_place,omitempty" example:"London"`                        // Free-text birthplace
	Latitude  *float64 `json:"latitude,omitempty" binding:"omitempty,min=-90,max=90" example:"51.5074"`
	Longitude *float64 `json:"longitude,omitempty" binding:"omitempty,min=-180,max=180" example:"-0.1278"`
}

// ComputeChartResponse is a computed chart and the place it was cast for
type ComputeChartResponse struct {
	*ephemeris.Result
	Place types.Place `json:"place"`
}

// handleComputeChart godoc
// @Summary Compute a birth chart
// @Description Resolve the birthplace and time zone, then compute the Julian day, ascendant, twelve house cusps and the longitudes of the ten chart bodies
// @Tags astro
// @Accept json
// @Produce json
// @Param input body ComputeChartInput true "Birth details"
// @Success 200 {object} ComputeChartResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/astro [post]
func (app *App) handleComputeChart(c *gin.Context) {
	var input ComputeChartInput

	// Bind and validate the request body
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	// Delegate to business layer
	chart, err := app.readingService.Chart(c.Request.Context(), types.BirthDetails{
		Name:      input.Name,
		Date:      input.BirthDate,
		Time:      input.BirthTime,
		Place:     input.Place,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
	})
	if err != nil {
		app.respondError(c, err, "failed to compute chart",
			"birth_date", input.BirthDate,
			"birth_place", input.Place,
		)
		return
	}

	c.JSON(http.StatusOK, ComputeChartResponse{
		Result: chart.Chart,
		Place:  chart.Place,
	})
}
