package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const healthTimeout = 2 * time.Second

// PingResponse represents the response for the ping endpoint
type PingResponse struct {
	Message string `json:"message" example:"pong"` // Response message
}

// HealthResponse reports whether the service can serve readings
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty" example:"report store unavailable: redis ping: connection refused"`
}

// handleRoot godoc
// @Summary Service banner
// @Description Confirms the backend is alive
// @Tags health
// @Produce json
// @Success 200 {object} PingResponse
// @Router / [get]
func (app *App) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{
		Message: "CosmicMatch backend is alive",
	})
}

// handlePing godoc
// @Summary Ping health check
// @Description Check if the API is running
// @Tags health
// @Produce json
// @Success 200 {object} PingResponse
// @Router /ping [get]
func (app *App) handlePing(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{
		Message: "pong",
	})
}

// handleHealth godoc
// @Summary Readiness check
// @Description Check that the report store is reachable
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (app *App) handleHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	if err := app.readingService.Health(ctx); err != nil {
		app.logger.Warn("health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "unavailable", Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}
