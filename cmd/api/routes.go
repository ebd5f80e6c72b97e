package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoints
	app.router.GET("/", app.handleRoot)
	app.router.GET("/ping", app.handlePing)
	app.router.GET("/health", app.handleHealth)

	v1 := app.router.Group("/api/v1")
	{
		// Chart endpoints
		v1.POST("/astro", app.handleComputeChart)

		// Reading endpoints
		v1.POST("/readings", app.handleCreateReading)
		v1.GET("/readings/:id", app.handleGetReading)
		v1.GET("/readings/:id/html", app.handleGetReadingHTML)
		v1.GET("/readings/:id/pdf", app.handleGetReadingPDF)
	}

	// Prometheus metrics
	app.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}
