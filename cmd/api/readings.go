package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cosmicmatch/internal/reading"
)

// ReadingLinks points at the rendered forms of a reading
type ReadingLinks struct {
	Self string `json:"self" example:"/api/v1/readings/0b6f3c1e-6f43-4c8e-9a55-1d1f0a4f7d2e"`
	HTML string `json:"html" example:"/api/v1/readings/0b6f3c1e-6f43-4c8e-9a55-1d1f0a4f7d2e/html"`
	PDF  string `json:"pdf" example:"/api/v1/readings/0b6f3c1e-6f43-4c8e-9a55-1d1f0a4f7d2e/pdf"`
}

// CreateReadingResponse summarizes a newly generated reading
type CreateReadingResponse struct {
	ID        string       `json:"id" example:"0b6f3c1e-6f43-4c8e-9a55-1d1f0a4f7d2e"`
	Mode      string       `json:"mode" example:"natal"`
	Title     string       `json:"title" example:"Natal Chart Reading for Ada"`
	CreatedAt time.Time    `json:"created_at"`
	ExpiresAt time.Time    `json:"expires_at"`
	Text      string       `json:"text"`
	Links     ReadingLinks `json:"links"`
}

func readingLinks(id string) ReadingLinks {
	self := "/api/v1/readings/" + id
	return ReadingLinks{
		Self: self,
		HTML: self + "/html",
		PDF:  self + "/pdf",
	}
}

// handleCreateReading godoc
// @Summary Generate a reading
// @Description Compute the chart of one person (natal) or two people (compatibility), generate a reading with the language model, and store it with HTML and PDF renderings
// @Tags readings
// @Accept json
// @Produce json
// @Param input body reading.Request true "Birth details and free-text focus"
// @Success 201 {object} CreateReadingResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/readings [post]
func (app *App) handleCreateReading(c *gin.Context) {
	var input reading.Request

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	report, err := app.readingService.Create(c.Request.Context(), input)
	if err != nil {
		app.respondError(c, err, "failed to generate reading")
		return
	}

	links := readingLinks(report.ID)
	c.Header("Location", links.Self)
	c.JSON(http.StatusCreated, CreateReadingResponse{
		ID:        report.ID,
		Mode:      string(report.Mode),
		Title:     report.Title,
		CreatedAt: report.CreatedAt,
		ExpiresAt: report.ExpiresAt,
		Text:      report.Text,
		Links:     links,
	})
}

// handleGetReading godoc
// @Summary Get a reading
// @Description Retrieve a stored reading with the charts it was generated from
// @Tags readings
// @Produce json
// @Param id path string true "Reading ID" format(uuid)
// @Success 200 {object} reading.Report
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/readings/{id} [get]
func (app *App) handleGetReading(c *gin.Context) {
	report, ok := app.loadReport(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, report)
}

// handleGetReadingHTML godoc
// @Summary Get a reading as HTML
// @Tags readings
// @Produce html
// @Param id path string true "Reading ID" format(uuid)
// @Success 200 {string} string "HTML page"
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/readings/{id}/html [get]
func (app *App) handleGetReadingHTML(c *gin.Context) {
	report, ok := app.loadReport(c)
	if !ok {
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", report.HTML)
}

// handleGetReadingPDF godoc
// @Summary Download a reading as PDF
// @Tags readings
// @Produce application/pdf
// @Param id path string true "Reading ID" format(uuid)
// @Success 200 {file} file "PDF document"
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/readings/{id}/pdf [get]
func (app *App) handleGetReadingPDF(c *gin.Context) {
	report, ok := app.loadReport(c)
	if !ok {
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="reading-%s.pdf"`, report.ID))
	c.Data(http.StatusOK, "application/pdf", report.PDF)
}

func (app *App) loadReport(c *gin.Context) (*reading.Report, bool) {
	id := c.Param("id")
	report, err := app.readingService.Get(c.Request.Context(), id)
	if err != nil {
		app.respondError(c, err, "failed to load reading", "id", id)
		return nil, false
	}
	return report, true
}
