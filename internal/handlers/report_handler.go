package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"proforma/internal/services"
)

// ReportHandler handles projection export requests.
type ReportHandler struct {
	reportService services.ReportServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService services.ReportServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// ExportProjection handles downloading a scenario's projection as CSV.
// @Summary     Export a projection
// @Description Download the ten-year projection for a scenario as a CSV file
// @Tags        reports
// @Accept      json
// @Produce     text/csv
// @Param       id path string true "Scenario ID"
// @Success     200 {file} file "CSV projection report"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Scenario not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /scenarios/{id}/export [get]
func (h *ReportHandler) ExportProjection(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	data, filename, err := h.reportService.ExportCSV(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", data)
}
