package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"proforma/internal/services"
)

// ProjectionHandler handles projection computation requests.
type ProjectionHandler struct {
	projectionService services.ProjectionServicer
}

// NewProjectionHandler creates a new ProjectionHandler.
func NewProjectionHandler(projectionService services.ProjectionServicer) *ProjectionHandler {
	return &ProjectionHandler{projectionService: projectionService}
}

// GetProjection handles computing a scenario's ten-year projection.
// @Summary     Get a projection
// @Description Compute the ten-year projection and summary for a scenario
// @Tags        projections
// @Accept      json
// @Produce     json
// @Param       id path string true "Scenario ID"
// @Success     200 {object} services.ProjectionResult "Projection"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Scenario not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /scenarios/{id}/projection [get]
func (h *ProjectionHandler) GetProjection(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.projectionService.GetProjection(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
