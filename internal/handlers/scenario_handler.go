package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "proforma/internal/errors"
	"proforma/internal/pagination"
	"proforma/internal/services"
)

// ScenarioHandler handles scenario-related requests.
type ScenarioHandler struct {
	scenarioService services.ScenarioServicer
}

// NewScenarioHandler creates a new ScenarioHandler.
func NewScenarioHandler(scenarioService services.ScenarioServicer) *ScenarioHandler {
	return &ScenarioHandler{scenarioService: scenarioService}
}

// ScenarioRequest represents the request payload for creating or replacing a
// scenario. Updates take the same full payload; scenarios are never patched
// field by field.
type ScenarioRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=200"`
	Currency string `json:"currency" binding:"omitempty,iso4217"`
	Notes    string `json:"notes" binding:"omitempty,max=2000"`

	InitialInvestment float64 `json:"initial_investment" binding:"required,gt=0"`
	Keys              int     `json:"keys" binding:"required,gt=0"`
	PurchaseYear      int     `json:"purchase_year" binding:"required,gte=1900,lte=2200"`
	PurchaseMonth     int     `json:"purchase_month" binding:"required,month"`

	Y1Occupancy float64 `json:"y1_occupancy" binding:"gte=0,lte=100"`
	Y1ADR       float64 `json:"y1_adr" binding:"gte=0"`
	Y1FB        float64 `json:"y1_fb" binding:"gte=0"`
	Y1Spa       float64 `json:"y1_spa" binding:"gte=0"`
	Y1OOD       float64 `json:"y1_ood" binding:"gte=0"`
	Y1Misc      float64 `json:"y1_misc" binding:"gte=0"`

	// One entry per year 2..10. A null entry means the server default step.
	OccupancySteps []*float64 `json:"occupancy_steps" binding:"required,len=9"`

	ADRGrowth     float64 `json:"adr_growth"`
	FBGrowth      float64 `json:"fb_growth"`
	SpaGrowth     float64 `json:"spa_growth"`
	CAMGrowth     float64 `json:"cam_growth"`
	BaseFeeGrowth float64 `json:"base_fee_growth"`
	TechFeeGrowth float64 `json:"tech_fee_growth"`

	RoomsCostPct float64 `json:"rooms_cost_pct" binding:"gte=0,lte=100"`
	FBCostPct    float64 `json:"fb_cost_pct" binding:"gte=0,lte=100"`
	SpaCostPct   float64 `json:"spa_cost_pct" binding:"gte=0,lte=100"`
	OODCostPct   float64 `json:"ood_cost_pct" binding:"gte=0,lte=100"`
	MiscCostPct  float64 `json:"misc_cost_pct" binding:"gte=0,lte=100"`
	UtilitiesPct float64 `json:"utilities_pct" binding:"gte=0,lte=100"`

	AdminPct       float64 `json:"admin_pct" binding:"gte=0,lte=100"`
	SalesPct       float64 `json:"sales_pct" binding:"gte=0,lte=100"`
	MaintenancePct float64 `json:"maintenance_pct" binding:"gte=0,lte=100"`

	Y1CAM           float64 `json:"y1_cam" binding:"gte=0"`
	Y1BaseFee       float64 `json:"y1_base_fee" binding:"gte=0"`
	Y1TechFee       float64 `json:"y1_tech_fee" binding:"gte=0"`
	IncentiveFeePct float64 `json:"incentive_fee_pct" binding:"gte=0,lte=100"`

	PropertyReady bool `json:"property_ready"`
	ReadyYear     int  `json:"ready_year" binding:"omitempty,gte=1900,lte=2200"`
	ReadyMonth    int  `json:"ready_month" binding:"omitempty,month"`
}

func (r *ScenarioRequest) toInput() services.ScenarioInput {
	return services.ScenarioInput{
		Name:              r.Name,
		Currency:          r.Currency,
		Notes:             r.Notes,
		InitialInvestment: r.InitialInvestment,
		Keys:              r.Keys,
		PurchaseYear:      r.PurchaseYear,
		PurchaseMonth:     r.PurchaseMonth,
		Y1Occupancy:       r.Y1Occupancy,
		Y1ADR:             r.Y1ADR,
		Y1FB:              r.Y1FB,
		Y1Spa:             r.Y1Spa,
		Y1OOD:             r.Y1OOD,
		Y1Misc:            r.Y1Misc,
		OccupancySteps:    r.OccupancySteps,
		ADRGrowth:         r.ADRGrowth,
		FBGrowth:          r.FBGrowth,
		SpaGrowth:         r.SpaGrowth,
		CAMGrowth:         r.CAMGrowth,
		BaseFeeGrowth:     r.BaseFeeGrowth,
		TechFeeGrowth:     r.TechFeeGrowth,
		RoomsCostPct:      r.RoomsCostPct,
		FBCostPct:         r.FBCostPct,
		SpaCostPct:        r.SpaCostPct,
		OODCostPct:        r.OODCostPct,
		MiscCostPct:       r.MiscCostPct,
		UtilitiesPct:      r.UtilitiesPct,
		AdminPct:          r.AdminPct,
		SalesPct:          r.SalesPct,
		MaintenancePct:    r.MaintenancePct,
		Y1CAM:             r.Y1CAM,
		Y1BaseFee:         r.Y1BaseFee,
		Y1TechFee:         r.Y1TechFee,
		IncentiveFeePct:   r.IncentiveFeePct,
		PropertyReady:     r.PropertyReady,
		ReadyYear:         r.ReadyYear,
		ReadyMonth:        r.ReadyMonth,
	}
}

// CreateScenario handles the creation of a new scenario.
// @Summary     Create a scenario
// @Description Create a new investment scenario from a full set of assumptions
// @Tags        scenarios
// @Accept      json
// @Produce     json
// @Param       request body ScenarioRequest true "Scenario assumptions"
// @Success     201 {object} models.Scenario "Scenario created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Duplicate scenario name"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /scenarios [post]
func (h *ScenarioHandler) CreateScenario(c *gin.Context) {
	var req ScenarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	scenario, err := h.scenarioService.CreateScenario(req.toInput())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"scenario": scenario})
}

// GetScenarios handles listing scenarios.
// @Summary     Get scenarios
// @Description Get a paginated list of saved scenarios, newest first
// @Tags        scenarios
// @Accept      json
// @Produce     json
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Scenario] "Paginated scenarios"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /scenarios [get]
func (h *ScenarioHandler) GetScenarios(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.scenarioService.GetScenarios(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetScenario handles fetching a single scenario.
// @Summary     Get a scenario
// @Description Get a single scenario by ID
// @Tags        scenarios
// @Accept      json
// @Produce     json
// @Param       id path string true "Scenario ID"
// @Success     200 {object} models.Scenario "Scenario"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Scenario not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /scenarios/{id} [get]
func (h *ScenarioHandler) GetScenario(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	scenario, err := h.scenarioService.GetScenarioByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"scenario": scenario})
}

// UpdateScenario handles replacing a scenario's assumptions.
// @Summary     Update a scenario
// @Description Replace a scenario's assumptions with a full new set
// @Tags        scenarios
// @Accept      json
// @Produce     json
// @Param       id      path string          true "Scenario ID"
// @Param       request body ScenarioRequest true "Scenario assumptions"
// @Success     200 {object} models.Scenario "Scenario updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Scenario not found"
// @Failure     409 {object} ErrorResponse "Duplicate scenario name"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /scenarios/{id} [put]
func (h *ScenarioHandler) UpdateScenario(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ScenarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	scenario, err := h.scenarioService.UpdateScenario(id, req.toInput())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"scenario": scenario})
}

// DeleteScenario handles deleting a scenario.
// @Summary     Delete a scenario
// @Description Soft-delete a scenario by ID
// @Tags        scenarios
// @Accept      json
// @Produce     json
// @Param       id path string true "Scenario ID"
// @Success     200 {object} map[string]string "Scenario deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Scenario not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /scenarios/{id} [delete]
func (h *ScenarioHandler) DeleteScenario(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.scenarioService.DeleteScenario(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Scenario deleted"})
}
