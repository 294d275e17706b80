package services

import (
	"proforma/internal/models"
	"proforma/internal/pagination"
	"proforma/internal/projection"
)

// ScenarioInput carries the full set of assumption fields for creating or
// replacing a scenario. Updates are whole-record: a scenario is only ever
// edited between computations, never patched during one.
type ScenarioInput struct {
	Name     string
	Currency string
	Notes    string

	InitialInvestment float64
	Keys              int
	PurchaseYear      int
	PurchaseMonth     int

	Y1Occupancy float64
	Y1ADR       float64
	Y1FB        float64
	Y1Spa       float64
	Y1OOD       float64
	Y1Misc      float64

	OccupancySteps []*float64

	ADRGrowth     float64
	FBGrowth      float64
	SpaGrowth     float64
	CAMGrowth     float64
	BaseFeeGrowth float64
	TechFeeGrowth float64

	RoomsCostPct float64
	FBCostPct    float64
	SpaCostPct   float64
	OODCostPct   float64
	MiscCostPct  float64
	UtilitiesPct float64

	AdminPct       float64
	SalesPct       float64
	MaintenancePct float64

	Y1CAM           float64
	Y1BaseFee       float64
	Y1TechFee       float64
	IncentiveFeePct float64

	PropertyReady bool
	ReadyYear     int
	ReadyMonth    int
}

// ScenarioServicer defines the contract for scenario-related business logic.
type ScenarioServicer interface {
	CreateScenario(in ScenarioInput) (*models.Scenario, error)
	GetScenarios(page pagination.PageRequest) (*pagination.PageResponse[models.Scenario], error)
	GetScenarioByID(id string) (*models.Scenario, error)
	UpdateScenario(id string, in ScenarioInput) (*models.Scenario, error)
	DeleteScenario(id string) error
}

// ProjectionResult bundles everything a client needs to render a projection:
// the source scenario, the ten yearly records, and their aggregate summary.
// Nothing in it is persisted; it is recomputed in full on every request.
type ProjectionResult struct {
	Scenario *models.Scenario   `json:"scenario"`
	Years    []projection.Year  `json:"years"`
	Summary  projection.Summary `json:"summary"`
}

// ProjectionServicer defines the contract for computing projections.
type ProjectionServicer interface {
	GetProjection(scenarioID string) (*ProjectionResult, error)
}

// ReportServicer defines the contract for exporting projection reports.
type ReportServicer interface {
	ExportCSV(scenarioID string) ([]byte, string, error)
}
