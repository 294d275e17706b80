package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "proforma/internal/errors"
	"proforma/internal/models"
	"proforma/internal/pagination"
)

// scenarioService handles scenario-related business logic.
type scenarioService struct {
	db *gorm.DB
}

// NewScenarioService creates a new ScenarioServicer.
func NewScenarioService(db *gorm.DB) ScenarioServicer {
	return &scenarioService{db: db}
}

// CreateScenario stores a new scenario. Scenario names must be unique among
// non-deleted scenarios.
func (s *scenarioService) CreateScenario(in ScenarioInput) (*models.Scenario, error) {
	var count int64
	if err := s.db.Model(&models.Scenario{}).Where("name = ?", in.Name).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateScenarioName
	}

	scenario := &models.Scenario{}
	applyInput(scenario, in)

	if err := s.db.Create(scenario).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return scenario, nil
}

// GetScenarios returns a paginated list of scenarios, newest first.
func (s *scenarioService) GetScenarios(page pagination.PageRequest) (*pagination.PageResponse[models.Scenario], error) {
	page.Defaults()

	base := s.db.Model(&models.Scenario{})

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var scenarios []models.Scenario
	if err := base.Order("created_at DESC").Scopes(pagination.Paginate(page)).Find(&scenarios).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(scenarios, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetScenarioByID returns a scenario by ID.
func (s *scenarioService) GetScenarioByID(id string) (*models.Scenario, error) {
	var scenario models.Scenario
	if err := s.db.Where("id = ?", id).First(&scenario).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrScenarioNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &scenario, nil
}

// UpdateScenario replaces a scenario's assumptions wholesale.
func (s *scenarioService) UpdateScenario(id string, in ScenarioInput) (*models.Scenario, error) {
	scenario, err := s.GetScenarioByID(id)
	if err != nil {
		return nil, err
	}

	if in.Name != scenario.Name {
		var count int64
		if err := s.db.Model(&models.Scenario{}).Where("name = ? AND id <> ?", in.Name, id).Count(&count).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if count > 0 {
			return nil, apperrors.ErrDuplicateScenarioName
		}
	}

	applyInput(scenario, in)
	if err := s.db.Save(scenario).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return scenario, nil
}

// DeleteScenario soft-deletes a scenario.
func (s *scenarioService) DeleteScenario(id string) error {
	scenario, err := s.GetScenarioByID(id)
	if err != nil {
		return err
	}

	if err := s.db.Delete(scenario).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// applyInput copies every assumption field from the input onto the model.
func applyInput(scenario *models.Scenario, in ScenarioInput) {
	scenario.Name = in.Name
	scenario.Currency = in.Currency
	if scenario.Currency == "" {
		scenario.Currency = "USD"
	}
	scenario.Notes = in.Notes

	scenario.InitialInvestment = in.InitialInvestment
	scenario.Keys = in.Keys
	scenario.PurchaseYear = in.PurchaseYear
	scenario.PurchaseMonth = in.PurchaseMonth

	scenario.Y1Occupancy = in.Y1Occupancy
	scenario.Y1ADR = in.Y1ADR
	scenario.Y1FB = in.Y1FB
	scenario.Y1Spa = in.Y1Spa
	scenario.Y1OOD = in.Y1OOD
	scenario.Y1Misc = in.Y1Misc

	scenario.OccupancySteps = models.OccupancySteps(in.OccupancySteps)

	scenario.ADRGrowth = in.ADRGrowth
	scenario.FBGrowth = in.FBGrowth
	scenario.SpaGrowth = in.SpaGrowth
	scenario.CAMGrowth = in.CAMGrowth
	scenario.BaseFeeGrowth = in.BaseFeeGrowth
	scenario.TechFeeGrowth = in.TechFeeGrowth

	scenario.RoomsCostPct = in.RoomsCostPct
	scenario.FBCostPct = in.FBCostPct
	scenario.SpaCostPct = in.SpaCostPct
	scenario.OODCostPct = in.OODCostPct
	scenario.MiscCostPct = in.MiscCostPct
	scenario.UtilitiesPct = in.UtilitiesPct

	scenario.AdminPct = in.AdminPct
	scenario.SalesPct = in.SalesPct
	scenario.MaintenancePct = in.MaintenancePct

	scenario.Y1CAM = in.Y1CAM
	scenario.Y1BaseFee = in.Y1BaseFee
	scenario.Y1TechFee = in.Y1TechFee
	scenario.IncentiveFeePct = in.IncentiveFeePct

	scenario.PropertyReady = in.PropertyReady
	scenario.ReadyYear = in.ReadyYear
	scenario.ReadyMonth = in.ReadyMonth
}
