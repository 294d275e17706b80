package services

import (
	"proforma/internal/projection"
)

// projectionService computes 10-year projections from stored scenarios.
type projectionService struct {
	scenarios ScenarioServicer
	engine    *projection.Engine
}

// NewProjectionService creates a new ProjectionServicer. The default
// occupancy step fills any year the scenario leaves unset.
func NewProjectionService(scenarios ScenarioServicer, defaultOccupancyStep float64) ProjectionServicer {
	return &projectionService{
		scenarios: scenarios,
		engine:    projection.NewEngine(defaultOccupancyStep),
	}
}

// GetProjection loads the scenario and computes its full projection.
func (s *projectionService) GetProjection(scenarioID string) (*ProjectionResult, error) {
	scenario, err := s.scenarios.GetScenarioByID(scenarioID)
	if err != nil {
		return nil, err
	}

	years := s.engine.Compute(scenario.Assumptions())
	summary := projection.Summarize(years)

	return &ProjectionResult{
		Scenario: scenario,
		Years:    years,
		Summary:  summary,
	}, nil
}
