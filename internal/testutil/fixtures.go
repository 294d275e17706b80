package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"proforma/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestScenario creates a ready-at-purchase scenario with a unique name
// and a representative set of assumptions.
func CreateTestScenario(t *testing.T, db *gorm.DB) *models.Scenario {
	t.Helper()
	return CreateTestScenarioWithName(t, db, fmt.Sprintf("Test Scenario %d", nextID()))
}

// CreateTestScenarioWithName creates a scenario with the given name.
func CreateTestScenarioWithName(t *testing.T, db *gorm.DB, name string) *models.Scenario {
	t.Helper()

	scenario := &models.Scenario{
		Name:              name,
		Currency:          "USD",
		InitialInvestment: 2_000_000,
		Keys:              20,
		PurchaseYear:      2025,
		PurchaseMonth:     1,
		Y1Occupancy:       55,
		Y1ADR:             180,
		Y1FB:              120_000,
		Y1Spa:             40_000,
		Y1OOD:             15_000,
		Y1Misc:            5_000,
		OccupancySteps:    make(models.OccupancySteps, 9),
		ADRGrowth:         3,
		FBGrowth:          2,
		SpaGrowth:         2,
		CAMGrowth:         2,
		BaseFeeGrowth:     2,
		TechFeeGrowth:     2,
		RoomsCostPct:      25,
		FBCostPct:         60,
		SpaCostPct:        50,
		OODCostPct:        40,
		MiscCostPct:       30,
		UtilitiesPct:      4,
		AdminPct:          8,
		SalesPct:          5,
		MaintenancePct:    4,
		Y1CAM:             24_000,
		Y1BaseFee:         30_000,
		Y1TechFee:         6_000,
		IncentiveFeePct:   8,
		PropertyReady:     true,
	}
	if err := db.Create(scenario).Error; err != nil {
		t.Fatalf("failed to create test scenario: %v", err)
	}
	return scenario
}
