package models

import "proforma/internal/projection"

// OccupancySteps holds the per-year occupancy step-ups for years 2..10.
// A nil entry means the scenario owner left that year unset and the
// service-level default applies. Stored as a JSON column.
type OccupancySteps []*float64

// Scenario is a saved set of investment assumptions. Only assumptions are
// persisted; projections are recomputed from them on every read.
type Scenario struct {
	Base
	Name     string `gorm:"not null" json:"name"`
	Currency string `gorm:"not null;default:'USD'" json:"currency"` // display metadata only
	Notes    string `json:"notes,omitempty"`

	InitialInvestment float64 `gorm:"not null" json:"initial_investment"`
	Keys              int     `gorm:"not null" json:"keys"`
	PurchaseYear      int     `gorm:"not null" json:"purchase_year"`
	PurchaseMonth     int     `gorm:"not null" json:"purchase_month"`

	Y1Occupancy float64 `json:"y1_occupancy"`
	Y1ADR       float64 `json:"y1_adr"`
	Y1FB        float64 `json:"y1_fb"`
	Y1Spa       float64 `json:"y1_spa"`
	Y1OOD       float64 `json:"y1_ood"`
	Y1Misc      float64 `json:"y1_misc"`

	OccupancySteps OccupancySteps `gorm:"serializer:json" json:"occupancy_steps"`

	ADRGrowth     float64 `json:"adr_growth"`
	FBGrowth      float64 `json:"fb_growth"`
	SpaGrowth     float64 `json:"spa_growth"`
	CAMGrowth     float64 `json:"cam_growth"`
	BaseFeeGrowth float64 `json:"base_fee_growth"`
	TechFeeGrowth float64 `json:"tech_fee_growth"`

	RoomsCostPct float64 `json:"rooms_cost_pct"`
	FBCostPct    float64 `json:"fb_cost_pct"`
	SpaCostPct   float64 `json:"spa_cost_pct"`
	OODCostPct   float64 `json:"ood_cost_pct"`
	MiscCostPct  float64 `json:"misc_cost_pct"`
	UtilitiesPct float64 `json:"utilities_pct"`

	AdminPct       float64 `json:"admin_pct"`
	SalesPct       float64 `json:"sales_pct"`
	MaintenancePct float64 `json:"maintenance_pct"`

	Y1CAM           float64 `json:"y1_cam"`
	Y1BaseFee       float64 `json:"y1_base_fee"`
	Y1TechFee       float64 `json:"y1_tech_fee"`
	IncentiveFeePct float64 `json:"incentive_fee_pct"`

	PropertyReady bool `json:"property_ready"`
	ReadyYear     int  `json:"ready_year,omitempty"`
	ReadyMonth    int  `json:"ready_month,omitempty"`
}

// Assumptions converts the stored scenario into the projection input record.
func (s *Scenario) Assumptions() projection.Assumptions {
	a := projection.Assumptions{
		InitialInvestment: s.InitialInvestment,
		Keys:              s.Keys,
		PurchaseYear:      s.PurchaseYear,
		PurchaseMonth:     s.PurchaseMonth,
		Y1Occupancy:       s.Y1Occupancy,
		Y1ADR:             s.Y1ADR,
		Y1FB:              s.Y1FB,
		Y1Spa:             s.Y1Spa,
		Y1OOD:             s.Y1OOD,
		Y1Misc:            s.Y1Misc,
		ADRGrowth:         s.ADRGrowth,
		FBGrowth:          s.FBGrowth,
		SpaGrowth:         s.SpaGrowth,
		CAMGrowth:         s.CAMGrowth,
		BaseFeeGrowth:     s.BaseFeeGrowth,
		TechFeeGrowth:     s.TechFeeGrowth,
		RoomsCostPct:      s.RoomsCostPct,
		FBCostPct:         s.FBCostPct,
		SpaCostPct:        s.SpaCostPct,
		OODCostPct:        s.OODCostPct,
		MiscCostPct:       s.MiscCostPct,
		UtilitiesPct:      s.UtilitiesPct,
		AdminPct:          s.AdminPct,
		SalesPct:          s.SalesPct,
		MaintenancePct:    s.MaintenancePct,
		Y1CAM:             s.Y1CAM,
		Y1BaseFee:         s.Y1BaseFee,
		Y1TechFee:         s.Y1TechFee,
		IncentiveFeePct:   s.IncentiveFeePct,
		PropertyReady:     s.PropertyReady,
		ReadyYear:         s.ReadyYear,
		ReadyMonth:        s.ReadyMonth,
	}
	for i := 0; i < projection.StepCount && i < len(s.OccupancySteps); i++ {
		a.OccupancySteps[i] = s.OccupancySteps[i]
	}
	return a
}
