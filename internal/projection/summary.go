package projection

import "github.com/montanaflynn/stats"

// Summary holds the arithmetic mean across all projection years for a fixed
// set of fields. Pre-operational zero years count like any other year.
type Summary struct {
	Occupancy              float64 `json:"occupancy"`
	ADR                    float64 `json:"adr"`
	RevPAR                 float64 `json:"revpar"`
	TRevPAR                float64 `json:"trevpar"`
	TotalRevenue           float64 `json:"total_revenue"`
	TotalOperatingCost     float64 `json:"total_operating_cost"`
	TotalUndistributedCost float64 `json:"total_undistributed_cost"`
	GOP                    float64 `json:"gop"`
	GOPMargin              float64 `json:"gop_margin"`
	TotalManagementFees    float64 `json:"total_management_fees"`
	TakeHomeProfit         float64 `json:"take_home_profit"`
	ProfitMargin           float64 `json:"profit_margin"`
	ROIBeforeManagement    float64 `json:"roi_before_management"`
	ROIAfterManagement     float64 `json:"roi_after_management"`
}

// Summarize reduces a projection to per-field means. The averaged fields are
// an explicit accessor list rather than anything reflective, so adding or
// renaming a Year field cannot silently change what gets averaged.
func Summarize(years []Year) Summary {
	return Summary{
		Occupancy:              mean(years, func(y Year) float64 { return y.Occupancy }),
		ADR:                    mean(years, func(y Year) float64 { return y.ADR }),
		RevPAR:                 mean(years, func(y Year) float64 { return y.RevPAR }),
		TRevPAR:                mean(years, func(y Year) float64 { return y.TRevPAR }),
		TotalRevenue:           mean(years, func(y Year) float64 { return y.TotalRevenue }),
		TotalOperatingCost:     mean(years, func(y Year) float64 { return y.TotalOperatingCost }),
		TotalUndistributedCost: mean(years, func(y Year) float64 { return y.TotalUndistributedCost }),
		GOP:                    mean(years, func(y Year) float64 { return y.GOP }),
		GOPMargin:              mean(years, func(y Year) float64 { return y.GOPMargin }),
		TotalManagementFees:    mean(years, func(y Year) float64 { return y.TotalManagementFees }),
		TakeHomeProfit:         mean(years, func(y Year) float64 { return y.TakeHomeProfit }),
		ProfitMargin:           mean(years, func(y Year) float64 { return y.ProfitMargin }),
		ROIBeforeManagement:    mean(years, func(y Year) float64 { return y.ROIBeforeManagement }),
		ROIAfterManagement:     mean(years, func(y Year) float64 { return y.ROIAfterManagement }),
	}
}

// mean averages one field across the projection, returning 0 for an empty
// input rather than an error.
func mean(years []Year, field func(Year) float64) float64 {
	if len(years) == 0 {
		return 0
	}
	values := make([]float64, len(years))
	for i, y := range years {
		values[i] = field(y)
	}
	m, err := stats.Mean(values)
	if err != nil {
		return 0
	}
	return m
}
