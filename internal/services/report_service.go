package services

import (
	"fmt"
	"strings"

	"github.com/gocarina/gocsv"

	apperrors "proforma/internal/errors"
	"proforma/internal/projection"
)

// reportRow is one CSV line of an exported projection.
type reportRow struct {
	Year         int `csv:"year"`
	CalendarYear int `csv:"calendar_year"`
	Keys         int `csv:"keys"`

	Occupancy float64 `csv:"occupancy_pct"`
	ADR       float64 `csv:"adr"`
	RevPAR    float64 `csv:"revpar"`
	TRevPAR   float64 `csv:"trevpar"`

	RoomsRevenue  float64 `csv:"rooms_revenue"`
	FBRevenue     float64 `csv:"fb_revenue"`
	SpaRevenue    float64 `csv:"spa_revenue"`
	OODRevenue    float64 `csv:"ood_revenue"`
	MiscRevenue   float64 `csv:"misc_revenue"`
	TotalRevenue  float64 `csv:"total_revenue"`
	RevenueGrowth float64 `csv:"revenue_growth_pct"`

	TotalOperatingCost     float64 `csv:"total_operating_cost"`
	TotalUndistributedCost float64 `csv:"total_undistributed_cost"`

	GOP       float64 `csv:"gop"`
	GOPMargin float64 `csv:"gop_margin_pct"`

	CAMFee              float64 `csv:"cam_fee"`
	BaseFee             float64 `csv:"base_fee"`
	TechFee             float64 `csv:"tech_fee"`
	IncentiveFee        float64 `csv:"incentive_fee"`
	TotalManagementFees float64 `csv:"total_management_fees"`

	TakeHomeProfit      float64 `csv:"take_home_profit"`
	ProfitMargin        float64 `csv:"profit_margin_pct"`
	ROIBeforeManagement float64 `csv:"roi_before_management_pct"`
	ROIAfterManagement  float64 `csv:"roi_after_management_pct"`
}

// reportService renders projections as downloadable CSV reports.
type reportService struct {
	projections ProjectionServicer
}

// NewReportService creates a new ReportServicer.
func NewReportService(projections ProjectionServicer) ReportServicer {
	return &reportService{projections: projections}
}

// ExportCSV computes the scenario's projection and renders it as CSV, one row
// per projection year. It returns the file contents and a suggested filename.
func (s *reportService) ExportCSV(scenarioID string) ([]byte, string, error) {
	result, err := s.projections.GetProjection(scenarioID)
	if err != nil {
		return nil, "", err
	}

	rows := make([]*reportRow, 0, len(result.Years))
	for _, y := range result.Years {
		rows = append(rows, newReportRow(y))
	}

	data, err := gocsv.MarshalBytes(&rows)
	if err != nil {
		return nil, "", apperrors.Wrap(apperrors.ErrReportGeneration, err)
	}

	return data, reportFilename(result.Scenario.Name), nil
}

func newReportRow(y projection.Year) *reportRow {
	return &reportRow{
		Year:                   y.Year,
		CalendarYear:           y.CalendarYear,
		Keys:                   y.Keys,
		Occupancy:              y.Occupancy,
		ADR:                    y.ADR,
		RevPAR:                 y.RevPAR,
		TRevPAR:                y.TRevPAR,
		RoomsRevenue:           y.RoomsRevenue,
		FBRevenue:              y.FBRevenue,
		SpaRevenue:             y.SpaRevenue,
		OODRevenue:             y.OODRevenue,
		MiscRevenue:            y.MiscRevenue,
		TotalRevenue:           y.TotalRevenue,
		RevenueGrowth:          y.RevenueGrowth,
		TotalOperatingCost:     y.TotalOperatingCost,
		TotalUndistributedCost: y.TotalUndistributedCost,
		GOP:                    y.GOP,
		GOPMargin:              y.GOPMargin,
		CAMFee:                 y.CAMFee,
		BaseFee:                y.BaseFee,
		TechFee:                y.TechFee,
		IncentiveFee:           y.IncentiveFee,
		TotalManagementFees:    y.TotalManagementFees,
		TakeHomeProfit:         y.TakeHomeProfit,
		ProfitMargin:           y.ProfitMargin,
		ROIBeforeManagement:    y.ROIBeforeManagement,
		ROIAfterManagement:     y.ROIAfterManagement,
	}
}

// reportFilename turns a scenario name into a safe attachment filename.
func reportFilename(name string) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		case r == ' ', r == '-', r == '_':
			return '-'
		default:
			return -1
		}
	}, name)
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "scenario"
	}
	return fmt.Sprintf("%s-projection.csv", slug)
}
