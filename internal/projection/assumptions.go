// Package projection computes ten-year financial projections for a hospitality
// property investment. It is a pure package: no I/O, no shared state, and the
// same input always produces the same output. Assumptions go in, an ordered
// sequence of yearly records and an aggregate summary come out.
package projection

// Horizon is the number of projection years.
const Horizon = 10

// StepCount is the number of occupancy step entries (years 2 through Horizon).
const StepCount = Horizon - 1

// Assumptions is the validated input describing an investment. It is treated
// as read-only for the duration of a computation; all percentage fields are
// expressed as whole percents (55 means 55%).
type Assumptions struct {
	InitialInvestment float64
	Keys              int
	PurchaseYear      int
	PurchaseMonth     int // 1..12

	// Year-1 bases.
	Y1Occupancy float64 // percent
	Y1ADR       float64
	Y1FB        float64
	Y1Spa       float64
	Y1OOD       float64 // other operating departments
	Y1Misc      float64

	// OccupancySteps holds percentage-point deltas applied in years 2..10.
	// A nil entry means "use the caller-supplied default step"; zero means an
	// explicit step of zero. The two are not the same thing.
	OccupancySteps [StepCount]*float64

	// Annual growth rates, percent.
	ADRGrowth     float64
	FBGrowth      float64
	SpaGrowth     float64
	CAMGrowth     float64
	BaseFeeGrowth float64
	TechFeeGrowth float64

	// Direct cost ratios, percent of the matching revenue category.
	RoomsCostPct float64
	FBCostPct    float64
	SpaCostPct   float64
	OODCostPct   float64
	MiscCostPct  float64
	UtilitiesPct float64 // percent of total revenue

	// Undistributed expense ratios, percent of total revenue.
	AdminPct       float64
	SalesPct       float64
	MaintenancePct float64

	// Management fee bases (year-1 absolute amounts) and rates.
	Y1CAM           float64
	Y1BaseFee       float64
	Y1TechFee       float64
	IncentiveFeePct float64 // percent of GOP

	// Readiness. When the property is not ready at purchase, ReadyYear and
	// ReadyMonth give the date operations begin; ReadyYear == 0 means no
	// ready date was supplied.
	PropertyReady bool
	ReadyYear     int
	ReadyMonth    int
}

// Year is one row of the projection, immutable once produced. Records are
// ordered by Year (1..Horizon) with CalendarYear = PurchaseYear + Year - 1.
// Every percent and margin field is 0 whenever its denominator is 0.
type Year struct {
	Year         int `json:"year"`
	CalendarYear int `json:"calendar_year"`
	Keys         int `json:"keys"`

	Occupancy         float64 `json:"occupancy"`
	OccupancyIncrease float64 `json:"occupancy_increase"`
	ADR               float64 `json:"adr"`
	ADRGrowth         float64 `json:"adr_growth"`
	RevPAR            float64 `json:"revpar"`
	TRevPAR           float64 `json:"trevpar"`

	RoomsRevenue    float64 `json:"rooms_revenue"`
	RoomsRevenuePct float64 `json:"rooms_revenue_pct"`
	FBRevenue       float64 `json:"fb_revenue"`
	FBRevenuePct    float64 `json:"fb_revenue_pct"`
	SpaRevenue      float64 `json:"spa_revenue"`
	SpaRevenuePct   float64 `json:"spa_revenue_pct"`
	OODRevenue      float64 `json:"ood_revenue"`
	OODRevenuePct   float64 `json:"ood_revenue_pct"`
	MiscRevenue     float64 `json:"misc_revenue"`
	MiscRevenuePct  float64 `json:"misc_revenue_pct"`
	TotalRevenue    float64 `json:"total_revenue"`
	RevenueGrowth   float64 `json:"revenue_growth"`

	RoomsCost          float64 `json:"rooms_cost"`
	FBCost             float64 `json:"fb_cost"`
	SpaCost            float64 `json:"spa_cost"`
	OODCost            float64 `json:"ood_cost"`
	MiscCost           float64 `json:"misc_cost"`
	UtilitiesCost      float64 `json:"utilities_cost"`
	TotalOperatingCost float64 `json:"total_operating_cost"`
	OperatingCostPct   float64 `json:"operating_cost_pct"`

	AdminCost              float64 `json:"admin_cost"`
	SalesCost              float64 `json:"sales_cost"`
	MaintenanceCost        float64 `json:"maintenance_cost"`
	TotalUndistributedCost float64 `json:"total_undistributed_cost"`

	GOP       float64 `json:"gop"`
	GOPMargin float64 `json:"gop_margin"`

	CAMFee              float64 `json:"cam_fee"`
	CAMFeePct           float64 `json:"cam_fee_pct"`
	BaseFee             float64 `json:"base_fee"`
	BaseFeePct          float64 `json:"base_fee_pct"`
	TechFee             float64 `json:"tech_fee"`
	TechFeePct          float64 `json:"tech_fee_pct"`
	IncentiveFee        float64 `json:"incentive_fee"`
	IncentiveFeePct     float64 `json:"incentive_fee_pct"`
	TotalManagementFees float64 `json:"total_management_fees"`

	TakeHomeProfit      float64 `json:"take_home_profit"`
	ProfitMargin        float64 `json:"profit_margin"`
	ROIBeforeManagement float64 `json:"roi_before_management"`
	ROIAfterManagement  float64 `json:"roi_after_management"`
}
