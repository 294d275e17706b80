package projection

// Engine produces the ten-year projection for a set of assumptions. The only
// configuration it carries is the default occupancy step used for years whose
// step entry is unset; that default always comes from the caller.
type Engine struct {
	defaultOccupancyStep float64
}

// NewEngine creates an Engine with the given default occupancy step
// (percentage points, applied in years 2..10 when no explicit step is set).
func NewEngine(defaultOccupancyStep float64) *Engine {
	return &Engine{defaultOccupancyStep: defaultOccupancyStep}
}

// carry holds the unprorated bases each year compounds from. Growth always
// compounds on these, never on the prorated figures that appear in the output
// records.
type carry struct {
	operational  bool // the property has been operational in some year so far
	occupancy    float64
	adr          float64
	fb           float64
	spa          float64
	ood          float64
	misc         float64
	cam          float64
	baseFee      float64
	techFee      float64
	totalRevenue float64 // prorated, for year-over-year growth
}

// Compute returns the ordered sequence of exactly Horizon yearly records for
// the given assumptions. It is deterministic and side-effect free; the
// returned slice is freshly allocated on every call. No validation or bounds
// clamping is performed: out-of-range inputs propagate arithmetically, and
// every ratio with a zero denominator resolves to 0 rather than NaN or Inf.
func (e *Engine) Compute(a Assumptions) []Year {
	out := make([]Year, 0, Horizon)
	var prev carry

	for i := 0; i < Horizon; i++ {
		calendarYear := a.PurchaseYear + i
		factor := OperationalFactor(a, calendarYear)
		feeFactor := LeaseFactor(a, calendarYear)
		operational := factor > 0

		// Occupancy steps up on the unprorated prior-year base.
		var occBase, step float64
		if i == 0 {
			occBase = a.Y1Occupancy
		} else {
			step = e.defaultOccupancyStep
			if s := a.OccupancySteps[i-1]; s != nil {
				step = *s
			}
			occBase = prev.occupancy + step
		}
		occupancy := occBase * factor

		// ADR is 0 until the first operational year, starts at the year-1
		// base with zero growth, and compounds every operational year after.
		var adr, adrGrowth float64
		switch {
		case !operational:
			adr = 0
		case !prev.operational:
			adr = a.Y1ADR
		default:
			adrGrowth = a.ADRGrowth
			adr = prev.adr * (1 + a.ADRGrowth/100)
		}

		revPAR := adr * occupancy / 100
		roomsRevenue := float64(a.Keys) * 365 * occupancy / 100 * adr

		// Non-room bases compound before proration. OOD and misc carry no
		// growth input and stay at their year-1 bases.
		fbBase := a.Y1FB
		spaBase := a.Y1Spa
		if i > 0 {
			fbBase = prev.fb * (1 + a.FBGrowth/100)
			spaBase = prev.spa * (1 + a.SpaGrowth/100)
		}
		oodBase := a.Y1OOD
		miscBase := a.Y1Misc

		fbRevenue := fbBase * factor
		spaRevenue := spaBase * factor
		oodRevenue := oodBase * factor
		miscRevenue := miscBase * factor

		totalRevenue := roomsRevenue + fbRevenue + spaRevenue + oodRevenue + miscRevenue

		var revenueGrowth float64
		if i > 0 && prev.totalRevenue != 0 {
			revenueGrowth = (totalRevenue - prev.totalRevenue) / prev.totalRevenue * 100
		}

		trevPAR := ratio(totalRevenue, float64(a.Keys)*365)

		// Direct costs.
		roomsCost := roomsRevenue * a.RoomsCostPct / 100
		fbCost := fbRevenue * a.FBCostPct / 100
		spaCost := spaRevenue * a.SpaCostPct / 100
		oodCost := oodRevenue * a.OODCostPct / 100
		miscCost := miscRevenue * a.MiscCostPct / 100
		utilitiesCost := totalRevenue * a.UtilitiesPct / 100
		totalOperatingCost := roomsCost + fbCost + spaCost + oodCost + miscCost + utilitiesCost

		// Undistributed expenses.
		adminCost := totalRevenue * a.AdminPct / 100
		salesCost := totalRevenue * a.SalesPct / 100
		maintenanceCost := totalRevenue * a.MaintenancePct / 100
		totalUndistributedCost := adminCost + salesCost + maintenanceCost

		gop := totalRevenue - totalOperatingCost - totalUndistributedCost

		// Lease-linked fees compound from their year-1 bases and are prorated
		// by the purchase-date factor only. The incentive fee is a share of
		// the already-prorated GOP and is never prorated itself.
		camBase := a.Y1CAM
		baseFeeBase := a.Y1BaseFee
		techFeeBase := a.Y1TechFee
		if i > 0 {
			camBase = prev.cam * (1 + a.CAMGrowth/100)
			baseFeeBase = prev.baseFee * (1 + a.BaseFeeGrowth/100)
			techFeeBase = prev.techFee * (1 + a.TechFeeGrowth/100)
		}
		camFee := camBase * feeFactor
		baseFee := baseFeeBase * feeFactor
		techFee := techFeeBase * feeFactor
		incentiveFee := gop * a.IncentiveFeePct / 100
		totalManagementFees := camFee + baseFee + techFee + incentiveFee

		takeHomeProfit := gop - totalManagementFees

		out = append(out, Year{
			Year:         i + 1,
			CalendarYear: calendarYear,
			Keys:         a.Keys,

			Occupancy:         occupancy,
			OccupancyIncrease: step,
			ADR:               adr,
			ADRGrowth:         adrGrowth,
			RevPAR:            revPAR,
			TRevPAR:           trevPAR,

			RoomsRevenue:    roomsRevenue,
			RoomsRevenuePct: ratio(roomsRevenue, totalRevenue) * 100,
			FBRevenue:       fbRevenue,
			FBRevenuePct:    ratio(fbRevenue, totalRevenue) * 100,
			SpaRevenue:      spaRevenue,
			SpaRevenuePct:   ratio(spaRevenue, totalRevenue) * 100,
			OODRevenue:      oodRevenue,
			OODRevenuePct:   ratio(oodRevenue, totalRevenue) * 100,
			MiscRevenue:     miscRevenue,
			MiscRevenuePct:  ratio(miscRevenue, totalRevenue) * 100,
			TotalRevenue:    totalRevenue,
			RevenueGrowth:   revenueGrowth,

			RoomsCost:          roomsCost,
			FBCost:             fbCost,
			SpaCost:            spaCost,
			OODCost:            oodCost,
			MiscCost:           miscCost,
			UtilitiesCost:      utilitiesCost,
			TotalOperatingCost: totalOperatingCost,
			OperatingCostPct:   ratio(totalOperatingCost, totalRevenue) * 100,

			AdminCost:              adminCost,
			SalesCost:              salesCost,
			MaintenanceCost:        maintenanceCost,
			TotalUndistributedCost: totalUndistributedCost,

			GOP:       gop,
			GOPMargin: ratio(gop, totalRevenue) * 100,

			CAMFee:              camFee,
			CAMFeePct:           ratio(camFee, totalRevenue) * 100,
			BaseFee:             baseFee,
			BaseFeePct:          ratio(baseFee, totalRevenue) * 100,
			TechFee:             techFee,
			TechFeePct:          ratio(techFee, totalRevenue) * 100,
			IncentiveFee:        incentiveFee,
			IncentiveFeePct:     ratio(incentiveFee, totalRevenue) * 100,
			TotalManagementFees: totalManagementFees,

			TakeHomeProfit:      takeHomeProfit,
			ProfitMargin:        ratio(takeHomeProfit, totalRevenue) * 100,
			ROIBeforeManagement: ratio(gop, a.InitialInvestment) * 100,
			ROIAfterManagement:  ratio(takeHomeProfit, a.InitialInvestment) * 100,
		})

		prev = carry{
			operational:  prev.operational || operational,
			occupancy:    occBase,
			adr:          adr,
			fb:           fbBase,
			spa:          spaBase,
			ood:          oodBase,
			misc:         miscBase,
			cam:          camBase,
			baseFee:      baseFeeBase,
			techFee:      techFeeBase,
			totalRevenue: totalRevenue,
		}
	}

	return out
}

// ratio divides num by den, returning 0 when the denominator is 0.
func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
