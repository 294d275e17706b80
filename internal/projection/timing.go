package projection

// OperationalFactor returns the fraction of calendarYear during which the
// property generates revenue, in [0, 1].
//
// Years before the purchase year are always 0. A property that is ready at
// purchase is prorated from the purchase month in the purchase year and fully
// operational after that. A property with a later ready date is 0 until the
// ready year, prorated from the ready month in the ready year, and then falls
// back to the purchase-date rule — so the first operational year is prorated
// by exactly one of the two dates, never both.
func OperationalFactor(a Assumptions, calendarYear int) float64 {
	if calendarYear < a.PurchaseYear {
		return 0
	}

	if !a.PropertyReady && a.ReadyYear != 0 {
		switch {
		case calendarYear < a.ReadyYear:
			return 0
		case calendarYear == a.ReadyYear:
			return remainderOfYear(a.ReadyMonth)
		}
		// Years past the ready year use the purchase-date rule below.
	}

	if calendarYear == a.PurchaseYear {
		return remainderOfYear(a.PurchaseMonth)
	}
	return 1
}

// LeaseFactor returns the fraction of calendarYear for which lease-linked
// management fees (CAM, base, tech) are billed. Fees run from the purchase
// date regardless of when the property becomes operational, so this uses the
// purchase-date proration rule only.
func LeaseFactor(a Assumptions, calendarYear int) float64 {
	switch {
	case calendarYear < a.PurchaseYear:
		return 0
	case calendarYear == a.PurchaseYear:
		return remainderOfYear(a.PurchaseMonth)
	}
	return 1
}

// remainderOfYear returns the fraction of a calendar year remaining from the
// given month through December, inclusive.
func remainderOfYear(month int) float64 {
	return float64(13-month) / 12
}
