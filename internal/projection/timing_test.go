package projection

import "testing"

func TestOperationalFactor(t *testing.T) {
	tests := []struct {
		name     string
		a        Assumptions
		year     int
		expected float64
	}{
		{
			name:     "before_purchase_year",
			a:        Assumptions{PurchaseYear: 2025, PurchaseMonth: 1, PropertyReady: true},
			year:     2024,
			expected: 0,
		},
		{
			name:     "ready_january_purchase_full_year",
			a:        Assumptions{PurchaseYear: 2025, PurchaseMonth: 1, PropertyReady: true},
			year:     2025,
			expected: 1,
		},
		{
			name:     "ready_july_purchase_half_year",
			a:        Assumptions{PurchaseYear: 2025, PurchaseMonth: 7, PropertyReady: true},
			year:     2025,
			expected: 0.5,
		},
		{
			name:     "ready_year_after_purchase_is_full",
			a:        Assumptions{PurchaseYear: 2025, PurchaseMonth: 7, PropertyReady: true},
			year:     2026,
			expected: 1,
		},
		{
			name:     "not_ready_before_ready_year",
			a:        Assumptions{PurchaseYear: 2025, PurchaseMonth: 1, ReadyYear: 2027, ReadyMonth: 4},
			year:     2026,
			expected: 0,
		},
		{
			name:     "not_ready_ready_year_prorated",
			a:        Assumptions{PurchaseYear: 2025, PurchaseMonth: 1, ReadyYear: 2027, ReadyMonth: 4},
			year:     2027,
			expected: 0.75,
		},
		{
			name:     "not_ready_after_ready_year_full",
			a:        Assumptions{PurchaseYear: 2025, PurchaseMonth: 6, ReadyYear: 2027, ReadyMonth: 4},
			year:     2028,
			expected: 1,
		},
		{
			name:     "not_ready_no_ready_date_uses_purchase_rule",
			a:        Assumptions{PurchaseYear: 2025, PurchaseMonth: 10},
			year:     2025,
			expected: 0.25,
		},
		{
			name:     "ready_same_month_as_purchase_single_proration",
			a:        Assumptions{PurchaseYear: 2025, PurchaseMonth: 7, ReadyYear: 2025, ReadyMonth: 7},
			year:     2025,
			expected: 0.5,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := OperationalFactor(tc.a, tc.year)
			if got != tc.expected {
				t.Errorf("expected factor %v for %d, got %v", tc.expected, tc.year, got)
			}
		})
	}
}

func TestLeaseFactor(t *testing.T) {
	// Fees follow the purchase date even when the property is not ready yet.
	a := Assumptions{PurchaseYear: 2025, PurchaseMonth: 1, ReadyYear: 2026, ReadyMonth: 7}

	t.Run("before_purchase", func(t *testing.T) {
		if got := LeaseFactor(a, 2024); got != 0 {
			t.Errorf("expected 0, got %v", got)
		}
	})

	t.Run("purchase_year_ignores_ready_date", func(t *testing.T) {
		if got := LeaseFactor(a, 2025); got != 1 {
			t.Errorf("expected 1 for january purchase, got %v", got)
		}
	})

	t.Run("mid_year_purchase_prorated", func(t *testing.T) {
		b := a
		b.PurchaseMonth = 10
		if got := LeaseFactor(b, 2025); got != 0.25 {
			t.Errorf("expected 0.25, got %v", got)
		}
	})

	t.Run("later_years_full", func(t *testing.T) {
		if got := LeaseFactor(a, 2026); got != 1 {
			t.Errorf("expected 1, got %v", got)
		}
	})
}
