package law

import "testing"

func intPtr(v int) *int {
	return &v
}

func TestNewDate(t *testing.T) {
	date := NewDate(EraMeiji, 5, nil, nil)
	if date.ADYear != 1872 {
		t.Errorf("ADYear: got %d, want 1872", date.ADYear)
	}
	if date.Month != nil || date.Day != nil {
		t.Errorf("expected absent month and day, got %v / %v", date.Month, date.Day)
	}
}

func TestDateFromAD(t *testing.T) {
	date, err := DateFromAD(2019, 5, 1)
	if err != nil {
		t.Fatalf("DateFromAD failed: %v", err)
	}
	if date.Era != EraReiwa || date.Year != 1 || date.ADYear != 2019 {
		t.Errorf("got %s, want Reiwa 1 (2019)", date)
	}
	if date.Month == nil || *date.Month != 5 || date.Day == nil || *date.Day != 1 {
		t.Errorf("expected full date, got month=%v day=%v", date.Month, date.Day)
	}

	if _, err := DateFromAD(1868, 10, 22); err == nil {
		t.Error("expected out-of-range error for date before Meiji")
	}
}

func TestDateCompare(t *testing.T) {
	cases := []struct {
		name     string
		a        Date
		b        Date
		expected int
	}{
		{
			name:     "different_years",
			a:        NewDate(EraHeisei, 12, intPtr(1), intPtr(1)),
			b:        NewDate(EraHeisei, 22, intPtr(1), intPtr(1)),
			expected: -1,
		},
		{
			name:     "same_year_different_months",
			a:        NewDate(EraReiwa, 1, intPtr(6), intPtr(1)),
			b:        NewDate(EraReiwa, 1, intPtr(5), intPtr(1)),
			expected: 1,
		},
		{
			name:     "same_month_different_days",
			a:        NewDate(EraReiwa, 1, intPtr(5), intPtr(1)),
			b:        NewDate(EraReiwa, 1, intPtr(5), intPtr(2)),
			expected: -1,
		},
		{
			name:     "identical",
			a:        NewDate(EraShowa, 30, intPtr(3), intPtr(15)),
			b:        NewDate(EraShowa, 30, intPtr(3), intPtr(15)),
			expected: 0,
		},
		{
			// A date with no month sorts before any date in the same
			// year that has one: the order stays total for partially
			// specified dates.
			name:     "missing_month_sorts_minimal",
			a:        NewDate(EraReiwa, 1, nil, nil),
			b:        NewDate(EraReiwa, 1, intPtr(1), intPtr(1)),
			expected: -1,
		},
		{
			name:     "missing_day_sorts_minimal",
			a:        NewDate(EraReiwa, 1, intPtr(5), nil),
			b:        NewDate(EraReiwa, 1, intPtr(5), intPtr(1)),
			expected: -1,
		},
		{
			name:     "both_missing_equal",
			a:        NewDate(EraReiwa, 1, nil, nil),
			b:        NewDate(EraReiwa, 1, nil, nil),
			expected: 0,
		},
		{
			// Era years in different eras compare through the derived
			// Gregorian year.
			name:     "cross_era",
			a:        NewDate(EraShowa, 64, intPtr(1), intPtr(5)),
			b:        NewDate(EraHeisei, 1, intPtr(1), intPtr(10)),
			expected: -1,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Compare(tc.b); got != tc.expected {
				t.Errorf("Compare(%s, %s): got %d, want %d", tc.a, tc.b, got, tc.expected)
			}
			if got := tc.b.Compare(tc.a); got != -tc.expected {
				t.Errorf("Compare(%s, %s): got %d, want %d", tc.b, tc.a, got, -tc.expected)
			}
		})
	}
}

func TestDateBefore(t *testing.T) {
	earlier := NewDate(EraHeisei, 12, intPtr(1), intPtr(1))
	later := NewDate(EraHeisei, 22, intPtr(1), intPtr(1))
	if !earlier.Before(later) {
		t.Error("expected earlier.Before(later)")
	}
	if later.Before(earlier) {
		t.Error("unexpected later.Before(earlier)")
	}
}

func TestDateString(t *testing.T) {
	cases := []struct {
		name     string
		date     Date
		expected string
	}{
		{name: "full", date: NewDate(EraReiwa, 1, intPtr(5), intPtr(1)), expected: "Reiwa 1 (2019-05-01)"},
		{name: "year_month", date: NewDate(EraReiwa, 1, intPtr(5), nil), expected: "Reiwa 1 (2019-05)"},
		{name: "year_only", date: NewDate(EraMeiji, 5, nil, nil), expected: "Meiji 5 (1872)"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.date.String(); got != tc.expected {
				t.Errorf("String: got %q, want %q", got, tc.expected)
			}
		})
	}
}
