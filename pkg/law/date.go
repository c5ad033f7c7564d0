package law

import "fmt"

// Date is a promulgation or revision date on the Japanese era
// calendar. Month and Day are optional and independently present;
// if Day is set, Month must be set too. ADYear is the derived
// Gregorian year.
type Date struct {
	ADYear int  `json:"ad_year"`
	Era    Era  `json:"era"`
	Year   int  `json:"year"`
	Month  *int `json:"month,omitempty"`
	Day    *int `json:"day,omitempty"`
}

// NewDate builds a Date from an era-relative year, deriving the
// Gregorian year from the era offset table.
func NewDate(era Era, year int, month, day *int) Date {
	return Date{
		ADYear: EraToAD(era, year),
		Era:    era,
		Year:   year,
		Month:  month,
		Day:    day,
	}
}

// DateFromAD builds a fully specified Date from a Gregorian date.
// It fails with a DateOutOfRangeError for dates before the era table.
func DateFromAD(year, month, day int) (Date, error) {
	era, eraYear, err := ADToEra(year, month, day)
	if err != nil {
		return Date{}, err
	}
	return Date{
		ADYear: year,
		Era:    era,
		Year:   eraYear,
		Month:  &month,
		Day:    &day,
	}, nil
}

// Compare orders two dates: first by Gregorian year, then month, then
// day. An absent month or day sorts as minimal, which makes the order
// total even for partially specified dates; a chain mixing full and
// partial dates therefore sorts deterministically. Returns -1, 0, or 1.
func (d Date) Compare(other Date) int {
	if d.ADYear != other.ADYear {
		return compareInt(d.ADYear, other.ADYear)
	}
	if c := compareInt(optValue(d.Month), optValue(other.Month)); c != 0 {
		return c
	}
	return compareInt(optValue(d.Day), optValue(other.Day))
}

// Before reports whether d orders strictly before other.
func (d Date) Before(other Date) bool {
	return d.Compare(other) < 0
}

// Equal reports whether the two dates have identical components.
func (d Date) Equal(other Date) bool {
	return d.Era == other.Era &&
		d.Year == other.Year &&
		d.ADYear == other.ADYear &&
		optValue(d.Month) == optValue(other.Month) &&
		optValue(d.Day) == optValue(other.Day)
}

// String renders the date as "Era Y" with month/day appended when
// present, e.g. "Heisei 31 (2019-04-30)".
func (d Date) String() string {
	switch {
	case d.Month != nil && d.Day != nil:
		return fmt.Sprintf("%s %d (%04d-%02d-%02d)", d.Era, d.Year, d.ADYear, *d.Month, *d.Day)
	case d.Month != nil:
		return fmt.Sprintf("%s %d (%04d-%02d)", d.Era, d.Year, d.ADYear, *d.Month)
	default:
		return fmt.Sprintf("%s %d (%04d)", d.Era, d.Year, d.ADYear)
	}
}

func optValue(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
