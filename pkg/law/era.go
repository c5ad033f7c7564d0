// Package law provides the core domain types for the Japanese statute
// corpus: era-calendar dates, assembled law records, and per-revision
// patch metadata.
package law

import "fmt"

// Era is a named epoch of the Japanese calendar.
type Era string

const (
	EraMeiji  Era = "Meiji"
	EraTaisho Era = "Taisho"
	EraShowa  Era = "Showa"
	EraHeisei Era = "Heisei"
	EraReiwa  Era = "Reiwa"
)

// eraRanks assigns explicit chronological ordinals to each era.
// Ordering is semantic, not declaration order: a future era appended
// out of position must still compare correctly.
var eraRanks = map[Era]int{
	EraMeiji:  1,
	EraTaisho: 2,
	EraShowa:  3,
	EraHeisei: 4,
	EraReiwa:  5,
}

// Rank returns the chronological ordinal of the era (Meiji=1 through
// Reiwa=5), or 0 for an unrecognized era.
func (e Era) Rank() int {
	return eraRanks[e]
}

// Valid reports whether e is one of the five recognized eras.
func (e Era) Valid() bool {
	return eraRanks[e] != 0
}

// ParseEra matches a string against the five recognized era names.
// The match is exact and case-sensitive.
func ParseEra(value string) (Era, bool) {
	era := Era(value)
	return era, era.Valid()
}

// eraOffsets maps each era to the difference between a Gregorian year
// and the era-relative year: Gregorian = offset + era year.
var eraOffsets = map[Era]int{
	EraMeiji:  1867,
	EraTaisho: 1911,
	EraShowa:  1925,
	EraHeisei: 1988,
	EraReiwa:  2018,
}

// eraBounds holds the inclusive start and end of each era's run as
// year*10000 + month*100 + day keys, in chronological order. The first
// day of a new era belongs to the new era, not the old one.
var eraBounds = []struct {
	era   Era
	start int
	end   int // 0 = open-ended
}{
	{EraMeiji, 18681023, 19120729},
	{EraTaisho, 19120730, 19261224},
	{EraShowa, 19261225, 19890107},
	{EraHeisei, 19890108, 20190430},
	{EraReiwa, 20190501, 0},
}

// DateOutOfRangeError reports a Gregorian date outside the supported
// era table (anything before the start of Meiji).
type DateOutOfRangeError struct {
	Year  int
	Month int
	Day   int
}

func (e *DateOutOfRangeError) Error() string {
	return fmt.Sprintf("date %04d-%02d-%02d precedes the supported era table", e.Year, e.Month, e.Day)
}

// EraToAD converts an era-relative year to a Gregorian year.
func EraToAD(era Era, year int) int {
	return eraOffsets[era] + year
}

// ADToEra resolves a full Gregorian date to its era and era-relative
// year. Dates before 1868-10-23 are unsupported and return a
// DateOutOfRangeError rather than matching the first era.
func ADToEra(year, month, day int) (Era, int, error) {
	key := year*10000 + month*100 + day
	for _, bound := range eraBounds {
		if key < bound.start {
			break
		}
		if bound.end == 0 || key <= bound.end {
			return bound.era, year - eraOffsets[bound.era], nil
		}
	}
	return "", 0, &DateOutOfRangeError{Year: year, Month: month, Day: day}
}
