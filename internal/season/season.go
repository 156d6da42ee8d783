// Package season maps calendar dates onto school terms.
package season

import (
	"time"

	"github.com/fortuna/athena/internal/lookup"
)

// Classify returns the term in progress on t.
//
//	Sep 1  - Oct 9  Fall
//	Oct 10 - Mar 9  Winter
//	Mar 10 - May 31 Spring
//	Jun - Aug       Unknown
func Classify(t time.Time) lookup.Term {
	m, d := t.Month(), t.Day()
	switch {
	case m == time.September, m == time.October && d < 10:
		return lookup.Fall
	case m >= time.October, m <= time.February, m == time.March && d < 10:
		return lookup.Winter
	case m <= time.May:
		return lookup.Spring
	default:
		return lookup.Unknown
	}
}

// GameYear reconstructs the calendar year of a schedule row that only
// carries a month. School years run September to June, so a row in the
// autumn belongs to the year the school year started in.
func GameYear(today time.Time, target time.Month) int {
	year := today.Year()
	if today.Month() >= time.September {
		year++
	}
	if target >= time.September {
		year--
	}
	return year
}
