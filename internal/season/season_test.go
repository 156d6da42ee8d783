package season

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fortuna/athena/internal/lookup"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestClassifyBoundaries(t *testing.T) {
	cases := []struct {
		name string
		day  time.Time
		want lookup.Term
	}{
		{"first of september", date(2024, time.September, 1), lookup.Fall},
		{"oct 9", date(2024, time.October, 9), lookup.Fall},
		{"oct 10", date(2024, time.October, 10), lookup.Winter},
		{"december", date(2024, time.December, 25), lookup.Winter},
		{"january", date(2025, time.January, 15), lookup.Winter},
		{"mar 9", date(2025, time.March, 9), lookup.Winter},
		{"mar 10", date(2025, time.March, 10), lookup.Spring},
		{"may 31", date(2025, time.May, 31), lookup.Spring},
		{"june", date(2025, time.June, 1), lookup.Unknown},
		{"august", date(2025, time.August, 31), lookup.Unknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.day))
		})
	}
}

func TestClassifyIsTotal(t *testing.T) {
	valid := map[lookup.Term]bool{
		lookup.Fall: true, lookup.Winter: true, lookup.Spring: true, lookup.Unknown: true,
	}
	// 2024 is a leap year so Feb 29 is covered
	for d := date(2024, time.January, 1); d.Year() == 2024; d = d.AddDate(0, 0, 1) {
		assert.True(t, valid[Classify(d)], d.Format("2006-01-02"))
	}
}

func TestGameYear(t *testing.T) {
	today := date(2024, time.November, 15)
	assert.Equal(t, 2024, GameYear(today, time.September))
	assert.Equal(t, 2025, GameYear(today, time.March))

	spring := date(2025, time.April, 2)
	assert.Equal(t, 2024, GameYear(spring, time.October))
	assert.Equal(t, 2025, GameYear(spring, time.February))
}
