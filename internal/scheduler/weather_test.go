package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSimulatedSuitability_Pure(t *testing.T) {
	date := time.Date(2025, 8, 3, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, SimulatedSuitability(date), SimulatedSuitability(date))
}

func TestSimulatedSuitability_SeedFormula(t *testing.T) {
	// (dayOfYear*13 + year) mod 10, suitable iff < 7.
	cases := []struct {
		date time.Time
		want bool
	}{
		{time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), (1*13+2025)%10 < 7},
		{time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC), (185*13+2025)%10 < 7},
		{time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), (366*13+2024)%10 < 7},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, SimulatedSuitability(tc.date), tc.date.Format("2006-01-02"))
	}
}

func TestSimulatedSuitability_RoughlySeventyPercent(t *testing.T) {
	suitable := 0
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 365; i++ {
		if SimulatedSuitability(start.AddDate(0, 0, i)) {
			suitable++
		}
	}
	assert.InDelta(t, 0.7, float64(suitable)/365, 0.05)
}

func TestOutlook_FirstTwoDaysUseObservation(t *testing.T) {
	start := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	isGood := Outlook(start, false)

	assert.False(t, isGood(start))
	assert.False(t, isGood(start.AddDate(0, 0, 1)))

	// Day three onward is purely simulated, regardless of the current flag.
	day3 := start.AddDate(0, 0, 2)
	assert.Equal(t, SimulatedSuitability(day3), isGood(day3))
}

func TestOutlook_SuitableObservation(t *testing.T) {
	start := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	isGood := Outlook(start, true)

	assert.True(t, isGood(start))
	assert.True(t, isGood(start.AddDate(0, 0, 1)))
}
