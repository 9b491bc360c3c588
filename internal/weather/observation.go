// Package weather is the boundary between the scheduler and live weather:
// it fetches the current observation for the home airport and reduces it to
// the single suitability boolean the scheduler consumes. The scheduler core
// never imports this package.
package weather

import "time"

// Student VFR training minimums. An observation at or better than all three
// is suitable for a training flight.
const (
	MinCeilingFt    = 3000
	MinVisibilitySM = 5.0
	MaxWindKt       = 15
)

// Observation is a current-conditions report for one location.
type Observation struct {
	Station      string
	CeilingFt    int
	VisibilitySM float64
	WindKt       int
	ObservedAt   time.Time
}

// Suitable applies the training-flight thresholds to an observation.
func Suitable(obs Observation) bool {
	return obs.CeilingFt >= MinCeilingFt &&
		obs.VisibilitySM >= MinVisibilitySM &&
		obs.WindKt <= MaxWindKt
}
