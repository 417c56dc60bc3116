package datapoint

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// clock is a package-level time source so tests can freeze time via SetClock.
// Production code uses the real clock; tests inject a fake for deterministic
// timestep selection.
var clock = clockwork.NewRealClock()

// SetClock swaps the time source used by timestep helpers. Pass nil to reset
// to real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}

// NearestTimestep returns the timestep closest to t. The second return value
// is false when steps is empty.
func NearestTimestep(steps []time.Time, t time.Time) (time.Time, bool) {
	if len(steps) == 0 {
		return time.Time{}, false
	}
	nearest := steps[0]
	best := absDuration(steps[0].Sub(t))
	for _, step := range steps[1:] {
		if d := absDuration(step.Sub(t)); d < best {
			best = d
			nearest = step
		}
	}
	return nearest, true
}

// MostRecentTimestep returns the timestep closest to the current time, as
// used to pick which forecast to fetch from a capabilities listing.
func MostRecentTimestep(steps []time.Time) (time.Time, bool) {
	return NearestTimestep(steps, clock.Now().UTC())
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}

// CurrentRep returns the three-hourly sample nearest the current time.
// The second return value is false for forecasts with no three-hourly reps,
// including daily-resolution ones.
func (f Forecast) CurrentRep() (ThreeHourlyForecastRep, bool) {
	var best ThreeHourlyForecastRep
	var bestDiff time.Duration
	found := false
	now := clock.Now().UTC()
	for _, p := range f.Periods {
		for _, r := range p.ThreeHourlyReps {
			d := absDuration(p.Date.Add(r.Offset).Sub(now))
			if !found || d < bestDiff {
				best, bestDiff, found = r, d, true
			}
		}
	}
	return best, found
}

// LatestRep returns the most recent observation in the feed. The second
// return value is false when the feed holds no reps.
func (o Observation) LatestRep() (ObservationRep, bool) {
	var best ObservationRep
	var bestAt time.Time
	found := false
	for _, p := range o.Periods {
		for _, r := range p.Reps {
			if at := p.Date.Add(r.Offset); !found || at.After(bestAt) {
				best, bestAt, found = r, at, true
			}
		}
	}
	return best, found
}
