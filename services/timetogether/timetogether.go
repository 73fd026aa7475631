package timetogether

import (
	"context"
	"math"
	"time"
)

// Approximate unit sizes in milliseconds. Calendar months and years are not
// fixed-length; this is a display-only breakdown, not a calendar-accurate one.
const (
	msPerSecond = 1000
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
	msPerDay    = 24 * msPerHour
	msPerMonth  = 30.44 * msPerDay
	msPerYear   = 365.25 * msPerDay
)

// Breakdown is the elapsed time since the anchor date, split into
// display units. All components are non-negative.
type Breakdown struct {
	Years   int `json:"years"`
	Months  int `json:"months"`
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// Between computes the breakdown of now - anchor by dividing the millisecond
// difference successively by each unit size and carrying the remainder down.
// If now is before the anchor the result is clamped to all zeros.
func Between(anchor, now time.Time) Breakdown {
	diff := float64(now.Sub(anchor).Milliseconds())
	if diff < 0 {
		return Breakdown{}
	}

	years := math.Floor(diff / msPerYear)
	diff = math.Mod(diff, msPerYear)

	months := math.Floor(diff / msPerMonth)
	diff = math.Mod(diff, msPerMonth)

	days := math.Floor(diff / msPerDay)
	diff = math.Mod(diff, msPerDay)

	hours := math.Floor(diff / msPerHour)
	diff = math.Mod(diff, msPerHour)

	minutes := math.Floor(diff / msPerMinute)
	diff = math.Mod(diff, msPerMinute)

	seconds := math.Floor(diff / msPerSecond)

	return Breakdown{
		Years:   int(years),
		Months:  int(months),
		Days:    int(days),
		Hours:   int(hours),
		Minutes: int(minutes),
		Seconds: int(seconds),
	}
}

// Since computes the breakdown against the current wall clock.
func Since(anchor time.Time) Breakdown {
	return Between(anchor, time.Now())
}

// Stream emits a fresh breakdown immediately and then once per interval,
// until ctx is cancelled. The returned channel is closed on cancellation so
// the ticker never outlives its consumer.
func Stream(ctx context.Context, anchor time.Time, interval time.Duration) <-chan Breakdown {
	ch := make(chan Breakdown, 1)
	go func() {
		defer close(ch)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		ch <- Since(anchor)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				select {
				case ch <- Since(anchor):
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return ch
}
