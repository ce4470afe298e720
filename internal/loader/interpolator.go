package loader

import (
	"math"
	"time"
)

// Sample is one interpolation step: the percent displayed elapsed into a run
// from start to end over d, and the completed fraction in [0, 1]. A
// non-positive d completes immediately.
func Sample(start, end int, elapsed, d time.Duration) (int, float64) {
	fraction := 1.0
	if d > 0 {
		fraction = math.Min(float64(elapsed)/float64(d), 1)
	}
	if fraction < 0 {
		fraction = 0
	}
	displayed := int(math.Floor(float64(start) + float64(end-start)*fraction))
	return displayed, fraction
}

// Interpolator animates the percent display across frames. Each Animate call
// takes a new generation; a frame chain belonging to an older generation stops
// without writing.
type Interpolator struct {
	sched Scheduler
	meter Meter

	generation uint64
	displayed  int
	running    bool
}

// NewInterpolator returns an interpolator writing to meter. meter may be nil.
func NewInterpolator(sched Scheduler, meter Meter) *Interpolator {
	return &Interpolator{sched: sched, meter: meter}
}

// Animate starts a run from start to end over d. The first sample is taken
// synchronously; further samples follow on each frame until the fraction
// reaches 1.
func (ip *Interpolator) Animate(start, end int, d time.Duration) {
	ip.generation++
	gen := ip.generation
	began := ip.sched.Now()
	ip.running = true

	var step func()
	step = func() {
		if gen != ip.generation {
			return
		}
		displayed, fraction := Sample(start, end, ip.sched.Now().Sub(began), d)
		ip.displayed = displayed
		if ip.meter != nil {
			ip.meter.SetPercent(displayed)
		}
		if fraction < 1 {
			ip.sched.RequestFrame(step)
			return
		}
		ip.running = false
	}
	step()
}

// Displayed returns the last percent written.
func (ip *Interpolator) Displayed() int {
	return ip.displayed
}

// Running reports whether the current run still has frames pending.
func (ip *Interpolator) Running() bool {
	return ip.running
}

// Generation returns the token of the current run.
func (ip *Interpolator) Generation() uint64 {
	return ip.generation
}
