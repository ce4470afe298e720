// Package loadertest provides a virtual-time loader.Scheduler for tests.
package loadertest

import (
	"sort"
	"time"
)

// Epoch is the virtual time a new Scheduler starts at.
var Epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type timer struct {
	at  time.Time
	seq uint64
	fn  func()
}

// Scheduler runs callbacks only when Advance moves its clock. Frames fire on
// a fixed grid of FrameInterval from Epoch; timers due at the same instant as
// a frame run first.
type Scheduler struct {
	now           time.Time
	frameInterval time.Duration

	timers []timer
	seq    uint64
	frames []func()

	// Frames counts frame flushes that ran at least one callback.
	Frames int
}

// New returns a scheduler at Epoch. A non-positive interval uses 10ms.
func New(frameInterval time.Duration) *Scheduler {
	if frameInterval <= 0 {
		frameInterval = 10 * time.Millisecond
	}
	return &Scheduler{now: Epoch, frameInterval: frameInterval}
}

func (s *Scheduler) Now() time.Time {
	return s.now
}

// Elapsed returns virtual time since Epoch.
func (s *Scheduler) Elapsed() time.Duration {
	return s.now.Sub(Epoch)
}

func (s *Scheduler) AfterFunc(d time.Duration, fn func()) {
	if d < 0 {
		d = 0
	}
	s.seq++
	s.timers = append(s.timers, timer{at: s.now.Add(d), seq: s.seq, fn: fn})
	sort.SliceStable(s.timers, func(i, j int) bool {
		if s.timers[i].at.Equal(s.timers[j].at) {
			return s.timers[i].seq < s.timers[j].seq
		}
		return s.timers[i].at.Before(s.timers[j].at)
	})
}

func (s *Scheduler) RequestFrame(fn func()) {
	s.frames = append(s.frames, fn)
}

// PendingFrames is the number of callbacks waiting for the next frame.
func (s *Scheduler) PendingFrames() int {
	return len(s.frames)
}

// PendingTimers is the number of timers not yet fired.
func (s *Scheduler) PendingTimers() int {
	return len(s.timers)
}

// nextFrame is the first grid point strictly after now.
func (s *Scheduler) nextFrame() time.Time {
	since := s.now.Sub(Epoch)
	k := since/s.frameInterval + 1
	return Epoch.Add(k * s.frameInterval)
}

// Advance moves the clock forward by d, firing everything due on the way in
// time order.
func (s *Scheduler) Advance(d time.Duration) {
	target := s.now.Add(d)
	for {
		var (
			at      time.Time
			isFrame bool
		)
		if len(s.timers) > 0 {
			at = s.timers[0].at
		}
		if len(s.frames) > 0 {
			if f := s.nextFrame(); at.IsZero() || f.Before(at) {
				at, isFrame = f, true
			}
		}
		if at.IsZero() || at.After(target) {
			break
		}
		if at.After(s.now) {
			s.now = at
		}

		if isFrame {
			frames := s.frames
			s.frames = nil
			s.Frames++
			for _, fn := range frames {
				fn()
			}
			continue
		}
		t := s.timers[0]
		s.timers = s.timers[1:]
		t.fn()
	}
	s.now = target
}

// AdvanceTo moves the clock to Epoch+elapsed.
func (s *Scheduler) AdvanceTo(elapsed time.Duration) {
	if d := Epoch.Add(elapsed).Sub(s.now); d > 0 {
		s.Advance(d)
	}
}
