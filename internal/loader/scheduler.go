package loader

import (
	"container/heap"
	"context"
	"sync"
	"time"
)

// Scheduler is the host runtime: one-shot delayed callbacks plus per-frame
// refresh callbacks, all delivered on a single goroutine.
type Scheduler interface {
	Now() time.Time
	// AfterFunc runs fn once, d after the call.
	AfterFunc(d time.Duration, fn func())
	// RequestFrame runs fn once on the next display refresh.
	RequestFrame(fn func())
}

// DefaultFrameInterval is roughly 60 refreshes per second.
const DefaultFrameInterval = 16 * time.Millisecond

type timer struct {
	at  time.Time
	seq uint64
	fn  func()
}

// timerQueue orders by deadline, then by registration order.
type timerQueue []*timer

func (q timerQueue) Len() int { return len(q) }
func (q timerQueue) Less(i, j int) bool {
	if q[i].at.Equal(q[j].at) {
		return q[i].seq < q[j].seq
	}
	return q[i].at.Before(q[j].at)
}
func (q timerQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *timerQueue) Push(x any)   { *q = append(*q, x.(*timer)) }
func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return t
}

// Loop is the production Scheduler. Registration is safe from any goroutine;
// callbacks only ever run inside Run.
type Loop struct {
	frameInterval time.Duration

	mu        sync.Mutex
	timers    timerQueue
	seq       uint64
	frames    []func()
	posted    []func()
	lastFrame time.Time

	wake chan struct{}
}

// NewLoop returns a loop refreshing frames every interval. A non-positive
// interval uses DefaultFrameInterval.
func NewLoop(interval time.Duration) *Loop {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return &Loop{
		frameInterval: interval,
		wake:          make(chan struct{}, 1),
	}
}

func (l *Loop) Now() time.Time {
	return time.Now()
}

// FrameInterval returns the refresh period.
func (l *Loop) FrameInterval() time.Duration {
	return l.frameInterval
}

func (l *Loop) AfterFunc(d time.Duration, fn func()) {
	l.mu.Lock()
	l.seq++
	heap.Push(&l.timers, &timer{at: time.Now().Add(d), seq: l.seq, fn: fn})
	l.mu.Unlock()
	l.signal()
}

func (l *Loop) RequestFrame(fn func()) {
	l.mu.Lock()
	l.frames = append(l.frames, fn)
	l.mu.Unlock()
	l.signal()
}

// Post runs fn on the loop goroutine as soon as possible.
func (l *Loop) Post(fn func()) {
	l.mu.Lock()
	l.posted = append(l.posted, fn)
	l.mu.Unlock()
	l.signal()
}

func (l *Loop) signal() {
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Run dispatches callbacks until ctx is done. Pending callbacks are dropped
// when it returns.
func (l *Loop) Run(ctx context.Context) error {
	wait := time.NewTimer(time.Hour)
	defer wait.Stop()

	for {
		l.runPosted()
		now := time.Now()
		l.runTimers(now)
		l.runFrame(now)

		d, ok := l.nextDeadline(time.Now())
		if !ok {
			d = time.Hour
		}
		if !wait.Stop() {
			select {
			case <-wait.C:
			default:
			}
		}
		wait.Reset(d)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.wake:
		case <-wait.C:
		}
	}
}

func (l *Loop) runPosted() {
	l.mu.Lock()
	posted := l.posted
	l.posted = nil
	l.mu.Unlock()

	for _, fn := range posted {
		fn()
	}
}

func (l *Loop) runTimers(now time.Time) {
	for {
		l.mu.Lock()
		if len(l.timers) == 0 || l.timers[0].at.After(now) {
			l.mu.Unlock()
			return
		}
		t := heap.Pop(&l.timers).(*timer)
		l.mu.Unlock()
		t.fn()
	}
}

// runFrame flushes the frame queue once per interval. Callbacks requested
// while the frame runs wait for the next one.
func (l *Loop) runFrame(now time.Time) {
	l.mu.Lock()
	if len(l.frames) == 0 || now.Before(l.lastFrame.Add(l.frameInterval)) {
		l.mu.Unlock()
		return
	}
	frames := l.frames
	l.frames = nil
	l.lastFrame = now
	l.mu.Unlock()

	for _, fn := range frames {
		fn()
	}
}

func (l *Loop) nextDeadline(now time.Time) (time.Duration, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.posted) > 0 {
		return 0, true
	}
	var next time.Time
	if len(l.timers) > 0 {
		next = l.timers[0].at
	}
	if len(l.frames) > 0 {
		frameAt := l.lastFrame.Add(l.frameInterval)
		if next.IsZero() || frameAt.Before(next) {
			next = frameAt
		}
	}
	if next.IsZero() {
		return 0, false
	}
	if d := next.Sub(now); d > 0 {
		return d, true
	}
	return 0, true
}
