package loader_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/loader"
	"github.com/Zachkp/portfolio/internal/loader/loadertest"
)

type meterRecorder struct {
	values []int
}

func (m *meterRecorder) SetPercent(p int) { m.values = append(m.values, p) }

func (m *meterRecorder) last() int {
	if len(m.values) == 0 {
		return -1
	}
	return m.values[len(m.values)-1]
}

func TestSample(t *testing.T) {
	tests := []struct {
		name         string
		start, end   int
		elapsed, dur time.Duration
		want         int
		wantFraction float64
	}{
		{"start", 0, 25, 0, 3000 * time.Millisecond, 0, 0},
		{"halfway floors", 0, 25, 1500 * time.Millisecond, 3000 * time.Millisecond, 12, 0.5},
		{"end", 0, 25, 3000 * time.Millisecond, 3000 * time.Millisecond, 25, 1},
		{"past end clamps", 0, 25, 9000 * time.Millisecond, 3000 * time.Millisecond, 25, 1},
		{"zero duration", 25, 50, 0, 0, 50, 1},
		{"negative duration", 25, 50, 0, -time.Second, 50, 1},
		{"offset range", 50, 75, 2000 * time.Millisecond, 4000 * time.Millisecond, 62, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, fraction := loader.Sample(tt.start, tt.end, tt.elapsed, tt.dur)
			assert.Equal(t, tt.want, got)
			assert.InDelta(t, tt.wantFraction, fraction, 1e-9)
		})
	}
}

func TestInterpolator_AnimateOverFrames(t *testing.T) {
	sched := loadertest.New(10 * time.Millisecond)
	meter := &meterRecorder{}
	ip := loader.NewInterpolator(sched, meter)

	ip.Animate(0, 25, 3000*time.Millisecond)
	require.Equal(t, []int{0}, meter.values, "first sample is synchronous")
	assert.True(t, ip.Running())

	sched.AdvanceTo(1500 * time.Millisecond)
	assert.Equal(t, 12, meter.last())

	sched.AdvanceTo(3000 * time.Millisecond)
	assert.Equal(t, 25, meter.last())
	assert.False(t, ip.Running())
	assert.Zero(t, sched.PendingFrames(), "no refresh requested after the run completes")

	for i := 1; i < len(meter.values); i++ {
		assert.GreaterOrEqual(t, meter.values[i], meter.values[i-1])
	}
}

func TestInterpolator_ZeroDurationSingleStep(t *testing.T) {
	sched := loadertest.New(0)
	meter := &meterRecorder{}
	ip := loader.NewInterpolator(sched, meter)

	ip.Animate(0, 40, 0)

	assert.Equal(t, []int{40}, meter.values)
	assert.Zero(t, sched.PendingFrames())
	assert.Equal(t, 40, ip.Displayed())
}

func TestInterpolator_NewRunSupersedesOld(t *testing.T) {
	sched := loadertest.New(10 * time.Millisecond)
	meter := &meterRecorder{}
	ip := loader.NewInterpolator(sched, meter)

	ip.Animate(0, 50, time.Second)
	sched.Advance(200 * time.Millisecond)
	firstGen := ip.Generation()

	ip.Animate(60, 100, time.Second)
	assert.Greater(t, ip.Generation(), firstGen)
	mark := len(meter.values)

	sched.Advance(2 * time.Second)

	after := meter.values[mark-1:]
	require.NotEmpty(t, after)
	assert.Equal(t, 60, after[0])
	for i := 1; i < len(after); i++ {
		assert.GreaterOrEqual(t, after[i], after[i-1], "stale run must not write")
	}
	assert.Equal(t, 100, meter.last())
	assert.Zero(t, sched.PendingFrames())
}

func TestInterpolator_NilMeter(t *testing.T) {
	sched := loadertest.New(0)
	ip := loader.NewInterpolator(sched, nil)

	ip.Animate(0, 100, 50*time.Millisecond)
	sched.Advance(time.Second)

	assert.Equal(t, 100, ip.Displayed())
}
