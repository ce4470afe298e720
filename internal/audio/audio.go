// Package audio plays the short beeps that mark loader stage transitions.
// Sound is optional: when the device cannot be opened every call is a no-op.
package audio

import (
	"errors"
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/loader"
)

const SampleRate = beep.SampleRate(44100)

const (
	StartGain = 0.1
	EndGain   = 0.01

	StageBaseFreq = 800.0
	StageStepFreq = 200.0
	StageBeep     = 100 * time.Millisecond
	LastStageBeep = 150 * time.Millisecond

	FinishFreq = 600.0
	FinishBeep = 300 * time.Millisecond
)

var ErrDisabled = errors.New("audio disabled")

// Capability reports whether a sound device is usable.
type Capability struct {
	Available bool
	Err       error
}

var (
	initOnce sync.Once
	initErr  error
)

// Probe opens the speaker unless audio is disabled in cfg.
func Probe(cfg *config.Config) Capability {
	if cfg == nil || !cfg.AudioEnabled {
		return Capability{Err: ErrDisabled}
	}
	initOnce.Do(func() {
		initErr = speaker.Init(SampleRate, SampleRate.N(time.Second/10))
	})
	if initErr != nil {
		return Capability{Err: fmt.Errorf("speaker init: %w", initErr)}
	}
	return Capability{Available: true}
}

// tone is a sine wave whose gain falls exponentially from StartGain to
// EndGain over its duration.
type tone struct {
	freq     float64
	phase    float64
	position int
	total    int
	rate     beep.SampleRate
}

// Tone returns a finite streamer of freq Hz lasting d.
func Tone(freq float64, d time.Duration) beep.Streamer {
	return &tone{freq: freq, total: SampleRate.N(d), rate: SampleRate}
}

// Gain is the envelope at fraction f of the tone.
func Gain(f float64) float64 {
	return StartGain * math.Pow(EndGain/StartGain, f)
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.total {
			return i, i > 0
		}
		val := Gain(float64(t.position)/float64(t.total)) * math.Sin(2*math.Pi*t.phase)
		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// Player accepts a streamer for playback.
type Player interface {
	Play(s beep.Streamer)
}

type speakerPlayer struct{}

func (speakerPlayer) Play(s beep.Streamer) { speaker.Play(s) }

// Beeper turns loader hooks into tones.
type Beeper struct {
	player Player
}

// NewBeeper returns a beeper on the speaker, or a silent one when the
// capability is absent.
func NewBeeper(c Capability) *Beeper {
	if !c.Available {
		if c.Err != nil && !errors.Is(c.Err, ErrDisabled) {
			log.Printf("audio unavailable: %v", c.Err)
		}
		return &Beeper{}
	}
	return &Beeper{player: speakerPlayer{}}
}

// NewBeeperWith returns a beeper playing through p.
func NewBeeperWith(p Player) *Beeper {
	return &Beeper{player: p}
}

// Enabled reports whether the beeper makes sound.
func (b *Beeper) Enabled() bool {
	return b != nil && b.player != nil
}

// StageTone is the frequency and length of the beep for a stage event.
// The first stage is silent.
func StageTone(ev loader.StageEvent) (float64, time.Duration, bool) {
	if ev.Index < 1 {
		return 0, 0, false
	}
	d := StageBeep
	if ev.Target >= 100 {
		d = LastStageBeep
	}
	return StageBaseFreq + StageStepFreq*float64(ev.Index-1), d, true
}

// Stage is a loader.WithStageHook callback.
func (b *Beeper) Stage(ev loader.StageEvent) {
	if !b.Enabled() {
		return
	}
	if freq, d, ok := StageTone(ev); ok {
		b.player.Play(Tone(freq, d))
	}
}

// Finish is a loader.WithFinishHook callback.
func (b *Beeper) Finish() {
	if !b.Enabled() {
		return
	}
	b.player.Play(Tone(FinishFreq, FinishBeep))
}

// Options returns the sequencer options that wire the beeper in.
func (b *Beeper) Options() []loader.Option {
	return []loader.Option{loader.WithStageHook(b.Stage), loader.WithFinishHook(b.Finish)}
}
