package loader

import "time"

// StageEvent describes a stage activation.
type StageEvent struct {
	Index   int
	Stage   Stage
	Label   string
	Target  int
	Elapsed time.Duration
}

// State is a snapshot of the sequencer.
type State struct {
	Started          bool
	CurrentStage     int
	CommittedPercent int
	Finished         bool
	Completed        bool
}

// Option configures a Sequencer.
type Option func(*Sequencer)

// WithSettleDelay overrides DefaultSettleDelay.
func WithSettleDelay(d time.Duration) Option {
	return func(s *Sequencer) {
		if d >= 0 {
			s.settle = d
		}
	}
}

// WithStageHook registers fn to run after each stage activation.
func WithStageHook(fn func(StageEvent)) Option {
	return func(s *Sequencer) {
		s.stageHooks = append(s.stageHooks, fn)
	}
}

// WithFinishHook registers fn to run when the final stage's duration has
// elapsed, before the settle delay.
func WithFinishHook(fn func()) Option {
	return func(s *Sequencer) {
		s.finishHooks = append(s.finishHooks, fn)
	}
}

// Sequencer steps through the stages once. All transitions are registered
// with the scheduler up front at Run, offset from the start by cumulative
// durations, so a late callback delays only its own effect.
type Sequencer struct {
	sched    Scheduler
	view     View
	stages   []Stage
	labels   []string
	settle   time.Duration
	progress *Interpolator

	stageHooks  []func(StageEvent)
	finishHooks []func()

	started   time.Time
	state     State
	activated []int
}

// New validates the schedule and returns an idle sequencer.
func New(sched Scheduler, view View, stages []Stage, labels []string, opts ...Option) (*Sequencer, error) {
	if err := Validate(stages, labels); err != nil {
		return nil, err
	}
	s := &Sequencer{
		sched:    sched,
		view:     view,
		stages:   append([]Stage(nil), stages...),
		labels:   append([]string(nil), labels...),
		settle:   DefaultSettleDelay,
		progress: NewInterpolator(sched, view.Percent),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Run builds a sequencer and starts it in one call.
func Run(sched Scheduler, view View, stages []Stage, labels []string, onComplete func(), opts ...Option) (*Sequencer, error) {
	s, err := New(sched, view, stages, labels, opts...)
	if err != nil {
		return nil, err
	}
	if err := s.Run(onComplete); err != nil {
		return nil, err
	}
	return s, nil
}

// Run activates stage 0 immediately and schedules the rest of the sequence.
// onComplete runs once, after the loading surface is hidden. A sequencer
// cannot be replayed.
func (s *Sequencer) Run(onComplete func()) error {
	if s.state.Started {
		return ErrAlreadyStarted
	}
	s.state.Started = true
	s.started = s.sched.Now()

	s.activate(0)

	var offset time.Duration
	last := len(s.stages) - 1
	for k, st := range s.stages {
		offset += st.Duration
		if k < last {
			next := k + 1
			s.sched.AfterFunc(offset, func() { s.activate(next) })
			continue
		}
		s.sched.AfterFunc(offset, s.finish)
		s.sched.AfterFunc(offset+s.settle, func() { s.complete(onComplete) })
	}
	return nil
}

func (s *Sequencer) activate(index int) {
	// Transitions fire in deadline order; anything else is a stale callback.
	if len(s.activated) > 0 && index <= s.state.CurrentStage {
		return
	}
	st := s.stages[index]

	if s.view.Surfaces != nil {
		s.view.Surfaces.DeactivateAll()
		s.view.Surfaces.Activate(st.ID)
	}
	if s.view.Label != nil {
		s.view.Label.SetText(s.labels[index])
	}

	target := TargetPercent(index, len(s.stages))
	s.progress.Animate(s.state.CommittedPercent, target, st.Duration)
	s.state.CurrentStage = index
	s.state.CommittedPercent = target
	s.activated = append(s.activated, index)

	ev := StageEvent{
		Index:   index,
		Stage:   st,
		Label:   s.labels[index],
		Target:  target,
		Elapsed: s.sched.Now().Sub(s.started),
	}
	for _, fn := range s.stageHooks {
		fn(ev)
	}
}

func (s *Sequencer) finish() {
	s.state.Finished = true
	for _, fn := range s.finishHooks {
		fn()
	}
}

func (s *Sequencer) complete(onComplete func()) {
	if s.state.Completed {
		return
	}
	s.state.Completed = true
	if s.view.Screen != nil {
		s.view.Screen.Hide()
	}
	if onComplete != nil {
		onComplete()
	}
}

// State returns a snapshot of the sequencer.
func (s *Sequencer) State() State {
	return s.state
}

// Activated returns the stage indexes activated so far, in order.
func (s *Sequencer) Activated() []int {
	out := make([]int, len(s.activated))
	copy(out, s.activated)
	return out
}

// Stages returns the schedule.
func (s *Sequencer) Stages() []Stage {
	out := make([]Stage, len(s.stages))
	copy(out, s.stages)
	return out
}

// SettleDelay returns the pause between the final stage and completion.
func (s *Sequencer) SettleDelay() time.Duration {
	return s.settle
}

// Progress exposes the percent interpolator.
func (s *Sequencer) Progress() *Interpolator {
	return s.progress
}
