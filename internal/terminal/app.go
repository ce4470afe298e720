package terminal

import (
	"context"
	"errors"
	"log"
	"math/rand/v2"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Zachkp/portfolio/internal/loader"
)

// Options configures an App.
type Options struct {
	Stages []loader.Stage
	Labels []string
	// Sequencer adds options such as the settle delay or audio hooks.
	Sequencer []loader.Option
	Rand      *rand.Rand
}

// App runs the loading sequence on a screen and hands over to the page
// when it completes. All methods run on the scheduler's goroutine.
type App struct {
	screen  tcell.Screen
	sched   loader.Scheduler
	loading *LoadingView
	page    *Page
	seq     *loader.Sequencer
	quit    func()
	pressed bool
}

// New builds an app on screen driven by sched.
func New(screen tcell.Screen, sched loader.Scheduler, opts Options) (*App, error) {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	a := &App{
		screen:  screen,
		sched:   sched,
		loading: NewLoadingView(opts.Stages),
		quit:    func() {},
	}
	w, h := screen.Size()
	a.page = NewPage(w, h, rng)

	seq, err := loader.New(sched, a.loading.View(), opts.Stages, opts.Labels, opts.Sequencer...)
	if err != nil {
		return nil, err
	}
	a.seq = seq
	return a, nil
}

// Start runs the sequencer and begins redrawing every frame.
func (a *App) Start() error {
	if err := a.seq.Run(a.onComplete); err != nil {
		return err
	}
	a.frame()
	return nil
}

func (a *App) onComplete() {
	now := a.sched.Now()
	a.page.InitializeAnimations(now)
	if _, err := a.page.InitializeParticles(now); err != nil {
		log.Printf("particles disabled: %v", err)
	}
}

func (a *App) frame() {
	now := a.sched.Now()
	if a.loading.Hidden() {
		a.page.Tick(now)
	}
	a.draw(now)
	a.sched.RequestFrame(a.frame)
}

func (a *App) draw(now time.Time) {
	a.screen.Clear()
	if a.loading.Hidden() {
		a.page.Draw(a.screen, now)
	} else {
		a.loading.Draw(a.screen)
	}
	a.screen.Show()
}

// HandleEvent applies one input event. It returns false once the user asked
// to quit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	now := a.sched.Now()
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			if ev.Rune() == 'q' {
				return false
			}
		}
		if !a.loading.Hidden() {
			return true
		}
		switch ev.Key() {
		case tcell.KeyUp:
			a.page.ScrollBy(-1, now)
		case tcell.KeyDown:
			a.page.ScrollBy(1, now)
		case tcell.KeyPgUp:
			_, h := a.screen.Size()
			a.page.ScrollBy(-(h - 2), now)
		case tcell.KeyPgDn:
			_, h := a.screen.Size()
			a.page.ScrollBy(h-2, now)
		case tcell.KeyHome:
			a.page.ScrollBy(-a.page.Lines(), now)
		}
	case *tcell.EventMouse:
		if !a.loading.Hidden() {
			return true
		}
		x, y := ev.Position()
		switch btn := ev.Buttons(); {
		case btn&tcell.WheelUp != 0:
			a.page.ScrollBy(-3, now)
		case btn&tcell.WheelDown != 0:
			a.page.ScrollBy(3, now)
		case btn&tcell.Button1 != 0:
			if !a.pressed {
				a.page.Click(x, y, now)
			}
			a.pressed = true
		default:
			a.pressed = false
			a.page.PointerMove(x, y, now)
		}
	case *tcell.EventResize:
		w, h := ev.Size()
		a.page.Resize(w, h, now)
		a.screen.Sync()
	}
	return true
}

// Loading exposes the loading screen.
func (a *App) Loading() *LoadingView { return a.loading }

// Page exposes the portfolio page.
func (a *App) Page() *Page { return a.page }

// Sequencer exposes the loader state machine.
func (a *App) Sequencer() *loader.Sequencer { return a.seq }

// Run plays the app on a real loop until the user quits or ctx ends. The
// caller owns the screen and must call Fini afterwards, which also stops
// the input goroutine.
func Run(ctx context.Context, screen tcell.Screen, frame time.Duration, opts Options) error {
	loop := loader.NewLoop(frame)
	app, err := New(screen, loop, opts)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	app.quit = cancel

	screen.EnableMouse(tcell.MouseMotionEvents)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			loop.Post(func() {
				if !app.HandleEvent(ev) {
					app.quit()
				}
			})
		}
	}()

	var startErr error
	loop.Post(func() {
		if startErr = app.Start(); startErr != nil {
			cancel()
		}
	})

	err = loop.Run(ctx)
	if startErr != nil {
		return startErr
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
