package terminal

import (
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/loader"
	"github.com/Zachkp/portfolio/internal/loader/loadertest"
)

// MockScreen is a minimal tcell.Screen that remembers drawn cells.
type MockScreen struct {
	tcell.Screen
	width, height int
	cells         map[[2]int]rune
	shows         int
}

func newMockScreen(w, h int) *MockScreen {
	return &MockScreen{width: w, height: h, cells: make(map[[2]int]rune)}
}

func (m *MockScreen) Size() (int, int) { return m.width, m.height }
func (m *MockScreen) Clear()           { m.cells = make(map[[2]int]rune) }
func (m *MockScreen) Show()            { m.shows++ }
func (m *MockScreen) Sync()            {}
func (m *MockScreen) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	m.cells[[2]int{x, y}] = mainc
}

func (m *MockScreen) Row(y int) string {
	var b strings.Builder
	for x := 0; x < m.width; x++ {
		if r, ok := m.cells[[2]int{x, y}]; ok {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

func (m *MockScreen) Contains(text string) bool {
	for y := 0; y < m.height; y++ {
		if strings.Contains(m.Row(y), text) {
			return true
		}
	}
	return false
}

func newApp(t *testing.T) (*App, *MockScreen, *loadertest.Scheduler) {
	t.Helper()
	sched := loadertest.New(16 * time.Millisecond)
	screen := newMockScreen(100, 40)
	stages, labels := loader.DefaultStages()
	app, err := New(screen, sched, Options{Stages: stages, Labels: labels, Rand: rand.New(rand.NewPCG(3, 4))})
	require.NoError(t, err)
	return app, screen, sched
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func TestApp_LoadingScreen(t *testing.T) {
	app, screen, sched := newApp(t)
	require.NoError(t, app.Start())

	assert.Equal(t, "stage-1", app.Loading().Active())
	assert.True(t, screen.Contains("INITIALIZING..."))
	assert.True(t, screen.Contains("0%"))

	sched.AdvanceTo(1500 * time.Millisecond)
	assert.Equal(t, 12, app.Loading().Percent())
	assert.True(t, screen.Contains("12%"))

	assert.True(t, app.HandleEvent(key(tcell.KeyDown)))
	assert.Zero(t, app.Page().Offset(), "input is ignored while loading")

	sched.AdvanceTo(7100 * time.Millisecond)
	assert.Equal(t, "stage-3", app.Loading().Active())
	assert.True(t, screen.Contains("RENDERING 3D MATRIX..."))
}

func TestApp_Completion(t *testing.T) {
	app, screen, sched := newApp(t)
	require.NoError(t, app.Start())

	sched.AdvanceTo(15500*time.Millisecond - time.Millisecond)
	assert.False(t, app.Loading().Hidden())
	assert.Nil(t, app.Page().Field())

	sched.AdvanceTo(15500 * time.Millisecond)
	assert.True(t, app.Loading().Hidden())
	assert.True(t, app.Sequencer().State().Completed)
	require.NotNil(t, app.Page().Field())

	sched.Advance(4 * time.Second)
	assert.False(t, screen.Contains("FINALIZING INTERFACE..."))
	assert.True(t, screen.Contains("── Home ──"))
	assert.Equal(t, "4+", app.Page().Stats()[0])
	assert.True(t, screen.Contains("Software developer"), "tagline has typed out")
}

func TestApp_InputAfterCompletion(t *testing.T) {
	app, _, sched := newApp(t)
	require.NoError(t, app.Start())
	sched.AdvanceTo(15500 * time.Millisecond)

	assert.True(t, app.HandleEvent(key(tcell.KeyDown)))
	assert.Equal(t, 1, app.Page().Offset())
	app.HandleEvent(key(tcell.KeyHome))
	assert.Zero(t, app.Page().Offset())

	card := app.Page().Layout().Cards[0]
	app.Page().ScrollBy(int(card.Rect.Top/CellHeight), sched.Now())
	app.HandleEvent(tcell.NewEventMouse(5, 1, tcell.ButtonNone, tcell.ModNone))
	assert.Equal(t, card.ID, app.Page().Hovered())
	assert.Len(t, app.Page().Trail(), 1)

	before := len(app.Page().Field().Particles())
	app.HandleEvent(tcell.NewEventMouse(5, 1, tcell.Button1, tcell.ModNone))
	app.HandleEvent(tcell.NewEventMouse(6, 1, tcell.Button1, tcell.ModNone))
	assert.Len(t, app.Page().Field().Particles(), before+6, "a held button pushes once")

	assert.False(t, app.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.False(t, app.HandleEvent(key(tcell.KeyCtrlC)))
}

func TestPage_InitializeOnce(t *testing.T) {
	now := time.Unix(0, 0)
	p := NewPage(100, 40, rand.New(rand.NewPCG(1, 1)))

	assert.True(t, p.InitializeAnimations(now))
	assert.False(t, p.InitializeAnimations(now))

	ok, err := p.InitializeParticles(now)
	require.NoError(t, err)
	assert.True(t, ok)
	field := p.Field()
	ok, err = p.InitializeParticles(now)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Same(t, field, p.Field())
}

func TestPage_ScrollEffects(t *testing.T) {
	now := time.Unix(0, 0)
	p := NewPage(100, 40, rand.New(rand.NewPCG(1, 1)))
	p.InitializeAnimations(now)

	p.ScrollBy(20, now)
	assert.True(t, p.NavHidden(), "moving down past 200px hides the navbar")
	p.ScrollBy(-1, now)
	assert.False(t, p.NavHidden())

	var projects float64
	for _, s := range p.Layout().Sections {
		if s.ID == "projects" {
			projects = s.Top
		}
	}
	p.ScrollBy(int(projects/CellHeight)-p.Offset(), now)
	assert.Equal(t, "projects", p.ActiveNav())
	assert.True(t, p.Revealed("projects"))

	p.ScrollBy(10000, now)
	assert.Equal(t, p.Lines()-1, p.Offset())
	p.ScrollBy(-10000, now)
	assert.Zero(t, p.Offset())
}

func TestWrapText(t *testing.T) {
	assert.Equal(t, []string{"a bb", "ccc"}, wrapText("a bb ccc", 4))
	assert.Equal(t, []string{"toolongword"}, wrapText("toolongword", 4))
	assert.Empty(t, wrapText("   ", 10))
}
