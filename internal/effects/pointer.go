package effects

import (
	"fmt"
	"time"
)

const (
	TrailLifetime  = 800 * time.Millisecond
	RippleLifetime = 600 * time.Millisecond
	RippleOffset   = 100
	tiltDivisor    = 10
	// CursorMinWidth is the viewport width the custom cursor needs.
	CursorMinWidth = 768
)

// Tilt returns the card rotation in degrees for a pointer inside rect.
func Tilt(rect Rect, p Point) (rotateX, rotateY float64) {
	x := p.X - rect.Left
	y := p.Y - rect.Top
	cx := rect.Width / 2
	cy := rect.Height / 2
	return (y - cy) / tiltDivisor, (cx - x) / tiltDivisor
}

// TiltCommand is the transform for a tilted card.
func TiltCommand(card string, rect Rect, p Point) Command {
	rx, ry := Tilt(rect, p)
	return setStyle(card, "transform",
		fmt.Sprintf("perspective(1000px) rotateX(%gdeg) rotateY(%gdeg) translateZ(10px)", rx, ry))
}

// TiltReset returns a card to rest.
func TiltReset(card string) Command {
	return setStyle(card, "transform", "perspective(1000px) rotateX(0deg) rotateY(0deg) translateZ(0px)")
}

// Hologram returns the pointer position as a percentage of rect.
func Hologram(rect Rect, p Point) (xPct, yPct float64) {
	if rect.Width <= 0 || rect.Height <= 0 {
		return 0, 0
	}
	return (p.X - rect.Left) / rect.Width * 100, (p.Y - rect.Top) / rect.Height * 100
}

// HologramCommand is the radial highlight following the pointer.
func HologramCommand(card string, rect Rect, p Point) Command {
	x, y := Hologram(rect, p)
	return setStyle(card, "background", fmt.Sprintf(
		"radial-gradient(circle at %g%% %g%%, rgba(0, 255, 255, 0.2) 0%%, rgba(255, 0, 128, 0.1) 25%%, "+
			"rgba(57, 255, 20, 0.1) 50%%, rgba(255, 140, 0, 0.1) 75%%, rgba(0, 212, 255, 0.05) 100%%)", x, y))
}

// HologramReset clears the highlight.
func HologramReset(card string) Command {
	return setStyle(card, "background", "")
}

// CursorEnabled reports whether the custom cursor is shown for a viewport.
func CursorEnabled(viewportWidth float64) bool {
	return viewportWidth > CursorMinWidth
}

// Mark is a short-lived element such as a trail dot or click ripple.
type Mark struct {
	ID      string
	Kind    string
	At      Point
	Expires time.Time
}

// Marks tracks transient elements and expires them.
type Marks struct {
	kind     string
	lifetime time.Duration
	offset   float64
	seq      int
	live     []Mark
}

// NewTrail returns the cursor trail tracker.
func NewTrail() *Marks {
	return &Marks{kind: "cursor-trail", lifetime: TrailLifetime}
}

// NewRipples returns the click ripple tracker. Ripples are centred by
// shifting their corner 100 up and left.
func NewRipples() *Marks {
	return &Marks{kind: "click-ripple", lifetime: RippleLifetime, offset: RippleOffset}
}

// Add records a mark at p and returns its spawn command.
func (m *Marks) Add(p Point, now time.Time) Command {
	m.seq++
	mark := Mark{
		ID:      fmt.Sprintf("%s-%d", m.kind, m.seq),
		Kind:    m.kind,
		At:      Point{X: p.X - m.offset, Y: p.Y - m.offset},
		Expires: now.Add(m.lifetime),
	}
	m.live = append(m.live, mark)
	return Command{Target: mark.ID, Op: Spawn, Name: m.kind, At: mark.At}
}

// Expire removes marks whose lifetime has passed and returns their remove
// commands.
func (m *Marks) Expire(now time.Time) []Command {
	var cmds []Command
	kept := m.live[:0]
	for _, mark := range m.live {
		if !now.Before(mark.Expires) {
			cmds = append(cmds, Command{Target: mark.ID, Op: Remove, Name: mark.Kind})
			continue
		}
		kept = append(kept, mark)
	}
	m.live = kept
	return cmds
}

// Live returns the marks still on screen.
func (m *Marks) Live() []Mark {
	out := make([]Mark, len(m.live))
	copy(out, m.live)
	return out
}
