package effects

import "fmt"

// Card is a hoverable card in document coordinates.
type Card struct {
	ID   string
	Rect Rect
}

// Layout is the static page geometry the dispatcher works against.
type Layout struct {
	Sections []Section
	Cards    []Card
}

// Dispatcher is the single owner of effect state: last scroll position,
// hovered card, revealed sections and transient marks. Feed it snapshots;
// it returns the commands to apply.
type Dispatcher struct {
	layout   Layout
	lastY    float64
	active   string
	hovered  string
	revealed map[string]bool
	trail    *Marks
	ripples  *Marks
}

// NewDispatcher returns a dispatcher for layout.
func NewDispatcher(layout Layout) *Dispatcher {
	return &Dispatcher{
		layout:   layout,
		revealed: make(map[string]bool),
		trail:    NewTrail(),
		ripples:  NewRipples(),
	}
}

// Scroll handles a scroll event.
func (d *Dispatcher) Scroll(s Snapshot) []Command {
	cmds := NavbarState(d.lastY, s.ScrollY).Commands()
	d.lastY = s.ScrollY

	d.active = ActiveSection(d.layout.Sections, s.ScrollY)
	cmds = append(cmds, NavCommands(d.layout.Sections, d.active)...)
	cmds = append(cmds, ParallaxCommand(s.ScrollY))

	for _, sec := range d.layout.Sections {
		if d.revealed[sec.ID] || !SectionRevealed(sec, s.ScrollY, s.ViewportHeight) {
			continue
		}
		d.revealed[sec.ID] = true
		cmds = append(cmds,
			removeClass(sec.ID, "section-hidden"),
			addClass(sec.ID, "section-visible"))
	}
	return cmds
}

// PointerMove handles a pointer move.
func (d *Dispatcher) PointerMove(s Snapshot) []Command {
	var cmds []Command
	if CursorEnabled(s.ViewportWidth) {
		cmds = append(cmds,
			setStyle("cursor", "left", fmt.Sprintf("%gpx", s.Pointer.X)),
			setStyle("cursor", "top", fmt.Sprintf("%gpx", s.Pointer.Y)),
			setStyle("cursor", "opacity", "1"),
			d.trail.Add(s.Pointer, s.At),
		)
	}

	over := ""
	var rect Rect
	for _, c := range d.layout.Cards {
		r := c.Rect
		r.Top -= s.ScrollY
		if r.Contains(s.Pointer) {
			over, rect = c.ID, r
			break
		}
	}
	if d.hovered != "" && d.hovered != over {
		cmds = append(cmds, TiltReset(d.hovered), HologramReset(d.hovered))
	}
	d.hovered = over
	if over != "" {
		cmds = append(cmds, TiltCommand(over, rect, s.Pointer), HologramCommand(over, rect, s.Pointer))
	}
	return cmds
}

// Click handles a click.
func (d *Dispatcher) Click(s Snapshot) []Command {
	return []Command{d.ripples.Add(s.Pointer, s.At)}
}

// Tick expires transient marks.
func (d *Dispatcher) Tick(s Snapshot) []Command {
	return append(d.trail.Expire(s.At), d.ripples.Expire(s.At)...)
}

// ActiveSection returns the section the last scroll landed in.
func (d *Dispatcher) ActiveSection() string {
	return d.active
}

// Revealed reports whether a section has been revealed.
func (d *Dispatcher) Revealed(id string) bool {
	return d.revealed[id]
}

// Trail returns the live cursor trail.
func (d *Dispatcher) Trail() []Mark {
	return d.trail.Live()
}

// Ripples returns the live click ripples.
func (d *Dispatcher) Ripples() []Mark {
	return d.ripples.Live()
}
