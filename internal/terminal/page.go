package terminal

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/effects"
	"github.com/Zachkp/portfolio/internal/particles"
)

// One terminal cell stands for a CellWidth x CellHeight pixel box when
// talking to the effects and particles packages.
const (
	CellWidth  = 8.0
	CellHeight = 16.0
)

const (
	TaglineDelay = 500 * time.Millisecond
	skillCells   = 20
	maxWrap      = 96
)

var (
	styleRain = tcell.StyleDefault.Foreground(tcell.NewHexColor(0x0f5f2f))
	styleNav  = tcell.StyleDefault.Background(tcell.NewHexColor(0x0a0a1a)).Foreground(tcell.ColorWhite)
)

type lineKind int

const (
	lineText lineKind = iota
	lineHeading
	lineTagline
	lineStats
	lineSkill
)

type line struct {
	kind    lineKind
	text    string
	section string
	card    string
	index   int
}

// Page is the portfolio shown once loading completes. Row 0 is the navbar;
// document row i is drawn at screen row i-offset+1.
type Page struct {
	width, height int
	lines         []line
	layout        effects.Layout
	fx            *effects.Dispatcher
	offset        int
	rng           *rand.Rand

	nav         string
	navHidden   bool
	navScrolled bool
	revealed    map[string]bool
	hovered     string

	typer      *effects.Typewriter
	counters   []*effects.Counter
	stats      []string
	skillsAt   time.Time
	skillFills []effects.BarFill

	field    *particles.Field
	palette  []tcell.Color
	rain     *effects.Rain
	lastTick time.Time
}

// NewPage lays the portfolio out for a width x height terminal.
func NewPage(width, height int, rng *rand.Rand) *Page {
	p := &Page{width: width, height: height, rng: rng, revealed: make(map[string]bool)}
	p.build()
	p.fx = effects.NewDispatcher(p.layout)
	return p
}

func (p *Page) add(l line) {
	p.lines = append(p.lines, l)
}

func (p *Page) build() {
	wrap := min(max(p.width-4, 20), maxWrap)
	p.lines = p.lines[:0]

	var sections []effects.Section
	var cards []effects.Card
	for _, sec := range content.Sections {
		start := len(p.lines)
		p.add(line{kind: lineHeading, text: sec.Title, section: sec.ID})

		switch sec.ID {
		case "hero":
			p.add(line{kind: lineTagline, section: sec.ID})
			p.add(line{kind: lineStats, section: sec.ID})
		case "about":
			for _, l := range wrapText(content.AboutMe, wrap) {
				p.add(line{text: l, section: sec.ID})
			}
			for i := range content.Skills {
				p.add(line{kind: lineSkill, section: sec.ID, index: i})
			}
		case "projects":
			for _, pr := range content.Projects {
				top := len(p.lines)
				p.add(line{text: "▌ " + pr.Title, section: sec.ID, card: pr.ID})
				for _, l := range wrapText(pr.Description, wrap-2) {
					p.add(line{text: "  " + l, section: sec.ID, card: pr.ID})
				}
				p.add(line{text: "  " + strings.Join(pr.Tags, " · "), section: sec.ID, card: pr.ID})
				cards = append(cards, effects.Card{ID: pr.ID, Rect: effects.Rect{
					Top:    float64(top) * CellHeight,
					Width:  float64(p.width) * CellWidth,
					Height: float64(len(p.lines)-top) * CellHeight,
				}})
			}
		case "experience":
			p.entries(content.Work, sec.ID, wrap)
		case "education":
			p.entries(content.Education, sec.ID, wrap)
		case "contact":
			for _, l := range wrapText("Use the contact form on the site, or check a message here with `preview contact`.", wrap) {
				p.add(line{text: l, section: sec.ID})
			}
		}
		p.add(line{section: sec.ID})

		sections = append(sections, effects.Section{
			ID:     sec.ID,
			Top:    float64(start) * CellHeight,
			Height: float64(len(p.lines)-start) * CellHeight,
		})
	}
	p.layout = effects.Layout{Sections: sections, Cards: cards}
}

func (p *Page) entries(entries []content.Entry, section string, wrap int) {
	for _, e := range entries {
		p.add(line{text: fmt.Sprintf("%s, %s (%s - %s)", e.Title, e.Organization, e.StartDate, e.EndDate), section: section})
		for _, b := range e.BulletPoints {
			for i, l := range wrapText(b, wrap-4) {
				prefix := "    "
				if i == 0 {
					prefix = "  • "
				}
				p.add(line{text: prefix + l, section: section})
			}
		}
	}
}

func wrapText(text string, width int) []string {
	var out []string
	var cur strings.Builder
	for _, word := range strings.Fields(text) {
		if cur.Len() > 0 && cur.Len()+1+len(word) > width {
			out = append(out, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(word)
	}
	if cur.Len() > 0 {
		out = append(out, cur.String())
	}
	return out
}

func (p *Page) viewport() (float64, float64) {
	return float64(p.width) * CellWidth, float64(p.height-1) * CellHeight
}

func (p *Page) snapshot(now time.Time, pointer effects.Point) effects.Snapshot {
	w, h := p.viewport()
	return effects.Snapshot{
		ScrollY:        float64(p.offset) * CellHeight,
		ViewportWidth:  w,
		ViewportHeight: h,
		Pointer:        pointer,
		At:             now,
	}
}

// cellPoint maps a screen cell to the centre of its pixel box.
func cellPoint(x, y int) effects.Point {
	return effects.Point{X: (float64(x) + 0.5) * CellWidth, Y: (float64(y-1) + 0.5) * CellHeight}
}

// InitializeAnimations starts the reveals, the typewriter and the counters.
// It reports false if they were already running.
func (p *Page) InitializeAnimations(now time.Time) bool {
	if p.typer != nil {
		return false
	}
	p.typer = effects.NewTypewriter(content.Tagline, now, TaglineDelay)
	for _, s := range content.Stats {
		p.counters = append(p.counters, effects.NewCounter(s.Target))
		p.stats = append(p.stats, "0+")
	}
	p.apply(p.fx.Scroll(p.snapshot(now, effects.Point{})))
	p.triggerBars(now)
	return true
}

// InitializeParticles starts the particle field and the matrix rain. It
// reports false if they were already running.
func (p *Page) InitializeParticles(now time.Time) (bool, error) {
	if p.field != nil {
		return false, nil
	}
	cfg := particles.Default()
	cols, err := cfg.Colors()
	if err != nil {
		return false, err
	}
	p.palette = p.palette[:0]
	for _, c := range cols {
		r, g, b := c.RGB255()
		p.palette = append(p.palette, tcell.NewRGBColor(int32(r), int32(g), int32(b)))
	}

	w, h := p.viewport()
	p.field = particles.NewField(cfg, w, h, p.rng)
	p.rain = effects.NewRain(w, now, p.rng)
	p.lastTick = now
	return true, nil
}

func (p *Page) triggerBars(now time.Time) {
	if !p.skillsAt.IsZero() {
		return
	}
	for _, s := range p.layout.Sections {
		if s.ID != "about" {
			continue
		}
		_, h := p.viewport()
		if !effects.BarsTriggered(s.Top-float64(p.offset)*CellHeight, h) {
			return
		}
		bars := make([]effects.Bar, len(content.Skills))
		for i, sk := range content.Skills {
			bars[i] = effects.Bar{ID: sk.Name, Width: fmt.Sprintf("%d%%", sk.Level)}
		}
		p.skillFills = effects.StaggerBars(bars, effects.SkillBarStagger)
		p.skillsAt = now
	}
}

// ScrollBy moves the page delta rows, clamped to the document.
func (p *Page) ScrollBy(delta int, now time.Time) {
	p.offset = max(0, min(p.offset+delta, len(p.lines)-1))
	p.apply(p.fx.Scroll(p.snapshot(now, effects.Point{})))
	p.triggerBars(now)
}

// PointerMove handles the mouse over cell (x, y).
func (p *Page) PointerMove(x, y int, now time.Time) {
	p.apply(p.fx.PointerMove(p.snapshot(now, cellPoint(x, y))))
}

// Click handles a press at cell (x, y).
func (p *Page) Click(x, y int, now time.Time) {
	pt := cellPoint(x, y)
	p.apply(p.fx.Click(p.snapshot(now, pt)))
	if p.field != nil {
		p.field.Push(pt.X, pt.Y)
	}
}

// Tick advances every running animation to now.
func (p *Page) Tick(now time.Time) {
	if p.field != nil {
		p.field.Step(now.Sub(p.lastTick).Seconds() * 60)
		p.lastTick = now
	}
	if p.rain != nil {
		p.rain.Update(now)
	}
	for i, c := range p.counters {
		p.stats[i], _ = c.Step()
	}
	p.apply(p.fx.Tick(p.snapshot(now, effects.Point{})))
}

// Resize relays the page out for a new terminal size.
func (p *Page) Resize(width, height int, now time.Time) {
	p.width, p.height = width, height
	p.build()
	p.fx = effects.NewDispatcher(p.layout)
	p.offset = min(p.offset, max(len(p.lines)-1, 0))
	if p.field != nil {
		w, h := p.viewport()
		p.field.Resize(w, h)
		p.rain = effects.NewRain(w, now, p.rng)
	}
	p.apply(p.fx.Scroll(p.snapshot(now, effects.Point{})))
}

var navPrefix = effects.NavLinkID("")

// apply folds the commands a terminal can show into page state. Styles with
// no terminal rendering, such as parallax and hologram gradients, are
// dropped.
func (p *Page) apply(cmds []effects.Command) {
	for _, c := range cmds {
		switch {
		case c.Target == "navbar" && c.Name == "scrolled":
			p.navScrolled = c.Op == effects.AddClass
		case c.Target == "navbar" && c.Name == "transform":
			p.navHidden = c.Value == "translateY(-100%)"
		case strings.HasPrefix(c.Target, navPrefix) && c.Op == effects.AddClass:
			p.nav = strings.TrimPrefix(c.Target, navPrefix)
		case c.Name == "section-visible":
			p.revealed[c.Target] = true
		case c.Name == "transform" && p.isCard(c.Target):
			if c.Value == effects.TiltReset(c.Target).Value {
				if p.hovered == c.Target {
					p.hovered = ""
				}
				continue
			}
			p.hovered = c.Target
		}
	}
}

func (p *Page) isCard(id string) bool {
	for _, c := range p.layout.Cards {
		if c.ID == id {
			return true
		}
	}
	return false
}

// Draw paints the page at now.
func (p *Page) Draw(s tcell.Screen, now time.Time) {
	p.drawBackground(s, now)
	for row := 1; row < p.height; row++ {
		i := p.offset + row - 1
		if i >= len(p.lines) {
			break
		}
		p.drawLine(s, row, p.lines[i], now)
	}
	p.drawMarks(s)
	if !p.navHidden {
		p.drawNav(s)
	}
}

func (p *Page) drawBackground(s tcell.Screen, now time.Time) {
	if p.rain != nil {
		for _, c := range p.rain.Columns() {
			x := int(c.LeftPct / 100 * float64(p.width))
			n := len(c.Glyphs)
			head := int(c.Offset(now)*float64(p.height+n)) - n
			for j, g := range c.Glyphs {
				if y := head + j; y >= 1 && y < p.height {
					s.SetContent(x, y, g, nil, styleRain)
				}
			}
		}
	}
	if p.field == nil {
		return
	}
	ps := p.field.Particles()
	for _, l := range p.field.Links() {
		a, b := ps[l[0]], ps[l[1]]
		s.SetContent(int((a.X+b.X)/2/CellWidth), int((a.Y+b.Y)/2/CellHeight)+1, '·', nil, styleDim)
	}
	for _, pt := range ps {
		style := styleText
		if pt.Color < len(p.palette) {
			style = tcell.StyleDefault.Foreground(p.palette[pt.Color])
		}
		s.SetContent(int(pt.X/CellWidth), int(pt.Y/CellHeight)+1, particleGlyph(pt.Shape), nil, style)
	}
}

func particleGlyph(shape string) rune {
	switch shape {
	case "triangle":
		return '▴'
	case "polygon":
		return '⬡'
	default:
		return '•'
	}
}

func (p *Page) drawLine(s tcell.Screen, row int, l line, now time.Time) {
	style := styleText
	switch {
	case !p.revealed[l.section]:
		style = styleDim
	case l.kind == lineHeading && l.section == p.nav:
		style = styleNeon
	case l.kind == lineHeading:
		style = styleAccent
	case l.card != "" && l.card == p.hovered:
		style = styleNeon
	}

	text := l.text
	switch l.kind {
	case lineHeading:
		text = "── " + l.text + " ──"
	case lineTagline:
		if p.typer != nil {
			text = p.typer.Visible(now)
			if !p.typer.Done(now) {
				text += "▌"
			}
		}
	case lineStats:
		parts := make([]string, len(p.stats))
		for i, st := range p.stats {
			parts[i] = st + " " + content.Stats[i].Label
		}
		text = strings.Join(parts, "   ")
	case lineSkill:
		text = p.skillText(l.index, now)
	}
	drawText(s, 2, row, text, style)
}

func (p *Page) skillText(i int, now time.Time) string {
	sk := content.Skills[i]
	filled := 0
	if !p.skillsAt.IsZero() && i < len(p.skillFills) && !now.Before(p.skillsAt.Add(p.skillFills[i].Delay)) {
		filled = sk.Level * skillCells / 100
	}
	return fmt.Sprintf("%-12s %s%s %d%%", sk.Name,
		strings.Repeat("█", filled), strings.Repeat("░", skillCells-filled), sk.Level)
}

func (p *Page) drawMarks(s tcell.Screen) {
	for _, m := range p.fx.Trail() {
		s.SetContent(int(m.At.X/CellWidth), int(m.At.Y/CellHeight)+1, '∙', nil, styleNeon)
	}
	for _, m := range p.fx.Ripples() {
		x := int((m.At.X + effects.RippleOffset) / CellWidth)
		y := int((m.At.Y+effects.RippleOffset)/CellHeight) + 1
		for _, d := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			s.SetContent(x+d[0], y+d[1], 'o', nil, styleAccent)
		}
	}
}

func (p *Page) drawNav(s tcell.Screen) {
	base := styleNav
	if !p.navScrolled {
		base = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	}
	for x := 0; x < p.width; x++ {
		s.SetContent(x, 0, ' ', nil, base)
	}
	x := 2
	for _, link := range content.NavLinks() {
		style := base
		if link.Href == "#"+p.nav {
			style = base.Foreground(tcell.NewHexColor(0x00ffff)).Bold(true)
		}
		x = drawText(s, x, 0, link.Label, style) + 3
	}
}

// Offset is the first document row on screen.
func (p *Page) Offset() int { return p.offset }

// Lines is the document length in rows.
func (p *Page) Lines() int { return len(p.lines) }

// ActiveNav is the highlighted nav section.
func (p *Page) ActiveNav() string { return p.nav }

// NavHidden reports whether the navbar is tucked away.
func (p *Page) NavHidden() bool { return p.navHidden }

// Revealed reports whether a section has been revealed.
func (p *Page) Revealed(id string) bool { return p.revealed[id] }

// Hovered is the card under the pointer.
func (p *Page) Hovered() string { return p.hovered }

// Stats returns the counter texts.
func (p *Page) Stats() []string { return append([]string(nil), p.stats...) }

// Field returns the particle field, nil until InitializeParticles.
func (p *Page) Field() *particles.Field { return p.field }

// Layout returns the page geometry in pixels.
func (p *Page) Layout() effects.Layout { return p.layout }

// Trail returns the live cursor trail.
func (p *Page) Trail() []effects.Mark { return p.fx.Trail() }
