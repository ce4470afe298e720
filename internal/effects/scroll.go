package effects

import (
	"fmt"
	"time"
)

const (
	navOffset         = 100
	scrolledThreshold = 100
	hideThreshold     = 200
	revealMargin      = 150
	sectionThreshold  = 0.15
	barTrigger        = 0.75

	SkillBarStagger    = 100 * time.Millisecond
	LanguageBarStagger = 150 * time.Millisecond
)

// Section is a page section in document coordinates.
type Section struct {
	ID     string
	Top    float64
	Height float64
}

// ActiveSection returns the id of the last section whose band
// [top-100, top-100+height) contains scrollY, or "" when none does.
func ActiveSection(sections []Section, scrollY float64) string {
	current := ""
	for _, s := range sections {
		top := s.Top - navOffset
		if scrollY >= top && scrollY < top+s.Height {
			current = s.ID
		}
	}
	return current
}

// NavCommands marks the link for active and clears every other link.
func NavCommands(sections []Section, active string) []Command {
	cmds := make([]Command, 0, len(sections))
	for _, s := range sections {
		link := NavLinkID(s.ID)
		if s.ID == active {
			cmds = append(cmds, addClass(link, "active"))
		} else {
			cmds = append(cmds, removeClass(link, "active"))
		}
	}
	return cmds
}

// NavLinkID is the target id of a section's nav link.
func NavLinkID(section string) string {
	return "nav:#" + section
}

// Navbar is the derived navbar state for one scroll position.
type Navbar struct {
	Scrolled bool
	Hidden   bool
}

// NavbarState marks the bar scrolled past 100 and hides it while the page
// moves down past 200.
func NavbarState(lastY, currentY float64) Navbar {
	return Navbar{
		Scrolled: currentY > scrolledThreshold,
		Hidden:   currentY > lastY && currentY > hideThreshold,
	}
}

// Commands renders the navbar state.
func (n Navbar) Commands() []Command {
	cmds := make([]Command, 0, 2)
	if n.Scrolled {
		cmds = append(cmds, addClass("navbar", "scrolled"))
	} else {
		cmds = append(cmds, removeClass("navbar", "scrolled"))
	}
	if n.Hidden {
		cmds = append(cmds, setStyle("navbar", "transform", "translateY(-100%)"))
	} else {
		cmds = append(cmds, setStyle("navbar", "transform", "translateY(0)"))
	}
	return cmds
}

// Parallax is the hero offset for a scroll position.
func Parallax(scrollY float64) float64 {
	return scrollY * -0.5
}

func ParallaxCommand(scrollY float64) Command {
	return setStyle("hero", "transform", fmt.Sprintf("translateY(%gpx)", Parallax(scrollY)))
}

// Revealed reports whether an element whose top is at elementTop (viewport
// coordinates) has scrolled far enough in to become visible.
func Revealed(elementTop, viewportHeight float64) bool {
	return elementTop < viewportHeight-revealMargin
}

// SectionRevealed reports whether at least 15% of a section intersects the
// viewport.
func SectionRevealed(s Section, scrollY, viewportHeight float64) bool {
	if s.Height <= 0 {
		return false
	}
	top := max(s.Top, scrollY)
	bottom := min(s.Top+s.Height, scrollY+viewportHeight)
	if bottom <= top {
		return false
	}
	return (bottom-top)/s.Height >= sectionThreshold
}

// BarsTriggered reports whether a bar group whose section top is at
// sectionTop (viewport coordinates) should start filling.
func BarsTriggered(sectionTop, viewportHeight float64) bool {
	return sectionTop < viewportHeight*barTrigger
}

// Bar is a proficiency bar with its final width.
type Bar struct {
	ID    string
	Width string
}

// BarFill is a width to apply after Delay.
type BarFill struct {
	Command Command
	Delay   time.Duration
}

// StaggerBars returns the fill commands for bars, index*stagger apart.
func StaggerBars(bars []Bar, stagger time.Duration) []BarFill {
	out := make([]BarFill, len(bars))
	for i, b := range bars {
		out[i] = BarFill{
			Command: setStyle(b.ID, "width", b.Width),
			Delay:   time.Duration(i) * stagger,
		}
	}
	return out
}
