// Package terminal renders the portfolio in a tcell screen: the staged
// loading screen first, then the scrollable page with its effects.
package terminal

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/Zachkp/portfolio/internal/loader"
)

const barWidth = 40

var (
	styleDim    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleNeon   = tcell.StyleDefault.Foreground(tcell.NewHexColor(0x00ffff)).Bold(true)
	styleAccent = tcell.StyleDefault.Foreground(tcell.NewHexColor(0xff0080))
	styleText   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// LoadingView is the loading screen. It implements every loader.View
// target on one struct.
type LoadingView struct {
	panels  *loader.Panels
	label   string
	percent int
	hidden  bool
}

// NewLoadingView returns a view with one panel per stage.
func NewLoadingView(stages []loader.Stage) *LoadingView {
	return &LoadingView{panels: loader.PanelsFor(stages)}
}

// View exposes the targets to a sequencer.
func (v *LoadingView) View() loader.View {
	return loader.View{Surfaces: v.panels, Label: labelTarget{v}, Percent: v, Screen: v}
}

type labelTarget struct{ v *LoadingView }

func (l labelTarget) SetText(s string) { l.v.label = s }

func (v *LoadingView) SetPercent(p int) { v.percent = p }

func (v *LoadingView) Hide() { v.hidden = true }

func (v *LoadingView) Hidden() bool { return v.hidden }

func (v *LoadingView) Label() string { return v.label }

func (v *LoadingView) Percent() int { return v.percent }

func (v *LoadingView) Active() string { return v.panels.Active() }

// Draw paints the loading screen centred on s.
func (v *LoadingView) Draw(s tcell.Screen) {
	if v.hidden {
		return
	}
	w, h := s.Size()
	top := h/2 - 3

	ids := v.panels.IDs()
	row := strings.Builder{}
	for i, id := range ids {
		if i > 0 {
			row.WriteString("  ")
		}
		row.WriteString("[" + id + "]")
	}
	x := (w - row.Len()) / 2
	for _, id := range ids {
		style := styleDim
		if id == v.panels.Active() {
			style = styleNeon
		}
		x = drawText(s, x, top, "["+id+"]", style) + 2
	}

	drawCentered(s, top+2, v.label, styleNeon)

	filled := v.percent * barWidth / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	drawCentered(s, top+4, bar, styleAccent)
	drawCentered(s, top+5, loader.FormatPercent(v.percent), styleText)
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) int {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

func drawCentered(s tcell.Screen, y int, text string, style tcell.Style) {
	w, _ := s.Size()
	drawText(s, (w-len([]rune(text)))/2, y, text, style)
}
