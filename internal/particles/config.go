// Package particles holds the background particle field: its configuration
// in particles.js shape, so the browser can consume it as-is, and a small
// simulation the terminal preview renders.
package particles

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

type Density struct {
	Enable    bool    `json:"enable"`
	ValueArea float64 `json:"value_area"`
}

type Number struct {
	Value   int     `json:"value"`
	Density Density `json:"density"`
}

type Stroke struct {
	Width float64 `json:"width"`
	Color string  `json:"color"`
}

type Polygon struct {
	Sides int `json:"nb_sides"`
}

type Shape struct {
	Type    []string `json:"type"`
	Stroke  Stroke   `json:"stroke"`
	Polygon Polygon  `json:"polygon"`
}

type Anim struct {
	Enable  bool    `json:"enable"`
	Speed   float64 `json:"speed"`
	Min     float64 `json:"opacity_min,omitempty"`
	SizeMin float64 `json:"size_min,omitempty"`
	Sync    bool    `json:"sync"`
}

type Opacity struct {
	Value  float64 `json:"value"`
	Random bool    `json:"random"`
	Anim   Anim    `json:"anim"`
}

type Size struct {
	Value  float64 `json:"value"`
	Random bool    `json:"random"`
	Anim   Anim    `json:"anim"`
}

type LineLinked struct {
	Enable   bool    `json:"enable"`
	Distance float64 `json:"distance"`
	Color    string  `json:"color"`
	Opacity  float64 `json:"opacity"`
	Width    float64 `json:"width"`
}

type Attract struct {
	Enable  bool    `json:"enable"`
	RotateX float64 `json:"rotateX"`
	RotateY float64 `json:"rotateY"`
}

type Move struct {
	Enable    bool    `json:"enable"`
	Speed     float64 `json:"speed"`
	Direction string  `json:"direction"`
	Random    bool    `json:"random"`
	Straight  bool    `json:"straight"`
	OutMode   string  `json:"out_mode"`
	Bounce    bool    `json:"bounce"`
	Attract   Attract `json:"attract"`
}

type Color struct {
	Value []string `json:"value"`
}

type Options struct {
	Number     Number     `json:"number"`
	Color      Color      `json:"color"`
	Shape      Shape      `json:"shape"`
	Opacity    Opacity    `json:"opacity"`
	Size       Size       `json:"size"`
	LineLinked LineLinked `json:"line_linked"`
	Move       Move       `json:"move"`
}

type Mode struct {
	Enable bool   `json:"enable"`
	Mode   string `json:"mode"`
}

type Events struct {
	OnHover Mode `json:"onhover"`
	OnClick Mode `json:"onclick"`
	Resize  bool `json:"resize"`
}

type Grab struct {
	Distance   float64 `json:"distance"`
	LineLinked struct {
		Opacity float64 `json:"opacity"`
	} `json:"line_linked"`
}

type Bubble struct {
	Distance float64 `json:"distance"`
	Size     float64 `json:"size"`
	Duration float64 `json:"duration"`
	Opacity  float64 `json:"opacity"`
	Speed    float64 `json:"speed"`
}

type Repulse struct {
	Distance float64 `json:"distance"`
	Duration float64 `json:"duration"`
}

type Count struct {
	Particles int `json:"particles_nb"`
}

type Modes struct {
	Grab    Grab    `json:"grab"`
	Bubble  Bubble  `json:"bubble"`
	Repulse Repulse `json:"repulse"`
	Push    Count   `json:"push"`
	Remove  Count   `json:"remove"`
}

type Interactivity struct {
	DetectOn string `json:"detect_on"`
	Events   Events `json:"events"`
	Modes    Modes  `json:"modes"`
}

// Config is the particles.js configuration tree.
type Config struct {
	Particles     Options       `json:"particles"`
	Interactivity Interactivity `json:"interactivity"`
	RetinaDetect  bool          `json:"retina_detect"`
}

// Palette is the neon color set the field draws from.
var Palette = []string{"#00ffff", "#ff0080", "#39ff14", "#ff8c00", "#667eea", "#f093fb"}

// Default returns the portfolio's particle field.
func Default() Config {
	var cfg Config

	cfg.Particles.Number = Number{Value: 120, Density: Density{Enable: true, ValueArea: 800}}
	cfg.Particles.Color = Color{Value: append([]string(nil), Palette...)}
	cfg.Particles.Shape = Shape{
		Type:    []string{"circle", "triangle", "polygon"},
		Stroke:  Stroke{Width: 1, Color: "#00ffff"},
		Polygon: Polygon{Sides: 6},
	}
	cfg.Particles.Opacity = Opacity{Value: 0.3, Random: true, Anim: Anim{Enable: true, Speed: 1, Min: 0.1}}
	cfg.Particles.Size = Size{Value: 4, Random: true, Anim: Anim{Enable: true, Speed: 2, SizeMin: 1}}
	cfg.Particles.LineLinked = LineLinked{Enable: true, Distance: 120, Color: "#00ffff", Opacity: 0.2, Width: 1.5}
	cfg.Particles.Move = Move{
		Enable:    true,
		Speed:     1.5,
		Direction: "none",
		Random:    true,
		OutMode:   "bounce",
		Bounce:    true,
		Attract:   Attract{Enable: true, RotateX: 600, RotateY: 1200},
	}

	cfg.Interactivity.DetectOn = "canvas"
	cfg.Interactivity.Events = Events{
		OnHover: Mode{Enable: true, Mode: "bubble"},
		OnClick: Mode{Enable: true, Mode: "push"},
		Resize:  true,
	}
	cfg.Interactivity.Modes.Grab.Distance = 180
	cfg.Interactivity.Modes.Grab.LineLinked.Opacity = 0.5
	cfg.Interactivity.Modes.Bubble = Bubble{Distance: 250, Size: 8, Duration: 2, Opacity: 0.8, Speed: 3}
	cfg.Interactivity.Modes.Repulse = Repulse{Distance: 150, Duration: 0.4}
	cfg.Interactivity.Modes.Push = Count{Particles: 6}
	cfg.Interactivity.Modes.Remove = Count{Particles: 2}

	cfg.RetinaDetect = true
	return cfg
}

// Count is the number of particles for a canvas of width x height pixels,
// scaled by density when enabled. It is at least one.
func (c Config) Count(width, height float64) int {
	n := c.Particles.Number.Value
	d := c.Particles.Number.Density
	if d.Enable && d.ValueArea > 0 {
		area := width * height / 1000
		n = int(float64(n) * area / d.ValueArea)
	}
	if n < 1 {
		n = 1
	}
	return n
}

// Colors parses the palette.
func (c Config) Colors() ([]colorful.Color, error) {
	out := make([]colorful.Color, 0, len(c.Particles.Color.Value))
	for _, hex := range c.Particles.Color.Value {
		col, err := colorful.Hex(hex)
		if err != nil {
			return nil, fmt.Errorf("particle color %q: %w", hex, err)
		}
		out = append(out, col)
	}
	return out, nil
}
