package particles

import (
	"math"
	"math/rand/v2"
)

// Particle is one body in the field, in canvas pixels.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Size    float64
	Opacity float64
	Color   int
	Shape   string
}

// Field simulates the particle background: free movement with edge bounce.
type Field struct {
	cfg       Config
	rng       *rand.Rand
	width     float64
	height    float64
	particles []Particle
}

// NewField seeds a field sized width x height with cfg.Count particles.
func NewField(cfg Config, width, height float64, rng *rand.Rand) *Field {
	f := &Field{cfg: cfg, rng: rng, width: width, height: height}
	n := cfg.Count(width, height)
	for range n {
		f.particles = append(f.particles, f.spawn(rng.Float64()*width, rng.Float64()*height))
	}
	return f
}

func (f *Field) spawn(x, y float64) Particle {
	opt := f.cfg.Particles
	p := Particle{X: x, Y: y, Size: opt.Size.Value, Opacity: opt.Opacity.Value}
	if opt.Size.Random {
		p.Size = math.Max(opt.Size.Anim.SizeMin, f.rng.Float64()*opt.Size.Value)
	}
	if opt.Opacity.Random {
		p.Opacity = math.Max(opt.Opacity.Anim.Min, f.rng.Float64()*opt.Opacity.Value)
	}
	if n := len(opt.Color.Value); n > 0 {
		p.Color = f.rng.IntN(n)
	}
	if n := len(opt.Shape.Type); n > 0 {
		p.Shape = opt.Shape.Type[f.rng.IntN(n)]
	}
	if opt.Move.Enable {
		speed := opt.Move.Speed
		if opt.Move.Random {
			speed *= f.rng.Float64()
		}
		angle := f.rng.Float64() * 2 * math.Pi
		p.VX = math.Cos(angle) * speed
		p.VY = math.Sin(angle) * speed
	}
	return p
}

// Step advances the field by dt frames.
func (f *Field) Step(dt float64) {
	for i := range f.particles {
		p := &f.particles[i]
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.X, p.VX = bounce(p.X, p.VX, f.width)
		p.Y, p.VY = bounce(p.Y, p.VY, f.height)
	}
}

func bounce(pos, vel, limit float64) (float64, float64) {
	if limit <= 0 {
		return 0, vel
	}
	switch {
	case pos < 0:
		return math.Min(-pos, limit), -vel
	case pos > limit:
		return math.Max(2*limit-pos, 0), -vel
	}
	return pos, vel
}

// Push adds the click-mode particles at (x, y).
func (f *Field) Push(x, y float64) {
	ev := f.cfg.Interactivity.Events.OnClick
	if !ev.Enable || ev.Mode != "push" {
		return
	}
	for range f.cfg.Interactivity.Modes.Push.Particles {
		f.particles = append(f.particles, f.spawn(x, y))
	}
}

// Links returns index pairs close enough to be drawn connected.
func (f *Field) Links() [][2]int {
	ll := f.cfg.Particles.LineLinked
	if !ll.Enable {
		return nil
	}
	var out [][2]int
	for i := range f.particles {
		for j := i + 1; j < len(f.particles); j++ {
			dx := f.particles[i].X - f.particles[j].X
			dy := f.particles[i].Y - f.particles[j].Y
			if math.Hypot(dx, dy) <= ll.Distance {
				out = append(out, [2]int{i, j})
			}
		}
	}
	return out
}

// Resize changes the canvas and clamps particles into it.
func (f *Field) Resize(width, height float64) {
	f.width, f.height = width, height
	for i := range f.particles {
		f.particles[i].X = math.Min(f.particles[i].X, width)
		f.particles[i].Y = math.Min(f.particles[i].Y, height)
	}
}

// Particles returns a copy of the current bodies.
func (f *Field) Particles() []Particle {
	out := make([]Particle, len(f.particles))
	copy(out, f.particles)
	return out
}

// Config returns the field's configuration.
func (f *Field) Config() Config {
	return f.cfg
}
