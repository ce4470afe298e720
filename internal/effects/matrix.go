package effects

import (
	"fmt"
	"math/rand/v2"
	"time"
)

const (
	MatrixSpawnStagger = 200 * time.Millisecond
	MatrixColumnLife   = 5000 * time.Millisecond
	MatrixGlyphs       = 20
	matrixMinFall      = 2 * time.Second
	matrixFallSpread   = 3 * time.Second
)

// ColumnCount is the number of rain columns for a viewport width.
func ColumnCount(width float64) int {
	switch {
	case width <= 480:
		return 8
	case width <= 768:
		return 12
	case width <= 1024:
		return 16
	default:
		return 20
	}
}

// Column is one falling strip of binary glyphs.
type Column struct {
	ID      string
	LeftPct float64
	Fall    time.Duration
	Glyphs  []rune
	Born    time.Time
	Expires time.Time
}

// Offset is how far the column has fallen at now, as a fraction of one fall
// cycle. The strip wraps once it passes the bottom.
func (c Column) Offset(now time.Time) float64 {
	if c.Fall <= 0 {
		return 0
	}
	cycle := now.Sub(c.Born) % c.Fall
	return float64(cycle) / float64(c.Fall)
}

// Rain is the background matrix rain. Columns appear one every 200ms and
// each is replaced with a fresh one after five seconds.
type Rain struct {
	rng     *rand.Rand
	seq     int
	spawnAt []time.Time
	cols    []Column
}

// NewRain sizes the rain for width, starting at start.
func NewRain(width float64, start time.Time, rng *rand.Rand) *Rain {
	n := ColumnCount(width)
	r := &Rain{rng: rng, spawnAt: make([]time.Time, n)}
	for i := range r.spawnAt {
		r.spawnAt[i] = start.Add(time.Duration(i) * MatrixSpawnStagger)
	}
	return r
}

// Update spawns due columns and recycles expired ones.
func (r *Rain) Update(now time.Time) []Command {
	var cmds []Command

	kept := r.cols[:0]
	var respawn []time.Time
	for _, c := range r.cols {
		if !now.Before(c.Expires) {
			cmds = append(cmds, Command{Target: c.ID, Op: Remove, Name: "matrix-column"})
			respawn = append(respawn, c.Expires)
			continue
		}
		kept = append(kept, c)
	}
	r.cols = kept

	pending := r.spawnAt[:0]
	for _, at := range r.spawnAt {
		if now.Before(at) {
			pending = append(pending, at)
			continue
		}
		respawn = append(respawn, at)
	}
	r.spawnAt = pending

	for _, at := range respawn {
		c := r.column(at)
		r.cols = append(r.cols, c)
		cmds = append(cmds,
			Command{Target: c.ID, Op: Spawn, Name: "matrix-column", Value: string(c.Glyphs)},
			setStyle(c.ID, "left", fmt.Sprintf("%g%%", c.LeftPct)),
			setStyle(c.ID, "animation-duration", fmt.Sprintf("%gs", c.Fall.Seconds())),
		)
	}
	return cmds
}

func (r *Rain) column(born time.Time) Column {
	r.seq++
	glyphs := make([]rune, MatrixGlyphs)
	for i := range glyphs {
		glyphs[i] = rune('0' + r.rng.IntN(2))
	}
	return Column{
		ID:      fmt.Sprintf("matrix-%d", r.seq),
		LeftPct: r.rng.Float64() * 100,
		Fall:    matrixMinFall + time.Duration(r.rng.Float64()*float64(matrixFallSpread)),
		Glyphs:  glyphs,
		Born:    born,
		Expires: born.Add(MatrixColumnLife),
	}
}

// Columns returns the live columns.
func (r *Rain) Columns() []Column {
	out := make([]Column, len(r.cols))
	copy(out, r.cols)
	return out
}
