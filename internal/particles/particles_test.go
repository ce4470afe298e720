package particles

import (
	"encoding/json"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_ParticlesJSShape(t *testing.T) {
	data, err := json.Marshal(Default())
	require.NoError(t, err)

	var tree map[string]any
	require.NoError(t, json.Unmarshal(data, &tree))

	p := tree["particles"].(map[string]any)
	assert.Equal(t, 120.0, p["number"].(map[string]any)["value"])
	assert.Len(t, p["color"].(map[string]any)["value"], 6)
	assert.Equal(t, "bounce", p["move"].(map[string]any)["out_mode"])

	modes := tree["interactivity"].(map[string]any)["modes"].(map[string]any)
	assert.Equal(t, 6.0, modes["push"].(map[string]any)["particles_nb"])
	assert.Equal(t, true, tree["retina_detect"])
}

func TestCount(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 120, cfg.Count(800, 1000), "800x1000 is exactly one density area")
	assert.Equal(t, 36, cfg.Count(640, 384))
	assert.Equal(t, 1, cfg.Count(1, 1))

	cfg.Particles.Number.Density.Enable = false
	assert.Equal(t, 120, cfg.Count(1, 1))
}

func TestColors(t *testing.T) {
	cols, err := Default().Colors()
	require.NoError(t, err)
	require.Len(t, cols, 6)
	r, g, b := cols[0].RGB255()
	assert.Equal(t, [3]uint8{0, 255, 255}, [3]uint8{r, g, b})

	cfg := Default()
	cfg.Particles.Color.Value = []string{"cyan"}
	_, err = cfg.Colors()
	assert.Error(t, err)
}

func TestField_StaysInBounds(t *testing.T) {
	f := NewField(Default(), 640, 384, rand.New(rand.NewPCG(7, 11)))
	require.Len(t, f.Particles(), 36)

	for range 500 {
		f.Step(1)
	}
	for _, p := range f.Particles() {
		assert.GreaterOrEqual(t, p.X, 0.0)
		assert.LessOrEqual(t, p.X, 640.0)
		assert.GreaterOrEqual(t, p.Y, 0.0)
		assert.LessOrEqual(t, p.Y, 384.0)
		assert.LessOrEqual(t, p.Size, 4.0)
		assert.GreaterOrEqual(t, p.Size, 1.0)
	}
}

func TestField_PushAndLinks(t *testing.T) {
	cfg := Default()
	cfg.Particles.Number.Value = 1
	cfg.Particles.Number.Density.Enable = false
	cfg.Particles.Move.Enable = false

	f := NewField(cfg, 1000, 1000, rand.New(rand.NewPCG(1, 1)))
	f.Push(10, 10)
	ps := f.Particles()
	require.Len(t, ps, 7)

	links := f.Links()
	assert.Contains(t, links, [2]int{1, 2}, "pushed particles share a position")

	cfg.Interactivity.Events.OnClick.Enable = false
	g := NewField(cfg, 100, 100, rand.New(rand.NewPCG(1, 1)))
	g.Push(1, 1)
	assert.Len(t, g.Particles(), 1)
}

func TestBounce(t *testing.T) {
	pos, vel := bounce(-5, -1, 100)
	assert.Equal(t, 5.0, pos)
	assert.Equal(t, 1.0, vel)

	pos, vel = bounce(105, 2, 100)
	assert.Equal(t, 95.0, pos)
	assert.Equal(t, -2.0, vel)
}
