package sim

import (
	"math/rand"

	"github.com/ojrac/opensimplex-go"
)

// strataScaleX and strataScaleY stretch the noise field so veins run
// mostly sideways.
const (
	strataScaleX = 0.45
	strataScaleY = 0.18
)

// Generate builds a fresh stage: empty sky rows, a field of colored blocks
// with occasional Brown blocks and air pockets, and a band of Clear blocks
// at the bottom. All randomness comes from rng.
func Generate(p Params, rng *rand.Rand) *Grid {
	g := NewGrid(p.Width, p.Height(), p.Topology)

	pick := uniformColor(rng)
	if p.Generator == GeneratorStrata {
		pick = strataColor(opensimplex.New(rng.Int63()))
	}

	fieldEnd := p.SkyRows + p.FieldRows
	for y := p.SkyRows; y < fieldEnd; y++ {
		for x := 0; x < p.Width; x++ {
			color := pick(x, y)
			if rng.Float64() < p.BrownChance {
				color = ColorBrown
			}
			g.Set(g.Pos(x, y), NewBlock(color, p.LifeMax))
		}
	}

	for y := nextPocketRow(p, rng, p.SkyRows); y < fieldEnd; y = nextPocketRow(p, rng, y) {
		g.Set(g.Pos(rng.Intn(p.Width), y), NewAir())
	}

	for y := fieldEnd; y < p.Height(); y++ {
		for x := 0; x < p.Width; x++ {
			g.Set(g.Pos(x, y), NewBlock(ColorClear, p.LifeMax))
		}
	}
	return g
}

func nextPocketRow(p Params, rng *rand.Rand, from int) int {
	jitter := rng.Intn(2*p.AirPocketJitter+1) - p.AirPocketJitter
	return from + max(1, p.AirPocketInterval+jitter)
}

func uniformColor(rng *rand.Rand) func(x, y int) Color {
	return func(int, int) Color {
		return plainColors[rng.Intn(len(plainColors))]
	}
}

func strataColor(noise opensimplex.Noise) func(x, y int) Color {
	return func(x, y int) Color {
		n := (noise.Eval2(float64(x)*strataScaleX, float64(y)*strataScaleY) + 1) / 2
		i := int(n * float64(len(plainColors)))
		return plainColors[min(max(i, 0), len(plainColors)-1)]
	}
}
