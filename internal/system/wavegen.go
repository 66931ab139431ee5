// internal/system/wavegen.go
package system

import (
	"go-viking-defense/internal/component"
	"go-viking-defense/internal/utils"
)

const (
	wavesPerRank      = 24
	flipStep          = 0.1
	minFlip           = 0.1
	maxFlip           = 0.9
	modifierGrowth    = 0.05
	smallerSplitAbove = 5
	largerSplitAbove  = 13
)

var unitCosts = [...]int{component.Tiny: 1, component.Small: 2, component.Medium: 4, component.Big: 6}

// WaveRecipe records how a generated wave was composed.
type WaveRecipe struct {
	Flying         bool
	Progress       int // counter of the chosen track before this wave
	Rank           int
	ProgressInRank int
	Budget         int
	Size           component.SizeClass
	UnitCost       int // doubled when a modifier was drawn
	Count          int // Budget / UnitCost, before any split
	Modifier       component.Modifier
	SubWaves       []int // unit counts as spawned, main sub-wave first
}

// WaveGenerator composes endless waves that alternate between a flying and
// a swimming track, each escalating on its own.
type WaveGenerator struct {
	rng *utils.PRNGService

	FlyingProgress      int
	SwimmingProgress    int
	FlipProbability     float64
	ModifierProbability float64

	number int
	last   WaveRecipe
}

func NewWaveGenerator(rng *utils.PRNGService, flipProbability float64) *WaveGenerator {
	return &WaveGenerator{rng: rng, FlipProbability: flipProbability}
}

// NextWave implements WaveSource.
func (g *WaveGenerator) NextWave() (*component.Wave, bool) {
	w, recipe := g.Generate()
	g.last = recipe
	return w, true
}

// LastRecipe describes the wave NextWave returned most recently.
func (g *WaveGenerator) LastRecipe() WaveRecipe {
	return g.last
}

// Generate composes the next wave and advances the generator state.
func (g *WaveGenerator) Generate() (*component.Wave, WaveRecipe) {
	var r WaveRecipe
	r.Flying = g.rng.Float64() < g.FlipProbability
	if r.Flying {
		g.FlipProbability -= flipStep
		r.Progress = g.FlyingProgress
	} else {
		g.FlipProbability += flipStep
		r.Progress = g.SwimmingProgress
	}
	g.FlipProbability = utils.Clamp(g.FlipProbability, minFlip, maxFlip)

	r.Rank = 1 + r.Progress/wavesPerRank
	r.ProgressInRank = r.Progress % wavesPerRank
	r.Budget = 4 * ((r.ProgressInRank + 4) / 4)
	r.Size = component.SizeClass(r.ProgressInRank % 4)
	r.UnitCost = unitCosts[r.Size]
	r.Count = r.Budget / r.UnitCost

	if r.Count > 2 && g.rng.Chance(g.ModifierProbability) {
		r.Modifier = component.WaveModifiers[g.rng.Intn(len(component.WaveModifiers))]
		r.UnitCost *= 2
		r.Count = r.Budget / r.UnitCost
		g.ModifierProbability = 0
	} else {
		g.ModifierProbability += modifierGrowth * float64(r.ProgressInRank)
	}

	g.number++
	w := &component.Wave{Number: g.number}
	g.compose(w, &r)

	g.FlyingProgress += g.rng.Coin()
	g.SwimmingProgress += g.rng.Coin()
	if r.Flying {
		g.FlyingProgress++
	} else {
		g.SwimmingProgress++
	}
	return w, r
}

// compose fills the wave, trading part of a large sub-wave for units of
// an adjacent size tier at equal cost.
func (g *WaveGenerator) compose(w *component.Wave, r *WaveRecipe) {
	main := r.Count
	var smaller, larger int
	if main > smallerSplitAbove && r.Size > component.Tiny && g.rng.Coin() == 1 {
		moved := main / 2
		smaller = moved * unitCosts[r.Size] / unitCosts[r.Size-1]
		main -= moved
	}
	if main > largerSplitAbove && r.Size < component.Big && g.rng.Coin() == 1 {
		moved := main / 3
		if n := moved * unitCosts[r.Size] / unitCosts[r.Size+1]; n > 0 {
			larger = n
			main -= moved
		}
	}

	add := func(size component.SizeClass, n int) {
		if n <= 0 {
			return
		}
		w.Add(r.Modifier, r.Rank, component.EnemyType{Size: size, Flying: r.Flying}, n)
		r.SubWaves = append(r.SubWaves, n)
	}
	add(r.Size, main)
	if smaller > 0 {
		add(r.Size-1, smaller)
	}
	if larger > 0 {
		add(r.Size+1, larger)
	}
}
