// component/tower.go
package component

import (
	"go-viking-defense/internal/config"
	"go-viking-defense/internal/defs"
	"go-viking-defense/internal/types"
	"go-viking-defense/pkg/gridmap"
)

// SightSet is the set of enemy states a tower can engage.
type SightSet uint8

const (
	SightFlying SightSet = 1 << iota
	SightFloating
	SightUnderwater
)

// SightsFrom converts the sights listed in a definition.
func SightsFrom(sees []defs.Sight) SightSet {
	var s SightSet
	for _, v := range sees {
		switch v {
		case defs.SeeFlying:
			s |= SightFlying
		case defs.SeeFloating:
			s |= SightFloating
		case defs.SeeUnderwater:
			s |= SightUnderwater
		}
	}
	return s
}

func (s SightSet) Has(f SightSet) bool {
	return s&f == f
}

// Tower is a placed defensive building.
type Tower struct {
	DefID string
	Def   *defs.TowerDefinition // shared, read-only

	Position
	Cell gridmap.Cell

	// Current stats. SetRune rebuilds them from Def.
	Range          float64
	Damage         float64
	Cooldown       float64
	Homing         bool
	ConstantAttack bool
	Sees           SightSet

	CooldownRemaining float64
	Rune              Rune

	Target types.Handle // may be stale
	AimX   float64
	AimY   float64
	Angle  float64 // radians, faces the aim point

	HitCounter          int // tempest
	AttackAnimRemaining float64
	LastDelta           float64 // dt of the latest tick, used by flame attacks
}

// NewTower builds a tower standing on cell c.
func NewTower(def *defs.TowerDefinition, c gridmap.Cell) *Tower {
	x, y := gridmap.CellCenter(c)
	t := &Tower{
		DefID:     def.ID,
		Def:       def,
		Position:  Position{X: x, Y: y},
		Cell:      c,
		AimX:      config.MapWidth / 2,
		AimY:      config.ScreenHeight * 100000,
		LastDelta: 1.0 / config.ReferenceFPS,
	}
	t.resetStats()
	return t
}

func (t *Tower) resetStats() {
	t.Range = t.Def.Range
	t.Damage = t.Def.Damage
	t.Cooldown = t.Def.Cooldown
	t.Homing = t.Def.Homing
	t.ConstantAttack = t.Def.ConstantAttack
	t.Sees = SightsFrom(t.Def.Sees)
}

// CanSee reports whether the enemy is within range and of a kind this tower
// engages. Hidden enemies need the underwater sight.
func (t *Tower) CanSee(e *Enemy) bool {
	if e.Dead || e.Y > config.ScreenHeight {
		return false
	}
	if t.Position.Dist2(e.Position) > t.Range*t.Range {
		return false
	}
	if e.IsFlying() && !t.Sees.Has(SightFlying) {
		return false
	}
	if !e.IsFlying() && !t.Sees.Has(SightFloating) {
		return false
	}
	if e.Hidden && !t.Sees.Has(SightUnderwater) {
		return false
	}
	return true
}

// HasRune reports whether r is attached. NoRune matches any rune.
func (t *Tower) HasRune(r Rune) bool {
	if t.Rune == NoRune {
		return false
	}
	return r == NoRune || t.Rune == r
}

// SetRune attaches r, replacing the previous rune. Stats are rebuilt from
// the definition first so rune bonuses never stack. Returns false if r is
// already attached.
func (t *Tower) SetRune(r Rune) bool {
	if r == NoRune || t.Rune == r {
		return false
	}
	if t.Rune != NoRune {
		t.resetStats()
	}
	t.Rune = r
	switch r {
	case Raidho:
		t.Homing = true
	case Hagalaz:
		t.Damage *= 1.25
	case Tiwaz:
		t.Range *= 1.5
	case Kenaz:
		t.Damage *= 1.2
	case Sowil:
		t.Cooldown /= 2
		t.CooldownRemaining /= 2
		if t.ConstantAttack {
			t.Damage *= 2
		}
	}
	return true
}
