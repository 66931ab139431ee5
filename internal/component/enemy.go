package component

import (
	"fmt"
	"math"
	"strings"

	"go-viking-defense/internal/defs"
	"go-viking-defense/pkg/gridmap"
)

// SizeClass is the size tier of an enemy; it also picks its stats.
type SizeClass int

const (
	Tiny SizeClass = iota
	Small
	Medium
	Big
)

var sizeNames = [...]string{"tiny", "small", "medium", "big"}

func (s SizeClass) String() string {
	if s < Tiny || s > Big {
		return "unknown"
	}
	return sizeNames[s]
}

// EnemyType names a roster slot such as "big flying" or "small floating".
type EnemyType struct {
	Size   SizeClass
	Flying bool
}

func (t EnemyType) String() string {
	if t.Flying {
		return t.Size.String() + " flying"
	}
	return t.Size.String() + " floating"
}

// ParseEnemyType accepts the names used by wave files.
func ParseEnemyType(s string) (EnemyType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	t := EnemyType{Flying: strings.Contains(s, "flying")}
	switch {
	case strings.Contains(s, "tiny"):
		t.Size = Tiny
	case strings.Contains(s, "small"):
		t.Size = Small
	case strings.Contains(s, "medium"):
		t.Size = Medium
	case strings.Contains(s, "big"):
		t.Size = Big
	default:
		return t, fmt.Errorf("unknown enemy type %q", s)
	}
	return t, nil
}

// Enemy is a hostile unit.
type Enemy struct {
	DefID string
	Type  EnemyType

	Position
	Velocity Velocity
	Speed    float64
	Angle    float64 // facing, radians
	Size     float64 // sprite width in pixels

	Health    float64
	MaxHealth float64
	Reward    float64
	Dead      bool

	Movement MovementKind
	CanHide  bool
	Hidden   bool

	Rank      int
	Modifier  Modifier
	RegenRate float64

	// Effects holds at most one effect per name.
	Effects []Effect

	Path     []gridmap.Cell
	NextStep int
	Wobble   Wobble

	PriorityBase   float64 // recomputed every tick
	PriorityOffset float64 // permanent, granted by abilities
}

// Priority is the sort key towers use: lower is attacked first.
func (e *Enemy) Priority() float64 {
	return e.PriorityBase + e.PriorityOffset
}

func (e *Enemy) IsFlying() bool {
	return e.Movement == Flying
}

// SetRank rescales health and reward from the current rank to a new one.
func (e *Enemy) SetRank(rank int) {
	if rank < 1 {
		rank = 1
	}
	old := e.Rank
	if old < 1 {
		old = 1
	}
	e.Rank = rank
	ratio := float64(rank) / float64(old)
	e.MaxHealth *= ratio
	e.Health *= ratio
	base := 2 * e.Reward / float64(1+old)
	e.Reward = 0.5 * base * float64(1+rank)
}

// SetModifier swaps the modifier, undoing the old one's stat changes.
func (e *Enemy) SetModifier(m Modifier) {
	old := e.Modifier
	e.Modifier = m
	if old == m {
		return
	}
	if m == ModFast {
		e.Speed *= 1.5
		e.Velocity = e.Velocity.Scale(1.5)
	} else if old == ModFast {
		e.Speed /= 1.5
		e.Velocity = e.Velocity.Scale(1 / 1.5)
	}
	if m == ModRegen {
		e.RegenRate = 0.5 + e.MaxHealth/30
	} else if old == ModRegen {
		e.RegenRate = 0
	}
}

// EffectIndex returns the position of the named effect or -1.
func (e *Enemy) EffectIndex(name string) int {
	for i := range e.Effects {
		if e.Effects[i].Name == name {
			return i
		}
	}
	return -1
}

// NewEnemy stamps a rank 1 enemy without modifier from its definition.
func NewEnemy(def *defs.EnemyDefinition, t EnemyType, x, y float64) *Enemy {
	e := &Enemy{
		DefID:     def.ID,
		Type:      t,
		Position:  Position{X: x, Y: y},
		Velocity:  Velocity{0, -def.Speed},
		Speed:     def.Speed,
		Angle:     -math.Pi / 2,
		Size:      def.Width,
		Health:    def.Health,
		MaxHealth: def.Health,
		Reward:    def.Reward,
		CanHide:   def.CanHide,
		Rank:      1,
	}
	if t.Flying {
		e.Movement = Flying
	}
	return e
}
