// internal/component/projectile.go
package component

import (
	"go-viking-defense/internal/types"
	"go-viking-defense/internal/utils"
)

// Projectile is an in-flight attack. Damage is dealt on impact.
type Projectile struct {
	Name string

	Position
	Velocity Velocity
	Speed    float64

	// Target is followed while it lives. Once it is gone the projectile
	// flies on to the last known point.
	Target  types.Handle
	TargetX float64
	TargetY float64

	Retargeting bool
	ParentTower types.Handle

	Damage       float64
	Splash       bool
	SplashRadius float64
	Effects      []Effect
	Fragments    int

	Scale     float64
	Angle     float64
	AngleRate float64 // degrees per second
}

// NewProjectile aims a projectile from (x, y) at a fixed point.
func NewProjectile(name string, x, y, speed, targetX, targetY, damage float64) *Projectile {
	p := &Projectile{
		Name:     name,
		Position: Position{X: x, Y: y},
		Speed:    speed,
		TargetX:  targetX,
		TargetY:  targetY,
		Damage:   damage,
		Scale:    1,
	}
	p.AimAt(targetX, targetY)
	return p
}

// AimAt points the velocity straight at (x, y).
func (p *Projectile) AimAt(x, y float64) {
	vx, vy := utils.Normalize(x-p.X, y-p.Y, p.Speed)
	p.Velocity = Velocity{vx, vy}
}

// IsHoming reports whether a live target is being followed.
func (p *Projectile) IsHoming() bool {
	return !p.Target.IsZero()
}

// Fragment returns a weaker copy of p aimed at an enemy at (x, y).
// Fragments never fragment again.
func (p *Projectile) Fragment(target types.Handle, x, y float64) *Projectile {
	f := &Projectile{
		Name:         p.Name + "-fragment",
		Position:     p.Position,
		Speed:        p.Speed,
		Target:       target,
		TargetX:      x,
		TargetY:      y,
		Damage:       p.Damage / 2,
		Splash:       p.Splash,
		SplashRadius: p.SplashRadius / 2,
		Scale:        p.Scale / 2,
		AngleRate:    p.AngleRate,
	}
	for _, e := range p.Effects {
		f.Effects = append(f.Effects, e.Halved())
	}
	f.AimAt(x, y)
	return f
}
