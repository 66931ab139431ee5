// component/movement.go
package component

import "math"

// Position is a point in world coordinates (y grows upwards).
type Position struct {
	X, Y float64
}

// Dist2 returns the squared distance to another point.
func (p Position) Dist2(o Position) float64 {
	dx := p.X - o.X
	dy := p.Y - o.Y
	return dx*dx + dy*dy
}

// Velocity is expressed in pixels per reference frame.
type Velocity struct {
	X, Y float64
}

// Len returns the magnitude of the vector.
func (v Velocity) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Scale multiplies both components.
func (v Velocity) Scale(f float64) Velocity {
	return Velocity{v.X * f, v.Y * f}
}

// MovementKind selects how an enemy travels.
type MovementKind int

const (
	Floating MovementKind = iota // follows a water path
	Flying                       // falls straight down
)

// Wobble perturbs each waypoint so units don't all trace cell centers.
// Drawn once at spawn.
type Wobble struct {
	R      float64
	Theta0 float64
	Omega  float64
}
