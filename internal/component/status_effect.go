// internal/component/status_effect.go
package component

import "go-viking-defense/internal/defs"

const (
	EffectSlowDown = "slowdown"
	EffectInflame  = "inflame"
	EffectFreeze   = "freeze"
)

// Effect is a timed status carried by an enemy. It is a plain value:
// templates are copied onto enemies, never shared.
type Effect struct {
	Name            string
	Duration        float64 // full duration, used when the effect is refreshed
	Remaining       float64
	DamagePerSecond float64
	SpeedMultiplier float64
}

// NewEffect returns a fresh effect with its full duration remaining.
func NewEffect(name string, duration, dps, speedMultiplier float64) Effect {
	return Effect{
		Name:            name,
		Duration:        duration,
		Remaining:       duration,
		DamagePerSecond: dps,
		SpeedMultiplier: speedMultiplier,
	}
}

// EffectFromDef stamps an effect from its template.
func EffectFromDef(def defs.EffectDefinition) Effect {
	return NewEffect(def.ID, def.Duration, def.DamagePerSecond, def.SpeedMultiplier)
}

// Fresh returns a copy with the timer reset.
func (e Effect) Fresh() Effect {
	e.Remaining = e.Duration
	return e
}

// Halved returns a copy lasting half as long. Fragments carry these.
func (e Effect) Halved() Effect {
	e.Duration /= 2
	e.Remaining = e.Duration
	return e
}

// Expired reports whether the effect should be removed.
func (e Effect) Expired() bool {
	return e.Remaining <= 0
}
