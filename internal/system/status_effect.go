// internal/system/status_effect.go
package system

import (
	"go-viking-defense/internal/component"
	"go-viking-defense/internal/entity"
	"go-viking-defense/internal/event"
	"go-viking-defense/internal/types"
)

// ApplyEffect puts eff on the enemy and reports whether it was newly added.
// Dead enemies and shield-immune enemies refuse it. An effect of the same
// name already present gets its timer reset to eff's full duration instead.
func ApplyEffect(e *component.Enemy, eff component.Effect) bool {
	if e.Dead || e.Health <= 0 {
		return false
	}
	if e.Modifier.Blocks(eff.Name) {
		return false
	}
	if i := e.EffectIndex(eff.Name); i >= 0 {
		e.Effects[i].Remaining = eff.Duration
		return false
	}
	e.Effects = append(e.Effects, eff.Fresh())
	return true
}

// StatusEffectSystem runs the lifecycle of timed effects.
type StatusEffectSystem struct {
	ecs             *entity.ECS
	damager         *Damager
	eventDispatcher *event.Dispatcher
}

func NewStatusEffectSystem(ecs *entity.ECS, damager *Damager, eventDispatcher *event.Dispatcher) *StatusEffectSystem {
	return &StatusEffectSystem{ecs: ecs, damager: damager, eventDispatcher: eventDispatcher}
}

// Apply is ApplyEffect on an arena enemy. New effects are announced.
func (s *StatusEffectSystem) Apply(h types.Handle, eff component.Effect) bool {
	e, ok := s.ecs.Enemies.Get(h)
	if !ok || !ApplyEffect(e, eff) {
		return false
	}
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EffectApplied,
		Data: event.EffectAppliedData{Enemy: h, Effect: eff.Name},
	})
	return true
}

// ApplyDamageOverTime deals rate*dt for every burning effect.
func (s *StatusEffectSystem) ApplyDamageOverTime(deltaTime float64) {
	for _, h := range s.ecs.Enemies.Handles() {
		e, ok := s.ecs.Enemies.Get(h)
		if !ok {
			continue
		}
		var dmg float64
		for _, eff := range e.Effects {
			if eff.DamagePerSecond > 0 {
				dmg += eff.DamagePerSecond * deltaTime
			}
		}
		if dmg > 0 {
			s.damager.Hit(h, dmg)
		}
	}
}

// Update counts effect timers down and drops the expired ones.
func (s *StatusEffectSystem) Update(deltaTime float64) {
	for _, h := range s.ecs.Enemies.Handles() {
		e, ok := s.ecs.Enemies.Get(h)
		if !ok || len(e.Effects) == 0 {
			continue
		}
		kept := e.Effects[:0]
		for _, eff := range e.Effects {
			eff.Remaining -= deltaTime
			if !eff.Expired() {
				kept = append(kept, eff)
			}
		}
		e.Effects = kept
	}
}

// SpeedMultiplier is the product of every active effect's multiplier.
func SpeedMultiplier(e *component.Enemy) float64 {
	m := 1.0
	for _, eff := range e.Effects {
		m *= eff.SpeedMultiplier
	}
	return m
}
