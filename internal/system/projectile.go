// internal/system/projectile.go
package system

import (
	"math"

	"go-viking-defense/internal/component"
	"go-viking-defense/internal/config"
	"go-viking-defense/internal/entity"
	"go-viking-defense/internal/event"
	"go-viking-defense/internal/types"
	"go-viking-defense/internal/utils"
)

// ProjectileSystem flies projectiles and resolves their impacts.
type ProjectileSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	damager         *Damager
	effects         *StatusEffectSystem
}

func NewProjectileSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, damager *Damager, effects *StatusEffectSystem) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		damager:         damager,
		effects:         effects,
	}
}

// CheckImpacts detonates every projectile that reached its target point,
// or that has flown past it.
func (s *ProjectileSystem) CheckImpacts() {
	for _, ph := range s.ecs.Projectiles.Handles() {
		p, ok := s.ecs.Projectiles.Get(ph)
		if !ok {
			continue
		}
		if s.arrived(p) {
			s.Impact(ph, p)
		}
	}
}

func (s *ProjectileSystem) arrived(p *component.Projectile) bool {
	dx := p.TargetX - p.X
	dy := p.TargetY - p.Y
	if math.Hypot(dx, dy) <= p.Speed/2 {
		return true
	}
	if p.Velocity.Len() == 0 {
		return false
	}
	return utils.AngleBetween(p.Velocity.X, p.Velocity.Y, dx, dy) >= math.Pi-config.SelfDetonateAngle
}

// Impact resolves a detonation and removes the projectile. It returns the
// number of enemies the impact killed, fragments excluded.
func (s *ProjectileSystem) Impact(ph types.Handle, p *component.Projectile) int {
	kills := 0
	hit := make(map[types.Handle]bool)

	if p.Splash {
		r2 := p.SplashRadius * p.SplashRadius
		enemies := s.ecs.Enemies.Handles()
		for k := len(enemies) - 1; k >= 0; k-- {
			h := enemies[k]
			e, ok := s.ecs.Enemies.Get(h)
			if !ok || p.Position.Dist2(e.Position) > r2 {
				continue
			}
			hit[h] = true
			if s.strike(h, p) {
				kills++
			}
		}
	} else if s.ecs.Enemies.Alive(p.Target) {
		hit[p.Target] = true
		if s.strike(p.Target, p) {
			kills++
		}
	}

	s.fragment(p, hit)
	s.ecs.Projectiles.Remove(ph)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.ImpactResolved,
		Data: event.ImpactData{Projectile: p.Name, Kills: kills},
	})
	return kills
}

// strike damages one enemy and stamps the projectile's effects on it.
func (s *ProjectileSystem) strike(h types.Handle, p *component.Projectile) bool {
	killed := s.damager.Hit(h, p.Damage)
	if !killed {
		for _, eff := range p.Effects {
			s.effects.Apply(h, eff)
		}
	}
	return killed
}

// fragment throws secondary projectiles at the nearest enemies the impact
// left untouched.
func (s *ProjectileSystem) fragment(p *component.Projectile, hit map[types.Handle]bool) {
	for k := 0; k < p.Fragments; k++ {
		best := types.Handle{}
		var bestEnemy *component.Enemy
		bestDist := config.FragmentSearchRange * config.FragmentSearchRange
		for _, h := range s.ecs.Enemies.Handles() {
			e, ok := s.ecs.Enemies.Get(h)
			if !ok || hit[h] {
				continue
			}
			if d := p.Position.Dist2(e.Position); d <= bestDist {
				best, bestEnemy, bestDist = h, e, d
			}
		}
		if bestEnemy == nil {
			return
		}
		hit[best] = true
		s.ecs.Projectiles.Add(p.Fragment(best, bestEnemy.X, bestEnemy.Y))
	}
}

// Update steers and moves projectiles, dropping those that left the map.
func (s *ProjectileSystem) Update(deltaTime float64) {
	for _, ph := range s.ecs.Projectiles.Handles() {
		p, ok := s.ecs.Projectiles.Get(ph)
		if !ok {
			continue
		}
		if p.IsHoming() {
			s.home(p)
		}
		p.Angle += p.AngleRate * deltaTime
		p.X += p.Velocity.X * deltaTime * config.ReferenceFPS
		p.Y += p.Velocity.Y * deltaTime * config.ReferenceFPS

		if p.X > config.MapWidth+config.ProjectileMargin || p.X < -config.ProjectileMargin ||
			p.Y > config.ScreenHeight+config.ProjectileMargin || p.Y < config.ChinHeight-config.ProjectileMargin {
			s.ecs.Projectiles.Remove(ph)
		}
	}
}

// home follows a live target, takes over the parent tower's target when
// retargeting, or gives up and flies to the last known point.
func (s *ProjectileSystem) home(p *component.Projectile) {
	e, ok := s.ecs.Enemies.Get(p.Target)
	if !ok && p.Retargeting {
		if t, tok := s.ecs.Towers.Get(p.ParentTower); tok && p.Position.Dist2(t.Position) <= t.Range*t.Range {
			if e, ok = s.ecs.Enemies.Get(t.Target); ok {
				p.Target = t.Target
			}
		}
	}
	if !ok {
		p.Target = types.Handle{}
		return
	}
	p.TargetX, p.TargetY = e.X, e.Y
	tx, ty := utils.Normalize(e.X-p.X, e.Y-p.Y, p.Speed)
	p.Velocity = component.Velocity{
		X: config.HomingKeep*p.Velocity.X + config.HomingBlend*tx,
		Y: config.HomingKeep*p.Velocity.Y + config.HomingBlend*ty,
	}
}
