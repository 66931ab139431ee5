// internal/system/combat.go
package system

import (
	"cmp"
	"math"
	"slices"

	"go-viking-defense/internal/component"
	"go-viking-defense/internal/entity"
	"go-viking-defense/internal/types"
)

// CombatSystem picks a target for every tower and fires the ready ones.
type CombatSystem struct {
	ecs     *entity.ECS
	armory  *Armory
	damager *Damager
}

func NewCombatSystem(ecs *entity.ECS, armory *Armory, damager *Damager) *CombatSystem {
	return &CombatSystem{ecs: ecs, armory: armory, damager: damager}
}

type rankedEnemy struct {
	handle types.Handle
	enemy  *component.Enemy
}

// TargetOrder lists live enemies by ascending priority. Ties keep
// creation order.
func TargetOrder(ecs *entity.ECS) []types.Handle {
	ranked := make([]rankedEnemy, 0, ecs.Enemies.Len())
	for _, h := range ecs.Enemies.Handles() {
		if e, ok := ecs.Enemies.Get(h); ok && !e.Dead {
			ranked = append(ranked, rankedEnemy{h, e})
		}
	}
	slices.SortStableFunc(ranked, func(a, b rankedEnemy) int {
		return cmp.Compare(a.enemy.Priority(), b.enemy.Priority())
	})
	out := make([]types.Handle, len(ranked))
	for i, r := range ranked {
		out[i] = r.handle
	}
	return out
}

// Update engages at most one enemy per tower, in tower creation order.
func (s *CombatSystem) Update(deltaTime float64) {
	order := TargetOrder(s.ecs)
	for _, th := range s.ecs.Towers.Handles() {
		t, ok := s.ecs.Towers.Get(th)
		if !ok {
			continue
		}
		t.LastDelta = deltaTime

		eh, e := s.firstVisible(t, order)
		if e != nil {
			t.Target = eh
			t.AimX, t.AimY = e.X, e.Y
			t.Angle = math.Atan2(e.Y-t.Y, e.X-t.X)
		}
		if e == nil || t.CooldownRemaining > 0 {
			t.CooldownRemaining = math.Max(0, t.CooldownRemaining-deltaTime)
			continue
		}

		dmg, projectiles := s.armory.Attack(t, th, eh, e)
		if dmg > 0 {
			s.damager.Hit(eh, dmg)
		}
		for _, p := range projectiles {
			s.ecs.Projectiles.Add(p)
		}
	}
}

func (s *CombatSystem) firstVisible(t *component.Tower, order []types.Handle) (types.Handle, *component.Enemy) {
	for _, h := range order {
		e, ok := s.ecs.Enemies.Get(h)
		if ok && t.CanSee(e) {
			return h, e
		}
	}
	return types.Handle{}, nil
}
