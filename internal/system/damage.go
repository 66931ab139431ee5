// internal/system/damage.go
package system

import (
	"go-viking-defense/internal/component"
	"go-viking-defense/internal/entity"
	"go-viking-defense/internal/event"
	"go-viking-defense/internal/types"
)

// DamageEnemy subtracts dmg from the enemy's health, halved behind a shield.
// It returns the reward earned: the enemy's reward if this hit killed it, 0
// otherwise. An enemy is only ever paid out once.
func DamageEnemy(e *component.Enemy, dmg float64) float64 {
	before := e.Health
	if e.Modifier.IsShield() {
		e.Health -= dmg / 2
	} else {
		e.Health -= dmg
	}
	if e.Health > 0 {
		return 0
	}
	wasAlive := !e.Dead && before > 0
	e.Dead = true
	e.Effects = nil
	if dmg > 0 && wasAlive {
		return e.Reward
	}
	return 0
}

// Damager routes every source of damage through DamageEnemy so kill credit
// is identical for towers, projectiles, splash and damage over time.
type Damager struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewDamager(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *Damager {
	return &Damager{ecs: ecs, eventDispatcher: eventDispatcher}
}

// Hit damages the enemy behind h. A killed enemy is removed from the arena
// and EnemyKilled is dispatched with its reward. Reports whether it died.
func (d *Damager) Hit(h types.Handle, dmg float64) bool {
	e, ok := d.ecs.Enemies.Get(h)
	if !ok {
		return false
	}
	wasDead := e.Dead
	reward := DamageEnemy(e, dmg)
	if !e.Dead || wasDead {
		return false
	}
	d.ecs.Enemies.Remove(h)
	d.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemyKilled,
		Data: event.EnemyKilledData{
			Enemy:  h,
			Reward: reward,
			Flying: e.IsFlying(),
			Hidden: e.Hidden,
		},
	})
	return true
}
