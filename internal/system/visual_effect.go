// internal/system/visual_effect.go
package system

import (
	"math"

	"go-viking-defense/internal/entity"
)

// VisualEffectSystem runs the cosmetic timers of towers.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

// Update counts attack animations down, floored at zero.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	for _, h := range s.ecs.Towers.Handles() {
		t, ok := s.ecs.Towers.Get(h)
		if !ok || t.AttackAnimRemaining == 0 {
			continue
		}
		t.AttackAnimRemaining = math.Max(0, t.AttackAnimRemaining-deltaTime)
	}
}
