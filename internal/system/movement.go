// internal/system/movement.go
package system

import (
	"errors"
	"math"

	"go-viking-defense/internal/component"
	"go-viking-defense/internal/config"
	"go-viking-defense/internal/entity"
	"go-viking-defense/internal/event"
	"go-viking-defense/internal/utils"
	"go-viking-defense/pkg/gridmap"

	"go.uber.org/zap"
)

// pathWeight makes each remaining waypoint outweigh any on-screen height.
const pathWeight = 1000

// MovementSystem moves enemies, tracks who dives and who escaped.
type MovementSystem struct {
	ecs             *entity.ECS
	gridMap         *gridmap.Map
	eventDispatcher *event.Dispatcher
	logger          *zap.Logger
}

func NewMovementSystem(ecs *entity.ECS, gridMap *gridmap.Map, eventDispatcher *event.Dispatcher, logger *zap.Logger) *MovementSystem {
	return &MovementSystem{
		ecs:             ecs,
		gridMap:         gridMap,
		eventDispatcher: eventDispatcher,
		logger:          logger.Named("movement"),
	}
}

// RemoveEscaped takes out every enemy that crossed the exit line and
// returns how many did.
func (s *MovementSystem) RemoveEscaped() int {
	escaped := 0
	for _, h := range s.ecs.Enemies.Handles() {
		e, ok := s.ecs.Enemies.Get(h)
		if !ok || e.Y > config.ChinHeight-config.ExitLineOffset {
			continue
		}
		s.ecs.Enemies.Remove(h)
		escaped++
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.EnemyEscaped,
			Data: event.EnemyData{Enemy: h, Flying: e.IsFlying()},
		})
	}
	return escaped
}

// UpdateHiding submerges divers over deep water and surfaces them elsewhere.
func (s *MovementSystem) UpdateHiding() {
	for _, h := range s.ecs.Enemies.Handles() {
		e, ok := s.ecs.Enemies.Get(h)
		if !ok || !e.CanHide {
			continue
		}
		c := s.gridMap.NearestCell(e.X, e.Y)
		e.Hidden = s.gridMap.Terrain(c.I, c.J) == gridmap.Deep
	}
}

// Update steers, heals and moves every enemy, then refreshes its priority.
func (s *MovementSystem) Update(deltaTime float64) {
	for _, h := range s.ecs.Enemies.Handles() {
		e, ok := s.ecs.Enemies.Get(h)
		if !ok {
			continue
		}
		if e.Modifier == component.ModRegen {
			e.Health = math.Min(e.Health+e.RegenRate*deltaTime, e.MaxHealth)
		}

		if e.IsFlying() {
			e.Velocity = component.Velocity{X: 0, Y: -e.Speed}
			e.PriorityBase = e.Y
		} else {
			s.steer(e)
			e.PriorityBase = e.Y + pathWeight*float64(len(e.Path)-e.NextStep)
		}

		e.Velocity = e.Velocity.Scale(SpeedMultiplier(e))
		e.X += e.Velocity.X * deltaTime * config.ReferenceFPS
		e.Y += e.Velocity.Y * deltaTime * config.ReferenceFPS
	}
}

// steer advances a floating enemy along its path with a little wobble.
func (s *MovementSystem) steer(e *component.Enemy) {
	c := s.gridMap.NearestCell(e.X, e.Y)
	if gridmap.InCell(e.X, e.Y, c) {
		for k, step := range e.Path {
			if step == c {
				e.NextStep = k + 1
				break
			}
		}
	}

	var tx, ty float64
	if e.NextStep < len(e.Path) {
		tx, ty = gridmap.CellCenter(e.Path[e.NextStep])
		phase := e.Wobble.Theta0 + float64(e.NextStep)*e.Wobble.Omega
		tx += e.Wobble.R * math.Cos(phase)
		ty += e.Wobble.R * math.Sin(phase)
	} else {
		tx, ty = e.X, e.Y-200
	}

	toX, toY := utils.Normalize(tx-e.X, ty-e.Y, e.Speed)
	vx := config.SteerBlend*toX + (1-config.SteerBlend)*e.Velocity.X
	vy := config.SteerBlend*toY + (1-config.SteerBlend)*e.Velocity.Y
	vx, vy = utils.Normalize(vx, vy, e.Speed)
	e.Velocity = component.Velocity{X: vx, Y: vy}
	e.Angle = math.Atan2(vy, vx)
}

// AssignPath routes a floating enemy from where it stands to the exit.
// Without a route it keeps no path and simply drifts down.
func (s *MovementSystem) AssignPath(e *component.Enemy) error {
	start := s.gridMap.NearestCell(e.X, e.Y)
	path, err := gridmap.FindPath(start, s.gridMap.ExitCell(), s.gridMap)
	if err != nil {
		return err
	}
	e.Path = path
	e.NextStep = 0
	return nil
}

// Repath recomputes the route of every floating enemy after the map changed.
// Enemies left without a route keep their old one.
func (s *MovementSystem) Repath() {
	for _, h := range s.ecs.Enemies.Handles() {
		e, ok := s.ecs.Enemies.Get(h)
		if !ok || e.IsFlying() {
			continue
		}
		if err := s.AssignPath(e); err != nil {
			if errors.Is(err, gridmap.ErrNoPathFound) {
				s.logger.Debug("enemy keeps its old route", zap.Stringer("enemy", h))
				continue
			}
			s.logger.Warn("repath failed", zap.Stringer("enemy", h), zap.Error(err))
		}
	}
}
