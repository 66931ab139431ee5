// internal/system/wave.go
package system

import (
	"errors"
	"fmt"
	"math"

	"go-viking-defense/internal/component"
	"go-viking-defense/internal/config"
	"go-viking-defense/internal/defs"
	"go-viking-defense/internal/entity"
	"go-viking-defense/internal/event"
	"go-viking-defense/internal/utils"
	"go-viking-defense/pkg/gridmap"

	"go.uber.org/zap"
)

var (
	ErrWaveInProgress = errors.New("a wave is already in progress")
	ErrNoMoreWaves    = errors.New("no more waves")
)

// WaveSource hands out waves in order. The second result is false once
// the source is exhausted.
type WaveSource interface {
	NextWave() (*component.Wave, bool)
}

// CampaignWaves replays a scripted wave list.
type CampaignWaves struct {
	waves []*component.Wave
	next  int
}

// NewCampaignWaves converts campaign rows into waves.
func NewCampaignWaves(rows []defs.WaveRow) (*CampaignWaves, error) {
	c := &CampaignWaves{}
	for _, row := range rows {
		w, err := component.WaveFromRow(row)
		if err != nil {
			return nil, err
		}
		c.waves = append(c.waves, w)
	}
	return c, nil
}

func (c *CampaignWaves) NextWave() (*component.Wave, bool) {
	if c.next >= len(c.waves) {
		return nil, false
	}
	w := c.waves[c.next]
	c.next++
	return w, true
}

// WaveSystem spawns the units of the current wave at a fixed interval and
// reports when the wave is over.
type WaveSystem struct {
	ecs             *entity.ECS
	gridMap         *gridmap.Map
	lib             *defs.Library
	movement        *MovementSystem
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	logger          *zap.Logger

	source        WaveSource
	spawnInterval float64

	current    *component.Wave
	spawned    int
	spawnTimer float64
	completed  int
}

func NewWaveSystem(ecs *entity.ECS, gridMap *gridmap.Map, lib *defs.Library, movement *MovementSystem,
	eventDispatcher *event.Dispatcher, rng *utils.PRNGService, source WaveSource, spawnInterval float64,
	logger *zap.Logger) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		gridMap:         gridMap,
		lib:             lib,
		movement:        movement,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		source:          source,
		spawnInterval:   spawnInterval,
		logger:          logger.Named("waves"),
	}
}

// InProgress reports whether a wave is spawning or still has enemies alive.
func (s *WaveSystem) InProgress() bool {
	return s.current != nil
}

func (s *WaveSystem) Current() *component.Wave {
	return s.current
}

// Completed is the number of waves that ended.
func (s *WaveSystem) Completed() int {
	return s.completed
}

// StartWave pulls the next wave from the source. The first unit spawns on
// the next update.
func (s *WaveSystem) StartWave() (*component.Wave, error) {
	if s.current != nil {
		return nil, ErrWaveInProgress
	}
	w, ok := s.source.NextWave()
	if !ok {
		return nil, ErrNoMoreWaves
	}
	s.current = w
	s.spawned = 0
	s.spawnTimer = s.spawnInterval
	s.logger.Info("wave started",
		zap.Int("number", w.Number),
		zap.Int("size", w.Len()),
		zap.String("description", w.Describe()))
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.WaveStarted,
		Data: event.WaveData{Number: w.Number, Size: w.Len()},
	})
	return w, nil
}

// Update spawns due units and closes the wave once every unit is out and
// none is left alive.
func (s *WaveSystem) Update(deltaTime float64) {
	w := s.current
	if w == nil {
		return
	}
	if s.spawned < w.Len() {
		s.spawnTimer += deltaTime
		if s.spawnTimer >= s.spawnInterval {
			s.spawnTimer -= s.spawnInterval
			if err := s.spawn(w.Entries[s.spawned]); err != nil {
				s.logger.Error("spawn failed", zap.Int("wave", w.Number), zap.Error(err))
			}
			s.spawned++
		}
		return
	}
	if s.ecs.Enemies.Len() > 0 {
		return
	}
	s.current = nil
	s.completed++
	s.logger.Info("wave ended", zap.Int("number", w.Number))
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.WaveEnded,
		Data: event.WaveData{Number: w.Number, Size: w.Len()},
	})
}

func (s *WaveSystem) spawn(entry component.WaveEntry) error {
	def, ok := s.lib.EnemyFor(entry.Type.Size.String(), entry.Type.Flying)
	if !ok {
		return fmt.Errorf("no enemy definition for %s", entry.Type)
	}
	half := def.Width / 2
	y := config.ScreenHeight + half

	var e *component.Enemy
	if entry.Type.Flying {
		x := half + s.rng.Float64()*math.Max(0, config.MapWidth-def.Width)
		e = component.NewEnemy(&def, entry.Type, x, y)
	} else {
		cols := s.gridMap.SpawnColumns()
		if len(cols) == 0 {
			return errors.New("map has no water on its top row")
		}
		x, _ := gridmap.CellCenter(gridmap.Cell{I: 0, J: cols[s.rng.Intn(len(cols))]})
		e = component.NewEnemy(&def, entry.Type, x, y)
		e.Wobble = component.Wobble{
			R:      float64(s.rng.IntRange(2, 12)),
			Theta0: s.rng.Float64() * 2 * math.Pi,
			Omega:  s.rng.Float64() * 2 * math.Pi,
		}
		if err := s.movement.AssignPath(e); err != nil {
			s.logger.Warn("no route to the exit, unit drifts down", zap.String("enemy", def.ID), zap.Error(err))
		}
	}
	e.SetRank(entry.Rank)
	e.SetModifier(entry.Modifier)

	h := s.ecs.Enemies.Add(e)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemySpawned,
		Data: event.EnemyData{Enemy: h, Flying: e.IsFlying()},
	})
	return nil
}
