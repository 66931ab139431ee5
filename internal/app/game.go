// internal/app/game.go
package app

import (
	"errors"
	"fmt"

	"go-viking-defense/internal/component"
	"go-viking-defense/internal/config"
	"go-viking-defense/internal/defs"
	"go-viking-defense/internal/entity"
	"go-viking-defense/internal/event"
	"go-viking-defense/internal/system"
	"go-viking-defense/internal/utils"
	"go-viking-defense/pkg/gridmap"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrDefeated is returned by actions attempted after the population ran out.
var ErrDefeated = errors.New("game is over")

// Game holds one play session: the arena, its systems and the economy.
type Game struct {
	ID       uuid.UUID
	Settings *config.Settings
	Map      *gridmap.Map
	Library  *defs.Library
	ECS      *entity.ECS
	Rng      *utils.PRNGService

	EventDispatcher    *event.Dispatcher
	Damager            *system.Damager
	StatusEffectSystem *system.StatusEffectSystem
	MovementSystem     *system.MovementSystem
	CombatSystem       *system.CombatSystem
	ProjectileSystem   *system.ProjectileSystem
	WaveSystem         *system.WaveSystem
	VisualEffectSystem *system.VisualEffectSystem
	StateSystem        *system.StateSystem
	QuestSystem        *system.QuestSystem

	// Generator is nil in campaign mode.
	Generator *system.WaveGenerator
	Abilities *Abilities

	Money      float64
	Population int

	logger *zap.Logger
}

// NewGame wires a session. campaign is only read in campaign mode.
func NewGame(settings *config.Settings, m *gridmap.Map, lib *defs.Library, campaign []defs.WaveRow, logger *zap.Logger) (*Game, error) {
	if settings == nil || m == nil || lib == nil {
		return nil, errors.New("settings, map and library are required")
	}
	id := uuid.New()
	logger = logger.With(zap.String("session", id.String()))

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(settings.Game.Seed)

	g := &Game{
		ID:              id,
		Settings:        settings,
		Map:             m,
		Library:         lib,
		ECS:             ecs,
		Rng:             rng,
		EventDispatcher: eventDispatcher,
		Money:           settings.Game.StartingMoney,
		Population:      settings.Game.StartingPopulation,
		Abilities:       NewAbilities(),
		logger:          logger,
	}

	var source system.WaveSource
	switch settings.Waves.Mode {
	case config.ModeCampaign:
		if len(campaign) == 0 {
			return nil, errors.New("campaign mode needs at least one wave")
		}
		cw, err := system.NewCampaignWaves(campaign)
		if err != nil {
			return nil, fmt.Errorf("failed to build campaign: %w", err)
		}
		source = cw
	default:
		g.Generator = system.NewWaveGenerator(rng, settings.Waves.FlipProbability)
		source = g.Generator
	}

	g.Damager = system.NewDamager(ecs, eventDispatcher)
	g.StatusEffectSystem = system.NewStatusEffectSystem(ecs, g.Damager, eventDispatcher)
	g.MovementSystem = system.NewMovementSystem(ecs, m, eventDispatcher, logger)
	armory := system.NewArmory(lib, rng, logger)
	g.CombatSystem = system.NewCombatSystem(ecs, armory, g.Damager)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, eventDispatcher, g.Damager, g.StatusEffectSystem)
	g.WaveSystem = system.NewWaveSystem(ecs, m, lib, g.MovementSystem, eventDispatcher, rng, source,
		settings.Waves.SpawnInterval.Seconds(), logger)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs)
	g.StateSystem = system.NewStateSystem(eventDispatcher)
	g.QuestSystem = system.NewQuestSystem(eventDispatcher)

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.EnemyKilled, listener)
	eventDispatcher.Subscribe(event.EnemyEscaped, listener)

	logger.Info("game created",
		zap.String("mode", settings.Waves.Mode),
		zap.Int("rows", m.Rows()),
		zap.Int("cols", m.Cols()))
	return g, nil
}

// Update advances the simulation by deltaTime seconds.
func (g *Game) Update(deltaTime float64) {
	if g.IsDefeated() {
		return
	}
	g.ECS.GameTime += deltaTime

	g.StatusEffectSystem.ApplyDamageOverTime(deltaTime)
	g.MovementSystem.RemoveEscaped()
	g.MovementSystem.UpdateHiding()
	g.MovementSystem.Update(deltaTime)
	g.CombatSystem.Update(deltaTime)
	g.ProjectileSystem.CheckImpacts()

	g.StatusEffectSystem.Update(deltaTime)
	g.VisualEffectSystem.Update(deltaTime)
	g.ProjectileSystem.Update(deltaTime)
	g.Abilities.Update(deltaTime)

	g.WaveSystem.Update(deltaTime)
}

// StartWave launches the next wave when none is running.
func (g *Game) StartWave() (*component.Wave, error) {
	if g.IsDefeated() {
		return nil, ErrDefeated
	}
	w, err := g.WaveSystem.StartWave()
	if err != nil {
		return nil, err
	}
	if g.Generator != nil {
		r := g.Generator.LastRecipe()
		g.logger.Debug("wave recipe",
			zap.Bool("flying", r.Flying),
			zap.Int("rank", r.Rank),
			zap.Int("budget", r.Budget),
			zap.Int("unit_cost", r.UnitCost),
			zap.Ints("sub_waves", r.SubWaves),
			zap.Stringer("size", r.Size))
	}
	return w, nil
}

func (g *Game) IsDefeated() bool {
	return g.StateSystem.Current() == system.DefeatPhase
}

// Logger returns the session logger.
func (g *Game) Logger() *zap.Logger {
	return g.logger
}

// GameEventListener keeps the economy in step with combat.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	g := l.game
	switch e.Type {
	case event.EnemyKilled:
		if d, ok := e.Data.(event.EnemyKilledData); ok {
			g.Money += d.Reward
		}
	case event.EnemyEscaped:
		g.Population--
		if g.Population <= 0 && !g.IsDefeated() {
			g.StateSystem.Defeat()
			g.logger.Info("population lost",
				zap.Int("waves_completed", g.WaveSystem.Completed()),
				zap.Float64("game_time", g.ECS.GameTime))
		}
	}
}
