// internal/app/abilities.go
package app

import (
	"errors"
	"math"

	"go-viking-defense/internal/component"
	"go-viking-defense/internal/config"
	"go-viking-defense/internal/event"
	"go-viking-defense/internal/types"
	"go-viking-defense/pkg/gridmap"

	"go.uber.org/zap"
)

var (
	ErrAbilityCoolingDown = errors.New("ability is cooling down")
	ErrPlatformBlocked    = errors.New("platform cannot be placed there")
)

// Ability is a player power on a cooldown.
type Ability struct {
	Name              string
	Cooldown          float64
	CooldownRemaining float64
	Range             float64
}

func (a *Ability) Ready() bool {
	return a.CooldownRemaining <= 0
}

func (a *Ability) trigger() {
	a.CooldownRemaining = a.Cooldown
}

// Abilities groups the player powers and the platform placement caches.
type Abilities struct {
	Mjolnir  Ability
	Platform Ability
	Command  Ability
	Harvest  Ability

	safeCells   map[gridmap.Cell]bool
	unsafeCells map[gridmap.Cell]bool
}

func NewAbilities() *Abilities {
	return &Abilities{
		Mjolnir:     Ability{Name: "mjolnir", Cooldown: 120, Range: 3 * config.CellSize},
		Platform:    Ability{Name: "platform", Cooldown: 90},
		Command:     Ability{Name: "command", Cooldown: 60, Range: 1.5 * config.CellSize},
		Harvest:     Ability{Name: "harvest", Cooldown: 120, Range: 1.5 * config.CellSize},
		safeCells:   make(map[gridmap.Cell]bool),
		unsafeCells: make(map[gridmap.Cell]bool),
	}
}

// Update counts every cooldown down, floored at zero.
func (a *Abilities) Update(deltaTime float64) {
	for _, ab := range []*Ability{&a.Mjolnir, &a.Platform, &a.Command, &a.Harvest} {
		ab.CooldownRemaining = math.Max(0, ab.CooldownRemaining-deltaTime)
	}
}

// CastMjolnir hurls Thor's hammer from the lower right corner at (x, y).
func (g *Game) CastMjolnir(x, y float64) (types.Handle, error) {
	ab := &g.Abilities.Mjolnir
	if !ab.Ready() {
		return types.Handle{}, ErrAbilityCoolingDown
	}
	p := component.NewProjectile("mjolnir", config.MapWidth+10, config.ChinHeight-10, 6, x, y, 100)
	p.Splash = true
	p.SplashRadius = ab.Range
	p.AngleRate = -1.5 * 360
	ab.trigger()
	return g.ECS.Projectiles.Add(p), nil
}

// PlacePlatform turns the shallow square under (x, y) into buildable
// ground, as long as every spawn point keeps a route to the exit.
func (g *Game) PlacePlatform(x, y float64) error {
	ab := &g.Abilities.Platform
	if !ab.Ready() {
		return ErrAbilityCoolingDown
	}
	c := g.Map.NearestCell(x, y)
	if g.Map.Terrain(c.I, c.J) != gridmap.Shallow || g.PlatformWouldBlock(c) {
		return ErrPlatformBlocked
	}
	g.Map.SetTerrain(c.I, c.J, gridmap.Ground)
	clear(g.Abilities.safeCells)
	ab.trigger()

	g.MovementSystem.Repath()
	g.logger.Debug("platform placed", zap.Int("i", c.I), zap.Int("j", c.J))
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.PlatformPlaced,
		Data: event.PlatformData{I: c.I, J: c.J},
	})
	return nil
}

// PlatformWouldBlock reports whether turning c into ground would cut some
// spawn column off from the exit. The top row is always refused.
func (g *Game) PlatformWouldBlock(c gridmap.Cell) bool {
	if c.I == 0 {
		return true
	}
	a := g.Abilities
	if a.safeCells[c] {
		return false
	}
	if a.unsafeCells[c] {
		return true
	}

	hypothetical := g.Map.Clone()
	hypothetical.SetTerrain(c.I, c.J, gridmap.Ground)
	exit := hypothetical.ExitCell()
	for _, j := range spawnRepresentatives(g.Map.SpawnColumns()) {
		if _, err := gridmap.FindPath(gridmap.Cell{I: 0, J: j}, exit, hypothetical); err != nil {
			a.unsafeCells[c] = true
			return true
		}
	}
	a.safeCells[c] = true
	return false
}

// spawnRepresentatives keeps the last column of every contiguous run of
// spawn columns. A run shares one water body, so one route test covers it.
func spawnRepresentatives(cols []int) []int {
	var out []int
	for k, j := range cols {
		if k+1 == len(cols) || cols[k+1] != j+1 {
			out = append(out, j)
		}
	}
	return out
}

// CommandAt makes every enemy near (x, y) the first choice of all towers.
// It returns how many enemies were marked.
func (g *Game) CommandAt(x, y float64) (int, error) {
	ab := &g.Abilities.Command
	if !ab.Ready() {
		return 0, ErrAbilityCoolingDown
	}
	ab.trigger()
	n := 0
	for _, e := range g.enemiesNear(x, y, ab.Range) {
		e.PriorityOffset += config.CommandPriorityOffset
		n++
	}
	return n, nil
}

// HarvestAt strips the modifier of every enemy near (x, y) and pays a share
// of their reward. It returns the money earned.
func (g *Game) HarvestAt(x, y float64) (float64, error) {
	ab := &g.Abilities.Harvest
	if !ab.Ready() {
		return 0, ErrAbilityCoolingDown
	}
	ab.trigger()
	var earned float64
	for _, e := range g.enemiesNear(x, y, ab.Range) {
		e.SetModifier(component.ModNone)
		earned += config.HarvestShare * e.Reward
	}
	g.Money += earned
	return earned, nil
}

func (g *Game) enemiesNear(x, y, r float64) []*component.Enemy {
	at := component.Position{X: x, Y: y}
	var out []*component.Enemy
	for _, h := range g.ECS.Enemies.Handles() {
		if e, ok := g.ECS.Enemies.Get(h); ok && !e.Dead && at.Dist2(e.Position) <= r*r {
			out = append(out, e)
		}
	}
	return out
}
