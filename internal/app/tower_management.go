// internal/app/tower_management.go
package app

import (
	"errors"
	"fmt"

	"go-viking-defense/internal/component"
	"go-viking-defense/internal/config"
	"go-viking-defense/internal/event"
	"go-viking-defense/internal/types"
	"go-viking-defense/pkg/gridmap"

	"go.uber.org/zap"
)

var (
	ErrCellUnavailable = errors.New("cell is not free ground")
	ErrUnknownTower    = errors.New("unknown tower")
	ErrNotEnoughMoney  = errors.New("not enough money")
	ErrNoTower         = errors.New("no such tower")
)

// PlaceTower buys a tower of type defID and builds it on the square
// under (x, y).
func (g *Game) PlaceTower(x, y float64, defID string) (types.Handle, error) {
	if g.IsDefeated() {
		return types.Handle{}, ErrDefeated
	}
	def, ok := g.Library.Towers[defID]
	if !ok {
		return types.Handle{}, fmt.Errorf("%w: %s", ErrUnknownTower, defID)
	}
	c := g.Map.NearestCell(x, y)
	cell := g.Map.CellAt(c.I, c.J)
	if cell.Terrain != gridmap.Ground || cell.Occupied {
		return types.Handle{}, ErrCellUnavailable
	}
	if g.Money < def.Cost {
		return types.Handle{}, ErrNotEnoughMoney
	}

	g.Money -= def.Cost
	h := g.ECS.Towers.Add(component.NewTower(&def, c))
	g.Map.SetOccupied(c.I, c.J, true)

	g.logger.Debug("tower placed", zap.String("tower", defID), zap.Int("i", c.I), zap.Int("j", c.J))
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TowerPlaced,
		Data: event.TowerData{Tower: h, DefID: defID, I: c.I, J: c.J},
	})
	return h, nil
}

// TowerAt finds the tower standing on the square under (x, y).
func (g *Game) TowerAt(x, y float64) (types.Handle, bool) {
	c := g.Map.NearestCell(x, y)
	for _, h := range g.ECS.Towers.Handles() {
		if t, ok := g.ECS.Towers.Get(h); ok && t.Cell == c {
			return h, true
		}
	}
	return types.Handle{}, false
}

// SellTower removes a tower, frees its square and refunds part of its price.
func (g *Game) SellTower(h types.Handle) (float64, error) {
	t, ok := g.ECS.Towers.Get(h)
	if !ok {
		return 0, ErrNoTower
	}
	refund := t.Def.Cost * config.SellRefund
	g.Money += refund
	g.ECS.Towers.Remove(h)
	g.Map.SetOccupied(t.Cell.I, t.Cell.J, false)

	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TowerRemoved,
		Data: event.TowerData{Tower: h, DefID: t.DefID, I: t.Cell.I, J: t.Cell.J},
	})
	return refund, nil
}

// SetRune buys rune r for a tower. Attaching the rune it already carries
// costs nothing and changes nothing.
func (g *Game) SetRune(h types.Handle, r component.Rune) error {
	t, ok := g.ECS.Towers.Get(h)
	if !ok {
		return ErrNoTower
	}
	if t.Rune == r {
		return nil
	}
	cost := r.Cost()
	if g.Money < cost {
		return ErrNotEnoughMoney
	}
	if !t.SetRune(r) {
		return fmt.Errorf("rune %q cannot be attached", r)
	}
	g.Money -= cost
	return nil
}
