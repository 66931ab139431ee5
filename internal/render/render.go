// internal/render/render.go

// Package render draws a schematic view of a running session. The
// simulation packages never import it.
package render

import (
	"image/color"

	"go-viking-defense/internal/config"
	"go-viking-defense/internal/entity"
	"go-viking-defense/pkg/gridmap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

var terrainColors = map[gridmap.Terrain]color.RGBA{
	gridmap.Ground:  colornames.Olivedrab,
	gridmap.Shallow: colornames.Cornflowerblue,
	gridmap.Deep:    colornames.Navy,
}

// Renderer reads the entity pools and terrain; it never mutates them.
type Renderer struct {
	ecs     *entity.ECS
	gridMap *gridmap.Map
}

func New(ecs *entity.ECS, gridMap *gridmap.Map) *Renderer {
	return &Renderer{ecs: ecs, gridMap: gridMap}
}

// screenY flips world coordinates (y up) into ebiten's (y down).
func screenY(y float64) float32 {
	return float32(config.ScreenHeight - y)
}

func (s *Renderer) Draw(screen *ebiten.Image, showRanges bool) {
	s.drawTerrain(screen)
	s.drawTowers(screen, showRanges)
	s.drawEnemies(screen)
	s.drawProjectiles(screen)
}

// drawTerrain skips the synthetic last row.
func (s *Renderer) drawTerrain(screen *ebiten.Image) {
	for i := 0; i < s.gridMap.Rows()-1; i++ {
		for j := 0; j < s.gridMap.Cols(); j++ {
			c := gridmap.Cell{I: i, J: j}
			left, _, top, _ := gridmap.CellBounds(c)
			cell := s.gridMap.CellAt(i, j)
			vector.DrawFilledRect(screen, float32(left), screenY(top), config.CellSize-1, config.CellSize-1,
				terrainColors[cell.Terrain], false)
		}
	}
}

func (s *Renderer) drawTowers(screen *ebiten.Image, showRanges bool) {
	for _, h := range s.ecs.Towers.Handles() {
		t, ok := s.ecs.Towers.Get(h)
		if !ok {
			continue
		}
		if showRanges {
			vector.StrokeCircle(screen, float32(t.X), screenY(t.Y), float32(t.Range), 1, colornames.Lightgray, true)
		}
		vector.DrawFilledCircle(screen, float32(t.X), screenY(t.Y), config.CellSize/2-3, colornames.Sienna, true)
		if t.AttackAnimRemaining > 0 {
			vector.StrokeLine(screen, float32(t.X), screenY(t.Y), float32(t.AimX), screenY(t.AimY), 2, colornames.Lightgray, true)
		}
	}
}

func (s *Renderer) drawEnemies(screen *ebiten.Image) {
	for _, h := range s.ecs.Enemies.Handles() {
		e, ok := s.ecs.Enemies.Get(h)
		if !ok {
			continue
		}
		c := colornames.Crimson
		switch {
		case e.IsFlying():
			c = colornames.Orange
		case e.Hidden:
			c = colornames.Darkslategray
		}
		r := float32(e.Size / 2)
		vector.DrawFilledCircle(screen, float32(e.X), screenY(e.Y), r, c, true)
		if e.Modifier.IsShield() {
			vector.StrokeCircle(screen, float32(e.X), screenY(e.Y), r+2, 1, colornames.White, true)
		}
		// health bar
		w := float32(e.Size)
		frac := float32(e.Health / e.MaxHealth)
		top := screenY(e.Y) - r - 5
		vector.DrawFilledRect(screen, float32(e.X)-w/2, top, w, 3, colornames.Red, false)
		vector.DrawFilledRect(screen, float32(e.X)-w/2, top, w*frac, 3, colornames.Lime, false)
	}
}

func (s *Renderer) drawProjectiles(screen *ebiten.Image) {
	for _, h := range s.ecs.Projectiles.Handles() {
		p, ok := s.ecs.Projectiles.Get(h)
		if !ok {
			continue
		}
		vector.DrawFilledCircle(screen, float32(p.X), screenY(p.Y), float32(2+4*p.Scale), colornames.Gold, true)
	}
}
