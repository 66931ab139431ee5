// internal/state/game_state.go
package state

import (
	"errors"
	"fmt"
	"strings"

	"go-viking-defense/internal/app"
	"go-viking-defense/internal/component"
	"go-viking-defense/internal/config"
	"go-viking-defense/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

// GameFactory builds a fresh session, used when the player restarts.
type GameFactory func() (*app.Game, error)

var _ State = (*GameState)(nil)

var towerKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
	ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9, ebiten.Key0,
}

var runeKeys = map[ebiten.Key]component.Rune{
	ebiten.KeyF1: component.Raidho,
	ebiten.KeyF2: component.Hagalaz,
	ebiten.KeyF3: component.Tiwaz,
	ebiten.KeyF4: component.Kenaz,
	ebiten.KeyF5: component.Isa,
	ebiten.KeyF6: component.Sowil,
	ebiten.KeyF7: component.Laguz,
}

// GameState is the playable debug view of a session.
type GameState struct {
	sm       *StateMachine
	game     *app.Game
	newGame  GameFactory
	logger   *zap.Logger
	renderer *render.Renderer

	selected   int
	showRanges bool
	message    string
}

func NewGameState(sm *StateMachine, game *app.Game, newGame GameFactory) *GameState {
	return &GameState{
		sm:         sm,
		game:       game,
		newGame:    newGame,
		logger:     game.Logger().Named("input"),
		renderer:   render.New(game.ECS, game.Map),
		showRanges: game.Settings.Game.Debug,
	}
}

func (g *GameState) Enter() {}

func (g *GameState) Exit() {}

// cursor returns the mouse position in world coordinates.
func cursor() (float64, float64) {
	x, y := ebiten.CursorPosition()
	return float64(x), config.ScreenHeight - float64(y)
}

func (g *GameState) Update(deltaTime float64) {
	if g.game.IsDefeated() {
		g.sm.SetState(NewDefeatState(g.sm, g.game, g.newGame))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	g.handleInput()
	g.game.Update(deltaTime)
}

func (g *GameState) handleInput() {
	order := g.game.Library.TowerOrder
	for i, k := range towerKeys {
		if i < len(order) && inpututil.IsKeyJustPressed(k) {
			g.selected = i
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.showRanges = !g.showRanges
	}

	x, y := cursor()
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace), inpututil.IsKeyJustPressed(ebiten.KeyN):
		if w, err := g.game.StartWave(); err != nil {
			g.report(err)
		} else {
			g.message = w.Describe()
		}
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		if len(order) == 0 {
			return
		}
		_, err := g.game.PlaceTower(x, y, order[g.selected])
		g.report(err)
	case inpututil.IsKeyJustPressed(ebiten.KeyS), inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight):
		if h, ok := g.game.TowerAt(x, y); ok {
			refund, err := g.game.SellTower(h)
			g.report(err)
			if err == nil {
				g.message = fmt.Sprintf("sold for %.0f", refund)
			}
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		_, err := g.game.CastMjolnir(x, y)
		g.report(err)
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		g.report(g.game.PlacePlatform(x, y))
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		n, err := g.game.CommandAt(x, y)
		g.report(err)
		if err == nil {
			g.message = fmt.Sprintf("%d enemies marked", n)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyH):
		earned, err := g.game.HarvestAt(x, y)
		g.report(err)
		if err == nil {
			g.message = fmt.Sprintf("harvested %.0f", earned)
		}
	}

	for k, r := range runeKeys {
		if !inpututil.IsKeyJustPressed(k) {
			continue
		}
		if h, ok := g.game.TowerAt(x, y); ok {
			g.report(g.game.SetRune(h, r))
		}
	}
}

// report shows err in the HUD. Expected refusals are not logged as errors.
func (g *GameState) report(err error) {
	if err == nil {
		return
	}
	g.message = err.Error()
	switch {
	case errors.Is(err, app.ErrNotEnoughMoney), errors.Is(err, app.ErrCellUnavailable),
		errors.Is(err, app.ErrAbilityCoolingDown), errors.Is(err, app.ErrPlatformBlocked):
		g.logger.Debug("action refused", zap.Error(err))
	default:
		g.logger.Warn("action failed", zap.Error(err))
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.showRanges)
	ebitenutil.DebugPrintAt(screen, g.hud(), config.MapWidth+8, 8)
}

func (g *GameState) hud() string {
	gm := g.game
	var b strings.Builder
	fmt.Fprintf(&b, "Money: %.0f\nPopulation: %d\n", gm.Money, gm.Population)
	fmt.Fprintf(&b, "Wave: %d (%s)\n", gm.WaveSystem.Completed(), gm.StateSystem.Current())
	if w := gm.WaveSystem.Current(); w != nil {
		fmt.Fprintf(&b, "%s\n", w.Describe())
	}
	b.WriteString("\nTowers:\n")
	for i, id := range gm.Library.TowerOrder {
		if i >= len(towerKeys) {
			break
		}
		mark := " "
		if i == g.selected {
			mark = ">"
		}
		def := gm.Library.Towers[id]
		fmt.Fprintf(&b, "%s%d %s %.0f\n", mark, (i+1)%10, def.Name, def.Cost)
	}
	b.WriteString("\nAbilities:\n")
	for _, ab := range []app.Ability{gm.Abilities.Mjolnir, gm.Abilities.Platform, gm.Abilities.Command, gm.Abilities.Harvest} {
		fmt.Fprintf(&b, " %-8s %3.0fs\n", ab.Name, ab.CooldownRemaining)
	}
	q := gm.QuestSystem.Counters()
	fmt.Fprintf(&b, "\nKills: %d\n", q.Kills)
	if g.message != "" {
		fmt.Fprintf(&b, "\n%s\n", g.message)
	}
	return b.String()
}
