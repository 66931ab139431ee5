// internal/state/defeat_state.go
package state

import (
	"fmt"
	"image/color"

	"go-viking-defense/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

// DefeatState shows the final tally. Space starts a new session.
type DefeatState struct {
	sm      *StateMachine
	game    *app.Game
	newGame GameFactory
}

func NewDefeatState(sm *StateMachine, game *app.Game, newGame GameFactory) *DefeatState {
	return &DefeatState{sm: sm, game: game, newGame: newGame}
}

func (d *DefeatState) Enter() {}

func (d *DefeatState) Update(deltaTime float64) {
	if !inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return
	}
	g, err := d.newGame()
	if err != nil {
		d.game.Logger().Error("failed to start a new game", zap.Error(err))
		return
	}
	d.sm.SetState(NewGameState(d.sm, g, d.newGame))
}

func (d *DefeatState) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0, 0, 0, 255})
	q := d.game.QuestSystem.Counters()
	msg := fmt.Sprintf("DEFEAT\n\nWaves survived: %d\nKills: %d (flying %d, submerged %d)\nBest single impact: %d kills\n\nSpace to play again",
		d.game.WaveSystem.Completed(), q.Kills, q.FlyingKills, q.SubmergedKills, q.MaxImpactKills)
	ebitenutil.DebugPrintAt(screen, msg, 40, 40)
}

func (d *DefeatState) Exit() {}
