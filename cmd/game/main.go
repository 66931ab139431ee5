// cmd/game/main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go-viking-defense/internal/app"
	"go-viking-defense/internal/config"
	"go-viking-defense/internal/defs"
	"go-viking-defense/internal/state"
	"go-viking-defense/pkg/gridmap"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func loadSettings(path string) (*config.Settings, error) {
	if path == "" {
		return config.Defaults(), nil
	}
	return config.Load(path)
}

func loadLibrary(path string) (*defs.Library, error) {
	if path == "" {
		return defs.Default()
	}
	return defs.Load(path)
}

func main() {
	configPath := flag.String("config", "", "path to a TOML settings file")
	mode := flag.String("mode", "", "override the wave mode (freeplay or campaign)")
	flag.Parse()

	settings, err := loadSettings(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *mode != "" {
		if err := config.ValidateMode(*mode); err != nil {
			log.Fatal(err)
		}
		settings.Waves.Mode = *mode
	}

	logger, err := config.NewLogger(settings.Logging)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	lib, err := loadLibrary(settings.Data.DefsFile)
	if err != nil {
		logger.Fatal("failed to load definitions", zap.Error(err))
	}
	var campaign []defs.WaveRow
	if settings.Waves.Mode == config.ModeCampaign {
		campaign, err = defs.LoadWaveFile(settings.Data.WavesFile)
		if err != nil {
			logger.Fatal("failed to load waves", zap.Error(err))
		}
	}

	// Every session gets a fresh copy of the map since platforms edit it.
	newGame := func() (*app.Game, error) {
		m, err := gridmap.LoadFile(settings.Data.MapFile)
		if err != nil {
			return nil, fmt.Errorf("load map: %w", err)
		}
		return app.NewGame(settings, m, lib, campaign, logger)
	}
	g, err := newGame()
	if err != nil {
		logger.Fatal("failed to create game", zap.Error(err))
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewGameState(sm, g, newGame))
	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Viking Defense")
	if err := ebiten.RunGame(a); err != nil {
		logger.Error("game loop stopped", zap.Error(err))
		os.Exit(1)
	}
}
