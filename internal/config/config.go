// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	CellSize     = 32
	ScreenWidth  = 700
	ScreenHeight = 590
	MapWidth     = 480
	MapHeight    = 480
	ChinHeight   = ScreenHeight - MapHeight
	MapTargetJ   = 7

	// ReferenceFPS converts seconds into the frame units speeds are expressed in.
	ReferenceFPS = 60.0
	MaxDeltaTime = 0.06

	MaxPathRounds = 226

	ExitLineOffset      = 0.4 * CellSize // enemies below ChinHeight-ExitLineOffset have escaped
	ProjectileMargin    = 20.0
	FragmentSearchRange = 100.0
	SelfDetonateAngle   = 0.2

	HomingKeep  = 0.67
	HomingBlend = 0.33
	SteerBlend  = 0.15

	CommandPriorityOffset = -1_000_000
	SellRefund            = 0.5
	HarvestShare          = 0.25
	RuneEffectChance      = 0.05
)

// Settings is the immutable configuration a Game runs with.
// It is built once at startup and passed by pointer; nothing mutates it afterwards.
type Settings struct {
	Game    GameConfig    `toml:"game"`
	Waves   WavesConfig   `toml:"waves"`
	Data    DataConfig    `toml:"data"`
	Logging LoggingConfig `toml:"logging"`
}

type GameConfig struct {
	StartingMoney      float64 `toml:"starting_money"`
	StartingPopulation int     `toml:"starting_population"`
	Seed               int64   `toml:"seed"` // 0 = time based
	Debug              bool    `toml:"debug"`
}

type WavesConfig struct {
	Mode            string        `toml:"mode"` // "freeplay" or "campaign"
	SpawnInterval   time.Duration `toml:"spawn_interval"`
	FlipProbability float64       `toml:"flip_probability"`
}

type DataConfig struct {
	MapFile   string `toml:"map_file"`
	WavesFile string `toml:"waves_file"`
	DefsFile  string `toml:"defs_file"` // empty = embedded definitions
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

const (
	ModeFreeplay = "freeplay"
	ModeCampaign = "campaign"
)

// ValidateMode rejects anything but the two known wave modes.
func ValidateMode(mode string) error {
	switch mode {
	case ModeFreeplay, ModeCampaign:
		return nil
	}
	return fmt.Errorf("unknown wave mode %q", mode)
}

// Load reads a TOML settings file over the defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := ValidateMode(cfg.Waves.Mode); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Defaults returns the settings used when no file overrides them.
func Defaults() *Settings {
	return &Settings{
		Game: GameConfig{
			StartingMoney:      300,
			StartingPopulation: 20,
		},
		Waves: WavesConfig{
			Mode:            ModeFreeplay,
			SpawnInterval:   2 * time.Second,
			FlipProbability: 0.5,
		},
		Data: DataConfig{
			MapFile:   "data/maps/fjord.txt",
			WavesFile: "data/waves/campaign.csv",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
