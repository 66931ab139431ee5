// internal/defs/enemies.go
package defs

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID      string  `yaml:"id"`
	Name    string  `yaml:"name"`
	Size    string  `yaml:"size"` // tiny, small, medium, big
	Flying  bool    `yaml:"flying"`
	CanHide bool    `yaml:"can_hide"`
	Health  float64 `yaml:"health"`
	Speed   float64 `yaml:"speed"` // pixels per frame
	Reward  float64 `yaml:"reward"`
	Width   float64 `yaml:"width"`
}

// EffectDefinition is the template an Effect is stamped from.
type EffectDefinition struct {
	ID              string  `yaml:"id"`
	Duration        float64 `yaml:"duration"`
	DamagePerSecond float64 `yaml:"damage_per_second"`
	SpeedMultiplier float64 `yaml:"speed_multiplier"`
}
