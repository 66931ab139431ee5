// internal/defs/towers.go
package defs

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	ID             string    `yaml:"id"`
	Name           string    `yaml:"name"`
	Description    string    `yaml:"description"`
	Cost           float64   `yaml:"cost"`
	Cooldown       float64   `yaml:"cooldown"` // seconds between attacks
	Range          float64   `yaml:"range"`    // pixels
	Damage         float64   `yaml:"damage"`
	Sees           []Sight   `yaml:"sees"`
	Homing         bool      `yaml:"homing"`
	ConstantAttack bool      `yaml:"constant_attack"` // damage is per second
	Attack         AttackDef `yaml:"attack"`
}
