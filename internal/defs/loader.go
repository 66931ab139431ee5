// internal/defs/loader.go
package defs

import (
	_ "embed"
	"fmt"
	"os"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

//go:embed data/definitions.yaml
var embeddedDefinitions []byte

type definitionsFile struct {
	Effects []EffectDefinition `yaml:"effects"`
	Towers  []TowerDefinition  `yaml:"towers"`
	Enemies []EnemyDefinition  `yaml:"enemies"`
}

// Library holds every definition of a ruleset, keyed by ID.
// It is built once and shared read-only.
type Library struct {
	Towers  map[string]TowerDefinition
	Enemies map[string]EnemyDefinition
	Effects map[string]EffectDefinition

	// TowerOrder keeps the file order for shops and listings.
	TowerOrder []string
}

// Default parses the embedded ruleset.
func Default() (*Library, error) {
	return Parse(embeddedDefinitions)
}

// Load reads a ruleset file. An empty path selects the embedded ruleset.
func Load(path string) (*Library, error) {
	if path == "" {
		return Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definitions file: %w", err)
	}
	lib, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lib, nil
}

// Parse decodes and validates a ruleset.
func Parse(raw []byte) (*Library, error) {
	var f definitionsFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("failed to unmarshal definitions: %w", err)
	}

	lib := &Library{
		Towers:  make(map[string]TowerDefinition, len(f.Towers)),
		Enemies: make(map[string]EnemyDefinition, len(f.Enemies)),
		Effects: make(map[string]EffectDefinition, len(f.Effects)),
	}
	for _, def := range f.Effects {
		lib.Effects[def.ID] = def
	}
	for _, def := range f.Towers {
		lib.Towers[def.ID] = def
		lib.TowerOrder = append(lib.TowerOrder, def.ID)
	}
	for _, def := range f.Enemies {
		lib.Enemies[def.ID] = def
	}

	if err := lib.validate(len(f.Towers), len(f.Enemies), len(f.Effects)); err != nil {
		return nil, err
	}
	return lib, nil
}

// EnemyFor finds the enemy of a size tier and movement kind.
func (l *Library) EnemyFor(size string, flying bool) (EnemyDefinition, bool) {
	for _, def := range l.Enemies {
		if def.Size == size && def.Flying == flying {
			return def, true
		}
	}
	return EnemyDefinition{}, false
}

func (l *Library) validate(towers, enemies, effects int) error {
	var err error
	if len(l.Towers) != towers {
		err = multierr.Append(err, fmt.Errorf("duplicate tower ids"))
	}
	if len(l.Enemies) != enemies {
		err = multierr.Append(err, fmt.Errorf("duplicate enemy ids"))
	}
	if len(l.Effects) != effects {
		err = multierr.Append(err, fmt.Errorf("duplicate effect ids"))
	}

	for id, def := range l.Effects {
		if def.Duration <= 0 || def.SpeedMultiplier <= 0 {
			err = multierr.Append(err, fmt.Errorf("effect %s: duration and speed_multiplier must be positive", id))
		}
	}

	for _, id := range l.TowerOrder {
		def := l.Towers[id]
		if def.Cooldown < 0 || def.Range < 0 || def.Damage < 0 {
			err = multierr.Append(err, fmt.Errorf("tower %s: negative stats", id))
		}
		if len(def.Sees) == 0 {
			err = multierr.Append(err, fmt.Errorf("tower %s: sees nothing", id))
		}
		for _, s := range def.Sees {
			if s != SeeFlying && s != SeeFloating && s != SeeUnderwater {
				err = multierr.Append(err, fmt.Errorf("tower %s: unknown sight %q", id, s))
			}
		}
		switch def.Attack.Kind {
		case AttackInstant, AttackTempest:
		case AttackLob, AttackRing, AttackHoming, AttackFlame:
			if def.Attack.ProjectileSpeed <= 0 {
				err = multierr.Append(err, fmt.Errorf("tower %s: %s attack needs a projectile speed", id, def.Attack.Kind))
			}
		default:
			err = multierr.Append(err, fmt.Errorf("tower %s: unknown attack kind %q", id, def.Attack.Kind))
		}
		if def.Attack.Kind == AttackTempest && def.Attack.BlastEvery < 1 {
			err = multierr.Append(err, fmt.Errorf("tower %s: tempest attack needs blast_every", id))
		}
		for _, eff := range def.Attack.Effects {
			if _, ok := l.Effects[eff]; !ok {
				err = multierr.Append(err, fmt.Errorf("tower %s: unknown effect %q", id, eff))
			}
		}
	}

	for id, def := range l.Enemies {
		switch def.Size {
		case "tiny", "small", "medium", "big":
		default:
			err = multierr.Append(err, fmt.Errorf("enemy %s: unknown size %q", id, def.Size))
		}
		if def.Health <= 0 {
			err = multierr.Append(err, fmt.Errorf("enemy %s: health must be positive", id))
		}
	}
	for _, size := range []string{"tiny", "small", "medium", "big"} {
		for _, flying := range []bool{true, false} {
			if _, ok := l.EnemyFor(size, flying); !ok {
				err = multierr.Append(err, fmt.Errorf("no enemy for %s flying=%v", size, flying))
			}
		}
	}
	return err
}
