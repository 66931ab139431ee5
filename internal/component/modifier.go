package component

import "strings"

// Modifier is a buff applied to a whole wave of enemies.
type Modifier int

const (
	ModNone Modifier = iota
	ModIceShield
	ModFireShield
	ModFast
	ModRegen
)

// WaveModifiers are the modifiers the procedural generator picks from.
var WaveModifiers = []Modifier{ModIceShield, ModFireShield, ModFast, ModRegen}

func (m Modifier) String() string {
	switch m {
	case ModIceShield:
		return "ice shield"
	case ModFireShield:
		return "fire shield"
	case ModFast:
		return "fast"
	case ModRegen:
		return "regen"
	default:
		return ""
	}
}

// ParseModifier maps the free text used in wave files onto a Modifier.
// Unknown text yields ModNone.
func ParseModifier(s string) Modifier {
	s = strings.ToLower(s)
	switch {
	case strings.Contains(s, "ice shield"):
		return ModIceShield
	case strings.Contains(s, "fire shield"):
		return ModFireShield
	case strings.Contains(s, "fast"):
		return ModFast
	case strings.Contains(s, "regen"):
		return ModRegen
	}
	return ModNone
}

// IsShield reports whether incoming damage is halved.
func (m Modifier) IsShield() bool {
	return m == ModIceShield || m == ModFireShield
}

// Blocks reports whether the modifier grants immunity to an effect.
func (m Modifier) Blocks(effectName string) bool {
	switch m {
	case ModIceShield:
		return effectName == EffectFreeze
	case ModFireShield:
		return effectName == EffectInflame
	}
	return false
}
