package component

import (
	"fmt"
	"strings"
)

// Rune is an attachable tower upgrade.
type Rune int

const (
	NoRune  Rune = iota
	Raidho       // homing, re-targeting projectiles
	Hagalaz      // +25% damage
	Tiwaz        // +50% range
	Kenaz        // +20% damage, chance to inflame
	Isa          // chance to freeze
	Sowil        // double fire rate and projectile speed
	Laguz        // one extra fragment
)

var runeNames = map[Rune]string{
	Raidho:  "raidho",
	Hagalaz: "hagalaz",
	Tiwaz:   "tiwaz",
	Kenaz:   "kenaz",
	Isa:     "isa",
	Sowil:   "sowil",
	Laguz:   "laguz",
}

func (r Rune) String() string {
	if n, ok := runeNames[r]; ok {
		return n
	}
	return ""
}

// ParseRune accepts a rune name in any case.
func ParseRune(s string) (Rune, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for r, n := range runeNames {
		if n == s {
			return r, nil
		}
	}
	return NoRune, fmt.Errorf("unknown rune %q", s)
}

var runeCosts = map[Rune]float64{
	Raidho:  30,
	Hagalaz: 50,
	Tiwaz:   70,
	Kenaz:   100,
	Isa:     100,
	Sowil:   120,
	Laguz:   150,
}

// Cost is the price of attaching the rune.
func (r Rune) Cost() float64 {
	return runeCosts[r]
}
