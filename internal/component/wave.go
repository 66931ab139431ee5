package component

import (
	"fmt"
	"strconv"
	"strings"

	"go-viking-defense/internal/defs"
)

// WaveEntry is one enemy to spawn.
type WaveEntry struct {
	Modifier Modifier
	Rank     int
	Type     EnemyType
}

// Wave is an ordered roster of enemies split into sub-waves.
type Wave struct {
	Number     int
	Entries    []WaveEntry
	Quantities []int // size of each non-empty sub-wave, in spawn order
}

// WaveFromRow builds a campaign wave. Groups with no units are skipped.
func WaveFromRow(row defs.WaveRow) (*Wave, error) {
	w := &Wave{Number: row.Number}
	mod := ParseModifier(row.Modifier)
	for _, g := range row.Groups {
		if g.Quantity <= 0 {
			continue
		}
		t, err := ParseEnemyType(g.Type)
		if err != nil {
			return nil, fmt.Errorf("wave %d: %w", row.Number, err)
		}
		w.Add(mod, row.Rank, t, g.Quantity)
	}
	return w, nil
}

// Add appends a sub-wave of n identical units.
func (w *Wave) Add(mod Modifier, rank int, t EnemyType, n int) {
	if n <= 0 {
		return
	}
	for k := 0; k < n; k++ {
		w.Entries = append(w.Entries, WaveEntry{Modifier: mod, Rank: rank, Type: t})
	}
	w.Quantities = append(w.Quantities, n)
}

func (w *Wave) Len() int {
	return len(w.Entries)
}

// Describe renders three lines: sizes, movement kinds, rank and modifier.
// For example "4 TINY & 2 SMALL\nFloating & Underwater\nRank 2, fast".
func (w *Wave) Describe() string {
	if len(w.Entries) == 0 {
		return "Empty wave"
	}
	var sizes, kinds []string
	seen := map[string]bool{}
	start := 0
	for _, q := range w.Quantities {
		e := w.Entries[start]
		sizes = append(sizes, strconv.Itoa(q)+" "+strings.ToUpper(e.Type.Size.String()))
		k := kindLabel(e.Type)
		if !seen[k] {
			seen[k] = true
			kinds = append(kinds, k)
		}
		start += q
	}

	first := w.Entries[0]
	var mods []string
	if first.Rank > 1 {
		mods = append(mods, "Rank "+strconv.Itoa(first.Rank))
	}
	if first.Modifier != ModNone {
		mods = append(mods, first.Modifier.String())
	}
	return strings.Join(sizes, " & ") + "\n" + strings.Join(kinds, " & ") + "\n" + strings.Join(mods, ", ")
}

// Small and big floating units dive.
func kindLabel(t EnemyType) string {
	switch {
	case t.Flying:
		return "Flying"
	case t.Size == Small || t.Size == Big:
		return "Underwater"
	default:
		return "Floating"
	}
}
