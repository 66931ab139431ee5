// pkg/gridmap/pathfinding.go
package gridmap

import (
	"errors"

	"go-viking-defense/internal/config"
)

// ErrNoPathFound means no water route connects start and target.
// Callers treat it as "not possible", never as a crash.
var ErrNoPathFound = errors.New("no path found")

type frontierNode struct {
	cell  Cell
	route []Cell
}

// FindPath searches a water route from start to target by frontier expansion.
//
// Every round, each orthogonal water neighbour of every known cell becomes a
// candidate. Its route extends the lowest g-score known route adjacent to it.
// Only the candidates achieving the round's minimum f = g + manhattan are kept;
// the rest are forgotten and may be rediscovered later. This is not a priority
// queue A*, and can settle on a different (still valid) route than one would.
func FindPath(start, target Cell, m *Map) ([]Cell, error) {
	if start == target {
		return []Cell{start}, nil
	}
	known := []frontierNode{{cell: start, route: []Cell{start}}}
	isKnown := map[Cell]bool{start: true}

	for round := 0; round < config.MaxPathRounds; round++ {
		candidates := expandFrontier(known, isKnown, m)
		if len(candidates) == 0 {
			return nil, ErrNoPathFound
		}

		best := -1
		scores := make([]int, len(candidates))
		for k, c := range candidates {
			scores[k] = len(c.route) + c.cell.Manhattan(target)
			if best < 0 || scores[k] < best {
				best = scores[k]
			}
		}

		for k, c := range candidates {
			if scores[k] != best {
				continue
			}
			if c.cell == target {
				return c.route, nil
			}
			known = append(known, c)
			isKnown[c.cell] = true
		}
	}
	return nil, ErrNoPathFound
}

func expandFrontier(known []frontierNode, isKnown map[Cell]bool, m *Map) []frontierNode {
	var candidates []frontierNode
	seen := make(map[Cell]bool)
	for _, k := range known {
		for _, n := range k.cell.neighbors() {
			if !m.InBounds(n.I, n.J) || isKnown[n] || seen[n] {
				continue
			}
			if m.cells[n.I][n.J].Terrain == Ground {
				continue
			}
			seen[n] = true

			bestRoute := k.route
			for _, other := range known {
				if len(other.route) < len(bestRoute) && other.cell.Adjacent(n) {
					bestRoute = other.route
				}
			}
			route := make([]Cell, len(bestRoute), len(bestRoute)+1)
			copy(route, bestRoute)
			candidates = append(candidates, frontierNode{cell: n, route: append(route, n)})
		}
	}
	return candidates
}
