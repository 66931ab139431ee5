// pkg/gridmap/map.go
package gridmap

import (
	"go-viking-defense/internal/config"
	"math"
)

// Terrain is the kind of a single grid square.
type Terrain int

const (
	Ground Terrain = iota
	Shallow
	Deep
)

func (t Terrain) String() string {
	switch t {
	case Ground:
		return "ground"
	case Shallow:
		return "shallow"
	case Deep:
		return "deep"
	default:
		return "unknown"
	}
}

// IsWater reports whether floating units can cross the terrain.
func (t Terrain) IsWater() bool {
	return t == Shallow || t == Deep
}

// Cell identifies one grid square by row (I) and column (J).
type Cell struct {
	I, J int
}

// Adjacent reports whether two cells share an edge.
func (c Cell) Adjacent(o Cell) bool {
	if c.I == o.I && abs(c.J-o.J) == 1 {
		return true
	}
	return c.J == o.J && abs(c.I-o.I) == 1
}

// Manhattan returns the grid distance between two cells.
func (c Cell) Manhattan(o Cell) int {
	return abs(c.I-o.I) + abs(c.J-o.J)
}

// neighbors are listed up, down, left, right; the pathfinder depends on this order.
func (c Cell) neighbors() [4]Cell {
	return [4]Cell{{c.I - 1, c.J}, {c.I + 1, c.J}, {c.I, c.J - 1}, {c.I, c.J + 1}}
}

// GridCell holds the state of a single square.
type GridCell struct {
	Terrain  Terrain
	Occupied bool
}

// Map is a row-major terrain grid. The last row is synthetic shallow water
// appended at load time so that routes and targeting can reach the exit band.
type Map struct {
	cells [][]GridCell
}

// New builds a map from rows of terrain and appends the synthetic exit row.
func New(rows [][]Terrain) *Map {
	m := &Map{cells: make([][]GridCell, 0, len(rows)+1)}
	width := 0
	for _, row := range rows {
		r := make([]GridCell, len(row))
		for j, t := range row {
			r[j] = GridCell{Terrain: t}
		}
		m.cells = append(m.cells, r)
		width = len(row)
	}
	exit := make([]GridCell, width)
	for j := range exit {
		exit[j] = GridCell{Terrain: Shallow}
	}
	m.cells = append(m.cells, exit)
	return m
}

// Rows includes the synthetic exit row.
func (m *Map) Rows() int {
	return len(m.cells)
}

func (m *Map) Cols() int {
	if len(m.cells) == 0 {
		return 0
	}
	return len(m.cells[0])
}

// InBounds reports whether the indices address a cell, synthetic row included.
func (m *Map) InBounds(i, j int) bool {
	return i >= 0 && j >= 0 && i < m.Rows() && j < m.Cols()
}

func (m *Map) clamp(i, j int) (int, int) {
	i = max(0, min(i, m.Rows()-1))
	j = max(0, min(j, m.Cols()-1))
	return i, j
}

// CellAt returns a copy of the square at (i, j). Indices are clamped.
func (m *Map) CellAt(i, j int) GridCell {
	i, j = m.clamp(i, j)
	return m.cells[i][j]
}

// Terrain is a shortcut for CellAt(i, j).Terrain.
func (m *Map) Terrain(i, j int) Terrain {
	return m.CellAt(i, j).Terrain
}

// SetTerrain changes the terrain of a square. Leaving Ground frees the square.
func (m *Map) SetTerrain(i, j int, t Terrain) {
	i, j = m.clamp(i, j)
	m.cells[i][j].Terrain = t
	if t != Ground {
		m.cells[i][j].Occupied = false
	}
}

// SetOccupied toggles occupancy. Only Ground squares can be occupied.
func (m *Map) SetOccupied(i, j int, occupied bool) {
	i, j = m.clamp(i, j)
	if occupied && m.cells[i][j].Terrain != Ground {
		return
	}
	m.cells[i][j].Occupied = occupied
}

// Clone returns an independent copy for hypothetical edits.
func (m *Map) Clone() *Map {
	c := &Map{cells: make([][]GridCell, len(m.cells))}
	for i, row := range m.cells {
		c.cells[i] = append([]GridCell(nil), row...)
	}
	return c
}

// ExitCell is the square every floating unit routes toward.
func (m *Map) ExitCell() Cell {
	return Cell{I: m.Rows() - 1, J: min(config.MapTargetJ, m.Cols()-1)}
}

// SpawnColumns lists the water columns of the top row.
func (m *Map) SpawnColumns() []int {
	var cols []int
	for j := 0; j < m.Cols(); j++ {
		if m.cells[0][j].Terrain.IsWater() {
			cols = append(cols, j)
		}
	}
	return cols
}

// NearestCell converts world coordinates into the square under them,
// clamped to the loaded (non-synthetic) rows.
func (m *Map) NearestCell(x, y float64) Cell {
	j := floorDiv(x, config.CellSize)
	i := floorDiv(config.ScreenHeight-y, config.CellSize)
	i = max(0, min(i, m.Rows()-2))
	j = max(0, min(j, m.Cols()-1))
	return Cell{I: i, J: j}
}

// CellCenter returns the world coordinates of the middle of a square.
func CellCenter(c Cell) (float64, float64) {
	x := (float64(c.J)+0.5)*config.CellSize - 1
	y := config.ScreenHeight - (float64(c.I)+0.5)*config.CellSize + 1
	return x, y
}

// CellBounds returns the left, right, top and bottom edges of a square.
func CellBounds(c Cell) (left, right, top, bottom float64) {
	left = float64(c.J * config.CellSize)
	right = left + config.CellSize - 1
	top = config.ScreenHeight - float64(c.I*config.CellSize)
	bottom = top - (config.CellSize - 1)
	return
}

// InCell reports whether a point lies inside a square.
func InCell(x, y float64, c Cell) bool {
	left, right, top, bottom := CellBounds(c)
	return left <= x && x < right && bottom <= y && y < top
}

func floorDiv(v float64, size int) int {
	return int(math.Floor(v / float64(size)))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
