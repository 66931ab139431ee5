package gridmap

import (
	"errors"
	"strings"
	"testing"

	"go-viking-defense/internal/config"
)

const testMap = `gggsggg
gggsggg
gggsddg
gggggsg
`

func mustLoad(t *testing.T, src string) *Map {
	t.Helper()
	m, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return m
}

func TestLoadAppendsShallowRow(t *testing.T) {
	m := mustLoad(t, testMap)
	if m.Rows() != 5 {
		t.Fatalf("expected 4 file rows + 1 synthetic row, got %d", m.Rows())
	}
	if m.Cols() != 7 {
		t.Fatalf("expected 7 columns, got %d", m.Cols())
	}
	for j := 0; j < m.Cols(); j++ {
		if got := m.Terrain(4, j); got != Shallow {
			t.Errorf("synthetic cell (4,%d) = %v, want shallow", j, got)
		}
	}
	if m.Terrain(2, 4) != Deep {
		t.Errorf("cell (2,4) should be deep")
	}
}

func TestLoadFullWords(t *testing.T) {
	m := mustLoad(t, "ground shallow deep\nground ground shallow\n")
	if m.Terrain(0, 1) != Shallow || m.Terrain(0, 2) != Deep || m.Terrain(1, 0) != Ground {
		t.Errorf("full word terrain codes were not parsed")
	}
}

func TestLoadRejectsUnknownTerrain(t *testing.T) {
	_, err := Load(strings.NewReader("ggx\n"))
	if !errors.Is(err, ErrInvalidTerrain) {
		t.Fatalf("expected ErrInvalidTerrain, got %v", err)
	}
}

func TestLoadRejectsRaggedRows(t *testing.T) {
	if _, err := Load(strings.NewReader("ggg\ngg\n")); err == nil {
		t.Fatal("expected an error for rows of different length")
	}
}

func TestNearestCellClamps(t *testing.T) {
	m := mustLoad(t, testMap)
	cases := []struct {
		name string
		x, y float64
		want Cell
	}{
		{"inside", 40, config.ScreenHeight - 40, Cell{1, 1}},
		{"left of map", -50, config.ScreenHeight - 10, Cell{0, 0}},
		{"above map", 10, config.ScreenHeight + 100, Cell{0, 0}},
		{"below map", 10, -1000, Cell{3, 0}},
		{"right of map", 10000, config.ScreenHeight - 10, Cell{0, 6}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := m.NearestCell(tc.x, tc.y); got != tc.want {
				t.Errorf("NearestCell(%v,%v) = %v, want %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestCellCenterIsInCell(t *testing.T) {
	m := mustLoad(t, testMap)
	for i := 0; i < m.Rows()-1; i++ {
		for j := 0; j < m.Cols(); j++ {
			c := Cell{i, j}
			x, y := CellCenter(c)
			if !InCell(x, y, c) {
				t.Errorf("center of %v is not inside it", c)
			}
			if got := m.NearestCell(x, y); got != c {
				t.Errorf("NearestCell(center of %v) = %v", c, got)
			}
		}
	}
}

func TestOutOfRangeIndicesDoNotPanic(t *testing.T) {
	m := mustLoad(t, testMap)
	_ = m.CellAt(-3, 99)
	m.SetTerrain(100, -1, Ground)
	m.SetOccupied(-1, -1, true)
}

func TestOccupiedImpliesGround(t *testing.T) {
	m := mustLoad(t, testMap)
	m.SetOccupied(0, 3, true) // shallow
	if m.CellAt(0, 3).Occupied {
		t.Fatal("water cell must not become occupied")
	}
	m.SetOccupied(0, 0, true)
	if !m.CellAt(0, 0).Occupied {
		t.Fatal("ground cell should be occupied")
	}
	m.SetTerrain(0, 0, Shallow)
	if m.CellAt(0, 0).Occupied {
		t.Fatal("turning a cell into water must free it")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	m := mustLoad(t, testMap)
	c := m.Clone()
	c.SetTerrain(0, 3, Ground)
	if m.Terrain(0, 3) != Shallow {
		t.Fatal("editing the clone changed the original")
	}
}

func TestSpawnColumnsAndExit(t *testing.T) {
	m := mustLoad(t, testMap)
	cols := m.SpawnColumns()
	if len(cols) != 1 || cols[0] != 3 {
		t.Errorf("SpawnColumns = %v, want [3]", cols)
	}
	if exit := m.ExitCell(); exit != (Cell{4, 6}) {
		t.Errorf("ExitCell = %v, want {4 6} (target column clamped to width)", exit)
	}
}
