package gridmap

import (
	"errors"
	"reflect"
	"testing"
)

// fjord is the shape of a real level: water enters at the top and winds down.
const fjord = `gggsggggggggggg
gggsggggggggggg
gggsssssgggdggg
gggggggsgggdggg
gggggggsssdddgg
gggggggggggsggg
ggggggggsssssgg
ggggggggsgggggg
ggdddssssgggggg
ggdgggggggggggg
ggsssssgggggggg
ggggggsgggggggg
ggggggsssgggggg
ggggggggsgggggg
ggggggggsssssss
`

func checkRoute(t *testing.T, m *Map, route []Cell, start, target Cell) {
	t.Helper()
	if len(route) == 0 {
		t.Fatal("empty route")
	}
	if route[0] != start {
		t.Errorf("route starts at %v, want %v", route[0], start)
	}
	if route[len(route)-1] != target {
		t.Errorf("route ends at %v, want %v", route[len(route)-1], target)
	}
	for k, c := range route {
		if !m.Terrain(c.I, c.J).IsWater() && k > 0 {
			t.Errorf("route step %d %v crosses ground", k, c)
		}
		if k > 0 && !route[k-1].Adjacent(c) {
			t.Errorf("route steps %v and %v are not adjacent", route[k-1], c)
		}
	}
}

func TestFindPathStraightChannel(t *testing.T) {
	m := mustLoad(t, "gsg\ngsg\ngsg\n")
	start, target := Cell{0, 1}, Cell{3, 1}
	route, err := FindPath(start, target, m)
	if err != nil {
		t.Fatalf("FindPath: %v", err)
	}
	want := []Cell{{0, 1}, {1, 1}, {2, 1}, {3, 1}}
	if !reflect.DeepEqual(route, want) {
		t.Errorf("route = %v, want %v", route, want)
	}
}

func TestFindPathWindingFjord(t *testing.T) {
	m := mustLoad(t, fjord)
	start, target := Cell{0, 3}, m.ExitCell()
	route, err := FindPath(start, target, m)
	if err != nil {
		t.Fatalf("FindPath: %v", err)
	}
	checkRoute(t, m, route, start, target)
}

func TestFindPathIsDeterministic(t *testing.T) {
	m := mustLoad(t, fjord)
	start, target := Cell{0, 3}, m.ExitCell()
	first, err := FindPath(start, target, m)
	if err != nil {
		t.Fatalf("FindPath: %v", err)
	}
	for k := 0; k < 5; k++ {
		again, err := FindPath(start, target, m)
		if err != nil {
			t.Fatalf("FindPath run %d: %v", k, err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d produced a different route", k)
		}
	}
}

func TestFindPathBlocked(t *testing.T) {
	m := mustLoad(t, "gsg\nggg\ngsg\n")
	_, err := FindPath(Cell{0, 1}, m.ExitCell(), m)
	if !errors.Is(err, ErrNoPathFound) {
		t.Fatalf("expected ErrNoPathFound, got %v", err)
	}
}

func TestFindPathBlockedAfterPlatform(t *testing.T) {
	m := mustLoad(t, "gsg\ngsg\ngsg\n")
	if _, err := FindPath(Cell{0, 1}, Cell{3, 1}, m); err != nil {
		t.Fatalf("open channel should route: %v", err)
	}
	m.SetTerrain(1, 1, Ground)
	if _, err := FindPath(Cell{0, 1}, Cell{3, 1}, m); !errors.Is(err, ErrNoPathFound) {
		t.Fatalf("expected ErrNoPathFound once the channel is filled, got %v", err)
	}
}

func TestFindPathUsesSyntheticRow(t *testing.T) {
	// The channel ends at column 0 but the exit is at column 2: only the
	// synthetic shallow row connects them.
	m := mustLoad(t, "sgg\nsgg\n")
	target := Cell{2, 2}
	route, err := FindPath(Cell{0, 0}, target, m)
	if err != nil {
		t.Fatalf("FindPath: %v", err)
	}
	checkRoute(t, m, route, Cell{0, 0}, target)
}

func TestFindPathSameCell(t *testing.T) {
	m := mustLoad(t, "gsg\n")
	route, err := FindPath(Cell{0, 1}, Cell{0, 1}, m)
	if err != nil || len(route) != 1 {
		t.Fatalf("route to self = %v, %v", route, err)
	}
}

func TestFindPathFrontierRoute(t *testing.T) {
	m := mustLoad(t, fjord)
	route, err := FindPath(Cell{0, 3}, m.ExitCell(), m)
	if err != nil {
		t.Fatalf("FindPath: %v", err)
	}
	// Frontier expansion detours through (15,8) before stepping onto the exit.
	want := []Cell{
		{0, 3}, {1, 3}, {2, 3}, {2, 4}, {2, 5}, {2, 6}, {2, 7}, {3, 7}, {4, 7}, {4, 8},
		{4, 9}, {4, 10}, {4, 11}, {5, 11}, {6, 11}, {6, 10}, {6, 9}, {6, 8}, {7, 8}, {8, 8},
		{8, 7}, {8, 6}, {8, 5}, {8, 4}, {8, 3}, {8, 2}, {9, 2}, {10, 2}, {10, 3}, {10, 4},
		{10, 5}, {10, 6}, {11, 6}, {12, 6}, {12, 7}, {12, 8}, {13, 8}, {14, 8}, {15, 8}, {15, 7},
	}
	if !reflect.DeepEqual(route, want) {
		t.Errorf("route = %v\nwant    %v", route, want)
	}
}
