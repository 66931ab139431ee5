package gridmap

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrInvalidTerrain is returned for a map file with an unknown terrain code.
var ErrInvalidTerrain = errors.New("invalid terrain type")

// ParseTerrain accepts single letter codes and full words.
func ParseTerrain(code string) (Terrain, error) {
	switch strings.ToLower(code) {
	case "g", "ground":
		return Ground, nil
	case "s", "shallow":
		return Shallow, nil
	case "d", "deep":
		return Deep, nil
	}
	return Ground, fmt.Errorf("%w: %q", ErrInvalidTerrain, code)
}

// Load reads one map row per line. A line is either a run of single letter
// codes ("ggssdg") or whitespace separated words ("ground shallow deep").
func Load(r io.Reader) (*Map, error) {
	var rows [][]Terrain
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), " \t\r")
		if line == "" {
			continue
		}
		var codes []string
		if strings.ContainsAny(line, " \t") {
			codes = strings.Fields(line)
		} else {
			codes = strings.Split(line, "")
		}
		row := make([]Terrain, 0, len(codes))
		for col, code := range codes {
			t, err := ParseTerrain(code)
			if err != nil {
				return nil, fmt.Errorf("map line %d column %d: %w", lineNo, col, err)
			}
			row = append(row, t)
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("map line %d: expected %d cells, got %d", lineNo, len(rows[0]), len(row))
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read map: %w", err)
	}
	if len(rows) == 0 {
		return nil, errors.New("map is empty")
	}
	return New(rows), nil
}

// LoadFile opens and parses a map file.
func LoadFile(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open map file: %w", err)
	}
	defer f.Close()
	m, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}
