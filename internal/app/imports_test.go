package app

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// Simulation packages must compile on a headless machine.
var headlessDirs = []string{
	".",
	"../system",
	"../component",
	"../entity",
	"../event",
	"../defs",
	"../config",
	"../types",
	"../utils",
	"../../pkg/gridmap",
}

func TestSimulationDoesNotImportEbiten(t *testing.T) {
	fset := token.NewFileSet()
	for _, dir := range headlessDirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("read %s: %v", dir, err)
		}
		for _, entry := range entries {
			name := entry.Name()
			if entry.IsDir() || !strings.HasSuffix(name, ".go") {
				continue
			}
			path := filepath.Join(dir, name)
			f, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
			if err != nil {
				t.Fatalf("parse %s: %v", path, err)
			}
			for _, imp := range f.Imports {
				p, _ := strconv.Unquote(imp.Path.Value)
				if strings.HasPrefix(p, "github.com/hajimehoshi/ebiten") || p == "go-viking-defense/internal/render" {
					t.Errorf("%s imports %s", path, p)
				}
			}
		}
	}
}
