package placeholder

import (
	"testing"

	"github.com/vovakirdan/tui-blokus/internal/core"
	"github.com/vovakirdan/tui-blokus/internal/pieces"
	"github.com/vovakirdan/tui-blokus/internal/registry"
)

func TestRegistered(t *testing.T) {
	if !registry.Exists(Name) {
		t.Fatalf("%q should be registered", Name)
	}

	r, err := registry.Create(Name)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if r.Name() != Name {
		t.Errorf("Name() = %q, expected %q", r.Name(), Name)
	}

	found := false
	for _, info := range registry.List() {
		if info.Name == Name {
			found = info.Description != ""
		}
	}
	if !found {
		t.Error("List() should include the engine with a description")
	}
}

func TestAcceptsEverything(t *testing.T) {
	shape, err := pieces.MustLoad().Select(pieces.DefaultPiece, 0)
	if err != nil {
		t.Fatal(err)
	}
	board := registry.Board{Width: 20, Height: 20}

	for _, pos := range []core.Point{{X: 0, Y: 0}, {X: -2, Y: -3}, {X: 19, Y: 19}, {X: 100, Y: -100}} {
		if !(Rules{}).ValidatePlacement(board, shape, pos) {
			t.Errorf("ValidatePlacement(%+v) = false, expected true", pos)
		}
	}
}

func TestCycleOrientationKeepsShape(t *testing.T) {
	shape, _ := pieces.MustLoad().Select(pieces.DefaultPiece, 2)

	for _, dir := range []int{-1, 1} {
		if got := (Rules{}).CycleOrientation(shape, dir); !got.Equal(shape) {
			t.Errorf("CycleOrientation(%d) changed the shape:\n%s", dir, got)
		}
	}
}

func TestUnknownRules(t *testing.T) {
	if _, err := registry.Create("no-such-rules"); err == nil {
		t.Error("Create() should fail for an unknown engine")
	}
}
