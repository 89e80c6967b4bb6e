package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-blokus/internal/core"
	"github.com/vovakirdan/tui-blokus/internal/pieces"
)

type fakeRules struct{ name string }

func (f fakeRules) Name() string        { return f.name }
func (f fakeRules) Description() string { return "fake " + f.name }

func (fakeRules) ValidatePlacement(Board, pieces.Option, core.Point) bool { return false }

func (fakeRules) CycleOrientation(o pieces.Option, _ int) pieces.Option { return o }

func register(name string) {
	Register(name, func() Rules { return fakeRules{name: name} })
}

func TestRegisterAndCreate(t *testing.T) {
	register("test-zeta")
	register("test-alpha")

	if !Exists("test-zeta") {
		t.Fatal("registered engine should exist")
	}

	r, err := Create("test-alpha")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if r.Name() != "test-alpha" {
		t.Errorf("Name() = %q, expected test-alpha", r.Name())
	}

	list := List()
	var names []string
	for _, info := range list {
		if strings.HasPrefix(info.Name, "test-") {
			names = append(names, info.Name)
			if info.Description != "fake "+info.Name {
				t.Errorf("description of %s = %q", info.Name, info.Description)
			}
		}
	}
	if len(names) != 2 || names[0] != "test-alpha" || names[1] != "test-zeta" {
		t.Errorf("List() = %v, expected sorted names", names)
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no-such-rules")
	if err == nil {
		t.Fatal("Create() of an unknown engine should fail")
	}
	if !strings.Contains(err.Error(), `unknown rules "no-such-rules"`) {
		t.Errorf("error = %q", err)
	}
	if Exists("no-such-rules") {
		t.Error("Exists() should be false")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	register("test-dup")

	defer func() {
		if recover() == nil {
			t.Error("registering a name twice should panic")
		}
	}()
	register("test-dup")
}
