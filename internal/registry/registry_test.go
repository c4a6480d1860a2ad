package registry

import (
	"testing"

	"github.com/vovakirdan/carrot-rush/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                            { return g.id }
func (g *stubGame) Title() string                         { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)              {}
func (g *stubGame) Step(core.InputFrame) core.StepResult  { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                   {}
func (g *stubGame) State() core.GameState                 { return core.GameState{} }

func TestRegisterCreateList(t *testing.T) {
	Register(GameInfo{ID: "zz_stub_b", Title: "B"}, func() Game { return &stubGame{id: "zz_stub_b"} })
	Register(GameInfo{ID: "zz_stub_a", Title: "A", Summary: "first"}, func() Game { return &stubGame{id: "zz_stub_a"} })

	if !Exists("zz_stub_a") || Exists("zz_missing") {
		t.Error("Exists() returned unexpected result")
	}

	g, err := Create("zz_stub_a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "zz_stub_a" {
		t.Errorf("Create() returned game %q", g.ID())
	}

	if _, err := Create("zz_missing"); err == nil {
		t.Error("Create() of unknown id should fail")
	}

	info, ok := Info("zz_stub_a")
	if !ok || info.Summary != "first" {
		t.Errorf("Info() = %+v, %v", info, ok)
	}

	// List is sorted by ID
	var ids []string
	for _, gi := range List() {
		if gi.ID == "zz_stub_a" || gi.ID == "zz_stub_b" {
			ids = append(ids, gi.ID)
		}
	}
	if len(ids) != 2 || ids[0] != "zz_stub_a" || ids[1] != "zz_stub_b" {
		t.Errorf("List() order = %v", ids)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(GameInfo{ID: "zz_dup"}, func() Game { return &stubGame{id: "zz_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register(GameInfo{ID: "zz_dup"}, func() Game { return &stubGame{id: "zz_dup"} })
}
