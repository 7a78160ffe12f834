package registry

import (
	"testing"

	"github.com/vovakirdan/horde/internal/core"
)

type stubGame struct {
	id, title string
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return g.title }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterListCreate(t *testing.T) {
	Register("zz-test-b", func() Game { return &stubGame{id: "zz-test-b", title: "B"} })
	Register("zz-test-a", func() Game { return &stubGame{id: "zz-test-a", title: "A"} })

	if !Exists("zz-test-a") || Exists("zz-test-missing") {
		t.Fatal("Exists() reported the wrong set")
	}

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
	}
	ia, ib := -1, -1
	for i, id := range ids {
		switch id {
		case "zz-test-a":
			ia = i
		case "zz-test-b":
			ib = i
		}
	}
	if ia < 0 || ib < 0 || ia > ib {
		t.Errorf("List() not sorted or incomplete: %v", ids)
	}

	g, err := Create("zz-test-a")
	if err != nil {
		t.Fatal(err)
	}
	if g.Title() != "A" {
		t.Errorf("title = %q", g.Title())
	}

	if _, err := Create("zz-test-missing"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz-test-dup", func() Game { return &stubGame{id: "zz-test-dup"} })
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("zz-test-dup", func() Game { return &stubGame{id: "zz-test-dup"} })
}
