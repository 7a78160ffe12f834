package level

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/horde/internal/config"
)

const screenH = 700

func newTestGenerator(seed int64) *Generator {
	return NewGenerator(seed, screenH, config.DefaultHordeConfig().Generator)
}

func TestGenerateDeterminism(t *testing.T) {
	for _, seed := range []int64{1, 42, 12345} {
		a := newTestGenerator(seed).Generate(3500)
		b := newTestGenerator(seed).Generate(3500)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("seed %d: two generations differ", seed)
		}
	}

	a := newTestGenerator(1).Generate(3500)
	b := newTestGenerator(2).Generate(3500)
	if reflect.DeepEqual(a, b) {
		t.Error("different seeds produced identical levels")
	}
}

func TestGenerateGroundContinuity(t *testing.T) {
	const bs = 70
	for seed := int64(0); seed < 20; seed++ {
		descs := newTestGenerator(seed).Generate(3500)

		dirt := make(map[[2]int]bool)
		for _, d := range descs {
			if d.Kind == KindDirtMiddle {
				dirt[[2]int{d.X, d.Y}] = true
			}
		}

		for _, d := range descs {
			if d.Kind != KindGrassMiddle {
				continue
			}
			if d.Y < screenH-3*bs || d.Y > screenH-bs {
				t.Fatalf("seed %d: grass at y=%d outside [ceiling, baseline]", seed, d.Y)
			}
			// Walk down from the surface until the floor row is covered.
			for y := d.Y + bs; y <= screenH-bs; y += bs {
				if !dirt[[2]int{d.X, y}] {
					t.Fatalf("seed %d: gap under grass (%d,%d) at y=%d", seed, d.X, d.Y, y)
				}
			}
		}
	}
}

func TestGenerateWalkSteps(t *testing.T) {
	descs := newTestGenerator(7).Generate(3500)

	var grass []BlockDescriptor
	for _, d := range descs {
		if d.Kind == KindGrassMiddle {
			grass = append(grass, d)
		}
	}

	for i := 1; i < len(grass)-1; i++ {
		if grass[i].X-grass[i-1].X != 70 {
			t.Fatalf("columns not contiguous at %d: %d -> %d", i, grass[i-1].X, grass[i].X)
		}
		if dy := grass[i].Y - grass[i-1].Y; dy != 0 && dy != 70 && dy != -70 {
			t.Fatalf("surface jumped by %d at x=%d", dy, grass[i].X)
		}
	}

	first := grass[0]
	if first.X != -2100 {
		t.Errorf("walk starts at %d, expected -2100", first.X)
	}
	last := grass[len(grass)-1]
	if last.X != 3570 || last.Y != screenH-70 {
		t.Errorf("landing block at (%d,%d), expected (3570,%d)", last.X, last.Y, screenH-70)
	}
}

func TestGenerateSpawnMarkerAndFlag(t *testing.T) {
	descs := newTestGenerator(3).Generate(3500)

	counts := Count(descs)
	if counts[KindSpawnMarker] != 1 || counts[KindFlag] != 1 {
		t.Fatalf("expected one marker and one flag, got %v", counts)
	}

	var marker, flag BlockDescriptor
	markerIdx, flagIdx := -1, -1
	for i, d := range descs {
		switch d.Kind {
		case KindSpawnMarker:
			marker, markerIdx = d, i
		case KindFlag:
			flag, flagIdx = d, i
		}
	}

	if marker.X != 700 {
		t.Errorf("marker at x=%d, expected 700", marker.X)
	}
	if flag.X != marker.X || flag.Y != marker.Y-70 {
		t.Errorf("flag at (%d,%d), expected one block above marker (%d,%d)", flag.X, flag.Y, marker.X, marker.Y)
	}
	if markerIdx > flagIdx {
		t.Error("marker must be emitted before the flag")
	}
}

func TestGenerateBushesAboveSurface(t *testing.T) {
	descs := newTestGenerator(11).Generate(3500)

	surface := make(map[int]int)
	for _, d := range descs {
		if d.Kind == KindGrassMiddle {
			surface[d.X] = d.Y
		}
	}
	bushes := 0
	for _, d := range descs {
		if d.Kind != KindBush {
			continue
		}
		bushes++
		if d.Y != surface[d.X]-70 {
			t.Errorf("bush at (%d,%d) not one block above surface %d", d.X, d.Y, surface[d.X])
		}
	}
	if bushes == 0 {
		t.Error("expected at least one bush over 82 columns")
	}
}

func TestGenerateDegenerateExtent(t *testing.T) {
	descs := newTestGenerator(1).Generate(-5000)
	if len(descs) != 1 {
		t.Fatalf("expected only the landing block, got %d descriptors", len(descs))
	}
	want := BlockDescriptor{Kind: KindGrassMiddle, X: -2100, Y: screenH - 70}
	if descs[0] != want {
		t.Errorf("got %+v, expected %+v", descs[0], want)
	}
}

func TestBlockKindString(t *testing.T) {
	if KindSpawnMarker.String() != "spawn" || KindDirtMiddle.String() != "dirt" {
		t.Error("unexpected kind names")
	}
	if BlockKind(99).String() != "kind(99)" {
		t.Errorf("unknown kind = %q", BlockKind(99).String())
	}
}
