// Package level generates side-scrolling levels: a random walk over a
// fixed block grid that emits block descriptors left to right.
package level

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/horde/internal/config"
)

// BlockKind is the closed set of things the generator can emit.
type BlockKind int

const (
	KindGrassMiddle BlockKind = iota
	KindDirtMiddle
	KindBush
	KindSpawnMarker // Records the pickup drop column; never placed
	KindFlag
)

// String returns the kind name used in logs and the generate command.
func (k BlockKind) String() string {
	switch k {
	case KindGrassMiddle:
		return "grass"
	case KindDirtMiddle:
		return "dirt"
	case KindBush:
		return "bush"
	case KindSpawnMarker:
		return "spawn"
	case KindFlag:
		return "flag"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// BlockDescriptor is one generated placement. It is a value; nothing
// mutates it after generation.
type BlockDescriptor struct {
	Kind BlockKind
	X, Y int
}

// Direction rolls of the walk die.
const (
	rollUp   = 1
	rollDown = 2
	rollBush = 1
)

// Generator walks a level from the far left to a target extent.
type Generator struct {
	rng          *rand.Rand
	cfg          config.GeneratorConfig
	screenHeight int
}

// NewGenerator creates a generator whose output depends only on seed.
func NewGenerator(seed int64, screenHeight int, cfg config.GeneratorConfig) *Generator {
	return &Generator{
		rng:          rand.New(rand.NewSource(seed)),
		cfg:          cfg,
		screenHeight: screenHeight,
	}
}

// Start returns the x of the first walked column.
func (g *Generator) Start() int {
	return -g.cfg.LeadBlocks * g.cfg.BlockSize
}

// Baseline returns the lowest surface height (one block above the bottom).
func (g *Generator) Baseline() int {
	return g.screenHeight - g.cfg.BlockSize
}

// Ceiling returns the y the surface may not climb past.
func (g *Generator) Ceiling() int {
	return g.screenHeight - 3*g.cfg.BlockSize
}

// Generate walks from Start() while x <= extent and returns the
// descriptors in generation order. An extent left of Start() yields only
// the trailing landing block.
func (g *Generator) Generate(extent int) []BlockDescriptor {
	bs := g.cfg.BlockSize
	x := g.Start()
	y := g.Baseline()

	var out []BlockDescriptor
	if extent >= x {
		out = make([]BlockDescriptor, 0, ((extent-x)/bs+1)*4+1)
	}

	for x <= extent {
		switch g.rng.Intn(g.cfg.StepSides) {
		case rollUp:
			if y > g.Ceiling() {
				y -= bs
			}
		case rollDown:
			if y < g.Baseline() {
				y += bs
			}
		}

		out = append(out, BlockDescriptor{Kind: KindGrassMiddle, X: x, Y: y})

		// Fill down to the floor so no column floats.
		if y <= g.screenHeight-2*bs {
			out = append(out,
				BlockDescriptor{Kind: KindDirtMiddle, X: x, Y: y + bs},
				BlockDescriptor{Kind: KindDirtMiddle, X: x, Y: y + 2*bs},
			)
		} else if y <= g.Baseline() {
			out = append(out, BlockDescriptor{Kind: KindDirtMiddle, X: x, Y: y + 2*bs})
		}

		if g.rng.Intn(g.cfg.BushSides) == rollBush {
			out = append(out, BlockDescriptor{Kind: KindBush, X: x, Y: y - bs})
		}

		if x == g.cfg.SpawnColumn {
			out = append(out,
				BlockDescriptor{Kind: KindSpawnMarker, X: x, Y: y},
				BlockDescriptor{Kind: KindFlag, X: x, Y: y - bs},
			)
		}

		x += bs
	}

	// Landing ground for hostiles dropped at the generation boundary.
	out = append(out, BlockDescriptor{Kind: KindGrassMiddle, X: x, Y: g.Baseline()})
	return out
}

// Count tallies descriptors by kind.
func Count(descs []BlockDescriptor) map[BlockKind]int {
	counts := make(map[BlockKind]int)
	for _, d := range descs {
		counts[d.Kind]++
	}
	return counts
}
