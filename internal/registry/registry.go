// Package registry maps level names to factories. Levels register
// themselves in init() functions, so the CLI and the SSH server can list
// and start them without importing each one by name.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/horde/internal/core"
)

// Game is the contract between a playable level and the terminal
// platform. Implementations hold pure simulation state (no Bubble Tea);
// the platform owns timing, input mapping and drawing.
type Game interface {
	// ID returns the level name used on the command line and in run history.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts the level over with the given terminal size and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame into dst. The screen is pre-cleared.
	Render(dst *core.Screen)

	// State returns the current score and lifecycle flags.
	State() core.GameState
}

// GameInfo describes a registered level.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh, not yet reset, level instance.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a level factory. It panics on a duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: level %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered levels sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a level by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown level %q", id)
	}
	return f(), nil
}

// Exists reports whether a level with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
