// Package registry defines the contract between a game and the drivers
// that run it, and keeps a global registry of driver backends.
// Backends register themselves in init() functions so the CLI can select
// one by name without importing it directly.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-martians/internal/core"
)

// Game is the interface a frame-stepped game exposes to its driver.
// Games contain pure logic with no terminal dependencies.
type Game interface {
	// ID returns a unique identifier for this game.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset builds a fresh match for the given screen and seed.
	Reset(cfg core.RuntimeConfig) error

	// Step applies one input action and advances the simulation by one tick.
	Step(in core.InputFrame) (core.StepResult, error)

	// Render draws the current frame. It clears the canvas first.
	Render(c core.Canvas) error

	// State returns the current game state.
	State() core.GameState
}

// Backend drives a Game against a terminal: it polls input, steps the
// game at the tick rate and draws each frame.
type Backend interface {
	// Title returns a short description for listings.
	Title() string

	// Run resets g with rt and plays it until the game stops, the user
	// quits or ctx is cancelled.
	Run(ctx context.Context, g Game, rt core.RuntimeConfig) error
}

// BackendInfo contains metadata about a registered backend.
type BackendInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new backend instance.
type Factory func() Backend

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a backend factory to the registry.
// Panics if a backend with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: backend %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered backends, sorted by ID.
func List() []BackendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]BackendInfo, 0, len(factories))
	for id := range factories {
		result = append(result, BackendInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a backend by its ID.
func Create(id string) (Backend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown backend %q", id)
	}

	return f(), nil
}

// Exists checks if a backend with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
