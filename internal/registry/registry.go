// Package registry keeps the set of playable games.
// Games register a factory from init(), so the platform can start them by ID
// without importing them directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-match3/internal/core"
)

// Game is what the platform drives once per tick.
// Implementations hold only game logic: input arrives as an InputFrame and
// output is drawn into a Screen, so no terminal library leaks in here.
type Game interface {
	// ID is the stable identifier used on the command line and in the
	// score store (e.g. "match3").
	ID() string

	// Title is the display name.
	Title() string

	// Reset starts a fresh run using the screen size and seed in cfg.
	Reset(cfg core.RuntimeConfig)

	// Step advances one fixed tick. StepResult.Ended is set on the tick a run
	// finishes, either through restart or quit, so the caller can persist it.
	Step(in core.InputFrame) core.StepResult

	// Render draws into dst, which has been cleared.
	Render(dst *core.Screen)

	// State reports score and pause status.
	State() core.GameState
}

// Resizer is implemented by games that can follow a terminal resize without
// losing the current run. Games without it are Reset instead.
type Resizer interface {
	Resize(w, h int)
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
)

// Register adds a factory under id. It panics on a duplicate id.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
	titles[id] = f().Title()
}

// List returns the registered games sorted by ID.
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

// Create returns a new instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
