// Package registry keeps the simulations a host can run. Simulations add
// themselves from init(), so commands and hosts look them up by ID instead of
// importing every implementation.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/gravity-runner/internal/core"
)

// Game is a simulation driven frame by frame by core.Driver.
type Game interface {
	// ID is the stable key used for score storage and CLI lookups.
	ID() string
	Title() string

	// Reset starts a fresh run for the given host size and seed.
	Reset(cfg core.RuntimeConfig) error

	// HandleAction delivers a semantic input between frames.
	HandleAction(a core.Action)

	core.Simulation
}

// Factory builds a fresh, unconfigured simulation.
type Factory func() Game

// Entry describes a registered simulation.
type Entry struct {
	ID      string
	Title   string
	Summary string
	New     Factory
}

// ErrEmpty is returned by Default when nothing has registered yet.
var ErrEmpty = errors.New("registry: no simulations registered")

var (
	mu      sync.RWMutex
	entries = make(map[string]Entry)
	order   []string
)

// Register adds a simulation. The first registration becomes the default.
// It panics on an empty ID, a nil factory or a duplicate ID.
func Register(e Entry) {
	mu.Lock()
	defer mu.Unlock()

	e.ID = strings.TrimSpace(e.ID)
	switch {
	case e.ID == "":
		panic("registry: empty simulation id")
	case e.New == nil:
		panic(fmt.Sprintf("registry: simulation %q has no factory", e.ID))
	}
	if _, exists := entries[e.ID]; exists {
		panic(fmt.Sprintf("registry: simulation %q already registered", e.ID))
	}
	if e.Title == "" {
		e.Title = e.ID
	}

	entries[e.ID] = e
	order = append(order, e.ID)
}

// List returns every registered entry sorted by ID.
func List() []Entry {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Entry, 0, len(entries))
	for _, e := range entries {
		result = append(result, e)
	}
	slices.SortFunc(result, func(a, b Entry) int {
		return strings.Compare(a.ID, b.ID)
	})
	return result
}

// Lookup returns the entry registered under id.
func Lookup(id string) (Entry, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e, ok
}

// Default returns the first registered entry.
func Default() (Entry, error) {
	mu.RLock()
	defer mu.RUnlock()

	if len(order) == 0 {
		return Entry{}, ErrEmpty
	}
	return entries[order[0]], nil
}

// Create builds a new simulation by ID.
func Create(id string) (Game, error) {
	e, ok := Lookup(id)
	if !ok {
		return nil, fmt.Errorf("registry: unknown simulation %q", id)
	}
	return e.New(), nil
}
