// Package registry provides a global registry of puzzle modes.
// Modes register themselves in init() functions, allowing callers to resolve
// externally supplied puzzle-type names without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/colormix/internal/color"
)

// ErrUnknownType is returned when a puzzle-type name is not registered.
// It signals a caller configuration error, never an uncurated level.
var ErrUnknownType = errors.New("registry: unknown puzzle type")

// Mode is implemented by every puzzle type.
type Mode interface {
	// ID returns the external identifier (e.g., "color_matching").
	ID() string

	// Title returns a human-readable name.
	Title() string

	// Description explains the mode in one sentence.
	Description() string

	// MixMode returns how player selections are combined.
	MixMode() color.MixMode

	// CuratedCount returns how many leading levels are hand-authored.
	CuratedCount() int
}

// Info contains metadata about a registered mode.
type Info struct {
	ID          string
	Title       string
	Description string
	MixMode     color.MixMode
	Curated     int
}

var (
	modes = make(map[string]Mode)
	mu    sync.RWMutex
)

// Register adds a mode to the registry.
// Panics if a mode with the same ID is already registered.
func Register(m Mode) {
	mu.Lock()
	defer mu.Unlock()

	id := m.ID()
	if _, exists := modes[id]; exists {
		panic(fmt.Sprintf("registry: puzzle type %q already registered", id))
	}
	modes[id] = m
}

// List returns information about all registered modes, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(modes))
	for _, m := range modes {
		result = append(result, Info{
			ID:          m.ID(),
			Title:       m.Title(),
			Description: m.Description(),
			MixMode:     m.MixMode(),
			Curated:     m.CuratedCount(),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Lookup resolves a mode by its ID.
// The error wraps ErrUnknownType if the ID is not registered.
func Lookup(id string) (Mode, error) {
	mu.RLock()
	defer mu.RUnlock()

	m, ok := modes[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownType, id)
	}
	return m, nil
}

// Exists checks if a mode with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := modes[id]
	return ok
}
