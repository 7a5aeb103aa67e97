package constraint

import (
	"fmt"
	"sort"
	"sync"

	"blocksworld/internal/world"
)

// Manager holds the single active constraint set plus a registry of named
// sets, and brokers lookups the rest of the simulation needs (valid
// constraint-set names, rules text). Swapping the active set is only
// well-defined between simulations — see ValidStartData's note in
// DESIGN.md about the PreStart-time swap ordering.
type Manager struct {
	mu     sync.RWMutex
	ctx    *Context
	active string
	sets   map[string]*Set
}

// NewManager builds a manager seeded with the given named sets, active on
// defaultName.
func NewManager(ctx *Context, defaultName string, sets ...*Set) (*Manager, error) {
	m := &Manager{ctx: ctx, sets: make(map[string]*Set, len(sets))}
	names := make([]string, 0, len(sets))
	for _, s := range sets {
		m.sets[s.Name] = s
		names = append(names, s.Name)
	}
	ctx.ConstraintSetNames = names
	if _, ok := m.sets[defaultName]; !ok {
		return nil, fmt.Errorf("constraint: unknown default set %q", defaultName)
	}
	m.active = defaultName
	return m, nil
}

// Validate runs the active set's rules against (state, action).
func (m *Manager) Validate(state *world.State, action world.Action) bool {
	m.mu.RLock()
	set := m.sets[m.active]
	m.mu.RUnlock()
	return set.Validate(m.ctx, state, action)
}

// SetActive swaps the active constraint set by name.
func (m *Manager) SetActive(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sets[name]; !ok {
		return fmt.Errorf("constraint: unknown set %q", name)
	}
	m.active = name
	return nil
}

// ActiveName returns the currently active set's name.
func (m *Manager) ActiveName() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.active
}

// GetRules returns the active set's human-readable rules text.
func (m *Manager) GetRules() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sets[m.active].RulesText
}

// Names returns every registered constraint set name, sorted.
func (m *Manager) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.sets))
	for name := range m.sets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
