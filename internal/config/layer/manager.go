package layer

import (
	"sort"
	"sync"

	"github.com/dshills/hexstorm/internal/config/loader"
)

// Manager manages configuration layers and provides merged access.
type Manager struct {
	mu     sync.RWMutex
	layers []*Layer       // Sorted by priority (ascending)
	merged map[string]any // Cached merged result
	dirty  bool           // Whether merged cache needs refresh
}

// NewManager creates a new layer manager.
func NewManager() *Manager {
	return &Manager{dirty: true}
}

// AddLayer adds a layer to the manager. Nil layers are ignored.
// Layers are automatically sorted by priority.
func (m *Manager) AddLayer(layer *Layer) {
	if layer == nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.layers = append(m.layers, layer)
	sort.SliceStable(m.layers, func(i, j int) bool {
		return m.layers[i].Priority < m.layers[j].Priority
	})
	m.dirty = true
}

// Layers returns a copy of all layers sorted by priority.
func (m *Manager) Layers() []*Layer {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*Layer, len(m.layers))
	copy(result, m.layers)
	return result
}

// Merge combines all layers into a single configuration map.
// Results are cached until a layer is added.
func (m *Manager) Merge() map[string]any {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.dirty && m.merged != nil {
		return loader.Clone(m.merged)
	}

	result := make(map[string]any)
	for _, layer := range m.layers {
		result = loader.DeepMerge(result, loader.Clone(layer.Data))
	}

	m.merged = result
	m.dirty = false

	return loader.Clone(result)
}

// Get returns the effective value for a setting path.
// Returns the value, the layer it came from, and whether it was found.
func (m *Manager) Get(path string) (any, *Layer, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := len(m.layers) - 1; i >= 0; i-- {
		layer := m.layers[i]
		if val, ok := loader.GetByPath(layer.Data, path); ok {
			return val, layer, true
		}
	}

	return nil, nil, false
}

// WhichLayer describes the layer that provides the value at path, or
// returns "" when no layer sets it.
func (m *Manager) WhichLayer(path string) string {
	_, layer, found := m.Get(path)
	if !found {
		return ""
	}
	return layer.Describe()
}
