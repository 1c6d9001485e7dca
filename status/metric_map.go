package status

import (
	"slices"
	"sync"
)

// MetricMap holds named metrics of type T
// Metrics are created once and never removed; Get is called at setup, the
// returned pointer is what hot paths touch
type MetricMap[T any] struct {
	mu    sync.Mutex
	items map[string]*T
	names []string // kept sorted on insert
}

func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{items: make(map[string]*T)}
}

// Get returns the metric for key, creating it on first use
func (m *MetricMap[T]) Get(key string) *T {
	m.mu.Lock()
	defer m.mu.Unlock()

	if ptr, ok := m.items[key]; ok {
		return ptr
	}
	ptr := new(T)
	m.items[key] = ptr
	i, _ := slices.BinarySearch(m.names, key)
	m.names = slices.Insert(m.names, i, key)
	return ptr
}

// Range visits every metric in key order
func (m *MetricMap[T]) Range(fn func(key string, ptr *T)) {
	m.mu.Lock()
	names := slices.Clone(m.names)
	ptrs := make([]*T, len(names))
	for i, k := range names {
		ptrs[i] = m.items[k]
	}
	m.mu.Unlock()

	for i, k := range names {
		fn(k, ptrs[i])
	}
}

func (m *MetricMap[T]) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.names)
}
