// Released under an MIT license. See LICENSE.

// Package hash provides sublisp's name to value mapping type.
package hash

import (
	"sort"
	"sync"
)

// T (hash) maps names to values. A hash is safe for concurrent use.
type T[V any] struct {
	sync.RWMutex
	m map[string]V
}

// New creates a new hash.
func New[V any]() *T[V] {
	return &T[V]{m: map[string]V{}}
}

// Get retrieves the value associated with the name k in the hash h.
func (h *T[V]) Get(k string) (V, bool) {
	h.RLock()
	defer h.RUnlock()

	v, ok := h.m[k]

	return v, ok
}

// Names returns the names in the hash h in sorted order.
func (h *T[V]) Names() []string {
	h.RLock()
	defer h.RUnlock()

	names := make([]string, 0, len(h.m))
	for k := range h.m {
		names = append(names, k)
	}

	sort.Strings(names)

	return names
}

// Set associates the name k with the value v in the hash h.
func (h *T[V]) Set(k string, v V) {
	h.Lock()
	defer h.Unlock()

	h.m[k] = v
}

// Size returns the number of entries in the hash h.
func (h *T[V]) Size() int {
	h.RLock()
	defer h.RUnlock()

	return len(h.m)
}
