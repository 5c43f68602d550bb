package asset

import (
	"sync"
)

// Handle addresses an asset inside an Assets store
// Zero is the "no asset" sentinel and is never allocated
type Handle uint32

// NoHandle is the zero sentinel for an unset handle
const NoHandle Handle = 0

// Assets is a handle-addressed container for assets of type T
// Get returns false for handles that were never added or were removed;
// callers treat that as "asset not loaded"
type Assets[T any] struct {
	mu    sync.RWMutex
	next  Handle
	items map[Handle]*T
}

// NewAssets creates an empty asset store
func NewAssets[T any]() *Assets[T] {
	return &Assets[T]{
		next:  1,
		items: make(map[Handle]*T),
	}
}

// Add stores the asset and returns its new handle
func (a *Assets[T]) Add(item T) Handle {
	a.mu.Lock()
	defer a.mu.Unlock()

	h := a.next
	a.next++
	a.items[h] = &item
	return h
}

// Get retrieves the asset for a handle
func (a *Assets[T]) Get(h Handle) (*T, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	item, ok := a.items[h]
	return item, ok
}

// Set replaces the asset stored under an existing handle
func (a *Assets[T]) Set(h Handle, item T) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.items[h] = &item
}

// Remove deletes the asset for a handle
func (a *Assets[T]) Remove(h Handle) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.items, h)
}

// Len returns the number of stored assets
func (a *Assets[T]) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.items)
}
