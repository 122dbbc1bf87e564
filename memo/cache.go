package memo

import (
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

// identity is the key of one cached method.
type identity struct {
	name string
	key  string
}

func newIdentity(name string) *identity {
	id := &identity{name: name}
	id.key = fmt.Sprintf("%s@%p", name, id)
	return id
}

// Cache stores method results for one instance.
//
// Contract:
//   - Concurrency: safe for concurrent use.
//   - Ownership: a Cache belongs to exactly one instance; sharing it between
//     instances makes them share results.
type Cache struct {
	mu      sync.Mutex
	entries map[*identity]any
	group   singleflight.Group // collapses concurrent first calls
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[*identity]any)}
}

// Len returns the number of cached results.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Clear removes every cached result.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
}

func (c *Cache) load(id *identity) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[id]
	return v, ok
}

func (c *Cache) store(id *identity, v any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.entries == nil {
		c.entries = make(map[*identity]any)
	}
	c.entries[id] = v
}

func (c *Cache) forget(id *identity) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, id)
}

// do returns the cached result for id, computing it with fn on a miss.
func (c *Cache) do(id *identity, fn func() (any, error)) (any, error) {
	if v, ok := c.load(id); ok {
		return v, nil
	}

	v, err, _ := c.group.Do(id.key, func() (any, error) {
		// A flight that finished between load and Do already stored it
		if v, ok := c.load(id); ok {
			return v, nil
		}
		v, err := fn()
		if err != nil {
			// Don't cache errors
			return nil, err
		}
		c.store(id, v)
		return v, nil
	})
	return v, err
}
