package availability

import (
	"fmt"
	"sync"
)

// Oracle answers whether an asset is already committed to a listing or
// auction, and tracks acquisition/release of that commitment
type Oracle interface {
	Engaged(collection, unit string) bool
	Acquire(collection, unit string) error
	Release(collection, unit string) error
}

type key struct {
	collection string
	unit       string
}

// MemoryOracle is a concurrency-safe in-memory Oracle
type MemoryOracle struct {
	mu      sync.RWMutex
	engaged map[key]bool
}

// NewMemoryOracle creates an empty oracle
func NewMemoryOracle() *MemoryOracle {
	return &MemoryOracle{engaged: make(map[key]bool)}
}

// Engaged reports whether the asset is committed to a sale
func (o *MemoryOracle) Engaged(collection, unit string) bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.engaged[key{collection, unit}]
}

// Acquire marks the asset committed
func (o *MemoryOracle) Acquire(collection, unit string) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	k := key{collection, unit}
	if o.engaged[k] {
		return fmt.Errorf("acquire %s/%s: already engaged", collection, unit)
	}
	o.engaged[k] = true
	return nil
}

// Release marks the asset free again
func (o *MemoryOracle) Release(collection, unit string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.engaged, key{collection, unit})
	return nil
}
