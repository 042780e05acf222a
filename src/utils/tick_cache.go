package utils

import (
	"sync"

	"mt-bridge/src/models"
)

// -----------------------------------------------------------------------------
// TickCache
// -----------------------------------------------------------------------------

// TickCache keeps a bounded per-symbol history of recent ticks so the HTTP
// surface can serve "last N quotes" without touching storage. Memory use is
// capped at capacity ticks per symbol.
type TickCache struct {
	mu       sync.RWMutex
	rings    map[string]*TickRing
	capacity int
}

// -----------------------------------------------------------------------------

func NewTickCache(capacityPerSymbol int) *TickCache {
	return &TickCache{
		rings:    make(map[string]*TickRing),
		capacity: capacityPerSymbol,
	}
}

// -----------------------------------------------------------------------------

// Add records a tick in the symbol's ring, creating it on first sight.
func (c *TickCache) Add(tick models.MTick) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ring, ok := c.rings[tick.Symbol]
	if !ok {
		ring = NewTickRing(c.capacity)
		c.rings[tick.Symbol] = ring
	}
	ring.Append(tick)
}

// -----------------------------------------------------------------------------

// Recent returns up to n recent ticks for a symbol, oldest first. Unknown
// symbols yield nil.
func (c *TickCache) Recent(symbol string, n int) []models.MTick {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ring, ok := c.rings[symbol]
	if !ok {
		return nil
	}
	return ring.Latest(n)
}

// -----------------------------------------------------------------------------

// Symbols returns the symbols with cached history.
func (c *TickCache) Symbols() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	symbols := make([]string, 0, len(c.rings))
	for symbol := range c.rings {
		symbols = append(symbols, symbol)
	}
	return symbols
}
