package utils

import (
	"mt-bridge/src/models"
)

// -----------------------------------------------------------------------------
// TickRing is a fixed-size circular buffer of ticks.
// True ring buffer - no resizing allowed!
// -----------------------------------------------------------------------------

type TickRing struct {
	data     []models.MTick
	capacity int
	index    int // Next write position
	size     int // Current number of elements
}

// -----------------------------------------------------------------------------

// NewTickRing creates a new buffer with fixed capacity
func NewTickRing(capacity int) *TickRing {
	if capacity <= 0 {
		capacity = 1000 // Default reasonable size
	}

	return &TickRing{
		data:     make([]models.MTick, capacity),
		capacity: capacity,
	}
}

// -----------------------------------------------------------------------------

// Append adds a tick, overwriting the oldest entry when full
func (rb *TickRing) Append(tick models.MTick) {
	rb.data[rb.index] = tick
	rb.index = (rb.index + 1) % rb.capacity

	// Update size (never exceeds capacity)
	if rb.size < rb.capacity {
		rb.size++
	}
}

// -----------------------------------------------------------------------------

// Latest returns the n most recent ticks, oldest first
func (rb *TickRing) Latest(n int) []models.MTick {
	if rb.size == 0 || n <= 0 {
		return nil
	}
	if n > rb.size {
		n = rb.size
	}

	result := make([]models.MTick, n)
	// Walk backwards from the last written slot
	start := rb.index - n
	if start < 0 {
		start += rb.capacity
	}
	for i := 0; i < n; i++ {
		result[i] = rb.data[(start+i)%rb.capacity]
	}
	return result
}

// -----------------------------------------------------------------------------

// Len returns the number of stored ticks
func (rb *TickRing) Len() int {
	return rb.size
}
