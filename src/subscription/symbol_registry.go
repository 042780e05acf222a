package subscription

import (
	"sync"

	"mt-bridge/src/logger"
)

// -----------------------------------------------------------------------------
// SymbolRegistry
// -----------------------------------------------------------------------------

// SymbolRegistry reference-counts symbol interest across client sessions.
// A symbol is present in the counts map iff at least one session owns it.
// No I/O happens under the lock; callers act on the returned transitions.
type SymbolRegistry struct {
	Logger *logger.Logger

	mu     sync.Mutex
	counts map[string]int
}

// -----------------------------------------------------------------------------

func NewSymbolRegistry(log *logger.Logger) *SymbolRegistry {
	return &SymbolRegistry{
		Logger: log,
		counts: make(map[string]int),
	}
}

// -----------------------------------------------------------------------------

// Subscribe increments the count for each symbol and returns, in input order,
// the symbols whose count transitioned 0 -> 1 (upstream must start tracking).
func (r *SymbolRegistry) Subscribe(symbols []string) []string {
	newlyActivated := []string{}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, symbol := range symbols {
		if count, ok := r.counts[symbol]; ok {
			r.counts[symbol] = count + 1
		} else {
			r.counts[symbol] = 1
			newlyActivated = append(newlyActivated, symbol)
		}
	}

	return newlyActivated
}

// -----------------------------------------------------------------------------

// Unsubscribe decrements the count for each symbol and returns the symbols
// whose count transitioned 1 -> 0 (upstream must stop tracking). Unsubscribing
// a symbol with no tracked count is a logged no-op.
func (r *SymbolRegistry) Unsubscribe(symbols []string) []string {
	newlyDeactivated := []string{}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, symbol := range symbols {
		count, ok := r.counts[symbol]
		if !ok {
			r.Logger.Warning("Attempted to unsubscribe from %s but no subscription found", symbol)
			continue
		}

		if count <= 1 {
			delete(r.counts, symbol)
			newlyDeactivated = append(newlyDeactivated, symbol)
		} else {
			r.counts[symbol] = count - 1
		}
	}

	return newlyDeactivated
}

// -----------------------------------------------------------------------------

// ActiveSymbols returns a snapshot of all symbols with count >= 1.
func (r *SymbolRegistry) ActiveSymbols() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	symbols := make([]string, 0, len(r.counts))
	for symbol := range r.counts {
		symbols = append(symbols, symbol)
	}
	return symbols
}

// -----------------------------------------------------------------------------

// Count returns the current subscriber count for a symbol (0 if untracked).
func (r *SymbolRegistry) Count(symbol string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counts[symbol]
}
