package subscription

import (
	"testing"

	"mt-bridge/src/logger"

	"github.com/stretchr/testify/assert"
)

func newTestRegistry(t *testing.T) *SymbolRegistry {
	t.Helper()
	return NewSymbolRegistry(logger.NewLogger("ERROR", "test"))
}

func TestSymbolRegistry_FirstSubscriberActivates(t *testing.T) {
	t.Parallel()
	r := newTestRegistry(t)

	activated := r.Subscribe([]string{"EURUSD", "GBPUSD"})
	assert.Equal(t, []string{"EURUSD", "GBPUSD"}, activated)

	// A second subscriber adds no new activations
	activated = r.Subscribe([]string{"EURUSD", "USDJPY"})
	assert.Equal(t, []string{"USDJPY"}, activated)

	assert.Equal(t, 2, r.Count("EURUSD"))
	assert.Equal(t, 1, r.Count("GBPUSD"))
	assert.ElementsMatch(t, []string{"EURUSD", "GBPUSD", "USDJPY"}, r.ActiveSymbols())
}

func TestSymbolRegistry_LastUnsubscriberDeactivates(t *testing.T) {
	t.Parallel()
	r := newTestRegistry(t)

	r.Subscribe([]string{"EURUSD"})
	r.Subscribe([]string{"EURUSD"})

	deactivated := r.Unsubscribe([]string{"EURUSD"})
	assert.Empty(t, deactivated)
	assert.Equal(t, 1, r.Count("EURUSD"))

	deactivated = r.Unsubscribe([]string{"EURUSD"})
	assert.Equal(t, []string{"EURUSD"}, deactivated)
	assert.Zero(t, r.Count("EURUSD"))
	assert.Empty(t, r.ActiveSymbols())
}

func TestSymbolRegistry_CountNeverGoesNegative(t *testing.T) {
	t.Parallel()
	r := newTestRegistry(t)

	// Unsubscribing a symbol that was never subscribed is a no-op
	deactivated := r.Unsubscribe([]string{"EURUSD"})
	assert.Empty(t, deactivated)
	assert.Zero(t, r.Count("EURUSD"))

	// And a later subscribe starts cleanly from zero
	activated := r.Subscribe([]string{"EURUSD"})
	assert.Equal(t, []string{"EURUSD"}, activated)
	assert.Equal(t, 1, r.Count("EURUSD"))
}

func TestSymbolRegistry_DuplicatesInOneCall(t *testing.T) {
	t.Parallel()
	r := newTestRegistry(t)

	activated := r.Subscribe([]string{"EURUSD", "EURUSD"})
	assert.Equal(t, []string{"EURUSD"}, activated)
	assert.Equal(t, 2, r.Count("EURUSD"))

	r.Unsubscribe([]string{"EURUSD", "EURUSD"})
	assert.Zero(t, r.Count("EURUSD"))
}
