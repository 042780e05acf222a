package subscription

import (
	"context"
	"testing"
	"time"

	"mt-bridge/src/logger"
	"mt-bridge/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, capacity int) *ClientSession {
	t.Helper()

	log := logger.NewLogger("ERROR", "test")
	s := newClientSession("test-id", "127.0.0.1:1234", context.Background(), capacity, log)
	t.Cleanup(s.Close)
	return s
}

func tick(symbol string, bid float64) models.MTick {
	return models.MTick{Symbol: symbol, Bid: bid, Ask: bid + 0.0001, Timestamp: time.Now().UTC()}
}

func TestClientSession_FiltersUnownedSymbols(t *testing.T) {
	t.Parallel()
	s := newTestSession(t, 10)
	s.AddSymbols([]string{"EURUSD"})

	assert.True(t, s.EnqueueTick(tick("EURUSD", 1.1)))
	assert.False(t, s.EnqueueTick(tick("GBPUSD", 1.25)))

	got := <-s.Ticks()
	assert.Equal(t, "EURUSD", got.Symbol)
	assert.Empty(t, s.Ticks())
}

func TestClientSession_DropsOldestOnOverflow(t *testing.T) {
	t.Parallel()
	s := newTestSession(t, 3)
	s.AddSymbols([]string{"EURUSD"})

	for i := 0; i < 5; i++ {
		assert.True(t, s.EnqueueTick(tick("EURUSD", float64(i))))
	}

	// Capacity 3, five writes: the two oldest were evicted
	var bids []float64
	for i := 0; i < 3; i++ {
		got := <-s.Ticks()
		bids = append(bids, got.Bid)
	}
	assert.Equal(t, []float64{2, 3, 4}, bids)
	assert.Empty(t, s.Ticks())
}

func TestClientSession_AddSymbolsIdempotent(t *testing.T) {
	t.Parallel()
	s := newTestSession(t, 10)

	s.AddSymbols([]string{"EURUSD", "GBPUSD"})
	s.AddSymbols([]string{"EURUSD"})

	assert.ElementsMatch(t, []string{"EURUSD", "GBPUSD"}, s.SubscribedSymbols())
}

func TestClientSession_CloseCompletesQueue(t *testing.T) {
	t.Parallel()
	s := newTestSession(t, 10)
	s.AddSymbols([]string{"EURUSD"})

	require.True(t, s.EnqueueTick(tick("EURUSD", 1.1)))
	s.Close()

	// Queued ticks are still drained, then the channel reports completion
	_, ok := <-s.Ticks()
	assert.True(t, ok)
	_, ok = <-s.Ticks()
	assert.False(t, ok)

	// Closed sessions reject new ticks and the scope is cancelled
	assert.False(t, s.EnqueueTick(tick("EURUSD", 1.2)))
	assert.ErrorIs(t, s.Context().Err(), context.Canceled)

	// Close is idempotent
	s.Close()
}
