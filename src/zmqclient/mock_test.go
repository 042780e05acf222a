package zmqclient

import (
	"context"
	"testing"
	"time"

	"mt-bridge/src/broker"
	"mt-bridge/src/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMock(t *testing.T) *MockClient {
	t.Helper()

	m := NewMockClient(logger.NewLogger("ERROR", "test"))
	m.ReplyDelay = 5 * time.Millisecond
	m.TickInterval = 5 * time.Millisecond
	t.Cleanup(func() { m.Close() })
	return m
}

func TestMockClient_AcknowledgesTrackPrices(t *testing.T) {
	t.Parallel()
	m := newTestMock(t)

	replies := make(chan string, 1)
	m.OnReply(func(msg string) { replies <- msg })

	require.NoError(t, m.SendCommand("TRACK_PRICES;EURUSD;GBPUSD"))

	select {
	case raw := <-replies:
		reply, ok, err := broker.ParseCommandReply(raw)
		require.True(t, ok)
		require.NoError(t, err)
		assert.Equal(t, 2, reply.SymbolCount)
		assert.Empty(t, reply.ErrorSymbols)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for mock reply")
	}
}

func TestMockClient_IgnoresOtherCommands(t *testing.T) {
	t.Parallel()
	m := newTestMock(t)

	replies := make(chan string, 1)
	m.OnReply(func(msg string) { replies <- msg })

	require.NoError(t, m.SendCommand("OPEN_TRADE;EURUSD"))

	select {
	case raw := <-replies:
		t.Fatalf("unexpected reply: %s", raw)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestMockClient_GeneratesTicksForSubscribedTopics(t *testing.T) {
	t.Parallel()
	m := newTestMock(t)

	ticks := make(chan string, 16)
	m.OnTick(func(msg string) {
		select {
		case ticks <- msg:
		default:
		}
	})

	require.NoError(t, m.SubscribeTopic("EURUSD"))
	require.NoError(t, m.StartListening(context.Background()))
	assert.True(t, m.IsListening())

	select {
	case raw := <-ticks:
		symbol, bid, ask, err := broker.ParseTickMessage(raw)
		require.NoError(t, err)
		assert.Equal(t, "EURUSD", symbol)
		assert.Greater(t, ask, bid)
		assert.InDelta(t, 1.0, bid, 0.01)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for synthetic tick")
	}
}

func TestMockClient_StopListeningHaltsTicks(t *testing.T) {
	t.Parallel()
	m := newTestMock(t)

	ticks := make(chan string, 16)
	m.OnTick(func(msg string) {
		select {
		case ticks <- msg:
		default:
		}
	})

	require.NoError(t, m.SubscribeTopic("EURUSD"))
	require.NoError(t, m.StartListening(context.Background()))
	require.NoError(t, m.StopListening())
	assert.False(t, m.IsListening())

	// Drain anything generated before the stop, then expect silence
	time.Sleep(20 * time.Millisecond)
	for len(ticks) > 0 {
		<-ticks
	}

	select {
	case raw := <-ticks:
		t.Fatalf("tick after stop: %s", raw)
	case <-time.After(50 * time.Millisecond):
	}
}
