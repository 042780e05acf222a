package grpc_market

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"mt-bridge/src/logger"
	"mt-bridge/src/models"
	"mt-bridge/src/subscription"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// fakeBroker is a scriptable broker: SubscribeFunc controls the outcome of
// subscription round-trips and publish feeds registered tick listeners.
type fakeBroker struct {
	mu            sync.Mutex
	listeners     map[int]func(models.MTick)
	nextListener  int
	unsubscribed  [][]string
	SubscribeFunc func(ctx context.Context, symbols []string) (models.MSubscriptionResult, error)
}

func newFakeBroker() *fakeBroker {
	return &fakeBroker{listeners: make(map[int]func(models.MTick))}
}

func (b *fakeBroker) SubscribeToSymbols(ctx context.Context, symbols []string) (models.MSubscriptionResult, error) {
	if b.SubscribeFunc != nil {
		return b.SubscribeFunc(ctx, symbols)
	}
	return models.MSubscriptionResult{SuccessfulSymbols: symbols, FailedSymbols: []string{}}, nil
}

func (b *fakeBroker) UnsubscribeFromSymbols(symbols []string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.unsubscribed = append(b.unsubscribed, symbols)
}

func (b *fakeBroker) AddTickListener(listener func(models.MTick)) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextListener
	b.nextListener++
	b.listeners[id] = listener
	return id
}

func (b *fakeBroker) RemoveTickListener(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.listeners, id)
}

func (b *fakeBroker) ActiveSymbols() []string { return nil }

func (b *fakeBroker) publish(tick models.MTick) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, listener := range b.listeners {
		listener(tick)
	}
}

func (b *fakeBroker) listenerCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.listeners)
}

func (b *fakeBroker) unsubscribeCalls() [][]string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([][]string(nil), b.unsubscribed...)
}

// -----------------------------------------------------------------------------

// fakeStream captures sent responses. onSend, when set, is invoked after each
// successful send with the total number of messages sent so far.
type fakeStream struct {
	grpc.ServerStream

	ctx    context.Context
	onSend func(sentCount int)

	mu      sync.Mutex
	sent    []*SubscribeResponse
	failAt  int // fail the n-th send (1-based), 0 means never
	sendErr error
}

func (f *fakeStream) Context() context.Context { return f.ctx }

func (f *fakeStream) Send(resp *SubscribeResponse) error {
	f.mu.Lock()
	if f.failAt > 0 && len(f.sent)+1 == f.failAt {
		f.mu.Unlock()
		return f.sendErr
	}
	f.sent = append(f.sent, resp)
	count := len(f.sent)
	hook := f.onSend
	f.mu.Unlock()

	if hook != nil {
		hook(count)
	}
	return nil
}

func (f *fakeStream) messages() []*SubscribeResponse {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*SubscribeResponse(nil), f.sent...)
}

// -----------------------------------------------------------------------------

func newTestGrpcService(t *testing.T, broker *fakeBroker) (*MarketDataGrpcService, *subscription.SessionRegistry) {
	t.Helper()

	log := logger.NewLogger("ERROR", "test")
	sessions := subscription.NewSessionRegistry(100, log)
	return NewMarketDataGrpcService(broker, sessions, log), sessions
}

func TestSubscribeMarketData_NoSymbols(t *testing.T) {
	broker := newFakeBroker()
	svc, sessions := newTestGrpcService(t, broker)
	stream := &fakeStream{ctx: context.Background()}

	err := svc.SubscribeMarketData(&SubscribeRequest{Symbols: []string{"", ""}}, stream)
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	// Rejected before any session or broker interaction
	assert.Zero(t, sessions.Count())
	assert.Zero(t, broker.listenerCount())
	assert.Empty(t, stream.messages())
}

func TestSubscribeMarketData_AllSymbolsRejected(t *testing.T) {
	broker := newFakeBroker()
	broker.SubscribeFunc = func(ctx context.Context, symbols []string) (models.MSubscriptionResult, error) {
		return models.AllFailed(symbols), nil
	}
	svc, sessions := newTestGrpcService(t, broker)
	stream := &fakeStream{ctx: context.Background()}

	err := svc.SubscribeMarketData(&SubscribeRequest{Symbols: []string{"FAKEPAIR"}}, stream)
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	// The client still learns which symbols failed before the stream ends
	msgs := stream.messages()
	require.Len(t, msgs, 1)
	statusMsg := msgs[0].GetStatus()
	require.NotNil(t, statusMsg)
	assert.Empty(t, statusMsg.SuccessfulSymbols)
	assert.Equal(t, []string{"FAKEPAIR"}, statusMsg.FailedSymbols)

	assert.Zero(t, sessions.Count())
	assert.Zero(t, broker.listenerCount())
}

func TestSubscribeMarketData_ClientCancelledDuringRoundTrip(t *testing.T) {
	broker := newFakeBroker()
	broker.SubscribeFunc = func(ctx context.Context, symbols []string) (models.MSubscriptionResult, error) {
		return models.AllFailed(symbols), context.Canceled
	}
	svc, sessions := newTestGrpcService(t, broker)
	stream := &fakeStream{ctx: context.Background()}

	// A client going away mid round-trip is not an error
	err := svc.SubscribeMarketData(&SubscribeRequest{Symbols: []string{"EURUSD"}}, stream)
	require.NoError(t, err)

	assert.Empty(t, stream.messages())
	assert.Zero(t, sessions.Count())
	assert.Zero(t, broker.listenerCount())
}

func TestSubscribeMarketData_BrokerError(t *testing.T) {
	broker := newFakeBroker()
	broker.SubscribeFunc = func(ctx context.Context, symbols []string) (models.MSubscriptionResult, error) {
		return models.AllFailed(symbols), errors.New("terminal unreachable")
	}
	svc, _ := newTestGrpcService(t, broker)
	stream := &fakeStream{ctx: context.Background()}

	err := svc.SubscribeMarketData(&SubscribeRequest{Symbols: []string{"EURUSD"}}, stream)
	require.Error(t, err)
	assert.Equal(t, codes.Internal, status.Code(err))
}

func TestSubscribeMarketData_StatusThenTicks(t *testing.T) {
	broker := newFakeBroker()
	broker.SubscribeFunc = func(ctx context.Context, symbols []string) (models.MSubscriptionResult, error) {
		return models.MSubscriptionResult{
			SuccessfulSymbols: []string{"EURUSD"},
			FailedSymbols:     []string{"FAKEPAIR"},
		}, nil
	}
	svc, sessions := newTestGrpcService(t, broker)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	now := time.Now().UTC()
	stream := &fakeStream{ctx: ctx}
	stream.onSend = func(sentCount int) {
		switch sentCount {
		case 1:
			// Status delivered: feed two ticks, plus one for a symbol the
			// session does not own
			broker.publish(models.MTick{Symbol: "EURUSD", Bid: 1.1, Ask: 1.1001, Timestamp: now})
			broker.publish(models.MTick{Symbol: "GBPUSD", Bid: 1.25, Ask: 1.2501, Timestamp: now})
			broker.publish(models.MTick{Symbol: "EURUSD", Bid: 1.2, Ask: 1.2001, Timestamp: now})
		case 3:
			// Both owned ticks arrived, shut the stream down
			cancel()
		}
	}

	err := svc.SubscribeMarketData(&SubscribeRequest{Symbols: []string{"EURUSD", "FAKEPAIR"}}, stream)
	require.NoError(t, err)

	msgs := stream.messages()
	require.Len(t, msgs, 3)

	statusMsg := msgs[0].GetStatus()
	require.NotNil(t, statusMsg, "first message must be the subscription status")
	assert.Equal(t, []string{"EURUSD"}, statusMsg.SuccessfulSymbols)
	assert.Equal(t, []string{"FAKEPAIR"}, statusMsg.FailedSymbols)

	tick1 := msgs[1].GetTick()
	require.NotNil(t, tick1)
	assert.Equal(t, "EURUSD", tick1.Symbol)
	assert.InDelta(t, 1.1, tick1.Bid, 1e-9)
	assert.Equal(t, now.UnixMilli(), tick1.TimestampMs)

	tick2 := msgs[2].GetTick()
	require.NotNil(t, tick2)
	assert.InDelta(t, 1.2, tick2.Bid, 1e-9)

	// Teardown released the session's interest and its listener
	assert.Zero(t, sessions.Count())
	assert.Zero(t, broker.listenerCount())
	calls := broker.unsubscribeCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, []string{"EURUSD"}, calls[0])
}

func TestSubscribeMarketData_SendFault(t *testing.T) {
	broker := newFakeBroker()
	svc, sessions := newTestGrpcService(t, broker)

	stream := &fakeStream{
		ctx:     context.Background(),
		failAt:  2,
		sendErr: errors.New("transport closed"),
	}
	stream.onSend = func(sentCount int) {
		if sentCount == 1 {
			broker.publish(models.MTick{Symbol: "EURUSD", Bid: 1.1, Ask: 1.1001, Timestamp: time.Now()})
		}
	}

	err := svc.SubscribeMarketData(&SubscribeRequest{Symbols: []string{"EURUSD"}}, stream)
	require.Error(t, err)
	assert.Equal(t, codes.Internal, status.Code(err))

	assert.Zero(t, sessions.Count())
	assert.Zero(t, broker.listenerCount())
}

func TestUnsubscribeMarketData(t *testing.T) {
	broker := newFakeBroker()
	svc, _ := newTestGrpcService(t, broker)

	resp, err := svc.UnsubscribeMarketData(context.Background(), &UnsubscribeRequest{Symbols: []string{"EURUSD", "EURUSD", ""}})
	require.NoError(t, err)
	assert.True(t, resp.Success)

	calls := broker.unsubscribeCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, []string{"EURUSD"}, calls[0])
}

func TestUnsubscribeMarketData_NoSymbols(t *testing.T) {
	broker := newFakeBroker()
	svc, _ := newTestGrpcService(t, broker)

	_, err := svc.UnsubscribeMarketData(context.Background(), &UnsubscribeRequest{})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestDistinctSymbols(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"EURUSD", "GBPUSD"}, distinctSymbols([]string{"EURUSD", "GBPUSD", "EURUSD", ""}))
	assert.Empty(t, distinctSymbols([]string{"", ""}))
	assert.Empty(t, distinctSymbols(nil))
}
