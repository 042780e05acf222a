package zmqclient

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"mt-bridge/src/logger"
)

// -----------------------------------------------------------------------------
// MockClient
// -----------------------------------------------------------------------------

// MockClient simulates the terminal without any sockets: TRACK_PRICES
// commands are acknowledged after a short delay and a periodic generator
// produces synthetic ticks for every subscribed topic. Useful for local runs
// and for driving the broker in tests.
type MockClient struct {
	Logger *logger.Logger

	// ReplyDelay is how long the mock waits before acknowledging a command.
	ReplyDelay time.Duration

	// TickInterval is the synthetic tick generation period.
	TickInterval time.Duration

	replyHandler func(string)
	tickHandler  func(string)

	mu        sync.Mutex
	topics    map[string]struct{}
	cancel    context.CancelFunc
	listening bool

	rng *rand.Rand
	wg  sync.WaitGroup
}

// -----------------------------------------------------------------------------

func NewMockClient(log *logger.Logger) *MockClient {
	return &MockClient{
		Logger:       log,
		ReplyDelay:   100 * time.Millisecond,
		TickInterval: 500 * time.Millisecond,
		topics:       make(map[string]struct{}),
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// -----------------------------------------------------------------------------

// SendCommand acknowledges TRACK_PRICES commands with the terminal's
// single-quoted reply format; everything else is swallowed.
func (m *MockClient) SendCommand(command string) error {
	m.Logger.Debug("Mock: Received command: %s", command)

	if !strings.HasPrefix(command, "TRACK_PRICES") {
		return nil
	}

	parts := strings.Split(command, ";")
	symbolCount := len(parts) - 1

	response := fmt.Sprintf(
		"{'_action': 'TRACK_PRICES', '_data': {'symbol_count':%d, 'error_symbols':[]}}",
		symbolCount)

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		time.Sleep(m.ReplyDelay)
		if m.replyHandler != nil {
			m.replyHandler(response)
		}
		m.Logger.Debug("Mock: Sent response: %s", response)
	}()

	return nil
}

// -----------------------------------------------------------------------------

func (m *MockClient) SubscribeTopic(topic string) error {
	m.mu.Lock()
	m.topics[topic] = struct{}{}
	m.mu.Unlock()

	m.Logger.Debug("Mock: Subscribed to topic: %s", topic)
	return nil
}

// -----------------------------------------------------------------------------

func (m *MockClient) UnsubscribeTopic(topic string) error {
	m.mu.Lock()
	delete(m.topics, topic)
	m.mu.Unlock()

	m.Logger.Debug("Mock: Unsubscribed from topic: %s", topic)
	return nil
}

// -----------------------------------------------------------------------------

func (m *MockClient) OnReply(handler func(string)) {
	m.replyHandler = handler
}

func (m *MockClient) OnTick(handler func(string)) {
	m.tickHandler = handler
}

// -----------------------------------------------------------------------------

// StartListening starts the synthetic tick generator.
func (m *MockClient) StartListening(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.listening {
		return nil
	}

	genCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.listening = true

	m.wg.Add(1)
	go m.generateTicks(genCtx)

	m.Logger.Info("Mock: Started listening for market data")
	return nil
}

// -----------------------------------------------------------------------------

func (m *MockClient) generateTicks(ctx context.Context) {
	defer m.wg.Done()

	ticker := time.NewTicker(m.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for _, symbol := range m.subscribedTopics() {
				bid, ask := m.mockPrice()
				message := fmt.Sprintf("%s:|:%.5f;%.5f", symbol, bid, ask)
				if m.tickHandler != nil {
					m.tickHandler(message)
				}
			}
		}
	}
}

// -----------------------------------------------------------------------------

func (m *MockClient) subscribedTopics() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	topics := make([]string, 0, len(m.topics))
	for topic := range m.topics {
		topics = append(topics, topic)
	}
	return topics
}

// -----------------------------------------------------------------------------

func (m *MockClient) mockPrice() (bid, ask float64) {
	m.mu.Lock()
	variation := (m.rng.Float64() - 0.5) * 0.001
	m.mu.Unlock()

	bid = 1 + variation
	ask = bid + 0.0001
	return bid, ask
}

// -----------------------------------------------------------------------------

func (m *MockClient) StopListening() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.listening {
		return nil
	}

	m.cancel()
	m.cancel = nil
	m.listening = false

	m.Logger.Info("Mock: Stopped listening")
	return nil
}

// -----------------------------------------------------------------------------

func (m *MockClient) IsListening() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listening
}

// -----------------------------------------------------------------------------

func (m *MockClient) Close() error {
	m.StopListening()
	m.wg.Wait()
	m.Logger.Info("Mock: ZMQ client closed")
	return nil
}
