package broker

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"mt-bridge/src/interfaces"
	"mt-bridge/src/logger"
	"mt-bridge/src/models"
	"mt-bridge/src/subscription"
)

// -----------------------------------------------------------------------------
// MarketDataService
// -----------------------------------------------------------------------------

// DefaultCommandTimeout bounds the wait for a TRACK_PRICES reply.
const DefaultCommandTimeout = 5 * time.Second

// MarketDataService bridges the terminal transport to downstream consumers.
// It owns the reference-counted symbol registry, serializes command
// round-trips against the terminal (the transport carries no correlation ids,
// so at most one command may be outstanding), parses inbound tick messages
// and fans them out to registered listeners.
type MarketDataService struct {
	Client   interfaces.ITerminalClient
	Logger   *logger.Logger
	Registry *subscription.SymbolRegistry

	timeout time.Duration

	// commandMu is the single-flight gate: held for the whole send/await
	// cycle of a command that expects a reply, and around fire-and-forget
	// tracking updates so sends stay ordered.
	commandMu sync.Mutex

	// pending is the reply slot for the one outstanding command, nil when no
	// command is in flight.
	pendingMu sync.Mutex
	pending   chan models.MTrackPricesReply

	listenerMu   sync.RWMutex
	listeners    map[int]func(models.MTick)
	nextListener int
}

// -----------------------------------------------------------------------------

func NewMarketDataService(client interfaces.ITerminalClient, registry *subscription.SymbolRegistry, log *logger.Logger, timeout time.Duration) *MarketDataService {
	if timeout <= 0 {
		timeout = DefaultCommandTimeout
	}

	s := &MarketDataService{
		Client:    client,
		Logger:    log,
		Registry:  registry,
		timeout:   timeout,
		listeners: make(map[int]func(models.MTick)),
	}

	client.OnTick(s.handleRawMessage)
	client.OnReply(s.handleCommandReply)

	return s
}

// -----------------------------------------------------------------------------
// Lifecycle
// -----------------------------------------------------------------------------

// Start begins listening on the terminal transport.
func (s *MarketDataService) Start(ctx context.Context) error {
	if err := s.Client.StartListening(ctx); err != nil {
		return fmt.Errorf("failed to start terminal listener: %w", err)
	}

	s.Logger.Info("Market data service started")
	return nil
}

// -----------------------------------------------------------------------------

// Stop tells the terminal to track nothing (best effort) and stops listening.
func (s *MarketDataService) Stop() {
	if err := s.Client.SendCommand(BuildTrackPricesCommand(nil)); err != nil {
		s.Logger.Warning("Failed to send stop command to terminal: %v", err)
	} else {
		s.Logger.Info("Sent %s stop command to terminal", TrackPricesAction)
	}

	if err := s.Client.StopListening(); err != nil {
		s.Logger.Warning("Failed to stop terminal listener: %v", err)
	}

	s.Logger.Info("Market data service stopped")
}

// -----------------------------------------------------------------------------

// IsRunning reports whether the terminal listener is active.
func (s *MarketDataService) IsRunning() bool {
	return s.Client.IsListening()
}

// -----------------------------------------------------------------------------
// Subscription Round-Trips
// -----------------------------------------------------------------------------

// SubscribeToSymbols registers interest in the requested symbols and performs
// the TRACK_PRICES round-trip. The command always re-sends the complete
// requested list; the reply names the symbols the terminal rejected. On
// timeout every requested symbol is reported failed and the registry is
// rolled back to its pre-call state.
func (s *MarketDataService) SubscribeToSymbols(ctx context.Context, symbols []string) (models.MSubscriptionResult, error) {
	s.commandMu.Lock()
	defer s.commandMu.Unlock()

	pending := s.openPending()
	defer s.closePending()

	newlyActivated := s.Registry.Subscribe(symbols)
	for _, symbol := range newlyActivated {
		if err := s.Client.SubscribeTopic(symbol); err != nil {
			s.Logger.Warning("Failed to subscribe topic %s: %v", symbol, err)
		}
	}

	command := BuildTrackPricesCommand(symbols)
	if err := s.Client.SendCommand(command); err != nil {
		s.rollback(symbols)
		return models.AllFailed(symbols), fmt.Errorf("failed to send %s command: %w", TrackPricesAction, err)
	}
	s.Logger.Info("Sent subscription request for: %s", strings.Join(symbols, ", "))

	select {
	case reply := <-pending:
		result := s.partitionReply(reply, symbols)
		s.rollback(result.FailedSymbols)

		s.Logger.Info("Subscription completed: %d successful, %d failed",
			len(result.SuccessfulSymbols), len(result.FailedSymbols))
		return result, nil

	case <-time.After(s.timeout):
		s.Logger.Warning("Timeout waiting for %s response", TrackPricesAction)
		s.rollback(symbols)
		return models.AllFailed(symbols), nil

	case <-ctx.Done():
		s.rollback(symbols)
		return models.AllFailed(symbols), ctx.Err()
	}
}

// -----------------------------------------------------------------------------

// UnsubscribeFromSymbols drops interest in the given symbols and re-issues the
// tracking command with the remaining active set (or the bare "track nothing"
// form). No reply is awaited.
func (s *MarketDataService) UnsubscribeFromSymbols(symbols []string) {
	s.rollback(symbols)
	s.updateTrackedSymbols()

	s.Logger.Info("Unsubscribed from: %s", strings.Join(symbols, ", "))
}

// -----------------------------------------------------------------------------

// ActiveSymbols returns the snapshot of symbols currently tracked upstream.
func (s *MarketDataService) ActiveSymbols() []string {
	return s.Registry.ActiveSymbols()
}

// -----------------------------------------------------------------------------

// rollback decrements registry counts and untracks topics that fully
// deactivated as a result.
func (s *MarketDataService) rollback(symbols []string) {
	if len(symbols) == 0 {
		return
	}

	deactivated := s.Registry.Unsubscribe(symbols)
	for _, symbol := range deactivated {
		if err := s.Client.UnsubscribeTopic(symbol); err != nil {
			s.Logger.Warning("Failed to unsubscribe topic %s: %v", symbol, err)
		}
	}
}

// -----------------------------------------------------------------------------

// updateTrackedSymbols re-sends the full active tracking list. Shares the
// single-flight gate with subscribe so command sends stay ordered on the wire.
func (s *MarketDataService) updateTrackedSymbols() {
	s.commandMu.Lock()
	defer s.commandMu.Unlock()

	active := s.Registry.ActiveSymbols()
	if err := s.Client.SendCommand(BuildTrackPricesCommand(active)); err != nil {
		s.Logger.Warning("Failed to update tracked symbols: %v", err)
		return
	}

	if len(active) > 0 {
		s.Logger.Info("Updated terminal to track: %s", strings.Join(active, ", "))
	} else {
		s.Logger.Info("Stopped terminal from tracking all symbols")
	}
}

// -----------------------------------------------------------------------------

// partitionReply splits the requested symbols into successful/failed using the
// reply's error list. Failed symbols not present in the request are ignored so
// a stray reply cannot corrupt registry counts held by other clients.
func (s *MarketDataService) partitionReply(reply models.MTrackPricesReply, requested []string) models.MSubscriptionResult {
	failedSet := make(map[string]struct{}, len(reply.ErrorSymbols))
	for _, symbol := range reply.ErrorSymbols {
		failedSet[symbol] = struct{}{}
	}

	result := models.MSubscriptionResult{
		SuccessfulSymbols: []string{},
		FailedSymbols:     []string{},
	}
	for _, symbol := range requested {
		if _, failed := failedSet[symbol]; failed {
			result.FailedSymbols = append(result.FailedSymbols, symbol)
		} else {
			result.SuccessfulSymbols = append(result.SuccessfulSymbols, symbol)
		}
	}

	if len(result.FailedSymbols) > 0 {
		s.Logger.Warning("Failed to subscribe to symbols: %s", strings.Join(result.FailedSymbols, ", "))
	}

	return result
}

// -----------------------------------------------------------------------------
// Pending Reply Slot
// -----------------------------------------------------------------------------

func (s *MarketDataService) openPending() chan models.MTrackPricesReply {
	ch := make(chan models.MTrackPricesReply, 1)
	s.pendingMu.Lock()
	s.pending = ch
	s.pendingMu.Unlock()
	return ch
}

func (s *MarketDataService) closePending() {
	s.pendingMu.Lock()
	s.pending = nil
	s.pendingMu.Unlock()
}

// resolvePending delivers a reply to the open slot, if any. Replies arriving
// with no command outstanding are dropped.
func (s *MarketDataService) resolvePending(reply models.MTrackPricesReply) {
	s.pendingMu.Lock()
	defer s.pendingMu.Unlock()

	if s.pending == nil {
		return
	}
	select {
	case s.pending <- reply:
	default:
	}
}

// -----------------------------------------------------------------------------
// Inbound Message Handling
// -----------------------------------------------------------------------------

// handleCommandReply inspects a message from the reply channel. Messages that
// are not a TRACK_PRICES reply are ignored by this path.
func (s *MarketDataService) handleCommandReply(raw string) {
	s.Logger.Debug("Received command response: %s", raw)

	reply, ok, err := ParseCommandReply(raw)
	if !ok {
		return
	}
	if err != nil {
		// Reply tag matched but the payload was unusable. Drop it; the
		// caller's timeout reports the round-trip failed and rolls back.
		s.Logger.Warning("Dropping unusable %s reply: %v", TrackPricesAction, err)
		return
	}

	s.resolvePending(reply)
}

// -----------------------------------------------------------------------------

// handleRawMessage parses a tick message and publishes it. Command replies
// that show up here (both kinds share one inbound pipe on some transports)
// are left to the reply path. Malformed messages are dropped.
func (s *MarketDataService) handleRawMessage(raw string) {
	if _, isReply, _ := ParseCommandReply(raw); isReply {
		return
	}

	symbol, bid, ask, err := ParseTickMessage(raw)
	if err != nil {
		s.Logger.Warning("Dropping malformed tick message: %v", err)
		return
	}

	tick := models.MTick{
		Symbol:    symbol,
		Bid:       bid,
		Ask:       ask,
		Timestamp: time.Now().UTC(),
	}

	s.publishTick(tick)
	s.Logger.Debug("[%s] Bid: %v, Ask: %v", symbol, bid, ask)
}

// -----------------------------------------------------------------------------
// Tick Fan-Out
// -----------------------------------------------------------------------------

// AddTickListener registers a callback invoked for every parsed tick.
func (s *MarketDataService) AddTickListener(listener func(models.MTick)) int {
	s.listenerMu.Lock()
	defer s.listenerMu.Unlock()

	id := s.nextListener
	s.nextListener++
	s.listeners[id] = listener
	return id
}

// -----------------------------------------------------------------------------

// RemoveTickListener drops a previously registered listener.
func (s *MarketDataService) RemoveTickListener(id int) {
	s.listenerMu.Lock()
	defer s.listenerMu.Unlock()
	delete(s.listeners, id)
}

// -----------------------------------------------------------------------------

func (s *MarketDataService) publishTick(tick models.MTick) {
	s.listenerMu.RLock()
	defer s.listenerMu.RUnlock()

	for _, listener := range s.listeners {
		listener(tick)
	}
}
