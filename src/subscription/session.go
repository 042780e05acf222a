package subscription

import (
	"context"
	"sync"

	"mt-bridge/src/logger"
	"mt-bridge/src/models"
)

// -----------------------------------------------------------------------------
// ClientSession
// -----------------------------------------------------------------------------

// ClientSession holds the per-stream state of one connected RPC client: the
// set of symbols it owns and a bounded tick queue drained by its stream
// handler. The queue drops the oldest tick on overflow so the publishing path
// never blocks on a slow consumer.
type ClientSession struct {
	ID   string
	Peer string

	ctx    context.Context
	cancel context.CancelFunc
	logger *logger.Logger

	mu      sync.Mutex // guards symbols, closed and the queue write side
	symbols map[string]struct{}
	queue   chan models.MTick
	closed  bool
}

// -----------------------------------------------------------------------------

func newClientSession(id, peer string, parentCtx context.Context, capacity int, log *logger.Logger) *ClientSession {
	ctx, cancel := context.WithCancel(parentCtx)

	return &ClientSession{
		ID:      id,
		Peer:    peer,
		ctx:     ctx,
		cancel:  cancel,
		logger:  log,
		symbols: make(map[string]struct{}),
		queue:   make(chan models.MTick, capacity),
	}
}

// -----------------------------------------------------------------------------

// Context returns the session's cancellation scope. It is derived from the
// owning RPC call and, transitively, from process shutdown.
func (s *ClientSession) Context() context.Context {
	return s.ctx
}

// -----------------------------------------------------------------------------

// Ticks returns the receive side of the session's tick queue. The channel is
// closed exactly once when the session is disposed.
func (s *ClientSession) Ticks() <-chan models.MTick {
	return s.queue
}

// -----------------------------------------------------------------------------

// AddSymbols registers symbols as owned by this session (idempotent).
func (s *ClientSession) AddSymbols(symbols []string) {
	s.mu.Lock()
	for _, symbol := range symbols {
		s.symbols[symbol] = struct{}{}
	}
	count := len(s.symbols)
	s.mu.Unlock()

	s.logger.Debug("Client %s now subscribed to %d symbol(s)", s.ID, count)
}

// -----------------------------------------------------------------------------

// SubscribedSymbols returns a snapshot of the session's owned symbols.
func (s *ClientSession) SubscribedSymbols() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	symbols := make([]string, 0, len(s.symbols))
	for symbol := range s.symbols {
		symbols = append(symbols, symbol)
	}
	return symbols
}

// -----------------------------------------------------------------------------

// EnqueueTick offers a tick to the session. Ticks for symbols the session does
// not own are ignored. When the queue is full the oldest queued tick is
// evicted; the call never blocks. Returns true if the tick was enqueued.
func (s *ClientSession) EnqueueTick(tick models.MTick) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}
	if _, ok := s.symbols[tick.Symbol]; !ok {
		return false
	}

	for {
		select {
		case s.queue <- tick:
			return true
		default:
		}

		// Queue full: evict the oldest entry and retry. The reader may have
		// raced us for it, hence the loop.
		select {
		case <-s.queue:
		default:
		}
	}
}

// -----------------------------------------------------------------------------

// Close disposes the session: completes the tick queue for readers and cancels
// the session scope. Safe to call more than once.
func (s *ClientSession) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	close(s.queue)
	s.mu.Unlock()

	s.cancel()
	s.logger.Debug("Disposed subscription session for client %s", s.ID)
}
