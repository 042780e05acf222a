package storage

import (
	"context"
	"fmt"
	"sync"
	"time"

	"mt-bridge/src/interfaces"
	"mt-bridge/src/logger"
	"mt-bridge/src/models"
)

// Recorder batching constants
const (
	recorderBufferSize   = 10000
	recorderMaxBatchSize = 5000
	recorderFlushPeriod  = 2 * time.Second
)

// -----------------------------------------------------------------------------
// TickRecorder
// -----------------------------------------------------------------------------

// TickRecorder persists the live tick feed asynchronously. It buffers ticks
// from a broker listener and flushes them to the store in batches, so a slow
// database never backpressures the publishing path. Ticks are dropped with a
// warning when the buffer is full.
type TickRecorder struct {
	Store  interfaces.ITickStore
	Broker interfaces.IMarketDataBroker
	Logger *logger.Logger

	buffer     chan models.MTick
	listenerID int
	cancel     context.CancelFunc
	wg         sync.WaitGroup

	mu      sync.Mutex
	running bool
}

// -----------------------------------------------------------------------------

func NewTickRecorder(store interfaces.ITickStore, broker interfaces.IMarketDataBroker, log *logger.Logger) *TickRecorder {
	return &TickRecorder{
		Store:  store,
		Broker: broker,
		Logger: log,
		buffer: make(chan models.MTick, recorderBufferSize),
	}
}

// -----------------------------------------------------------------------------

// Start attaches the recorder to the broker feed and launches the flush loop.
func (r *TickRecorder) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running {
		return fmt.Errorf("tick recorder already running")
	}

	runCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel

	r.listenerID = r.Broker.AddTickListener(func(tick models.MTick) {
		select {
		case r.buffer <- tick:
		default:
			r.Logger.Warning("Tick recorder buffer full, dropping tick for %s", tick.Symbol)
		}
	})

	r.wg.Add(1)
	go r.flushLoop(runCtx)

	r.running = true
	r.Logger.Info("Tick recorder started")
	return nil
}

// -----------------------------------------------------------------------------

// Stop detaches from the broker, flushes what is buffered and waits for the
// flush loop to exit.
func (r *TickRecorder) Stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	r.running = false
	r.mu.Unlock()

	r.Broker.RemoveTickListener(r.listenerID)
	r.cancel()
	r.wg.Wait()

	r.Logger.Info("Tick recorder stopped")
}

// -----------------------------------------------------------------------------

func (r *TickRecorder) flushLoop(ctx context.Context) {
	defer r.wg.Done()

	ticker := time.NewTicker(recorderFlushPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.flush()
			return
		case <-ticker.C:
			r.flush()
		}
	}
}

// -----------------------------------------------------------------------------

// flush drains the buffer into the store, at most recorderMaxBatchSize rows
// per transaction.
func (r *TickRecorder) flush() {
	for {
		batch := r.drainBatch()
		if len(batch) == 0 {
			return
		}

		if err := r.Store.SaveTicksBulk(batch); err != nil {
			r.Logger.Error("Failed to persist %d tick(s): %v", len(batch), err)
			return
		}
		r.Logger.Debug("Persisted %d tick(s)", len(batch))
	}
}

// -----------------------------------------------------------------------------

func (r *TickRecorder) drainBatch() []models.MTick {
	var batch []models.MTick

	for len(batch) < recorderMaxBatchSize {
		select {
		case tick := <-r.buffer:
			batch = append(batch, tick)
		default:
			return batch
		}
	}
	return batch
}

// -----------------------------------------------------------------------------
// Store selection
// -----------------------------------------------------------------------------

// NewTickStore builds the configured store backend.
func NewTickStore(cfg *models.MConfig, log *logger.Logger) (interfaces.ITickStore, error) {
	switch cfg.Storage.DBType {
	case "sqlite":
		return NewSQLiteTickStore(cfg, log)
	case "postgres":
		return NewPostgresTickStore(cfg, log)
	default:
		return nil, fmt.Errorf("unsupported db_type: %s", cfg.Storage.DBType)
	}
}
