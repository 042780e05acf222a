package subscription

import (
	"context"
	"sync"

	"mt-bridge/src/logger"

	"github.com/google/uuid"
)

// -----------------------------------------------------------------------------
// SessionRegistry
// -----------------------------------------------------------------------------

// SessionRegistry owns the set of live client sessions.
type SessionRegistry struct {
	Logger *logger.Logger

	queueCapacity int

	mu       sync.Mutex
	sessions map[string]*ClientSession
}

// -----------------------------------------------------------------------------

func NewSessionRegistry(queueCapacity int, log *logger.Logger) *SessionRegistry {
	return &SessionRegistry{
		Logger:        log,
		queueCapacity: queueCapacity,
		sessions:      make(map[string]*ClientSession),
	}
}

// -----------------------------------------------------------------------------

// CreateSession allocates a session with a fresh unique id whose cancellation
// scope is linked to parentCtx (the RPC call, transitively process shutdown).
func (r *SessionRegistry) CreateSession(peer string, parentCtx context.Context) *ClientSession {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.NewString()
	session := newClientSession(id, peer, parentCtx, r.queueCapacity, r.Logger)
	r.sessions[id] = session

	r.Logger.Debug("Created session for client %s. Total active clients: %d", id, len(r.sessions))
	return session
}

// -----------------------------------------------------------------------------

// RemoveSession removes and disposes a session. Unknown ids are ignored;
// disposing twice is safe.
func (r *SessionRegistry) RemoveSession(id string) {
	r.mu.Lock()
	session, ok := r.sessions[id]
	if ok {
		delete(r.sessions, id)
	}
	remaining := len(r.sessions)
	r.mu.Unlock()

	if !ok {
		return
	}

	session.Close()
	r.Logger.Debug("Unregistered client %s. Total active clients: %d", id, remaining)
}

// -----------------------------------------------------------------------------

// Count returns the number of live sessions.
func (r *SessionRegistry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// -----------------------------------------------------------------------------

// DisconnectAll atomically snapshots and clears all sessions, then disposes
// each outside the lock. One broken session never blocks teardown of the
// rest; used at process shutdown.
func (r *SessionRegistry) DisconnectAll() {
	r.mu.Lock()
	snapshot := make([]*ClientSession, 0, len(r.sessions))
	for _, session := range r.sessions {
		snapshot = append(snapshot, session)
	}
	r.sessions = make(map[string]*ClientSession)
	r.mu.Unlock()

	r.Logger.Info("Disconnecting %d connected client(s)...", len(snapshot))

	for _, session := range snapshot {
		func() {
			defer func() {
				if rec := recover(); rec != nil {
					r.Logger.Warning("Error disconnecting client session %s: %v", session.ID, rec)
				}
			}()
			session.Close()
		}()
	}

	r.Logger.Info("All clients disconnected")
}
