package websocket

import (
	"sync"

	"cinehub/internal/domain"
	"cinehub/pkg/logger"
)

// Registry maps a user id to their single live notification connection.
// Registering a second connection for the same user replaces the first
// (most recent connection wins); the replaced connection is not closed
// here, that is the transport layer's job.
type Registry struct {
	mutex sync.RWMutex
	conns map[int64]domain.Connection
	log   logger.Logger
}

func NewRegistry(log logger.Logger) *Registry {
	return &Registry{
		conns: make(map[int64]domain.Connection),
		log:   log,
	}
}

func (r *Registry) Register(userID int64, conn domain.Connection) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.conns[userID] = conn
	r.log.Debug("Connection registered", "user_id", userID)
}

// Remove deletes the entry holding exactly this connection, wherever it is
// filed. Removing a connection that was already replaced or never
// registered is a no-op, so duplicate disconnect signals are harmless.
func (r *Registry) Remove(conn domain.Connection) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for userID, existing := range r.conns {
		if existing == conn {
			delete(r.conns, userID)
			r.log.Debug("Connection removed", "user_id", userID)
			return
		}
	}
}

func (r *Registry) Lookup(userID int64) (domain.Connection, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	conn, ok := r.conns[userID]
	return conn, ok
}
