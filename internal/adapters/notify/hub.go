// Package notify delivers in-process refresh signals to connected clients.
// A successful schedule save fires DataChanged; subscribed views refetch.
package notify

import (
	"sync"

	"github.com/google/uuid"

	"github.com/flownote/flownote/internal/infrastructure/logger"
)

// Hub fans out per-user change signals. Delivery is best-effort: a subscriber
// that is not draining its channel misses coalesced signals rather than
// blocking the sender.
type Hub struct {
	mu     sync.RWMutex
	subs   map[uuid.UUID]map[chan struct{}]struct{}
	logger *logger.Logger
}

// NewHub creates an empty hub.
func NewHub(log *logger.Logger) *Hub {
	if log == nil {
		log = logger.NewNop()
	}
	return &Hub{
		subs:   make(map[uuid.UUID]map[chan struct{}]struct{}),
		logger: log,
	}
}

// Subscribe registers a listener for one user. The returned cancel function
// removes the subscription and must be called when the listener goes away.
func (h *Hub) Subscribe(userID uuid.UUID) (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	h.mu.Lock()
	if h.subs[userID] == nil {
		h.subs[userID] = make(map[chan struct{}]struct{})
	}
	h.subs[userID][ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if set, ok := h.subs[userID]; ok {
			delete(set, ch)
			if len(set) == 0 {
				delete(h.subs, userID)
			}
		}
	}

	return ch, cancel
}

// DataChanged signals every subscriber of the user without blocking.
func (h *Hub) DataChanged(userID uuid.UUID) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subs[userID] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}

	h.logger.Debug("Refresh signal sent", "user_id", userID, "subscribers", len(h.subs[userID]))
}
