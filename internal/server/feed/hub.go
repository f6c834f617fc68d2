// Package feed fans out newly inserted records to live subscribers. The
// Listener turns PostgreSQL notifications into records and the Hub
// delivers them to every subscriber.
package feed

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/uuidfeed/internal/logging"
	"github.com/dmitrijs2005/uuidfeed/internal/server/models"
)

// DefaultSubscriberBuffer is the per-subscriber channel capacity.
const DefaultSubscriberBuffer = 64

// Hub is an in-process broadcaster. Delivery is best effort: a subscriber
// whose buffer is full misses the record.
type Hub struct {
	mu     sync.RWMutex
	subs   map[chan *models.Record]struct{}
	buffer int
	logger logging.Logger
}

func NewHub(l logging.Logger, buffer int) *Hub {
	if buffer <= 0 {
		buffer = DefaultSubscriberBuffer
	}
	return &Hub{
		subs:   make(map[chan *models.Record]struct{}),
		buffer: buffer,
		logger: l.With("module", "feed_hub"),
	}
}

// Subscribe registers a subscriber. The returned cancel func unregisters it
// and closes the channel; it is safe to call more than once.
func (h *Hub) Subscribe() (<-chan *models.Record, func()) {
	ch := make(chan *models.Record, h.buffer)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, ch)
			close(ch)
			h.mu.Unlock()
		})
	}

	return ch, cancel
}

// Publish hands rec to every subscriber without blocking.
func (h *Hub) Publish(ctx context.Context, rec *models.Record) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subs {
		select {
		case ch <- rec:
		default:
			h.logger.Warn(ctx, "subscriber buffer full, dropping record", "uuid", rec.UUID)
		}
	}
}

// Len reports the number of active subscribers.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
