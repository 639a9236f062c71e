package hub

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// EventType discriminates the two kinds of realtime traffic on a
// connection channel.
type EventType string

const (
	EventChat           EventType = "chat"
	EventCovenantUpdate EventType = "covenant_update"
)

// Event is the transient envelope delivered to subscribers. The channel
// never persists events; chat durability comes from the message log.
type Event struct {
	Type            EventType   `json:"type"`
	Payload         interface{} `json:"payload"`
	OriginProfileID uint        `json:"origin_profile_id"`
	Timestamp       time.Time   `json:"timestamp"`
}

// Subscription is one listener on a connection channel. C carries marshaled
// events until Unsubscribe closes it.
type Subscription struct {
	ID           string
	ConnectionID uint
	C            chan []byte
}

// Hub multiplexes realtime events over per-connection channels.
type Hub struct {
	channels map[uint]map[*Subscription]bool
	mu       sync.RWMutex
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		channels: make(map[uint]map[*Subscription]bool),
	}
}

// Subscribe registers a new listener on the given connection channel.
func (h *Hub) Subscribe(connectionID uint) *Subscription {
	sub := &Subscription{
		ID:           uuid.NewString(),
		ConnectionID: connectionID,
		C:            make(chan []byte, 16),
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.channels[connectionID]; !ok {
		h.channels[connectionID] = make(map[*Subscription]bool)
	}
	h.channels[connectionID][sub] = true
	return sub
}

// Unsubscribe removes a listener and closes its channel. Delivery stops
// immediately; nothing is buffered past this point.
func (h *Hub) Unsubscribe(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	subs, ok := h.channels[sub.ConnectionID]
	if !ok {
		return
	}
	if _, ok := subs[sub]; !ok {
		return
	}
	delete(subs, sub)
	close(sub.C)
	if len(subs) == 0 {
		delete(h.channels, sub.ConnectionID)
	}
}

// Publish fans an event out to every current subscriber of the connection
// channel. Delivery is best-effort and at-most-once: a subscriber whose
// buffer is full is skipped so a slow consumer never blocks the publisher,
// and a subscriber not registered at publish time never sees the event.
func (h *Hub) Publish(connectionID uint, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	subs, ok := h.channels[connectionID]
	if !ok {
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Uint("connection_id", connectionID).Msg("failed to marshal realtime event")
		return
	}

	for sub := range subs {
		select {
		case sub.C <- data:
		default:
			log.Warn().Str("subscription_id", sub.ID).Uint("connection_id", connectionID).Msg("dropping event for slow subscriber")
		}
	}
}

// Subscribers returns the number of listeners on a connection channel.
func (h *Hub) Subscribers(connectionID uint) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.channels[connectionID])
}
