// Package events is the engine's notification boundary: abstract signals a
// presentation layer may surface as transient notices.
package events

import (
	"encoding/json"
	"log"
	"sync"
)

// Event types emitted by the engine
const (
	TypePlanGenerated  = "plan_generated"
	TypeItemSwapped    = "item_swapped"
	TypeItemCompleted  = "item_completed"
	TypeItemRegistered = "item_registered"
	TypeWeightLogged   = "weight_logged"
)

// Event is one notification signal.
type Event struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Detail string `json:"detail,omitempty"`
}

// Hub fans engine events out to subscribers. Slow subscribers drop messages
// rather than block the engine.
type Hub struct {
	mu      sync.Mutex
	clients map[chan []byte]struct{}
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{clients: make(map[chan []byte]struct{})}
}

// Subscribe registers a new subscriber and returns its delivery channel.
func (h *Hub) Subscribe() chan []byte {
	ch := make(chan []byte, 256)
	h.mu.Lock()
	h.clients[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

// Unsubscribe removes a subscriber and closes its channel.
func (h *Hub) Unsubscribe(ch chan []byte) {
	h.mu.Lock()
	if _, ok := h.clients[ch]; ok {
		delete(h.clients, ch)
		close(ch)
	}
	h.mu.Unlock()
}

// Publish sends an event to every subscriber.
func (h *Hub) Publish(e Event) {
	data, err := json.Marshal(e)
	if err != nil {
		log.Printf("Error marshaling event: %v", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.clients {
		select {
		case ch <- data:
		default:
			log.Println("Event buffer full, dropping message")
		}
	}
}
