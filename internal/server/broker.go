package server

import (
	"encoding/json"
	"sync"

	"github.com/wareguard/hazardhunt/internal/game"
)

// SSEEvent is the payload published to session subscribers.
type SSEEvent struct {
	Type      string     `json:"type"`
	Phase     game.Phase `json:"phase,omitempty"`
	HazardID  string     `json:"hazardId,omitempty"`
	Score     int        `json:"score,omitempty"`
	Combo     int        `json:"combo,omitempty"`
	Remaining int        `json:"remaining,omitempty"`
	Complete  bool       `json:"complete,omitempty"`
	Hints     bool       `json:"hints,omitempty"`
}

// Broker is an in-process pub/sub for SSE events, keyed by game session ID.
type Broker struct {
	mu   sync.RWMutex
	subs map[string]map[chan []byte]struct{}
}

func NewBroker() *Broker {
	return &Broker{
		subs: make(map[string]map[chan []byte]struct{}),
	}
}

// Subscribe returns a channel that receives JSON-encoded SSE events for the
// given session.
func (b *Broker) Subscribe(sessionID string) chan []byte {
	ch := make(chan []byte, 16)
	b.mu.Lock()
	if b.subs[sessionID] == nil {
		b.subs[sessionID] = make(map[chan []byte]struct{})
	}
	b.subs[sessionID][ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

// Unsubscribe removes a channel from the session's subscribers.
func (b *Broker) Unsubscribe(sessionID string, ch chan []byte) {
	b.mu.Lock()
	delete(b.subs[sessionID], ch)
	if len(b.subs[sessionID]) == 0 {
		delete(b.subs, sessionID)
	}
	b.mu.Unlock()
}

// Publish sends an event to all subscribers of the given session.
func (b *Broker) Publish(sessionID string, event SSEEvent) {
	data, _ := json.Marshal(event)
	b.mu.RLock()
	for ch := range b.subs[sessionID] {
		select {
		case ch <- data:
		default:
			// Drop if subscriber is slow.
		}
	}
	b.mu.RUnlock()
}
