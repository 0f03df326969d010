package server

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wareguard/hazardhunt/internal/game"
	"github.com/wareguard/hazardhunt/internal/player"
	"github.com/wareguard/hazardhunt/internal/safety"
)

// LiveSession is one active hazard hunt: the game state machine plus the
// player's movement controller. The mutex serializes HTTP handlers, the
// websocket reader and the registry ticker against each other.
type LiveSession struct {
	ID      string
	UserID  string
	mu      sync.Mutex
	Game    *game.Session
	Control *player.Controller
}

// With runs fn while holding the session lock.
func (ls *LiveSession) With(fn func(g *game.Session, c *player.Controller)) {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	fn(ls.Game, ls.Control)
}

// Registry owns all live sessions and drives their one-second ticks.
type Registry struct {
	broker *Broker

	mu       sync.RWMutex
	sessions map[string]*LiveSession
}

func NewRegistry(broker *Broker) *Registry {
	return &Registry{
		broker:   broker,
		sessions: make(map[string]*LiveSession),
	}
}

// Create starts a new session in the briefing phase.
func (r *Registry) Create(scene safety.Scene, userID string) *LiveSession {
	ls := &LiveSession{
		ID:      uuid.NewString(),
		UserID:  userID,
		Game:    game.New(scene, nil),
		Control: player.New(),
	}
	r.mu.Lock()
	r.sessions[ls.ID] = ls
	r.mu.Unlock()
	return ls
}

func (r *Registry) Get(id string) (*LiveSession, error) {
	r.mu.RLock()
	ls, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return ls, nil
}

func (r *Registry) Remove(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

func (r *Registry) snapshot() []*LiveSession {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*LiveSession, 0, len(r.sessions))
	for _, ls := range r.sessions {
		out = append(out, ls)
	}
	return out
}

// Count returns the number of live sessions.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Run ticks every playing session once per second until ctx is done. Each
// tick publishes a HUD update; a session that times out into results gets a
// phase event so clients can switch screens without polling.
func (r *Registry) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			for _, ls := range r.snapshot() {
				r.tick(ls)
			}
		}
	}
}

func (r *Registry) tick(ls *LiveSession) {
	var ev SSEEvent
	var publish bool
	ls.With(func(g *game.Session, c *player.Controller) {
		if g.Phase() != game.PhasePlaying {
			return
		}
		g.Tick()
		publish = true
		ev = SSEEvent{
			Type:      "tick",
			Phase:     g.Phase(),
			Score:     g.Score(),
			Combo:     g.Combo(),
			Remaining: g.Remaining(),
			Complete:  g.Complete(),
		}
		if g.Phase() == game.PhaseResults {
			// Timed out. Release input capture so movement stops on the
			// results screen, same as an explicit submit.
			ev.Type = "timeout"
			c.Unlock()
		}
	})
	if publish {
		r.broker.Publish(ls.ID, ev)
	}
}
