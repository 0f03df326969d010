// Package game implements the hazard-hunt session state machine. A session
// walks a scene through briefing, playing and results, tracking the
// identified set, score, combo and countdown. All mutation goes through the
// methods here; callers serialize access.
package game

import (
	"errors"
	"time"

	"github.com/wareguard/hazardhunt/internal/safety"
)

type Phase string

const (
	PhaseBriefing Phase = "briefing"
	PhasePlaying  Phase = "playing"
	PhaseResults  Phase = "results"
)

const (
	comboWindow = 5 * time.Second
	comboIdle   = 8 * time.Second
	comboMax    = 5
)

var (
	ErrNotBriefing   = errors.New("session already started")
	ErrNotPlaying    = errors.New("session is not in play")
	ErrNotResults    = errors.New("session has no results yet")
	ErrNothingFound  = errors.New("identify at least one hazard before submitting")
	ErrUnknownHazard = errors.New("hazard is not part of this scene")
)

// Session is one run of one scene for one player. The clock is injected so
// combo timing is testable without sleeping.
type Session struct {
	scene safety.Scene
	now   func() time.Time

	phase        Phase
	identified   map[string]bool
	order        []string
	score        int
	combo        int
	lastIdentify time.Time
	remaining    int
	hints        bool
	complete     bool
}

// New creates a session in the briefing phase.
func New(scene safety.Scene, now func() time.Time) *Session {
	if now == nil {
		now = time.Now
	}
	return &Session{
		scene:      scene,
		now:        now,
		phase:      PhaseBriefing,
		identified: make(map[string]bool),
		remaining:  scene.TotalSeconds(),
	}
}

func (s *Session) Scene() safety.Scene { return s.scene }
func (s *Session) Phase() Phase        { return s.phase }
func (s *Session) Score() int          { return s.score }
func (s *Session) Combo() int          { return s.combo }
func (s *Session) Remaining() int      { return s.remaining }
func (s *Session) Hints() bool         { return s.hints }
func (s *Session) Complete() bool      { return s.complete }

// Identified reports whether a hazard has been found.
func (s *Session) Identified(hazardID string) bool { return s.identified[hazardID] }

// IdentifiedIDs returns the found hazards in click order.
func (s *Session) IdentifiedIDs() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Start moves briefing to playing and arms the countdown.
func (s *Session) Start() error {
	if s.phase != PhaseBriefing {
		return ErrNotBriefing
	}
	s.begin()
	return nil
}

func (s *Session) begin() {
	s.phase = PhasePlaying
	s.identified = make(map[string]bool)
	s.order = nil
	s.score = 0
	s.combo = 0
	s.lastIdentify = time.Time{}
	s.remaining = s.scene.TotalSeconds()
	s.complete = false
}

// Tick advances the countdown by one second. At zero the session is forced
// into results regardless of how much was found. Ticks outside the playing
// phase are no-ops. It also runs the combo idle check: eight seconds with no
// identification drops the combo back to zero.
func (s *Session) Tick() {
	if s.phase != PhasePlaying {
		return
	}
	if s.remaining > 0 {
		s.remaining--
	}
	if s.combo > 0 && !s.lastIdentify.IsZero() && s.now().Sub(s.lastIdentify) > comboIdle {
		s.combo = 0
	}
	if s.remaining == 0 {
		s.phase = PhaseResults
	}
}

// Identify marks a hazard as found and scores it. Re-identifying is a no-op,
// as is identifying outside the playing phase; both report found=false.
// Finding the last hazard sets the completion flag but the session stays in
// playing until the player submits or time runs out.
func (s *Session) Identify(hazardID string) (found bool, err error) {
	if s.phase != PhasePlaying {
		return false, nil
	}
	h, ok := s.scene.Hazard(hazardID)
	if !ok {
		return false, ErrUnknownHazard
	}
	if s.identified[h.ID] {
		return false, nil
	}

	s.identified[h.ID] = true
	s.order = append(s.order, h.ID)
	s.score += h.Severity.Weight()

	now := s.now()
	if !s.lastIdentify.IsZero() && now.Sub(s.lastIdentify) <= comboWindow {
		if s.combo < comboMax {
			s.combo++
		}
	} else {
		s.combo = 1
	}
	s.lastIdentify = now

	if len(s.identified) == len(s.scene.Hazards) {
		s.complete = true
	}
	return true, nil
}

// Submit ends the run early. At least one hazard must have been found.
func (s *Session) Submit() error {
	if s.phase != PhasePlaying {
		return ErrNotPlaying
	}
	if len(s.identified) == 0 {
		return ErrNothingFound
	}
	s.phase = PhaseResults
	return nil
}

// Reset restarts the run from results, identical to a fresh start.
func (s *Session) Reset() error {
	if s.phase != PhaseResults {
		return ErrNotResults
	}
	s.begin()
	return nil
}

// ToggleHints flips the hint glow. Purely cosmetic.
func (s *Session) ToggleHints() bool {
	s.hints = !s.hints
	return s.hints
}
