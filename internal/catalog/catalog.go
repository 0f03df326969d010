// Package catalog holds the read-only training content: scenes with their
// hazards, quizzes, and users. A Catalog is built once at start-up and
// injected into the server; nothing in it is mutated afterwards.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/wareguard/hazardhunt/internal/safety"
)

var ErrNotFound = errors.New("not found")

type Catalog struct {
	scenes  []safety.Scene
	quizzes []safety.Quiz
	users   []safety.User

	sceneByID map[string]safety.Scene
	quizByID  map[string]safety.Quiz
	userByID  map[string]safety.User
}

// New validates the supplied content and builds the catalog. Unknown hazard
// types, severities, or scene archetypes are load-time errors: a hazard the
// renderer cannot place is authoring data gone wrong, not something to paper
// over with a default vignette.
func New(scenes []safety.Scene, quizzes []safety.Quiz, users []safety.User) (*Catalog, error) {
	c := &Catalog{
		scenes:    scenes,
		quizzes:   quizzes,
		users:     users,
		sceneByID: make(map[string]safety.Scene, len(scenes)),
		quizByID:  make(map[string]safety.Quiz, len(quizzes)),
		userByID:  make(map[string]safety.User, len(users)),
	}

	for i, s := range scenes {
		if !s.Archetype.Valid() {
			return nil, fmt.Errorf("scene %q: unknown scene type %q", s.ID, s.Archetype)
		}
		if s.Duration <= 0 {
			return nil, fmt.Errorf("scene %q: duration must be positive", s.ID)
		}
		if len(s.Hazards) == 0 {
			return nil, fmt.Errorf("scene %q: has no hazards", s.ID)
		}
		seen := make(map[string]bool, len(s.Hazards))
		for j, h := range s.Hazards {
			if !h.Type.Valid() {
				return nil, fmt.Errorf("scene %q: hazard %q: unknown hazard type %q", s.ID, h.ID, h.Type)
			}
			if !h.Severity.Valid() {
				return nil, fmt.Errorf("scene %q: hazard %q: invalid severity %q", s.ID, h.ID, h.Severity)
			}
			if seen[h.ID] {
				return nil, fmt.Errorf("scene %q: duplicate hazard id %q", s.ID, h.ID)
			}
			seen[h.ID] = true
			scenes[i].Hazards[j].Subtype = backfillSubtype(h)
		}
		if _, dup := c.sceneByID[s.ID]; dup {
			return nil, fmt.Errorf("duplicate scene id %q", s.ID)
		}
		c.sceneByID[s.ID] = scenes[i]
	}

	for _, q := range quizzes {
		if len(q.Questions) == 0 {
			return nil, fmt.Errorf("quiz %q: has no questions", q.ID)
		}
		for _, qq := range q.Questions {
			if qq.CorrectAnswer < 0 || qq.CorrectAnswer >= len(qq.Options) {
				return nil, fmt.Errorf("quiz %q: question %q: correct answer out of range", q.ID, qq.ID)
			}
		}
		c.quizByID[q.ID] = q
	}

	for _, u := range users {
		c.userByID[u.ID] = u
	}

	return c, nil
}

// backfillSubtype is the one-time migration from the legacy description
// heuristic to an explicit subtype field. Authored subtypes win; only blank
// PPE hazards fall back to the substring match.
func backfillSubtype(h safety.Hazard) safety.Subtype {
	if h.Subtype != safety.SubtypeNone || h.Type != safety.HazardPPE {
		return h.Subtype
	}
	desc := strings.ToLower(h.Description)
	switch {
	case strings.Contains(desc, "dock") || strings.Contains(desc, "edge"):
		return safety.SubtypeDockEdge
	case strings.Contains(desc, "shower") || strings.Contains(desc, "eyewash"):
		return safety.SubtypeSafetyShower
	default:
		return safety.SubtypePPESign
	}
}

func (c *Catalog) Scenes() []safety.Scene { return c.scenes }

func (c *Catalog) Scene(id string) (safety.Scene, error) {
	s, ok := c.sceneByID[id]
	if !ok {
		return safety.Scene{}, fmt.Errorf("scene %q: %w", id, ErrNotFound)
	}
	return s, nil
}

func (c *Catalog) Quizzes() []safety.Quiz { return c.quizzes }

func (c *Catalog) Quiz(id string) (safety.Quiz, error) {
	q, ok := c.quizByID[id]
	if !ok {
		return safety.Quiz{}, fmt.Errorf("quiz %q: %w", id, ErrNotFound)
	}
	return q, nil
}

func (c *Catalog) Users() []safety.User { return c.users }

func (c *Catalog) User(id string) (safety.User, error) {
	u, ok := c.userByID[id]
	if !ok {
		return safety.User{}, fmt.Errorf("user %q: %w", id, ErrNotFound)
	}
	return u, nil
}

// UserByEmail does a linear scan; the catalog holds a handful of users.
func (c *Catalog) UserByEmail(email string) (safety.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range c.users {
		if strings.ToLower(u.Email) == email {
			return u, nil
		}
	}
	return safety.User{}, fmt.Errorf("user %q: %w", email, ErrNotFound)
}
