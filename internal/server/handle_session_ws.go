package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"nhooyr.io/websocket"

	"github.com/wareguard/hazardhunt/internal/game"
	"github.com/wareguard/hazardhunt/internal/player"
	"github.com/wareguard/hazardhunt/internal/vignette"
)

// wsInput is one client input event. Frame events carry dt and request a
// pose reply; the rest just mutate controller state.
type wsInput struct {
	Type string  `json:"type"` // keydown, keyup, mousemove, lock, unlock, frame
	Code string  `json:"code,omitempty"`
	DX   float64 `json:"dx,omitempty"`
	DY   float64 `json:"dy,omitempty"`
	DT   float64 `json:"dt,omitempty"` // seconds since the last frame
}

// wsPose is the authoritative camera state plus per-hazard animation
// parameters, sent in reply to each frame event.
type wsPose struct {
	Type       string                     `json:"type"`
	Camera     CameraPose                 `json:"camera"`
	Locked     bool                       `json:"locked"`
	Animations map[string]vignette.Params `json:"animations,omitempty"`
}

const maxFrameDT = 0.25 // seconds; caps catch-up after a stalled tab

func handleSessionWS(logger *slog.Logger, registry *Registry, store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := r.URL.Query().Get("token")
		if token == "" {
			writeError(w, http.StatusUnauthorized, "token query parameter required")
			return
		}
		user, err := store.UserFromToken(r.Context(), token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid session token")
			return
		}
		ls, err := registry.Get(chi.URLParam(r, "session"))
		if err != nil {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}
		if ls.UserID != user.ID {
			writeError(w, http.StatusForbidden, "session belongs to another user")
			return
		}

		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			logger.Error("websocket accept failed", "error", err)
			return
		}
		defer conn.CloseNow()

		ctx, cancel := context.WithTimeout(r.Context(), 30*time.Minute)
		defer cancel()

		start := time.Now()
		for {
			_, msg, err := conn.Read(ctx)
			if err != nil {
				logger.Debug("websocket read ended", "error", err)
				return
			}

			var in wsInput
			if err := json.Unmarshal(msg, &in); err != nil {
				continue
			}

			pose, reply := applyInput(ls, in, time.Since(start).Seconds())
			if !reply {
				continue
			}
			data, _ := json.Marshal(pose)
			if err := conn.Write(ctx, websocket.MessageText, data); err != nil {
				logger.Debug("websocket write failed", "error", err)
				return
			}
		}
	}
}

// applyInput mutates the controller from one input event. Frame events also
// step movement and produce a pose reply.
func applyInput(ls *LiveSession, in wsInput, elapsed float64) (wsPose, bool) {
	var pose wsPose
	reply := false
	ls.With(func(g *game.Session, c *player.Controller) {
		switch in.Type {
		case "keydown":
			c.KeyDown(in.Code)
		case "keyup":
			c.KeyUp(in.Code)
		case "mousemove":
			c.MouseMove(in.DX, in.DY)
		case "lock":
			if g.Phase() == game.PhasePlaying {
				c.Lock()
			}
		case "unlock":
			c.Unlock()
		case "frame":
			dt := in.DT
			if dt > maxFrameDT {
				dt = maxFrameDT
			}
			if dt > 0 {
				c.Step(dt)
			}
			yaw, pitch := c.Orientation()
			pose = wsPose{
				Type:   "pose",
				Camera: CameraPose{Position: c.Position(), Yaw: yaw, Pitch: pitch},
				Locked: c.Locked(),
			}
			if g.Phase() == game.PhasePlaying {
				pose.Animations = animationParams(g, elapsed)
			}
			reply = true
		}
	})
	return pose, reply
}

// animationParams computes the time-varying params for every hazard still
// in play. Identified vignettes hold still.
func animationParams(g *game.Session, elapsed float64) map[string]vignette.Params {
	out := make(map[string]vignette.Params)
	for _, h := range g.Scene().Hazards {
		if g.Identified(h.ID) {
			continue
		}
		out[h.ID] = vignette.Animate(vignette.KindOf(h), elapsed)
	}
	return out
}
