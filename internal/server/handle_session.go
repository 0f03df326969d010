package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/wareguard/hazardhunt/internal/catalog"
	"github.com/wareguard/hazardhunt/internal/game"
	"github.com/wareguard/hazardhunt/internal/geometry"
	"github.com/wareguard/hazardhunt/internal/player"
	"github.com/wareguard/hazardhunt/internal/safety"
	"github.com/wareguard/hazardhunt/internal/vignette"
)

type CreateSessionRequest struct {
	SceneID string `json:"sceneId"`
}

// SessionStateResponse is the full client-facing snapshot of a live hunt:
// game counters, camera pose and the current vignette set.
type SessionStateResponse struct {
	ID         string              `json:"id"`
	Scene      SceneSummary        `json:"scene"`
	Phase      game.Phase          `json:"phase"`
	Score      int                 `json:"score"`
	Combo      int                 `json:"combo"`
	Remaining  int                 `json:"remaining"`
	Complete   bool                `json:"complete"`
	Hints      bool                `json:"hints"`
	Camera     CameraPose          `json:"camera"`
	Vignettes  []vignette.Vignette `json:"vignettes"`
	Identified []string            `json:"identified"`
}

type CameraPose struct {
	Position geometry.Vec3 `json:"position"`
	Yaw      float64       `json:"yaw"`
	Pitch    float64       `json:"pitch"`
}

type IdentifyRequest struct {
	HazardID string `json:"hazardId"`
}

type IdentifyResponse struct {
	Found     bool   `json:"found"`
	Score     int    `json:"score"`
	Combo     int    `json:"combo"`
	Complete  bool   `json:"complete"`
	HazardID  string `json:"hazardId"`
	Remaining int    `json:"remaining"`
}

func snapshotState(ls *LiveSession) SessionStateResponse {
	var resp SessionStateResponse
	ls.With(func(g *game.Session, c *player.Controller) {
		scene := g.Scene()
		yaw, pitch := c.Orientation()
		resp = SessionStateResponse{
			ID:        ls.ID,
			Scene:     summarize(scene),
			Phase:     g.Phase(),
			Score:     g.Score(),
			Combo:     g.Combo(),
			Remaining: g.Remaining(),
			Complete:  g.Complete(),
			Hints:     g.Hints(),
			Camera: CameraPose{
				Position: c.Position(),
				Yaw:      yaw,
				Pitch:    pitch,
			},
			Identified: g.IdentifiedIDs(),
		}
		resp.Vignettes = make([]vignette.Vignette, 0, len(scene.Hazards))
		for _, h := range scene.Hazards {
			resp.Vignettes = append(resp.Vignettes,
				vignette.Build(h, g.Identified(h.ID), g.Hints(), geometry.RoomExtent))
		}
	})
	return resp
}

func handleCreateSession(cat *catalog.Catalog, registry *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateSessionRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		scene, err := cat.Scene(req.SceneID)
		if errors.Is(err, catalog.ErrNotFound) {
			writeError(w, http.StatusNotFound, "scene not found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		ls := registry.Create(scene, requestUser(r).ID)
		writeJSON(w, http.StatusCreated, snapshotState(ls))
	}
}

func handleSessionState() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, snapshotState(liveSession(r)))
	}
}

func handleSessionStart(broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ls := liveSession(r)
		var startErr error
		ls.With(func(g *game.Session, c *player.Controller) {
			startErr = g.Start()
			if startErr == nil {
				// Pointer lock stays off until the client reports the
				// browser granted it over the socket.
				c.Reset()
			}
		})
		if startErr != nil {
			writeError(w, http.StatusConflict, startErr.Error())
			return
		}

		state := snapshotState(ls)
		broker.Publish(ls.ID, SSEEvent{Type: "phase", Phase: state.Phase, Remaining: state.Remaining})
		writeJSON(w, http.StatusOK, state)
	}
}

func handleIdentify(broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req IdentifyRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.HazardID == "" {
			writeError(w, http.StatusBadRequest, "hazardId is required")
			return
		}

		ls := liveSession(r)
		var (
			resp        IdentifyResponse
			identifyErr error
		)
		ls.With(func(g *game.Session, _ *player.Controller) {
			var found bool
			found, identifyErr = g.Identify(req.HazardID)
			resp = IdentifyResponse{
				Found:     found,
				Score:     g.Score(),
				Combo:     g.Combo(),
				Complete:  g.Complete(),
				HazardID:  req.HazardID,
				Remaining: g.Remaining(),
			}
		})
		if errors.Is(identifyErr, game.ErrUnknownHazard) {
			writeError(w, http.StatusNotFound, "hazard is not part of this scene")
			return
		}
		if identifyErr != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		if resp.Found {
			broker.Publish(ls.ID, SSEEvent{
				Type:     "identified",
				HazardID: req.HazardID,
				Score:    resp.Score,
				Combo:    resp.Combo,
				Complete: resp.Complete,
			})
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func handleSubmit(store Store, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ls := liveSession(r)
		var (
			submitErr error
			results   game.Results
		)
		ls.With(func(g *game.Session, c *player.Controller) {
			submitErr = g.Submit()
			if submitErr != nil {
				return
			}
			c.Unlock()
			results, _ = g.Results()
		})
		if errors.Is(submitErr, game.ErrNothingFound) {
			writeError(w, http.StatusConflict, submitErr.Error())
			return
		}
		if submitErr != nil {
			writeError(w, http.StatusConflict, "session is not in play")
			return
		}

		attempt := safety.HazardAttempt{
			ID:                uuid.NewString(),
			SceneID:           results.SceneID,
			UserID:            requestUser(r).ID,
			IdentifiedHazards: results.IdentifiedIDs,
			CorrectCount:      len(results.IdentifiedIDs),
			TotalHazards:      len(results.IdentifiedIDs) + len(results.MissedIDs),
			AccuracyScore:     results.Accuracy,
			TotalScore:        results.TotalScore,
			Grade:             string(results.Grade),
			Timestamp:         time.Now(),
		}
		if err := store.RecordHazardAttempt(r.Context(), attempt); err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		broker.Publish(ls.ID, SSEEvent{Type: "phase", Phase: game.PhaseResults})
		writeJSON(w, http.StatusOK, results)
	}
}

func handleSessionReset(broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ls := liveSession(r)
		var resetErr error
		ls.With(func(g *game.Session, c *player.Controller) {
			resetErr = g.Reset()
			if resetErr == nil {
				c.Reset()
			}
		})
		if resetErr != nil {
			writeError(w, http.StatusConflict, resetErr.Error())
			return
		}

		state := snapshotState(ls)
		broker.Publish(ls.ID, SSEEvent{Type: "phase", Phase: state.Phase, Remaining: state.Remaining})
		writeJSON(w, http.StatusOK, state)
	}
}

func handleToggleHints(broker *Broker) http.HandlerFunc {
	type response struct {
		Hints bool `json:"hints"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		ls := liveSession(r)
		var hints bool
		ls.With(func(g *game.Session, _ *player.Controller) {
			hints = g.ToggleHints()
		})
		broker.Publish(ls.ID, SSEEvent{Type: "hints", Hints: hints})
		writeJSON(w, http.StatusOK, response{Hints: hints})
	}
}

func handleSessionResults() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ls := liveSession(r)
		var (
			results    game.Results
			resultsErr error
		)
		ls.With(func(g *game.Session, _ *player.Controller) {
			results, resultsErr = g.Results()
		})
		if resultsErr != nil {
			writeError(w, http.StatusConflict, resultsErr.Error())
			return
		}
		writeJSON(w, http.StatusOK, results)
	}
}
