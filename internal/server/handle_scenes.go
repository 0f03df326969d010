package server

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wareguard/hazardhunt/internal/catalog"
	"github.com/wareguard/hazardhunt/internal/geometry"
	"github.com/wareguard/hazardhunt/internal/safety"
)

// GeometryBuilder produces the procedural room layout for a scene archetype.
type GeometryBuilder func(archetype safety.Archetype) ([]geometry.Primitive, error)

// SceneSummary is the catalog listing entry; hazards are withheld so the
// listing never leaks what a player is supposed to find.
type SceneSummary struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Archetype   safety.Archetype  `json:"archetype"`
	Duration    int               `json:"duration"`
	Difficulty  safety.Difficulty `json:"difficulty"`
	HazardCount int               `json:"hazardCount"`
}

// SceneGeometryResponse is the renderable room for one scene.
type SceneGeometryResponse struct {
	SceneID    string               `json:"sceneId"`
	Archetype  safety.Archetype     `json:"archetype"`
	Bound      float64              `json:"bound"`
	Primitives []geometry.Primitive `json:"primitives"`
}

func summarize(s safety.Scene) SceneSummary {
	return SceneSummary{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Archetype:   s.Archetype,
		Duration:    s.Duration,
		Difficulty:  s.Difficulty,
		HazardCount: len(s.Hazards),
	}
}

func handleListScenes(cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		scenes := cat.Scenes()
		out := make([]SceneSummary, 0, len(scenes))
		for _, s := range scenes {
			out = append(out, summarize(s))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func handleGetScene(cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		scene, err := cat.Scene(chi.URLParam(r, "id"))
		if errors.Is(err, catalog.ErrNotFound) {
			writeError(w, http.StatusNotFound, "scene not found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, summarize(scene))
	}
}

func handleSceneGeometry(cat *catalog.Catalog, build GeometryBuilder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		scene, err := cat.Scene(chi.URLParam(r, "id"))
		if errors.Is(err, catalog.ErrNotFound) {
			writeError(w, http.StatusNotFound, "scene not found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		prims, err := build(scene.Archetype)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, SceneGeometryResponse{
			SceneID:    scene.ID,
			Archetype:  scene.Archetype,
			Bound:      geometry.RoomExtent,
			Primitives: prims,
		})
	}
}
