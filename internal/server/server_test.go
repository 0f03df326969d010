package server

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/wareguard/hazardhunt/internal/catalog"
	"github.com/wareguard/hazardhunt/internal/geometry"
	"github.com/wareguard/hazardhunt/internal/safety"
)

type testEnv struct {
	router   *chi.Mux
	store    *MemStore
	registry *Registry
	broker   *Broker
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()

	cat, err := catalog.Demo()
	if err != nil {
		t.Fatalf("load demo catalog: %v", err)
	}

	store := NewMemStore(cat)
	broker := NewBroker()
	registry := NewRegistry(broker)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := chi.NewRouter()
	addRoutes(r, Deps{
		Logger:   logger,
		Catalog:  cat,
		Store:    store,
		Registry: registry,
		Broker:   broker,
		Geometry: func(a safety.Archetype) ([]geometry.Primitive, error) {
			return geometry.Build(a, rand.New(rand.NewSource(1)))
		},
	})

	return &testEnv{router: r, store: store, registry: registry, broker: broker}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, rd)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) login(t *testing.T, email, password string) string {
	t.Helper()

	w := e.do(t, http.MethodPost, "/api/login", "", LoginRequest{Email: email, Password: password})
	if w.Code != http.StatusOK {
		t.Fatalf("login %s: expected 200, got %d: %s", email, w.Code, w.Body.String())
	}
	var resp LoginResponse
	json.NewDecoder(w.Body).Decode(&resp)
	return resp.Token
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(w.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

func TestLogin(t *testing.T) {
	e := setupEnv(t)

	token := e.login(t, "john.martinez@warehouse.com", "training123")
	if token == "" {
		t.Fatal("empty token")
	}

	w := e.do(t, http.MethodGet, "/api/me", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("me: expected 200, got %d", w.Code)
	}
	user := decode[safety.User](t, w)
	if user.Name != "John Martinez" {
		t.Errorf("user name = %q", user.Name)
	}
	if user.PasswordHash != "" {
		t.Error("password hash leaked in response")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	e := setupEnv(t)
	w := e.do(t, http.MethodPost, "/api/login", "", LoginRequest{Email: "john.martinez@warehouse.com", Password: "nope"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestLoginInactiveUser(t *testing.T) {
	e := setupEnv(t)
	w := e.do(t, http.MethodPost, "/api/login", "", LoginRequest{Email: "david.kim@warehouse.com", Password: "training123"})
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d: %s", w.Code, w.Body.String())
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	e := setupEnv(t)
	token := e.login(t, "sarah.chen@warehouse.com", "training123")

	if w := e.do(t, http.MethodPost, "/api/logout", token, nil); w.Code != http.StatusNoContent {
		t.Fatalf("logout: expected 204, got %d", w.Code)
	}
	if w := e.do(t, http.MethodGet, "/api/me", token, nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("me after logout: expected 401, got %d", w.Code)
	}
}

func TestScenesRequireAuth(t *testing.T) {
	e := setupEnv(t)
	if w := e.do(t, http.MethodGet, "/api/scenes", "", nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestListScenes(t *testing.T) {
	e := setupEnv(t)
	token := e.login(t, "john.martinez@warehouse.com", "training123")

	w := e.do(t, http.MethodGet, "/api/scenes", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	scenes := decode[[]SceneSummary](t, w)
	if len(scenes) != 3 {
		t.Fatalf("got %d scenes, want 3", len(scenes))
	}
	if scenes[0].HazardCount != 4 {
		t.Errorf("scene1 hazard count = %d, want 4", scenes[0].HazardCount)
	}
}

func TestGetSceneNotFound(t *testing.T) {
	e := setupEnv(t)
	token := e.login(t, "john.martinez@warehouse.com", "training123")

	w := e.do(t, http.MethodGet, "/api/scenes/nope", token, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	resp := decode[ErrorResponse](t, w)
	if resp.Error != "scene not found" {
		t.Errorf("error = %q, want %q", resp.Error, "scene not found")
	}
}

func TestSceneGeometry(t *testing.T) {
	e := setupEnv(t)
	token := e.login(t, "john.martinez@warehouse.com", "training123")

	w := e.do(t, http.MethodGet, "/api/scenes/scene1/geometry", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := decode[SceneGeometryResponse](t, w)
	if resp.Archetype != safety.ArchetypeStorage {
		t.Errorf("archetype = %q", resp.Archetype)
	}
	if resp.Bound != geometry.RoomExtent {
		t.Errorf("bound = %v, want %v", resp.Bound, geometry.RoomExtent)
	}
	if len(resp.Primitives) == 0 {
		t.Error("no primitives")
	}

	// Same seed: a second request returns the identical layout.
	w2 := e.do(t, http.MethodGet, "/api/scenes/scene1/geometry", token, nil)
	resp2 := decode[SceneGeometryResponse](t, w2)
	if len(resp.Primitives) != len(resp2.Primitives) {
		t.Errorf("layout drifted between requests: %d vs %d primitives",
			len(resp.Primitives), len(resp2.Primitives))
	}
}

func TestSessionLifecycle(t *testing.T) {
	e := setupEnv(t)
	token := e.login(t, "john.martinez@warehouse.com", "training123")

	// Create.
	w := e.do(t, http.MethodPost, "/api/sessions", token, CreateSessionRequest{SceneID: "scene1"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	state := decode[SessionStateResponse](t, w)
	if state.Phase != "briefing" {
		t.Fatalf("phase = %q, want briefing", state.Phase)
	}
	if state.Remaining != 600 {
		t.Errorf("remaining = %d, want 600", state.Remaining)
	}
	if len(state.Vignettes) != 4 {
		t.Errorf("got %d vignettes, want 4", len(state.Vignettes))
	}
	id := state.ID

	// Submitting before anything is found is rejected.
	w = e.do(t, http.MethodPost, "/api/sessions/"+id+"/start", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("start: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if w = e.do(t, http.MethodPost, "/api/sessions/"+id+"/submit", token, nil); w.Code != http.StatusConflict {
		t.Fatalf("empty submit: expected 409, got %d", w.Code)
	}

	// Identify twice; the second is a recorded no-op.
	w = e.do(t, http.MethodPost, "/api/sessions/"+id+"/identify", token, IdentifyRequest{HazardID: "h1"})
	if w.Code != http.StatusOK {
		t.Fatalf("identify: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	first := decode[IdentifyResponse](t, w)
	if !first.Found || first.Score != 75 {
		t.Errorf("first identify = %+v, want found with score 75", first)
	}

	w = e.do(t, http.MethodPost, "/api/sessions/"+id+"/identify", token, IdentifyRequest{HazardID: "h1"})
	second := decode[IdentifyResponse](t, w)
	if second.Found || second.Score != 75 {
		t.Errorf("re-identify = %+v, want no-op at score 75", second)
	}

	// Unknown hazard.
	if w = e.do(t, http.MethodPost, "/api/sessions/"+id+"/identify", token, IdentifyRequest{HazardID: "zzz"}); w.Code != http.StatusNotFound {
		t.Fatalf("unknown hazard: expected 404, got %d", w.Code)
	}

	// Submit and read results twice.
	w = e.do(t, http.MethodPost, "/api/sessions/"+id+"/submit", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("submit: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = e.do(t, http.MethodGet, "/api/sessions/"+id+"/results", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("results: expected 200, got %d", w.Code)
	}
	var results struct {
		Accuracy int      `json:"accuracy"`
		Score    int      `json:"score"`
		Missed   []string `json:"missedIds"`
	}
	json.NewDecoder(w.Body).Decode(&results)
	if results.Accuracy != 25 || results.Score != 75 {
		t.Errorf("results = %+v, want accuracy 25 score 75", results)
	}
	if len(results.Missed) != 3 {
		t.Errorf("missed = %v, want 3 ids", results.Missed)
	}

	// Reset returns to playing with cleared counters.
	w = e.do(t, http.MethodPost, "/api/sessions/"+id+"/reset", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("reset: expected 200, got %d", w.Code)
	}
	fresh := decode[SessionStateResponse](t, w)
	if fresh.Phase != "playing" || fresh.Score != 0 || len(fresh.Identified) != 0 || fresh.Remaining != 600 {
		t.Errorf("state after reset = %+v", fresh)
	}
}

func TestStartLeavesPointerLockToClient(t *testing.T) {
	e := setupEnv(t)
	token := e.login(t, "john.martinez@warehouse.com", "training123")

	w := e.do(t, http.MethodPost, "/api/sessions", token, CreateSessionRequest{SceneID: "scene1"})
	state := decode[SessionStateResponse](t, w)

	// Starting the session must not pre-engage pointer lock; the browser
	// only grants it on a click, reported over the socket.
	if w = e.do(t, http.MethodPost, "/api/sessions/"+state.ID+"/start", token, nil); w.Code != http.StatusOK {
		t.Fatalf("start: expected 200, got %d", w.Code)
	}
	ls, err := e.registry.Get(state.ID)
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	if ls.Control.Locked() {
		t.Error("controller locked before the client engaged pointer lock")
	}

	applyInput(ls, wsInput{Type: "lock"}, 0)
	if !ls.Control.Locked() {
		t.Error("lock event did not engage pointer lock")
	}

	e.do(t, http.MethodPost, "/api/sessions/"+state.ID+"/identify", token, IdentifyRequest{HazardID: "h1"})
	e.do(t, http.MethodPost, "/api/sessions/"+state.ID+"/submit", token, nil)
	if w = e.do(t, http.MethodPost, "/api/sessions/"+state.ID+"/reset", token, nil); w.Code != http.StatusOK {
		t.Fatalf("reset: expected 200, got %d", w.Code)
	}
	if ls.Control.Locked() {
		t.Error("controller locked after reset without a client lock event")
	}
}

func TestSessionOwnership(t *testing.T) {
	e := setupEnv(t)
	owner := e.login(t, "john.martinez@warehouse.com", "training123")
	other := e.login(t, "sarah.chen@warehouse.com", "training123")

	w := e.do(t, http.MethodPost, "/api/sessions", owner, CreateSessionRequest{SceneID: "scene1"})
	state := decode[SessionStateResponse](t, w)

	if w = e.do(t, http.MethodGet, "/api/sessions/"+state.ID, other, nil); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for other user, got %d", w.Code)
	}
}

func TestToggleHints(t *testing.T) {
	e := setupEnv(t)
	token := e.login(t, "john.martinez@warehouse.com", "training123")

	w := e.do(t, http.MethodPost, "/api/sessions", token, CreateSessionRequest{SceneID: "scene1"})
	state := decode[SessionStateResponse](t, w)
	e.do(t, http.MethodPost, "/api/sessions/"+state.ID+"/start", token, nil)

	w = e.do(t, http.MethodPost, "/api/sessions/"+state.ID+"/hints", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("hints: expected 200, got %d", w.Code)
	}
	var resp struct {
		Hints bool `json:"hints"`
	}
	json.NewDecoder(w.Body).Decode(&resp)
	if !resp.Hints {
		t.Error("hints not enabled after toggle")
	}

	// With hints on, unidentified vignettes carry a glow.
	w = e.do(t, http.MethodGet, "/api/sessions/"+state.ID, token, nil)
	got := decode[SessionStateResponse](t, w)
	if got.Vignettes[0].HintGlow == nil {
		t.Error("hint glow missing on unidentified vignette")
	}
}

func TestQuizAttemptGrading(t *testing.T) {
	e := setupEnv(t)
	token := e.login(t, "emily.rodriguez@warehouse.com", "training123")

	w := e.do(t, http.MethodGet, "/api/quizzes", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list quizzes: expected 200, got %d", w.Code)
	}
	quizzes := decode[[]QuizSummary](t, w)
	if len(quizzes) != 2 {
		t.Fatalf("got %d quizzes, want 2", len(quizzes))
	}

	// Four of five correct on quiz1: 80%, above the 70% pass mark.
	w = e.do(t, http.MethodPost, "/api/quizzes/quiz1/attempts", token, QuizAttemptRequest{
		Answers:   []int{1, 2, 0, 1, 0},
		TimeSpent: 300,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("attempt: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := decode[QuizAttemptResponse](t, w)
	if resp.Attempt.Score != 4 || resp.Attempt.Percentage != 80 {
		t.Errorf("attempt = %+v, want 4/5 at 80%%", resp.Attempt)
	}
	if !resp.Attempt.Passed {
		t.Error("80%% should pass a 70%% quiz")
	}
	if len(resp.Review) != 5 {
		t.Fatalf("review has %d entries, want 5", len(resp.Review))
	}
	if resp.Review[4].IsCorrect || resp.Review[4].Correct != 1 {
		t.Errorf("review[4] = %+v, want incorrect with answer 1", resp.Review[4])
	}
}

func TestQuizAttemptAnswerCountMismatch(t *testing.T) {
	e := setupEnv(t)
	token := e.login(t, "emily.rodriguez@warehouse.com", "training123")

	w := e.do(t, http.MethodPost, "/api/quizzes/quiz1/attempts", token, QuizAttemptRequest{Answers: []int{1}})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestQuizCorrectAnswersWithheld(t *testing.T) {
	e := setupEnv(t)
	token := e.login(t, "john.martinez@warehouse.com", "training123")

	w := e.do(t, http.MethodGet, "/api/quizzes/quiz1", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if bytes.Contains(w.Body.Bytes(), []byte("correctAnswer")) {
		t.Error("quiz payload leaks correct answers")
	}
}

func TestHealth(t *testing.T) {
	e := setupEnv(t)

	w := e.do(t, http.MethodGet, "/healthz", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	resp := decode[HealthResponse](t, w)
	if resp.Status != "ok" {
		t.Errorf("status = %q", resp.Status)
	}
}
