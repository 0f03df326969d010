package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/wareguard/hazardhunt/internal/safety"
)

func (e *testEnv) adminLogin(t *testing.T) *http.Cookie {
	t.Helper()

	w := e.do(t, http.MethodPost, "/api/admin/login", "", LoginRequest{
		Email:    "mike.johnson@warehouse.com",
		Password: "admin123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("admin login: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	for _, c := range w.Result().Cookies() {
		if c.Name == adminCookieName {
			return c
		}
	}
	t.Fatal("admin_session cookie not set")
	return nil
}

func (e *testEnv) doAdmin(t *testing.T, method, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func TestAdminLoginRejectsStaff(t *testing.T) {
	e := setupEnv(t)

	w := e.do(t, http.MethodPost, "/api/admin/login", "", LoginRequest{
		Email:    "john.martinez@warehouse.com",
		Password: "training123",
	})
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestAdminRoutesRequireCookie(t *testing.T) {
	e := setupEnv(t)

	for _, path := range []string{"/api/admin/stats", "/api/admin/users", "/api/admin/performance", "/api/admin/attempts"} {
		if w := e.doAdmin(t, http.MethodGet, path, nil); w.Code != http.StatusUnauthorized {
			t.Errorf("%s: expected 401, got %d", path, w.Code)
		}
	}
}

func TestAdminMeAndLogout(t *testing.T) {
	e := setupEnv(t)
	cookie := e.adminLogin(t)

	w := e.doAdmin(t, http.MethodGet, "/api/admin/me", cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("me: expected 200, got %d", w.Code)
	}
	admin := decode[safety.User](t, w)
	if admin.Role != safety.RoleAdmin {
		t.Errorf("role = %q, want admin", admin.Role)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/admin/logout", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("logout: expected 204, got %d", rec.Code)
	}

	if w := e.doAdmin(t, http.MethodGet, "/api/admin/me", cookie); w.Code != http.StatusUnauthorized {
		t.Fatalf("me after logout: expected 401, got %d", w.Code)
	}
}

func TestAdminStats(t *testing.T) {
	e := setupEnv(t)
	cookie := e.adminLogin(t)

	// One passing attempt for Sarah feeds the aggregates.
	token := e.login(t, "sarah.chen@warehouse.com", "training123")
	w := e.do(t, http.MethodPost, "/api/quizzes/quiz1/attempts", token, QuizAttemptRequest{
		Answers:   []int{1, 2, 0, 1, 1},
		TimeSpent: 200,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("seed attempt: %d: %s", w.Code, w.Body.String())
	}

	w = e.doAdmin(t, http.MethodGet, "/api/admin/stats", cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("stats: expected 200, got %d", w.Code)
	}
	stats := decode[safety.DashboardStats](t, w)
	if stats.TotalUsers != 5 || stats.ActiveUsers != 4 {
		t.Errorf("users = %d/%d, want 5 total 4 active", stats.TotalUsers, stats.ActiveUsers)
	}
	if stats.AverageQuizScore != 100 {
		t.Errorf("average quiz score = %v, want 100", stats.AverageQuizScore)
	}
	if stats.CompletedTrainings != 1 {
		t.Errorf("completed trainings = %d, want 1", stats.CompletedTrainings)
	}
	// Three active staff, one has now passed.
	if stats.PendingAssessments != 2 {
		t.Errorf("pending assessments = %d, want 2", stats.PendingAssessments)
	}
}

func TestAdminPerformance(t *testing.T) {
	e := setupEnv(t)
	cookie := e.adminLogin(t)

	token := e.login(t, "john.martinez@warehouse.com", "training123")
	e.do(t, http.MethodPost, "/api/quizzes/quiz2/attempts", token, QuizAttemptRequest{Answers: []int{3, 1}})

	w := e.doAdmin(t, http.MethodGet, "/api/admin/performance", cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("performance: expected 200, got %d", w.Code)
	}
	perf := decode[[]safety.UserPerformance](t, w)
	if len(perf) != 5 {
		t.Fatalf("got %d entries, want 5", len(perf))
	}

	var john safety.UserPerformance
	for _, p := range perf {
		if p.UserID == "1" {
			john = p
		}
	}
	if john.QuizAttempts != 1 || john.AverageQuizScore != 100 {
		t.Errorf("john = %+v, want 1 attempt at 100", john)
	}
}

func TestAdminAttemptsIncludeHazardRuns(t *testing.T) {
	e := setupEnv(t)
	cookie := e.adminLogin(t)
	token := e.login(t, "john.martinez@warehouse.com", "training123")

	w := e.do(t, http.MethodPost, "/api/sessions", token, CreateSessionRequest{SceneID: "scene1"})
	state := decode[SessionStateResponse](t, w)
	e.do(t, http.MethodPost, "/api/sessions/"+state.ID+"/start", token, nil)
	e.do(t, http.MethodPost, "/api/sessions/"+state.ID+"/identify", token, IdentifyRequest{HazardID: "h2"})
	e.do(t, http.MethodPost, "/api/sessions/"+state.ID+"/submit", token, nil)

	w = e.doAdmin(t, http.MethodGet, "/api/admin/attempts", cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("attempts: expected 200, got %d", w.Code)
	}
	resp := decode[AttemptsResponse](t, w)
	if len(resp.Hazard) != 1 {
		t.Fatalf("got %d hazard attempts, want 1", len(resp.Hazard))
	}
	a := resp.Hazard[0]
	if a.SceneID != "scene1" || a.UserID != "1" || a.CorrectCount != 1 || a.TotalHazards != 4 {
		t.Errorf("attempt = %+v", a)
	}
	if a.AccuracyScore != 25 {
		t.Errorf("accuracy = %d, want 25", a.AccuracyScore)
	}
}

func TestAdminUsersOmitHashes(t *testing.T) {
	e := setupEnv(t)
	cookie := e.adminLogin(t)

	w := e.doAdmin(t, http.MethodGet, "/api/admin/users", cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("users: expected 200, got %d", w.Code)
	}
	var raw []map[string]json.RawMessage
	if err := json.NewDecoder(w.Body).Decode(&raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(raw) != 5 {
		t.Fatalf("got %d users, want 5", len(raw))
	}
	for _, u := range raw {
		if _, ok := u["passwordHash"]; ok {
			t.Fatal("password hash leaked in user listing")
		}
	}
}
