package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"

	"github.com/wareguard/hazardhunt/internal/game"
	"github.com/wareguard/hazardhunt/internal/safety"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	type sceneParams struct {
		ID string `path:"id"`
	}
	type sessionParams struct {
		Session string `path:"session"`
	}
	r.Spec.Info.Title = "HazardHunt API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Backend API for the warehouse safety training game.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Returns process liveness and the live session count.")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getHealthz)

	// POST /api/login
	postLogin, _ := r.NewOperationContext(http.MethodPost, "/api/login")
	postLogin.SetSummary("Log in")
	postLogin.SetDescription("Authenticate with email and password. Returns a Bearer token.")
	postLogin.AddReqStructure(LoginRequest{})
	postLogin.AddRespStructure(LoginResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postLogin.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(postLogin)

	// POST /api/logout
	postLogout, _ := r.NewOperationContext(http.MethodPost, "/api/logout")
	postLogout.SetSummary("Log out")
	postLogout.SetDescription("Revokes the Bearer token.")
	postLogout.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusNoContent))
	_ = r.AddOperation(postLogout)

	// GET /api/me
	getMe, _ := r.NewOperationContext(http.MethodGet, "/api/me")
	getMe.SetSummary("Current user")
	getMe.SetDescription("Returns the user for the Bearer token.")
	getMe.AddRespStructure(safety.User{}, openapi.WithHTTPStatus(http.StatusOK))
	getMe.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(getMe)

	// GET /api/scenes
	listScenes, _ := r.NewOperationContext(http.MethodGet, "/api/scenes")
	listScenes.SetSummary("List scenes")
	listScenes.SetDescription("Returns the training scene catalog without hazard details. Requires Bearer token.")
	listScenes.AddRespStructure([]SceneSummary{}, openapi.WithHTTPStatus(http.StatusOK))
	listScenes.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(listScenes)

	// GET /api/scenes/{id}
	getScene, _ := r.NewOperationContext(http.MethodGet, "/api/scenes/{id}")
	getScene.SetSummary("Get scene")
	getScene.SetDescription("Returns one scene summary. Requires Bearer token.")
	getScene.AddRespStructure(SceneSummary{}, openapi.WithHTTPStatus(http.StatusOK))
	getScene.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	getScene.AddReqStructure(sceneParams{})
	_ = r.AddOperation(getScene)

	// GET /api/scenes/{id}/geometry
	getGeometry, _ := r.NewOperationContext(http.MethodGet, "/api/scenes/{id}/geometry")
	getGeometry.SetSummary("Scene geometry")
	getGeometry.SetDescription("Returns the procedural room layout for a scene. Requires Bearer token.")
	getGeometry.AddRespStructure(SceneGeometryResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getGeometry.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	getGeometry.AddReqStructure(sceneParams{})
	_ = r.AddOperation(getGeometry)

	// POST /api/sessions
	createSession, _ := r.NewOperationContext(http.MethodPost, "/api/sessions")
	createSession.SetSummary("Create session")
	createSession.SetDescription("Creates a hazard-hunt session in the briefing phase. Requires Bearer token.")
	createSession.AddReqStructure(CreateSessionRequest{})
	createSession.AddRespStructure(SessionStateResponse{}, openapi.WithHTTPStatus(http.StatusCreated))
	createSession.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(createSession)

	// GET /api/sessions/{session}
	getSession, _ := r.NewOperationContext(http.MethodGet, "/api/sessions/{session}")
	getSession.SetSummary("Session state")
	getSession.SetDescription("Returns the full session snapshot including vignettes and camera pose. Requires Bearer token.")
	getSession.AddRespStructure(SessionStateResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getSession.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	getSession.AddReqStructure(sessionParams{})
	_ = r.AddOperation(getSession)

	// POST /api/sessions/{session}/start
	startSession, _ := r.NewOperationContext(http.MethodPost, "/api/sessions/{session}/start")
	startSession.SetSummary("Start session")
	startSession.SetDescription("Moves the session from briefing to playing and arms the countdown. Requires Bearer token.")
	startSession.AddRespStructure(SessionStateResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	startSession.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	startSession.AddReqStructure(sessionParams{})
	_ = r.AddOperation(startSession)

	// POST /api/sessions/{session}/identify
	identify, _ := r.NewOperationContext(http.MethodPost, "/api/sessions/{session}/identify")
	identify.SetSummary("Identify hazard")
	identify.SetDescription("Marks a hazard as found and scores it. Re-identifying is a no-op. Requires Bearer token.")
	identify.AddReqStructure(IdentifyRequest{})
	identify.AddRespStructure(IdentifyResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	identify.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	identify.AddReqStructure(sessionParams{})
	_ = r.AddOperation(identify)

	// POST /api/sessions/{session}/submit
	submit, _ := r.NewOperationContext(http.MethodPost, "/api/sessions/{session}/submit")
	submit.SetSummary("Submit session")
	submit.SetDescription("Ends the run and grades it. Needs at least one identified hazard. Requires Bearer token.")
	submit.AddRespStructure(game.Results{}, openapi.WithHTTPStatus(http.StatusOK))
	submit.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	submit.AddReqStructure(sessionParams{})
	_ = r.AddOperation(submit)

	// POST /api/sessions/{session}/reset
	reset, _ := r.NewOperationContext(http.MethodPost, "/api/sessions/{session}/reset")
	reset.SetSummary("Reset session")
	reset.SetDescription("Restarts the run from results with cleared counters. Requires Bearer token.")
	reset.AddRespStructure(SessionStateResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	reset.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	reset.AddReqStructure(sessionParams{})
	_ = r.AddOperation(reset)

	// POST /api/sessions/{session}/hints
	hints, _ := r.NewOperationContext(http.MethodPost, "/api/sessions/{session}/hints")
	hints.SetSummary("Toggle hints")
	hints.SetDescription("Flips the hint glow on unidentified hazards. Requires Bearer token.")
	hints.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK))
	hints.AddReqStructure(sessionParams{})
	_ = r.AddOperation(hints)

	// GET /api/sessions/{session}/results
	results, _ := r.NewOperationContext(http.MethodGet, "/api/sessions/{session}/results")
	results.SetSummary("Session results")
	results.SetDescription("Returns the grading for a finished session. Requires Bearer token.")
	results.AddRespStructure(game.Results{}, openapi.WithHTTPStatus(http.StatusOK))
	results.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	results.AddReqStructure(sessionParams{})
	_ = r.AddOperation(results)

	// GET /api/sessions/{session}/events
	events, _ := r.NewOperationContext(http.MethodGet, "/api/sessions/{session}/events")
	events.SetSummary("SSE event stream")
	events.SetDescription("Server-Sent Events stream of HUD updates. Pass token as query parameter.")
	events.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK),
		openapi.WithContentType("text/event-stream"))
	events.AddReqStructure(sessionParams{})
	_ = r.AddOperation(events)

	// GET /api/sessions/{session}/ws
	ws, _ := r.NewOperationContext(http.MethodGet, "/api/sessions/{session}/ws")
	ws.SetSummary("Input websocket")
	ws.SetDescription("Upgrades to a WebSocket streaming movement input and authoritative camera poses. Pass token as query parameter.")
	ws.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusSwitchingProtocols),
		openapi.WithContentType("text/plain"))
	ws.AddReqStructure(sessionParams{})
	_ = r.AddOperation(ws)

	// GET /api/quizzes
	listQuizzes, _ := r.NewOperationContext(http.MethodGet, "/api/quizzes")
	listQuizzes.SetSummary("List quizzes")
	listQuizzes.SetDescription("Returns available quizzes without questions. Requires Bearer token.")
	listQuizzes.AddRespStructure([]QuizSummary{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(listQuizzes)

	// GET /api/quizzes/{id}
	getQuiz, _ := r.NewOperationContext(http.MethodGet, "/api/quizzes/{id}")
	getQuiz.SetSummary("Get quiz")
	getQuiz.SetDescription("Returns one quiz with questions, correct answers withheld. Requires Bearer token.")
	getQuiz.AddRespStructure(safety.Quiz{}, openapi.WithHTTPStatus(http.StatusOK))
	getQuiz.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	getQuiz.AddReqStructure(sceneParams{})
	_ = r.AddOperation(getQuiz)

	// POST /api/quizzes/{id}/attempts
	quizAttempt, _ := r.NewOperationContext(http.MethodPost, "/api/quizzes/{id}/attempts")
	quizAttempt.SetSummary("Submit quiz attempt")
	quizAttempt.SetDescription("Grades a completed quiz and records the attempt. Requires Bearer token.")
	quizAttempt.AddReqStructure(QuizAttemptRequest{})
	quizAttempt.AddRespStructure(QuizAttemptResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	quizAttempt.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	quizAttempt.AddReqStructure(sceneParams{})
	_ = r.AddOperation(quizAttempt)

	// POST /api/admin/login
	adminLogin, _ := r.NewOperationContext(http.MethodPost, "/api/admin/login")
	adminLogin.SetSummary("Admin login")
	adminLogin.SetDescription("Authenticate an admin with email and password. Sets admin_session cookie.")
	adminLogin.AddReqStructure(LoginRequest{})
	adminLogin.AddRespStructure(safety.User{}, openapi.WithHTTPStatus(http.StatusOK))
	adminLogin.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	adminLogin.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusForbidden))
	_ = r.AddOperation(adminLogin)

	// POST /api/admin/logout
	adminLogout, _ := r.NewOperationContext(http.MethodPost, "/api/admin/logout")
	adminLogout.SetSummary("Admin logout")
	adminLogout.SetDescription("Clears the admin session and cookie.")
	adminLogout.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusNoContent))
	_ = r.AddOperation(adminLogout)

	// GET /api/admin/me
	adminMe, _ := r.NewOperationContext(http.MethodGet, "/api/admin/me")
	adminMe.SetSummary("Current admin")
	adminMe.SetDescription("Returns the authenticated admin. Requires admin_session cookie.")
	adminMe.AddRespStructure(safety.User{}, openapi.WithHTTPStatus(http.StatusOK))
	adminMe.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(adminMe)

	// GET /api/admin/stats
	stats, _ := r.NewOperationContext(http.MethodGet, "/api/admin/stats")
	stats.SetSummary("Dashboard stats")
	stats.SetDescription("Aggregate training statistics. Requires admin_session cookie.")
	stats.AddRespStructure(safety.DashboardStats{}, openapi.WithHTTPStatus(http.StatusOK))
	stats.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(stats)

	// GET /api/admin/users
	listUsers, _ := r.NewOperationContext(http.MethodGet, "/api/admin/users")
	listUsers.SetSummary("List users")
	listUsers.SetDescription("Returns all users. Requires admin_session cookie.")
	listUsers.AddRespStructure([]safety.User{}, openapi.WithHTTPStatus(http.StatusOK))
	listUsers.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(listUsers)

	// GET /api/admin/performance
	performance, _ := r.NewOperationContext(http.MethodGet, "/api/admin/performance")
	performance.SetSummary("User performance")
	performance.SetDescription("Per-user attempt aggregates with trend. Requires admin_session cookie.")
	performance.AddRespStructure([]safety.UserPerformance{}, openapi.WithHTTPStatus(http.StatusOK))
	performance.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(performance)

	// GET /api/admin/attempts
	attempts, _ := r.NewOperationContext(http.MethodGet, "/api/admin/attempts")
	attempts.SetSummary("List attempts")
	attempts.SetDescription("All recorded quiz and hazard attempts. Requires admin_session cookie.")
	attempts.AddRespStructure(AttemptsResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	attempts.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(attempts)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
