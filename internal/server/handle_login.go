package server

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/wareguard/hazardhunt/internal/catalog"
	"github.com/wareguard/hazardhunt/internal/safety"
)

// LoginRequest is the request body for POST /api/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the Bearer token for subsequent API calls.
type LoginResponse struct {
	Token string      `json:"token"`
	User  safety.User `json:"user"`
}

func handleLogin(cat *catalog.Catalog, store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := checkCredentials(w, r, cat)
		if !ok {
			return
		}

		token, err := store.IssueToken(r.Context(), user.ID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		store.TouchLogin(r.Context(), user.ID, time.Now())

		writeJSON(w, http.StatusOK, LoginResponse{Token: token, User: user})
	}
}

func handleLogout(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if token, found := strings.CutPrefix(auth, "Bearer "); found && token != "" {
			store.RevokeToken(r.Context(), token)
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleMe(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := userFromRequest(r, store)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid or missing session token")
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}

// checkCredentials validates the login body against the user catalog. On
// failure it has already written the error response.
func checkCredentials(w http.ResponseWriter, r *http.Request, cat *catalog.Catalog) (safety.User, bool) {
	var req LoginRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return safety.User{}, false
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return safety.User{}, false
	}

	user, err := cat.UserByEmail(req.Email)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return safety.User{}, false
	}
	if user.Status != safety.UserActive {
		writeError(w, http.StatusForbidden, "account is inactive")
		return safety.User{}, false
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return safety.User{}, false
	}
	return user, true
}

func handleAdminLogin(cat *catalog.Catalog, store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := checkCredentials(w, r, cat)
		if !ok {
			return
		}
		if user.Role != safety.RoleAdmin {
			writeError(w, http.StatusForbidden, "admin access required")
			return
		}

		sessionID, err := store.CreateAdminSession(r.Context(), user.ID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		store.TouchLogin(r.Context(), user.ID, time.Now())

		http.SetCookie(w, &http.Cookie{
			Name:     adminCookieName,
			Value:    sessionID,
			Path:     "/",
			MaxAge:   int(7 * 24 * time.Hour / time.Second),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		writeJSON(w, http.StatusOK, user)
	}
}

func handleAdminLogout(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(adminCookieName); err == nil && cookie.Value != "" {
			store.DeleteAdminSession(r.Context(), cookie.Value)
		}
		http.SetCookie(w, &http.Cookie{
			Name:     adminCookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleAdminMe(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		admin, err := adminFromRequest(r, store)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "not authenticated")
			return
		}
		writeJSON(w, http.StatusOK, admin)
	}
}
