package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/wareguard/hazardhunt/internal/safety"
)

var errNoSession = errors.New("no valid session")

const adminCookieName = "admin_session"

// userFromRequest resolves the Bearer token on the request to a user.
func userFromRequest(r *http.Request, store Store) (safety.User, error) {
	auth := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(auth, "Bearer ")
	if !found || token == "" {
		return safety.User{}, errNoSession
	}
	u, err := store.UserFromToken(r.Context(), token)
	if err != nil {
		return safety.User{}, errNoSession
	}
	return u, nil
}

// adminFromRequest reads the admin_session cookie and looks up the admin.
func adminFromRequest(r *http.Request, store Store) (safety.User, error) {
	cookie, err := r.Cookie(adminCookieName)
	if err != nil || cookie.Value == "" {
		return safety.User{}, errNoSession
	}
	u, err := store.AdminFromSession(r.Context(), cookie.Value)
	if err != nil {
		return safety.User{}, errNoSession
	}
	return u, nil
}
