package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wareguard/hazardhunt/internal/safety"
)

type ctxKey int

const (
	ctxKeySession ctxKey = iota
	ctxKeyUser
	ctxKeyAdmin
)

// sessionMiddleware resolves {session} to a live session and checks the
// caller's token owns it.
func sessionMiddleware(registry *Registry, store Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := userFromRequest(r, store)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "invalid or missing session token")
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

			ctx := context.WithValue(r.Context(), ctxKeySession, ls)
			ctx = context.WithValue(ctx, ctxKeyUser, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// authMiddleware requires a valid Bearer token.
func authMiddleware(store Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := userFromRequest(r, store)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "invalid or missing session token")
				return
			}
			ctx := context.WithValue(r.Context(), ctxKeyUser, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// adminAuthMiddleware requires a valid admin_session cookie.
func adminAuthMiddleware(store Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			admin, err := adminFromRequest(r, store)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "not authenticated")
				return
			}
			ctx := context.WithValue(r.Context(), ctxKeyAdmin, admin)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func liveSession(r *http.Request) *LiveSession {
	return r.Context().Value(ctxKeySession).(*LiveSession)
}

func requestUser(r *http.Request) safety.User {
	return r.Context().Value(ctxKeyUser).(safety.User)
}

func requestAdmin(r *http.Request) safety.User {
	return r.Context().Value(ctxKeyAdmin).(safety.User)
}
