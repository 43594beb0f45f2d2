package session

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/gamefeed/gamefeed/frontend/internal/store"
	internal_errors "github.com/gamefeed/gamefeed/shared/errors"
)

const CookieName = "session_id"

type ctxKey struct{}

// Middleware resolves the session cookie, issuing a new id when it is
// missing or malformed, and puts the session store in the request context.
// The state is snapshotted once the handler returns.
func (m *Manager) Middleware(secureCookies bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := ""
			if cookie, err := r.Cookie(CookieName); err == nil {
				if parsed, err := uuid.Parse(cookie.Value); err == nil {
					id = parsed.String()
				}
			}
			if id == "" {
				id = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     CookieName,
					Value:    id,
					Path:     "/",
					HttpOnly: true,
					Secure:   secureCookies,
					SameSite: http.SameSiteLaxMode,
				})
			}

			s := m.Get(r.Context(), id)
			ctx := context.WithValue(store.WithStore(r.Context(), s), ctxKey{}, id)
			next.ServeHTTP(w, r.WithContext(ctx))

			m.Save(context.WithoutCancel(r.Context()), id)
		})
	}
}

// IDFromContext returns the session id set by Middleware.
func IDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// ID is IDFromContext for use as a rate limiter identity.
func ID(r *http.Request) (string, error) {
	id := IDFromContext(r.Context())
	if id == "" {
		return "", &internal_errors.ErrorWithStatusCode{Message: "no session", StatusCode: http.StatusBadRequest}
	}
	return id, nil
}
