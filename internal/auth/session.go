package auth

import (
	"context"
	"net/http"
	"time"

	"github.com/inkwell/inkwell-be/internal/models"
	"github.com/inkwell/inkwell-be/internal/services"
)

// sessionKey is the context key for the resolved session.
type contextKey string

const sessionKey = contextKey("session")

// CookiePolicy describes how the session cookie is issued.
type CookiePolicy struct {
	Name   string
	MaxAge time.Duration
	Secure bool
}

// Issue sets the session cookie on the response. HttpOnly and
// SameSite=Lax; the Secure flag follows the environment so local
// development over plain HTTP keeps working.
func (p CookiePolicy) Issue(w http.ResponseWriter, session models.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     p.Name,
		Value:    session.Token,
		Path:     "/",
		MaxAge:   int(p.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   p.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear expires the session cookie on the client.
func (p CookiePolicy) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     p.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   p.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Token extracts the session token from the request cookie, or "" when
// the cookie is absent.
func (p CookiePolicy) Token(r *http.Request) string {
	cookie, err := r.Cookie(p.Name)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// Middleware resolves the session cookie against the store and attaches
// the session to the request context. Requests without a valid session
// pass through anonymous; gating happens in RequireSession.
func Middleware(sessions services.SessionServiceProvider, policy CookiePolicy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := policy.Token(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			session, err := sessions.Get(token)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), sessionKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireSession rejects anonymous requests with 401. Every mutating
// post route sits behind this gate.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := FromContext(r.Context()); !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"msg":"you are not authenticated"}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// FromContext returns the session attached to the request context.
func FromContext(ctx context.Context) (models.Session, bool) {
	session, ok := ctx.Value(sessionKey).(models.Session)
	return session, ok
}
