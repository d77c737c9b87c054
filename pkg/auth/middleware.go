package auth

import (
	"log"
	"net/http"

	"rooms-dashboard/pkg/session"
)

// Middleware resolves the session cookie on every request. Resolution is
// optional: pages render in a degraded, unauthenticated mode when no valid
// session exists, matching how the dashboard behaves with an absent token.
type Middleware struct {
	store      session.Store
	cookieName string
}

func NewMiddleware(store session.Store, cookieName string) *Middleware {
	return &Middleware{store: store, cookieName: cookieName}
}

// WithSession attaches the request's session, if any, to the context.
func (m *Middleware) WithSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(m.cookieName)
		if err != nil {
			next(w, r)
			return
		}

		sess, err := m.store.Get(cookie.Value)
		if err != nil {
			if err != session.ErrNotFound {
				log.Printf("❌ Session lookup failed: %v", err)
			}
			next(w, r)
			return
		}

		next(w, r.WithContext(ContextWithSession(r.Context(), &sess)))
	}
}
