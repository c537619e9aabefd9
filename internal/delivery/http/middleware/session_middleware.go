package middleware

import (
	"context"
	"errors"
	"net/http"

	"patient-vitals-service/internal/session"
	"patient-vitals-service/pkg/response"

	"github.com/sirupsen/logrus"
)

type contextKey string

const SessionKey contextKey = "session"

// SessionMiddleware resolves the session cookie once per request and
// places the session in the request context. Handlers mutate the session
// and persist it through the manager; there is no other shared state.
type SessionMiddleware struct {
	manager    *session.Manager
	cookieName string
	log        *logrus.Logger
}

func NewSessionMiddleware(manager *session.Manager, cookieName string, log *logrus.Logger) *SessionMiddleware {
	return &SessionMiddleware{
		manager:    manager,
		cookieName: cookieName,
		log:        log,
	}
}

func (m *SessionMiddleware) Attach(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var sess *session.Session

		if cookie, err := r.Cookie(m.cookieName); err == nil {
			loaded, err := m.manager.Load(r.Context(), cookie.Value)
			switch {
			case err == nil:
				sess = loaded
			case errors.Is(err, session.ErrSessionNotFound):
				// stale or tampered cookie, start over
			default:
				m.log.Warnf("Failed to load session: %+v", err)
				response.InternalServerError(w, "Failed to load session")
				return
			}
		}

		if sess == nil {
			sess = m.manager.New()
			token, err := m.manager.Token(sess)
			if err != nil {
				m.log.Warnf("Failed to sign session token: %+v", err)
				response.InternalServerError(w, "Failed to create session")
				return
			}
			http.SetCookie(w, &http.Cookie{
				Name:     m.cookieName,
				Value:    token,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), SessionKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAuth redirects anonymous visitors to the login page. The
// redirect is control flow, not an error.
func (m *SessionMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := GetSession(r.Context())
		if !ok || !sess.IsAuthenticated() {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetSession extracts the session from the request context
func GetSession(ctx context.Context) (*session.Session, bool) {
	sess, ok := ctx.Value(SessionKey).(*session.Session)
	return sess, ok
}
