package handler

import (
	"net/http"

	"patient-vitals-service/internal/delivery/http/middleware"
	"patient-vitals-service/internal/session"

	"github.com/sirupsen/logrus"
)

// flashAndRedirect queues a one-time message, persists the session and
// sends the browser to target. Every POST outcome ends here so the next
// GET can render the message exactly once.
func flashAndRedirect(w http.ResponseWriter, r *http.Request, sessions *session.Manager, sess *session.Session, category, message, target string) {
	sess.AddFlash(category, message)
	if err := sessions.Save(r.Context(), sess); err != nil {
		logrus.Warnf("Failed to save session: %+v", err)
	}
	http.Redirect(w, r, target, http.StatusFound)
}

// popFlashes drains the queued flashes and persists the drained session
// so each message renders exactly once.
func popFlashes(w http.ResponseWriter, r *http.Request, sessions *session.Manager, sess *session.Session) []session.Flash {
	flashes := sess.PopFlashes()
	if len(flashes) > 0 {
		if err := sessions.Save(r.Context(), sess); err != nil {
			logrus.Warnf("Failed to save session: %+v", err)
		}
	}
	return flashes
}

// requestSession pulls the session the middleware attached. A missing
// session means the route was wired without the session middleware.
func requestSession(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sess, ok := middleware.GetSession(r.Context())
	if !ok {
		logrus.Error("Session missing from request context")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return nil, false
	}
	return sess, true
}
