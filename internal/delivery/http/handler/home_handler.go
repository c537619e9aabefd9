package handler

import (
	"net/http"

	"patient-vitals-service/internal/delivery/http/view"
	"patient-vitals-service/internal/domain/entity"
	"patient-vitals-service/internal/session"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type HomeHandler struct {
	sessions *session.Manager
	renderer *view.Renderer
}

func NewHomeHandler(sessions *session.Manager, renderer *view.Renderer) *HomeHandler {
	return &HomeHandler{
		sessions: sessions,
		renderer: renderer,
	}
}

// Home renders the landing page
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	sess, ok := requestSession(w, r)
	if !ok {
		return
	}
	h.renderer.Render(w, "home", view.Page{
		Flashes:  popFlashes(w, r, h.sessions, sess),
		Username: sess.Username,
	})
}

// SetLanguage stores a recognized UI locale in the session; unknown
// codes are a no-op. Either way the browser lands on the dashboard.
func (h *HomeHandler) SetLanguage(w http.ResponseWriter, r *http.Request) {
	sess, ok := requestSession(w, r)
	if !ok {
		return
	}

	code := mux.Vars(r)["code"]
	if _, recognized := entity.Languages[code]; recognized {
		sess.Language = code
		if err := h.sessions.Save(r.Context(), sess); err != nil {
			logrus.Warnf("Failed to save session: %+v", err)
		}
	}

	http.Redirect(w, r, "/dashboard", http.StatusFound)
}
