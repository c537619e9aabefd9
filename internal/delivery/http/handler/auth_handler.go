package handler

import (
	"net/http"

	"patient-vitals-service/internal/delivery/http/view"
	"patient-vitals-service/internal/session"
	"patient-vitals-service/internal/usecase"
	"patient-vitals-service/pkg/validator"

	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	sessions    *session.Manager
	renderer    *view.Renderer
	validator   *validator.CustomValidator
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, sessions *session.Manager, renderer *view.Renderer, validator *validator.CustomValidator) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		sessions:    sessions,
		renderer:    renderer,
		validator:   validator,
	}
}

// SignupPage renders the signup form
func (h *AuthHandler) SignupPage(w http.ResponseWriter, r *http.Request) {
	sess, ok := requestSession(w, r)
	if !ok {
		return
	}
	h.renderer.Render(w, "signup", view.Page{
		Flashes: popFlashes(w, r, h.sessions, sess),
	})
}

// Signup creates the account. Success redirects to the login form; the
// new user is not authenticated until they log in.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	sess, ok := requestSession(w, r)
	if !ok {
		return
	}

	req := decodeSignupForm(r)
	if err := h.validator.Validate(req); err != nil {
		flashAndRedirect(w, r, h.sessions, sess, session.FlashDanger, firstValidationMessage(h.validator, err), "/signup")
		return
	}

	if _, err := h.authUsecase.Register(r.Context(), req); err != nil {
		switch err {
		case usecase.ErrEmailAlreadyExists:
			flashAndRedirect(w, r, h.sessions, sess, session.FlashDanger, "Email already registered.", "/signup")
		case usecase.ErrUsernameAlreadyExists:
			flashAndRedirect(w, r, h.sessions, sess, session.FlashDanger, "Username already taken.", "/signup")
		default:
			flashAndRedirect(w, r, h.sessions, sess, session.FlashDanger, "An unexpected error occurred. Please try again.", "/signup")
		}
		return
	}

	flashAndRedirect(w, r, h.sessions, sess, session.FlashSuccess, "Sign-Up successful! Please log in.", "/login")
}

// LoginPage renders the login form
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	sess, ok := requestSession(w, r)
	if !ok {
		return
	}
	h.renderer.Render(w, "login", view.Page{
		Flashes: popFlashes(w, r, h.sessions, sess),
	})
}

// Login checks credentials and attaches the user to the session. Bad
// email and bad password produce the same message.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	sess, ok := requestSession(w, r)
	if !ok {
		return
	}

	req := decodeLoginForm(r)
	if err := h.validator.Validate(req); err != nil {
		flashAndRedirect(w, r, h.sessions, sess, session.FlashDanger, "Invalid email or password.", "/login")
		return
	}

	user, err := h.authUsecase.Login(r.Context(), req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidCredentials:
			flashAndRedirect(w, r, h.sessions, sess, session.FlashDanger, "Invalid email or password.", "/login")
		default:
			flashAndRedirect(w, r, h.sessions, sess, session.FlashDanger, "An unexpected error occurred. Please try again.", "/login")
		}
		return
	}

	sess.Attach(user.ID, user.Username)
	flashAndRedirect(w, r, h.sessions, sess, session.FlashSuccess, "Logged in successfully.", "/dashboard")
}

// Logout clears the session attachment and returns to the landing page
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sess, ok := requestSession(w, r)
	if !ok {
		return
	}

	if sess.IsAuthenticated() {
		if err := h.authUsecase.Logout(r.Context(), sess.UserID); err != nil {
			logrus.Warnf("Failed to audit logout: %+v", err)
		}
	}

	sess.Detach()
	flashAndRedirect(w, r, h.sessions, sess, session.FlashSuccess, "Logged out successfully.", "/")
}

// firstValidationMessage collapses a validator error into the single
// message the flash line can carry.
func firstValidationMessage(v *validator.CustomValidator, err error) string {
	for _, msg := range v.FormatValidationErrors(err) {
		return msg
	}
	return "Please fill out all fields."
}
